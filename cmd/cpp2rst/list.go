package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/rstkit/cpp2rst/internal/extract"
	"github.com/rstkit/cpp2rst/internal/inventory"
)

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the input files the current glob resolves to",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.StringFlag{Name: "inputs", Aliases: []string{"i"}, Usage: "Glob expression for input files"},
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum files inspected in parallel", Value: 4},
		},
		Action: listAction,
	}
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := extract.ResolveInputs(cfg.Inputs, cfg.Exclude)
	if err != nil {
		return err
	}

	stats, err := inventory.Collect(ctx, paths, cmd.Int("parallel"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return outputStatsJSON(stats)
	}

	outputStatsTable(stats)
	return nil
}

func outputStatsJSON(stats []inventory.FileStat) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(stats); err != nil {
		return oops.
			Code("JSON_ERROR").
			Wrapf(err, "encoding file stats")
	}

	return nil
}

func outputStatsTable(stats []inventory.FileStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"PATH", "LINES", "DECLS", "SIZE"})
	for _, stat := range stats {
		t.AppendRow(table.Row{
			stat.Path,
			strconv.Itoa(stat.Lines),
			strconv.Itoa(stat.Decls),
			formatSize(stat.Size),
		})
	}

	t.Render()
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + " B"
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMG"[exp])
}
