package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/rstkit/cpp2rst/internal/config"
	"github.com/rstkit/cpp2rst/internal/extract"
	"github.com/rstkit/cpp2rst/internal/ui"
)

func newExtractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Scan headers and write the rst artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.StringFlag{Name: "inputs", Aliases: []string{"i"}, Usage: "Glob expression for input files"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output rst file"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress per-file progress output"},
		},
		Action: extractAction,
	}
}

func extractAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	printer := ui.NewExtractPrinter(cmd.Bool("quiet"))

	result, err := extract.Run(extract.Options{
		Inputs:   cfg.Inputs,
		Exclude:  cfg.Exclude,
		Output:   cfg.Output,
		Title:    cfg.Title,
		Preamble: cfg.Preamble,
		OnFile:   printer.FileDone,
	})
	if err != nil {
		return err
	}

	printer.PrintSummary(result)
	return nil
}

// loadConfig resolves the config file and applies flag overrides. Flag
// values are taken relative to the working directory, not the config
// file location.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("inputs") {
		cfg.Inputs = cmd.String("inputs")
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}

	return cfg, nil
}
