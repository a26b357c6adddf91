package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const starterConfig = `# cpp2rst configuration.
# inputs is a doublestar glob; exclude entries are removed from the match set.

inputs = "**/*.h"
output = "cpp.rst"
exclude = []
title = "C++ API"
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter cpp2rst.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite an existing config file"},
		},
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	const path = "cpp2rst.toml"

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return oops.
			Code("CONFIG_EXISTS").
			With("path", path).
			Hint("Pass --force to overwrite it").
			Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing starter config")
	}

	fmt.Println("created " + path)
	return nil
}
