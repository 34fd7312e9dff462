// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
	"github.com/matt-FFFFFF/optfile/internal/providers"
	"github.com/urfave/cli/v3"
)

const (
	remoteFlag = "remote"
	cliExitStr = ""
)

// CheckCmd is the command that validates option files.
var CheckCmd = &cli.Command{
	Name: "check",
	Description: `Validate option files.
Each named file is expanded as if it were referenced with @name, including any
nested references. All files are checked even when an earlier one fails, and
every problem found is reported.
`,
	ArgsUsage: "file [file ...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    remoteFlag,
			Aliases: []string{"r"},
			Usage: "Resolve option file names with Hashicorp's go-getter syntax, " +
				"allowing option files to be fetched from remote sources.",
			Value:       false,
			DefaultText: "false",
			TakesFile:   false,
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running check command")

	files := cmd.Args().Slice()
	if len(files) == 0 {
		logger.Error("Please specify at least one option file to check.")
		return cli.Exit(cliExitStr, 1)
	}

	expander := optfile.New(providers.New(ctx, cmd.Bool(remoteFlag)))

	if err := checkFiles(ctx, expander, cmd.Writer, files); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// checkFiles expands each named option file and aggregates any failures.
// Every file is checked even when an earlier one fails. A leading @ on a file
// name is accepted and ignored.
func checkFiles(ctx context.Context, expander *optfile.Expander, w io.Writer, files []string) error {
	logger := ctxlog.Logger(ctx)

	var errs error

	for _, file := range files {
		name := strings.TrimPrefix(file, optfile.Prefix)

		expanded, err := expander.ExpandArguments([]string{optfile.Prefix + name})
		if err != nil {
			errs = multierror.Append(errs, err)

			logger.Error("Option file failed validation", "file", name, "error", err.Error())

			continue
		}

		fmt.Fprintf(w, "%s: ok (%d arguments)\n", name, len(expanded)) //nolint:errcheck
	}

	return errs
}
