// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package expand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
	"github.com/matt-FFFFFF/optfile/internal/providers"
	"github.com/matt-FFFFFF/optfile/internal/shelltok"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	formatFlag = "format"
	remoteFlag = "remote"
	cliExitStr = ""

	formatLines = "lines"
	formatNul   = "nul"
	formatShell = "shell"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	// ErrUnknownFormat is returned when the format flag value is not recognized.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrWriteOutput is returned when the expanded arguments cannot be written.
	ErrWriteOutput = errors.New("failed to write expanded arguments")
)

// ExpandCmd is the command that expands @file references into the full argument list.
var ExpandCmd = &cli.Command{
	Name: "expand",
	Description: `Expand @file references into the full argument list.
Each argument of the form @filename is replaced, in place, by the shell-tokenized
contents of the named option file. Option files may reference further option
files to arbitrary depth. Arguments without the @ prefix pass through unchanged.

Use -- before the arguments so that the contents of option files are not
mistaken for flags of this command.

Option file URLs use Hashicorp's go-getter syntax when --remote is set, which
allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.
`,
	ArgsUsage: "[arguments ...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"o"},
			Usage: "Set the output format. One of: lines, nul, shell, json, yaml. " +
				"The nul format separates arguments with NUL bytes, for use with xargs -0.",
			Value:       formatLines,
			DefaultText: formatLines,
			TakesFile:   false,
			OnlyOnce:    true,
		},
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
	logger.Debug("Running expand command")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		logger.Error("Please specify at least one argument to expand.")
		return cli.Exit(cliExitStr, 1)
	}

	expander := optfile.New(providers.New(ctx, cmd.Bool(remoteFlag)))

	expanded, err := expander.ExpandArguments(args)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Debug("Expansion complete", "in", len(args), "out", len(expanded))

	if err := writeArguments(cmd.Writer, expanded, cmd.String(formatFlag)); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// writeArguments writes args to w in the requested output format.
func writeArguments(w io.Writer, args []string, format string) error {
	switch format {
	case formatLines:
		for _, arg := range args {
			if _, err := fmt.Fprintln(w, arg); err != nil {
				return errors.Join(ErrWriteOutput, err)
			}
		}
	case formatNul:
		for _, arg := range args {
			if _, err := fmt.Fprintf(w, "%s\x00", arg); err != nil {
				return errors.Join(ErrWriteOutput, err)
			}
		}
	case formatShell:
		if _, err := fmt.Fprintln(w, shelltok.Join(args...)); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	case formatJSON:
		return writeJSON(w, args)
	case formatYAML:
		out, err := yaml.Marshal(args)
		if err != nil {
			return errors.Join(ErrWriteOutput, err)
		}

		if _, err := w.Write(out); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return nil
}

// writeJSON writes args to w as a JSON array. Output going to a terminal is
// indented and colorized; otherwise it is compact.
func writeJSON(w io.Writer, args []string) error {
	var out []byte

	var err error

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		// colorjson only walks []any, so the arguments are converted first.
		vals := make([]any, len(args))
		for i, arg := range args {
			vals[i] = arg
		}

		formatter := colorjson.NewFormatter()
		formatter.Indent = 2

		out, err = formatter.Marshal(vals)
	} else {
		out, err = json.Marshal(args)
	}

	if err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}
