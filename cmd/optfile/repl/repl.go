// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
	"github.com/matt-FFFFFF/optfile/internal/providers"
	"github.com/matt-FFFFFF/optfile/internal/shelltok"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	noExpandFlag = "no-expand"
	remoteFlag   = "remote"
	promptStr    = "optfile> "
)

// ReplCmd is the command that starts an interactive expansion session.
var ReplCmd = &cli.Command{
	Name: "repl",
	Description: `Start an interactive session for experimenting with argument expansion.
Each line is tokenized using shell quoting rules and any @file references in
the result are expanded. Type quit or exit (or press Ctrl+C) to leave.
`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        noExpandFlag,
			Usage:       "Tokenize only, without expanding @file references",
			Value:       false,
			DefaultText: "false",
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
	logger.Debug("Running repl command")

	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	fmt.Fprintln(cmd.Writer, "Entering interactive mode, type `quit` or `exit` or Ctrl+C to quit.") //nolint:errcheck

	expander := optfile.New(providers.New(ctx, cmd.Bool(remoteFlag)))

	for {
		if input, err := line.Prompt(promptStr); err == nil {
			if input == "quit" || input == "exit" {
				return nil
			}

			line.AppendHistory(input)

			tokens, err := evalLine(expander, input, !cmd.Bool(noExpandFlag))
			if err != nil {
				fmt.Fprintf(cmd.Writer, "%s\n", err.Error()) //nolint:errcheck
				continue
			}

			writeTokens(cmd.Writer, tokens)
		} else if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(cmd.Writer, "Aborted") //nolint:errcheck
			break
		} else {
			fmt.Fprintln(cmd.Writer, "Error reading line:", err) //nolint:errcheck
			break
		}
	}

	return nil
}

// evalLine tokenizes a single line of input and, when expand is true, expands
// any @file references in the result.
func evalLine(expander *optfile.Expander, input string, expand bool) ([]string, error) {
	tokens, err := shelltok.Split(input)
	if err != nil {
		return nil, err
	}

	if !expand {
		return tokens, nil
	}

	return expander.ExpandArguments(tokens)
}

// writeTokens prints one numbered line per token.
func writeTokens(w io.Writer, tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "(no tokens)") //nolint:errcheck
		return
	}

	for i, token := range tokens {
		fmt.Fprintf(w, "%3d: %s\n", i+1, token) //nolint:errcheck
	}
}
