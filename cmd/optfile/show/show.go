// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/optfile/internal/argtree"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
	"github.com/matt-FFFFFF/optfile/internal/providers"
	"github.com/urfave/cli/v3"
)

const (
	remoteFlag = "remote"
	cliExitStr = ""
	rootLabel  = "arguments"
)

// ShowCmd is the command that displays how arguments expand, as a tree.
var ShowCmd = &cli.Command{
	Name: "show",
	Description: `Show how the given arguments expand, as a tree.
Option file references are expanded recursively and their contents are
displayed indented beneath each reference. Unlike expand, a failure does not
stop the display: every failing reference is marked in place and the rest of
the tree is still shown.
`,
	ArgsUsage: "[arguments ...]",
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
	logger.Debug("Running show command")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		logger.Error("Please specify at least one argument to show.")
		return cli.Exit(cliExitStr, 1)
	}

	builder := argtree.NewBuilder(providers.New(ctx, cmd.Bool(remoteFlag)))
	root := builder.Build(rootLabel, args)

	if err := argtree.WriteText(cmd.Writer, root, argtree.NewStyles()); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if root.HasErrors() {
		logger.Error("Some option files failed to expand. See above for details.")
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintf(cmd.Writer, "\n%d arguments after expansion\n", len(root.Args())) //nolint:errcheck

	return nil
}
