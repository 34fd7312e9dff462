// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the optfile command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/cmd/optfile/check"
	"github.com/matt-FFFFFF/optfile/cmd/optfile/expand"
	"github.com/matt-FFFFFF/optfile/cmd/optfile/repl"
	"github.com/matt-FFFFFF/optfile/cmd/optfile/show"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
	"github.com/matt-FFFFFF/optfile/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		expand.ExpandCmd,
		check.CheckCmd,
		show.ShowCmd,
		repl.ReplCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "optfile",
	Description: `Optfile expands @file references in command-line arguments.
An argument of the form @filename is replaced by the shell-tokenized contents
of the named option file. Option files may reference further option files,
allowing long command lines to be assembled from small reusable fragments.`,
	Usage:     "optfile expand -- @args.txt",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", optfile.Version, optfile.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
