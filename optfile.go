// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package optfile expands command-line argument lists by replacing arguments
// of the form @filename with the shell-tokenized contents of the named option
// file. Referenced files may themselves contain @filename arguments, which are
// expanded recursively in place, so callers can supply argument lists far
// larger than operating system command-line limits allow.
//
// Expansion preserves order: file lines are processed top to bottom, tokens
// left to right, and the expansion of an @filename argument occupies its
// position in the output. A failure to read or tokenize any referenced file
// aborts the whole expansion; there are no partial results.
package optfile

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
