// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The log level is set from the OPTFILE_LOG_LEVEL environment variable, which may
// be "DEBUG", "INFO", "WARN", or "ERROR"; any other value defaults to "WARN".
//
// The default is a pretty console handler to format the log messages in a
// human-readable way. Output goes to stderr so that expanded arguments written
// to stdout stay machine readable.
package ctxlog
