// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package optfile

import "errors"

var (
	// ErrReadOptionFile is returned when an option file cannot be opened,
	// read, or closed.
	ErrReadOptionFile = errors.New("failed to read option file")
	// ErrTokenizeOptionFile is returned when a line inside an option file
	// contains malformed shell quoting.
	ErrTokenizeOptionFile = errors.New("failed to tokenize option file")
	// ErrCyclicReference is returned when an option file references itself,
	// either directly or through other option files.
	ErrCyclicReference = errors.New("cyclic option file reference")
)
