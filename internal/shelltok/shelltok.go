// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shelltok tokenizes option file lines using POSIX-like shell quoting
// rules. Whitespace separates tokens. Single quotes preserve their contents
// literally. Double quotes preserve whitespace and honor backslash escapes of
// the backslash and double-quote characters. Outside quotes a backslash
// escapes the next character.
package shelltok

import (
	"errors"

	"github.com/kballard/go-shellquote"
)

// ErrTokenization is returned when a line contains malformed shell quoting,
// such as an unterminated quote or a trailing backslash escape.
var ErrTokenization = errors.New("malformed shell quoting")

// Split splits line into shell tokens. Each line is tokenized on its own:
// there is no joining of continuation lines. Malformed quoting fails with an
// error wrapping ErrTokenization.
func Split(line string) ([]string, error) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, errors.Join(ErrTokenization, err)
	}

	return tokens, nil
}

// Join quotes each argument as needed and joins them into a single line that
// Split tokenizes back to the same arguments.
func Join(args ...string) string {
	return shellquote.Join(args...)
}
