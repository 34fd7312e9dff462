// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package optfile

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/optfile/internal/shelltok"
	"golang.org/x/text/encoding/charmap"
)

// Prefix marks an argument as an option file reference. The remainder of the
// argument is the option file name.
const Prefix = "@"

// Tokenizer splits one option file line into tokens. Implementations report
// malformed input, such as an unterminated quote, with an error.
type Tokenizer func(line string) ([]string, error)

// Expander replaces @filename arguments with the expanded contents of the
// named option files. It is stateless between calls and safe for sequential
// reuse.
type Expander struct {
	provider Provider
	tokenize Tokenizer
}

// Option implements a functional options pattern for Expander.
type Option func(e *Expander)

// WithTokenizer replaces the default shell tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(e *Expander) {
		e.tokenize = t
	}
}

// New creates an Expander that opens option files through p. By default lines
// are tokenized with POSIX-like shell quoting rules.
func New(p Provider, opts ...Option) *Expander {
	e := &Expander{
		provider: p,
		tokenize: shelltok.Split,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExpandArguments returns a copy of args in which every @filename argument has
// been replaced, in place, by the expanded contents of the named option file.
// Arguments without the @ prefix are copied verbatim. The input slice is not
// modified.
//
// Any failure to open, read, or tokenize a referenced file aborts the
// expansion: the returned error wraps ErrReadOptionFile or
// ErrTokenizeOptionFile and no arguments are returned. An option file that is
// referenced again while it is still being expanded aborts with
// ErrCyclicReference.
func (e *Expander) ExpandArguments(args []string) ([]string, error) {
	x := &expansion{
		Expander: e,
		out:      make([]string, 0, len(args)),
	}

	for _, arg := range args {
		if err := x.expandArgument(arg); err != nil {
			return nil, err
		}
	}

	return x.out, nil
}

// expansion is the state of a single ExpandArguments call: the output being
// assembled and the chain of option files currently being expanded, outermost
// first.
type expansion struct {
	*Expander
	out   []string
	stack []string
}

func (x *expansion) expandArgument(arg string) error {
	if !strings.HasPrefix(arg, Prefix) {
		x.out = append(x.out, arg)
		return nil
	}

	return x.expandOptionFile(strings.TrimPrefix(arg, Prefix))
}

// expandOptionFile reads the named option file and expands every token on
// every line into the output. The file handle is held open until all nested
// expansions are complete, then released on every return path. A close
// failure after a successful expansion is reported as a read error; a close
// failure after an earlier error is discarded so that the original cause is
// not masked.
func (x *expansion) expandOptionFile(name string) error {
	if slices.Contains(x.stack, name) {
		chain := append(slices.Clone(x.stack), name)
		return fmt.Errorf("%w: %s", ErrCyclicReference, strings.Join(chain, " -> "))
	}

	f, err := x.provider.Open(name)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrReadOptionFile, name, err)
	}

	closed := false

	defer func() {
		if !closed {
			_ = f.Close()
		}
	}()

	lines, err := ReadLines(f)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrReadOptionFile, name, err)
	}

	x.stack = append(x.stack, name)
	defer func() {
		x.stack = x.stack[:len(x.stack)-1]
	}()

	for i, line := range lines {
		tokens, err := x.tokenize(line)
		if err != nil {
			return fmt.Errorf("%w %q: line %d: %w", ErrTokenizeOptionFile, name, i+1, err)
		}

		for _, token := range tokens {
			if err := x.expandArgument(token); err != nil {
				return err
			}
		}
	}

	closed = true

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrReadOptionFile, name, err)
	}

	return nil
}

// ReadLines reads an entire option file and splits it into lines. The content
// is decoded as ISO-8859-1, so every byte maps to exactly one rune and the
// decode itself cannot fail. A line is terminated by "\n", "\r\n", or a lone
// "\r"; terminators are stripped and a trailing terminator does not produce a
// final empty line.
func ReadLines(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(r))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return splitLines(string(content)), nil
}

// splitLines scans bytes. The decoded content is valid UTF-8 and terminator
// bytes never appear inside multi-byte runes.
func splitLines(content string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])

			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}

			start = i + 1
		}
	}

	if start < len(content) {
		lines = append(lines, content[start:])
	}

	return lines
}
