// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shelltok

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{
			name: "plain tokens",
			line: "a b c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "repeated whitespace and tabs",
			line: "  a \t b  ",
			want: []string{"a", "b"},
		},
		{
			name: "double quotes preserve whitespace",
			line: `a "b c" d`,
			want: []string{"a", "b c", "d"},
		},
		{
			name: "single quotes preserve contents literally",
			line: `'a "b" \c' d`,
			want: []string{`a "b" \c`, "d"},
		},
		{
			name: "escaped quote inside double quotes",
			line: `"a\"b"`,
			want: []string{`a"b`},
		},
		{
			name: "escaped backslash inside double quotes",
			line: `"a\\b"`,
			want: []string{`a\b`},
		},
		{
			name: "escaped space outside quotes",
			line: `a\ b`,
			want: []string{"a b"},
		},
		{
			name: "adjacent quoted spans concatenate",
			line: `'it'"s"`,
			want: []string{"its"},
		},
		{
			name: "empty double quotes yield an empty token",
			line: `""`,
			want: []string{""},
		},
		{
			name: "at prefix has no special meaning here",
			line: "@file -v",
			want: []string{"@file", "-v"},
		},
		{
			name: "empty line yields no tokens",
			line: "",
			want: []string{},
		},
		{
			name: "whitespace only line yields no tokens",
			line: " \t ",
			want: []string{},
		},
		{
			name:    "unterminated single quote",
			line:    "'a b",
			wantErr: shellquote.UnterminatedSingleQuoteError,
		},
		{
			name:    "unterminated double quote",
			line:    `"a b`,
			wantErr: shellquote.UnterminatedDoubleQuoteError,
		},
		{
			name:    "trailing backslash escape",
			line:    `a\`,
			wantErr: shellquote.UnterminatedEscapeError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(tc.line)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTokenization)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{
			name: "plain arguments",
			args: []string{"a", "b", "c"},
		},
		{
			name: "argument with spaces",
			args: []string{"a b", "c"},
		},
		{
			name: "argument with quotes and backslashes",
			args: []string{`a"b`, `c\d`},
		},
		{
			name: "empty argument",
			args: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			joined := Join(tc.args...)

			got, err := Split(joined)
			require.NoError(t, err)
			assert.Equal(t, tc.args, got)
		})
	}
}
