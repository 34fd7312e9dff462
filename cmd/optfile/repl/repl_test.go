// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"bytes"
	"testing"

	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/shelltok"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpander(t *testing.T, files map[string]string) *optfile.Expander {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return optfile.New(optfile.NewFsProvider(fs))
}

func TestEvalLine(t *testing.T) {
	t.Parallel()

	expander := newExpander(t, map[string]string{
		"args.txt": "-v\n--name='John Smith'\n",
	})

	testCases := []struct {
		name    string
		input   string
		expand  bool
		want    []string
		wantErr error
	}{
		{
			name:   "plain tokens",
			input:  "run --fast 'a b'",
			expand: true,
			want:   []string{"run", "--fast", "a b"},
		},
		{
			name:   "file reference expanded",
			input:  "run @args.txt",
			expand: true,
			want:   []string{"run", "-v", "--name=John Smith"},
		},
		{
			name:   "file reference kept with expansion off",
			input:  "run @args.txt",
			expand: false,
			want:   []string{"run", "@args.txt"},
		},
		{
			name:    "unterminated quote",
			input:   "run 'oops",
			expand:  true,
			wantErr: shelltok.ErrTokenization,
		},
		{
			name:    "missing file",
			input:   "run @nope.txt",
			expand:  true,
			wantErr: optfile.ErrReadOptionFile,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := evalLine(expander, tc.input, tc.expand)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteTokens(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	writeTokens(buf, []string{"-v", "a b"})

	assert.Equal(t, "  1: -v\n  2: a b\n", buf.String())
}

func TestWriteTokensEmpty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	writeTokens(buf, nil)

	assert.Equal(t, "(no tokens)\n", buf.String())
}
