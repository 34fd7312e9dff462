// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package expand

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/matt-FFFFFF/optfile/internal/providers"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArguments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		format  string
		want    string
		wantErr error
	}{
		{
			name:   "lines",
			args:   []string{"-v", "a b"},
			format: "lines",
			want:   "-v\na b\n",
		},
		{
			name:   "lines with no arguments",
			args:   []string{},
			format: "lines",
			want:   "",
		},
		{
			name:   "nul separated",
			args:   []string{"-v", "a b"},
			format: "nul",
			want:   "-v\x00a b\x00",
		},
		{
			name:   "shell quoted line",
			args:   []string{"-v", "a b"},
			format: "shell",
			want:   "-v 'a b'\n",
		},
		{
			name:   "json is compact when not a terminal",
			args:   []string{"-v", "a b"},
			format: "json",
			want:   "[\"-v\",\"a b\"]\n",
		},
		{
			name:   "json with no arguments",
			args:   []string{},
			format: "json",
			want:   "[]\n",
		},
		{
			name:   "yaml sequence",
			args:   []string{"-v", "a b"},
			format: "yaml",
			want:   "- -v\n- a b\n",
		},
		{
			name:    "unknown format",
			args:    []string{"-v"},
			format:  "xml",
			wantErr: ErrUnknownFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			err := writeArguments(buf, tc.args, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestWriteArgumentsPropagatesWriteError(t *testing.T) {
	t.Parallel()

	err := writeArguments(failingWriter{}, []string{"-v"}, "lines")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteOutput)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteJSONToNonTerminalFileIsCompact(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	require.NoError(t, writeJSON(w, []string{"-v", "a b"}))
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Equal(t, "[\"-v\",\"a b\"]\n", string(out))
}

func TestExpandCmdExpandsFileReferences(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "args.txt",
		[]byte("-v\n--name='John Smith'\n@inner.txt\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "inner.txt", []byte("x y\n"), 0o644))

	defer gostub.Stub(&providers.FsFactory, func() afero.Fs { return fs }).Reset()

	buf := &bytes.Buffer{}

	defer gostub.Stub(&ExpandCmd.Writer, io.Writer(buf)).Reset()

	err := ExpandCmd.Run(context.Background(), []string{"expand", "--", "@args.txt"})
	require.NoError(t, err)

	assert.Equal(t, "-v\n--name=John Smith\nx\ny\n", buf.String())
}
