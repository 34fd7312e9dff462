// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package providers

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsFactoryDefaultsToOsFs(t *testing.T) {
	assert.IsType(t, &afero.OsFs{}, FsFactory())
}

func TestFsFactoryCanBeStubbed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "args.txt", []byte("a b\n"), 0o644))

	defer gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	}).Reset()

	content, err := afero.ReadFile(FsFactory(), "args.txt")
	require.NoError(t, err)
	assert.Equal(t, "a b\n", string(content))
}
