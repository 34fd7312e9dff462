// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package optfile

import (
	"io"

	"github.com/spf13/afero"
)

// Provider opens named option files for reading. The name is the text that
// followed the "@" prefix, passed verbatim. Implementations may resolve names
// against the operating system filesystem, an in-memory filesystem, or any
// other byte source.
type Provider interface {
	Open(name string) (io.ReadCloser, error)
}

// FsProvider is a Provider backed by an afero filesystem.
type FsProvider struct {
	fs afero.Fs
}

// NewFsProvider creates a Provider that reads option files from fs.
func NewFsProvider(fs afero.Fs) *FsProvider {
	return &FsProvider{fs: fs}
}

// NewOsProvider creates a Provider that reads option files from the operating
// system filesystem.
func NewOsProvider() *FsProvider {
	return NewFsProvider(afero.NewOsFs())
}

// Open implements Provider.
func (p *FsProvider) Open(name string) (io.ReadCloser, error) {
	return p.fs.Open(name) //nolint:wrapcheck
}
