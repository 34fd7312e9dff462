// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
)

// ErrFetchOptionFile is returned when an option file cannot be fetched.
var ErrFetchOptionFile = errors.New("failed to fetch option file")

// GetterProvider resolves option file names with Hashicorp's go-getter, so
// option files can be fetched from remote sources as well as the local
// filesystem. See https://github.com/hashicorp/go-getter for the URL syntax.
// Remote URLs separate the directory from the file name with "//", for
// example https://example.com/files//args.txt.
//
// The provider carries the invocation context so that in-flight fetches are
// canceled with the command; expansion itself has no cancellation points.
type GetterProvider struct {
	ctx context.Context
}

// NewGetterProvider creates a GetterProvider. Fetches started by Open are
// canceled when ctx is canceled.
func NewGetterProvider(ctx context.Context) *GetterProvider {
	return &GetterProvider{ctx: ctx}
}

// Open fetches the named option file into a temporary directory and returns
// its content. The temporary directory is removed before returning, so the
// returned handle holds the only copy.
func (p *GetterProvider) Open(name string) (io.ReadCloser, error) {
	content, err := fetch(p.ctx, name)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(content)), nil
}

// fetch retrieves the content from the specified URL using Hashicorp's go-getter.
// It removes the temporary directory after reading the content.
func fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrFetchOptionFile
	}

	tmpDir, err := os.MkdirTemp("", "optfile-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetchOptionFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetchOptionFile, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string
	// If it's not a local file URL, we need to download the directory and read the file from there
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, errors.Join(ErrFetchOptionFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetchOptionFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	ctxlog.Debug(ctx, "fetching option file", "src", url)

	res, err := cli.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetchOptionFile, err)
	}

	content, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrFetchOptionFile, err)
	}

	return content, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // Minimum parts in a go-getter URL: scheme, host, and path
)

// splitFileNameFromGetterURL splits the URL into the directory and file name.
// It returns the new getter URL without the file name and the file name itself.
// It will append any ref query parameter to the new URL if it exists.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref, fileName string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	if strings.Contains(parts[len(parts)-1], goGetterRefSeparator) {
		refSplit := strings.Split(parts[len(parts)-1], goGetterRefSeparator)
		if len(refSplit) > 1 {
			ref = strings.Join(refSplit[1:], "")
		}

		parts[len(parts)-1] = refSplit[0]
	}

	if filepath.Clean(parts[len(parts)-1]) == filepath.Dir(parts[len(parts)-1]) {
		return "", ""
	}

	fileName = filepath.Base(parts[len(parts)-1])
	parts[len(parts)-1] = filepath.Dir(parts[len(parts)-1])

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1] // Remove the last part which is the file name
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
