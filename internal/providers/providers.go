// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package providers

import (
	"context"

	"github.com/matt-FFFFFF/optfile"
)

// New returns the provider used to open option files. By default option files
// are read from the local filesystem. When remote is true, names are resolved
// with Hashicorp's go-getter syntax instead, and ctx bounds any fetches.
func New(ctx context.Context, remote bool) optfile.Provider {
	if remote {
		return NewGetterProvider(ctx)
	}

	return optfile.NewFsProvider(FsFactory())
}
