// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package providers

import (
	"github.com/spf13/afero"
)

// FsFactory returns the afero filesystem backing the local option file
// provider. It is a variable so that tests can substitute an in-memory
// filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
