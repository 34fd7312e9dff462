// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package providers contains the option file providers used by the CLI: a
// local filesystem provider with a substitutable afero backend, and a remote
// provider built on Hashicorp's go-getter.
package providers
