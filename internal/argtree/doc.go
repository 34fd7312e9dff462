// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package argtree builds and renders a tree describing how an argument list
// expands. Unlike the expander, the builder keeps going after a failure and
// records the error on the offending node, so that a user sees every problem
// in context rather than just the first one.
package argtree
