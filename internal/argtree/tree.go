// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argtree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/optfile"
	"github.com/matt-FFFFFF/optfile/internal/shelltok"
)

// Node is one element of an expansion tree. A plain argument is a leaf. An
// option file reference carries its expansion as children, in output order.
type Node struct {
	// Value is the argument text as it appeared, including any @ prefix.
	Value string
	// Children holds the expansion of an option file node.
	Children []*Node
	// Err records why this node could not be expanded.
	Err error
	// IsFile reports whether the node is an option file reference.
	IsFile bool
}

// HasErrors reports whether the node or any of its descendants failed to
// expand.
func (n *Node) HasErrors() bool {
	if n.Err != nil {
		return true
	}

	for _, c := range n.Children {
		if c.HasErrors() {
			return true
		}
	}

	return false
}

// Args returns the fully expanded argument list represented by the tree,
// skipping nodes that failed to expand.
func (n *Node) Args() []string {
	return appendArgs(n, make([]string, 0, len(n.Children)))
}

func appendArgs(n *Node, out []string) []string {
	for _, c := range n.Children {
		switch {
		case c.Err != nil:
		case c.IsFile:
			out = appendArgs(c, out)
		default:
			out = append(out, c.Value)
		}
	}

	return out
}

// Builder builds expansion trees from argument lists.
type Builder struct {
	provider optfile.Provider
	tokenize optfile.Tokenizer
}

// NewBuilder creates a Builder that opens option files through p and
// tokenizes lines with shell quoting rules.
func NewBuilder(p optfile.Provider) *Builder {
	return &Builder{
		provider: p,
		tokenize: shelltok.Split,
	}
}

// Build returns the expansion tree for args. Failures never abort the build;
// they are recorded on the node where they occurred.
func (b *Builder) Build(label string, args []string) *Node {
	root := &Node{Value: label}

	for _, arg := range args {
		root.Children = append(root.Children, b.node(arg, nil))
	}

	return root
}

// node expands a single argument into a tree node. path is the chain of
// option file names currently being expanded, used to flag cycles.
func (b *Builder) node(arg string, path []string) *Node {
	if !strings.HasPrefix(arg, optfile.Prefix) {
		return &Node{Value: arg}
	}

	n := &Node{Value: arg, IsFile: true}
	name := strings.TrimPrefix(arg, optfile.Prefix)

	if slices.Contains(path, name) {
		chain := append(slices.Clone(path), name)
		n.Err = fmt.Errorf("%w: %s", optfile.ErrCyclicReference, strings.Join(chain, " -> "))

		return n
	}

	f, err := b.provider.Open(name)
	if err != nil {
		n.Err = fmt.Errorf("%w %q: %w", optfile.ErrReadOptionFile, name, err)
		return n
	}

	defer f.Close() //nolint:errcheck

	lines, err := optfile.ReadLines(f)
	if err != nil {
		n.Err = fmt.Errorf("%w %q: %w", optfile.ErrReadOptionFile, name, err)
		return n
	}

	childPath := append(slices.Clone(path), name)

	for i, line := range lines {
		tokens, err := b.tokenize(line)
		if err != nil {
			n.Children = append(n.Children, &Node{
				Value: fmt.Sprintf("line %d", i+1),
				Err:   fmt.Errorf("%w: %w", optfile.ErrTokenizeOptionFile, err),
			})

			continue
		}

		for _, token := range tokens {
			n.Children = append(n.Children, b.node(token, childPath))
		}
	}

	return n
}
