// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argtree

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles used to render an expansion tree.
type Styles struct {
	Root    lipgloss.Style
	File    lipgloss.Style
	Arg     lipgloss.Style
	Failed  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles creates the default styling for tree rendering.
func NewStyles() *Styles {
	return &Styles{
		Root: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		Arg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
	}
}

// WriteText writes the tree rooted at n to the provided writer, one node per
// line, with two spaces of indentation per level. Nodes that failed to expand
// are marked and followed by their error message.
func WriteText(w io.Writer, n *Node, styles *Styles) error {
	if styles == nil {
		styles = NewStyles()
	}

	if _, err := fmt.Fprintf(w, "%s\n", styles.Root.Render(n.Value)); err != nil {
		return err //nolint:wrapcheck
	}

	return writeNodesWithIndent(w, n.Children, "  ", styles)
}

func writeNodesWithIndent(w io.Writer, nodes []*Node, indent string, styles *Styles) error {
	for _, n := range nodes {
		var statusStr, label string

		switch {
		case n.Err != nil:
			statusStr = styles.Failed.Render("✗")
			label = styles.Failed.Render(n.Value)
		case n.IsFile:
			statusStr = styles.Success.Render("✓")
			label = styles.File.Render(n.Value)
		default:
			statusStr = " "
			label = styles.Arg.Render(n.Value)
		}

		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, statusStr, label); err != nil {
			return err //nolint:wrapcheck
		}

		if n.Err != nil {
			if _, err := fmt.Fprintf(w, "%s  %s\n", indent, styles.Error.Render("➜ "+n.Err.Error())); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if len(n.Children) > 0 {
			if err := writeNodesWithIndent(w, n.Children, indent+"  ", styles); err != nil {
				return err
			}
		}
	}

	return nil
}
