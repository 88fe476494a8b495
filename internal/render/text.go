// Package render turns reconstructed or annotated outlines into
// human-readable and markup output. Renderers are driven by the
// reconstruction core; they never re-derive structure from levels.
package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// Style selects how nesting is drawn in text output.
type Style string

const (
	// StyleIndent indents children by IndentWidth spaces per level.
	StyleIndent Style = "indent"
	// StyleDashes repeats "- " once per level before the label.
	StyleDashes Style = "dashes"
	// StyleLines draws box-drawing connector lines.
	StyleLines Style = "lines"
)

// TextOptions configures Text rendering.
type TextOptions struct {
	Style       Style
	IndentWidth int  // Spaces per level for StyleIndent, default 2.
	Filtered    bool // The outline is a filtered subset; gaps are tolerated.
}

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleIndent, "":
		return StyleIndent, nil
	case StyleDashes:
		return StyleDashes, nil
	case StyleLines:
		return StyleLines, nil
	default:
		return "", fmt.Errorf("unknown style %q (expected indent|dashes|lines)", s)
	}
}

// Text renders a flat outline as nested text, one node per line.
func Text(doc *outline.Document, opts TextOptions) (string, error) {
	indent := opts.IndentWidth
	if indent <= 0 {
		indent = 2
	}

	if opts.Style == StyleLines {
		return connectorLines(doc, opts.Filtered)
	}

	// In a filtered outline a node shallower than the first may appear
	// later, so indent relative to the shallowest depth, not the first.
	base := 0
	if len(doc.Nodes) > 0 {
		base = doc.Nodes[0].Depth
		for _, n := range doc.Nodes {
			if n.Depth < base {
				base = n.Depth
			}
		}
	}

	var buf strings.Builder
	for _, item := range doc.Annotate(false) {
		level := item.Node.Depth - base
		switch opts.Style {
		case StyleDashes:
			buf.WriteString(strings.Repeat("- ", level))
		default:
			buf.WriteString(strings.Repeat(" ", level*indent))
		}
		buf.WriteString(item.Node.Label)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// connectorLines reconstructs the tree and draws it with box-drawing
// characters, last siblings closed with a corner.
func connectorLines(doc *outline.Document, filtered bool) (string, error) {
	roots, err := doc.Roots(filtered)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(n *outline.Node, prefix string, last bool, top bool)
	walk = func(n *outline.Node, prefix string, last, top bool) {
		if top {
			buf.WriteString(n.Label)
		} else {
			buf.WriteString(prefix)
			if last {
				buf.WriteString("└── ")
			} else {
				buf.WriteString("├── ")
			}
			buf.WriteString(n.Label)
		}
		buf.WriteString("\n")

		childPrefix := prefix
		if !top {
			if last {
				childPrefix += "    "
			} else {
				childPrefix += "│   "
			}
		}
		for i, c := range n.Children {
			walk(c, childPrefix, i == len(n.Children)-1, false)
		}
	}
	for _, r := range roots {
		walk(r, "", false, true)
	}
	return buf.String(), nil
}
