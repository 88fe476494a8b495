package render

import (
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// Breadcrumbs returns, for every node in document order, its root-first
// ancestor chain plus the node itself, joined with sep.
func Breadcrumbs(doc *outline.Document, sep string) []string {
	if sep == "" {
		sep = " > "
	}
	out := make([]string, 0, len(doc.Nodes))
	for _, item := range doc.Annotate(true) {
		parts := append(append([]string{}, item.Frame.Ancestors...), item.Node.Label)
		out = append(out, strings.Join(parts, sep))
	}
	return out
}
