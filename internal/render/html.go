package render

import (
	"html"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// HTML renders a flat outline as nested <ul>/<li> markup in a single
// linear pass over the annotator's frames: a new level opens a list, and
// each closed level closes one.
func HTML(doc *outline.Document) string {
	var buf strings.Builder
	for _, item := range doc.Annotate(false) {
		if item.Frame.NewLevel {
			buf.WriteString("<ul><li>")
		} else {
			buf.WriteString("</li><li>")
		}
		buf.WriteString(html.EscapeString(item.Node.Label))
		for range item.Frame.ClosedLevels {
			buf.WriteString("</li></ul>")
		}
	}
	return buf.String()
}
