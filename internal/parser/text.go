package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// TextParser reads indentation-based outlines from plain text: one node
// per non-blank line, one level per leading tab or per two leading
// spaces. Leading "-" and "*" bullets are stripped.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*outline.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &outline.Document{
		Title: titleFromFilename(filename, ".txt"),
	}

	prevDepth := -1
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := indentDepth(line)
		// A deeper line with no parent at the level above nests under
		// the previous node.
		if depth > prevDepth+1 {
			depth = prevDepth + 1
		}
		doc.Nodes = append(doc.Nodes, &outline.Node{
			Label: stripBullet(strings.TrimSpace(line)),
			Depth: depth,
		})
		prevDepth = depth
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}

// indentDepth counts leading tabs, or pairs of spaces when the line is
// space-indented.
func indentDepth(line string) int {
	tabs := 0
	for tabs < len(line) && line[tabs] == '\t' {
		tabs++
	}
	if tabs > 0 {
		return tabs
	}
	spaces := 0
	for spaces < len(line) && line[spaces] == ' ' {
		spaces++
	}
	return spaces / 2
}

func stripBullet(s string) string {
	for _, prefix := range []string{"- ", "* "} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(s, prefix))
		}
	}
	return s
}
