package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts the outline of a Markdown file using goldmark:
// headings become nodes, list items nest below the heading they follow.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*outline.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &outline.Document{
		Title: titleFromFilename(filename, ".md", ".markdown"),
	}

	var tracker levelTracker
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			doc.Nodes = append(doc.Nodes, &outline.Node{
				Label: string(node.Text(src)),
				Depth: tracker.depth(node.Level),
			})
		case *ast.List:
			p.walkList(node, tracker.current()+1, src, doc)
		}
	}

	return doc, nil
}

// walkList emits one node per list item at the given depth, recursing
// into nested lists one level deeper.
func (p *MarkdownParser) walkList(list *ast.List, depth int, src []byte, doc *outline.Document) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		doc.Nodes = append(doc.Nodes, &outline.Node{
			Label: listItemText(item, src),
			Depth: depth,
		})
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				p.walkList(sub, depth+1, src, doc)
			}
		}
	}
}

// listItemText returns the text of a list item's own line, excluding any
// nested lists.
func listItemText(item ast.Node, src []byte) string {
	var buf strings.Builder
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.List); ok {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.Write(c.Text(src))
	}
	return strings.TrimSpace(buf.String())
}
