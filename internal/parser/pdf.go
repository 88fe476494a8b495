package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser extracts the outline of a PDF from its document outline
// (bookmark) tree, flattened depth-first.
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) (*outline.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "treelist-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &outline.Document{
		Title: titleFromFilename(filename, ".pdf"),
	}

	top := reader.Outline()
	for _, child := range top.Child {
		walkOutline(child, 0, doc)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("pdf %s has no document outline", filename)
	}

	return doc, nil
}

func walkOutline(o pdflib.Outline, depth int, doc *outline.Document) {
	title := strings.TrimSpace(o.Title)
	if title == "" {
		title = "(untitled)"
	}
	doc.Nodes = append(doc.Nodes, &outline.Node{
		Label: title,
		Depth: depth,
	})
	for _, child := range o.Child {
		walkOutline(child, depth+1, doc)
	}
}
