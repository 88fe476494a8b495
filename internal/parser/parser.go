// Package parser converts source files into flat, depth-first-ordered
// outlines. Every importer emits nodes in the order it walks its input,
// so its output is depth-first by construction.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// Parser converts raw file bytes into a flat outline Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
	".csv":      true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// levelTracker maps raw heading levels (1-6, possibly with skips) onto
// contiguous outline depths, so a jump from h1 straight to h3 still
// produces a one-step-deeper node.
type levelTracker struct {
	raw []int
}

func (t *levelTracker) depth(raw int) int {
	for len(t.raw) > 0 && t.raw[len(t.raw)-1] >= raw {
		t.raw = t.raw[:len(t.raw)-1]
	}
	t.raw = append(t.raw, raw)
	return len(t.raw) - 1
}

// current returns the depth of the most recent heading, or -1 before the
// first one. List items nest one level below it.
func (t *levelTracker) current() int {
	return len(t.raw) - 1
}

func titleFromFilename(filename string, exts ...string) string {
	for _, ext := range exts {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename
}
