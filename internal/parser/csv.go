package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/treelist/internal/outline"
)

// CSVParser reads flat level,label exports: one row per node, column one
// the integer level, column two the label. An optional header row is
// skipped. Levels are passed through untouched; ordering problems in the
// export surface later as a reconstruction error, not here.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*outline.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &outline.Document{
		Title: titleFromFilename(filename, ".csv"),
	}

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected level,label columns, got %d fields", i+1, len(rec))
		}
		level, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("row %d: invalid level %q", i+1, rec[0])
		}
		if level < 0 {
			return nil, fmt.Errorf("row %d: negative level %d", i+1, level)
		}
		doc.Nodes = append(doc.Nodes, &outline.Node{
			Label: strings.TrimSpace(rec[1]),
			Depth: level,
		})
	}

	return doc, nil
}
