package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/treelist/internal/flattree"
)

func TestCSVParser_LevelLabelRows(t *testing.T) {
	input := "level,label\n0,Books\n1,Sci-fi\n2,Dystopian Futures\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "export.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "export" {
		t.Errorf("expected title %q, got %q", "export", doc.Title)
	}
	wantLabels := []string{"Books", "Sci-fi", "Dystopian Futures"}
	wantDepths := []int{0, 1, 2}
	if len(doc.Nodes) != len(wantLabels) {
		t.Fatalf("expected %d nodes, got %d", len(wantLabels), len(doc.Nodes))
	}
	for i := range wantLabels {
		if doc.Nodes[i].Label != wantLabels[i] || doc.Nodes[i].Depth != wantDepths[i] {
			t.Errorf("node %d: expected (%q, %d), got (%q, %d)",
				i, wantLabels[i], wantDepths[i], doc.Nodes[i].Label, doc.Nodes[i].Depth)
		}
	}
}

func TestCSVParser_NoHeader(t *testing.T) {
	input := "0,root\n1,child\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc.Nodes))
	}
}

func TestCSVParser_BadLevel(t *testing.T) {
	input := "0,root\nx,child\n"
	p := &CSVParser{}
	if _, err := p.Parse(strings.NewReader(input), "bad.csv"); err == nil {
		t.Fatal("expected error for non-integer level past the header row")
	}
}

func TestCSVParser_NegativeLevel(t *testing.T) {
	input := "0,root\n-1,child\n"
	p := &CSVParser{}
	if _, err := p.Parse(strings.NewReader(input), "neg.csv"); err == nil {
		t.Fatal("expected error for negative level")
	}
}

func TestCSVParser_OutOfOrderExportSurfacesAtReconstruction(t *testing.T) {
	// Levels are passed through untouched, so a bad export is caught by
	// the reconstruction pass, not the importer.
	input := "0,a\n1,b\n0,c\n2,d\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "bad-order.csv")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := doc.Roots(false); !errors.Is(err, flattree.ErrNotDepthFirst) {
		t.Fatalf("expected ErrNotDepthFirst, got %v", err)
	}
}
