package parser

import (
	"strings"
	"testing"
)

func TestTextParser_TabIndentedOutline(t *testing.T) {
	input := "Projects\n\tHome\n\t\tPaint fence\n\tWork\nArchive\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}

	wantLabels := []string{"Projects", "Home", "Paint fence", "Work", "Archive"}
	wantDepths := []int{0, 1, 2, 1, 0}
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

func TestTextParser_SpaceIndentedWithBullets(t *testing.T) {
	input := "- root\n  - child\n    - grandchild\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "bullets.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []string{"root", "child", "grandchild"}
	wantDepths := []int{0, 1, 2}
	for i := range wantLabels {
		if doc.Nodes[i].Label != wantLabels[i] || doc.Nodes[i].Depth != wantDepths[i] {
			t.Errorf("node %d: expected (%q, %d), got (%q, %d)",
				i, wantLabels[i], wantDepths[i], doc.Nodes[i].Label, doc.Nodes[i].Depth)
		}
	}
}

func TestTextParser_OverIndentClampedToOneStep(t *testing.T) {
	// Jumping four spaces deep under a level-0 line still nests one step.
	input := "top\n        too deep\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "deep.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Nodes[1].Depth != 1 {
		t.Errorf("expected clamped depth 1, got %d", doc.Nodes[1].Depth)
	}
	if _, err := doc.Roots(false); err != nil {
		t.Errorf("clamped outline should reconstruct cleanly: %v", err)
	}
}

func TestTextParser_BlankLinesIgnored(t *testing.T) {
	input := "a\n\n\nb\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "blank.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc.Nodes))
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Nodes) != 0 {
		t.Errorf("expected 0 nodes for empty input, got %d", len(doc.Nodes))
	}
}
