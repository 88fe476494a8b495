package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, "")
	if err := p.Print(map[string]any{"title": "Notes", "node_count": 3}); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"title": "Notes"`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML, "")
	if err := p.Print(map[string]any{"title": "Notes"}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "title: Notes") {
		t.Errorf("unexpected YAML output: %q", buf.String())
	}
}

func TestPrinter_Query(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, ".roots[].label")
	data := map[string]any{
		"roots": []map[string]any{
			{"label": "A"},
			{"label": "B"},
		},
	}
	if err := p.Print(data); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "\"A\"\n\"B\"\n" {
		t.Errorf("unexpected query output: %q", buf.String())
	}
}

func TestPrinter_InvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, ".[(")
	if err := p.Print(map[string]any{"a": 1}); err == nil {
		t.Fatal("expected error for invalid query")
	}
}

func TestPrinter_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON, "")
	if err := p.Print(nil); err != nil {
		t.Fatalf("print nil: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for nil, got %q", buf.String())
	}
}
