package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/treelist/internal/flattree"
	"github.com/dgallion1/treelist/internal/outline"
	"github.com/dgallion1/treelist/internal/render"
)

// treeRequest is the body shared by the synchronous endpoints: a flat,
// depth-first list of rows plus per-endpoint options.
type treeRequest struct {
	Title string    `json:"title"`
	Nodes []treeRow `json:"nodes"`

	Filtered  bool   `json:"filtered,omitempty"`
	Ancestors bool   `json:"ancestors,omitempty"`
	Style     string `json:"style,omitempty"`
	Format    string `json:"format,omitempty"`
	Separator string `json:"separator,omitempty"`
}

type treeRow struct {
	UID   string `json:"uid,omitempty"`
	Label string `json:"label"`
	Level int    `json:"level"`
}

func decodeTreeRequest(w http.ResponseWriter, r *http.Request) (*treeRequest, *outline.Document, bool) {
	var req treeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	if len(req.Nodes) == 0 {
		jsonError(w, "nodes is required", http.StatusBadRequest)
		return nil, nil, false
	}

	doc := &outline.Document{Title: req.Title}
	for _, row := range req.Nodes {
		if row.Level < 0 {
			jsonError(w, "node levels must be non-negative", http.StatusBadRequest)
			return nil, nil, false
		}
		doc.Nodes = append(doc.Nodes, &outline.Node{
			UID:   row.UID,
			Label: row.Label,
			Depth: row.Level,
		})
	}
	return &req, doc, true
}

// orderError maps a depth-first ordering violation to 422, anything
// else to 500.
func orderError(w http.ResponseWriter, err error) {
	var oe *flattree.OrderError
	if errors.As(err, &oe) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error": oe.Error(),
			"index": oe.Index,
		})
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) handleReconstruct(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := decodeTreeRequest(w, r)
	if !ok {
		return
	}

	roots, err := doc.Roots(req.Filtered)
	if err != nil {
		orderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":      doc.Title,
		"roots":      outline.FromTree(roots),
		"node_count": len(doc.Nodes),
		"root_count": len(roots),
	})
}

type annotatedRow struct {
	UID          string   `json:"uid,omitempty"`
	Label        string   `json:"label"`
	Level        int      `json:"level"`
	NewLevel     bool     `json:"new_level"`
	ClosedLevels []int    `json:"closed_levels"`
	Ancestors    []string `json:"ancestors,omitempty"`
}

func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := decodeTreeRequest(w, r)
	if !ok {
		return
	}

	items := doc.Annotate(req.Ancestors)
	rows := make([]annotatedRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, annotatedRow{
			UID:          item.Node.UID,
			Label:        item.Node.Label,
			Level:        item.Node.Depth,
			NewLevel:     item.Frame.NewLevel,
			ClosedLevels: item.Frame.ClosedLevels,
			Ancestors:    item.Frame.Ancestors,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title": doc.Title,
		"items": rows,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := decodeTreeRequest(w, r)
	if !ok {
		return
	}

	format := req.Format
	if format == "" {
		format = "text"
	}

	w.Header().Set("Content-Type", "application/json")
	switch format {
	case "text":
		style := render.StyleIndent
		if req.Style != "" {
			var err error
			style, err = render.ParseStyle(req.Style)
			if err != nil {
				jsonError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		text, err := render.Text(doc, render.TextOptions{Style: style, Filtered: req.Filtered})
		if err != nil {
			orderError(w, err)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"format": "text", "rendered": text})
	case "html":
		json.NewEncoder(w).Encode(map[string]any{"format": "html", "rendered": render.HTML(doc)})
	case "breadcrumbs":
		trails := render.Breadcrumbs(doc, req.Separator)
		json.NewEncoder(w).Encode(map[string]any{"format": "breadcrumbs", "trails": trails})
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}
