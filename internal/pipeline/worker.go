package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/treelist/internal/outline"
	"github.com/dgallion1/treelist/internal/parser"
	"github.com/dgallion1/treelist/internal/render"
	"github.com/dgallion1/treelist/internal/treestore"
)

// Worker processes a single outline job.
type Worker struct {
	store *treestore.Client
	log   *slog.Logger
}

func NewWorker(store *treestore.Client, log *slog.Logger) *Worker {
	return &Worker{
		store: store,
		log:   log,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "outline_id", job.OutlineID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}
	job.ContentHash = ContentHashHex(job.FileData())

	// Assign stable identifiers before any links are derived.
	for _, n := range doc.Nodes {
		n.UID = NewID()
	}

	// Phase 2: Build
	job.SetStatus(StatusBuilding, "building")
	roots, err := doc.Roots(job.Filtered)
	if err != nil {
		log.Error("build failed", "error", err)
		job.AddError(fmt.Sprintf("build: %s", err))
		job.SetStatus(StatusFailed, "building")
		return
	}
	job.setResult(doc, roots)
	job.SetShape(len(doc.Nodes), len(roots), maxDepth(doc))
	log.Info("reconstructed outline", "nodes", len(doc.Nodes), "roots", len(roots))

	// Phase 3: Render
	job.SetStatus(StatusRendering, "rendering")
	text, err := render.Text(doc, render.TextOptions{Style: render.StyleIndent, Filtered: job.Filtered})
	if err != nil {
		// Roots already built above, so this cannot be an ordering
		// problem; record and continue without a rendering.
		log.Warn("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		text = ""
	}

	// Phase 4: Store (optional; skipped when no store is configured).
	if w.store == nil {
		job.SetStatus(StatusCompleted, "done")
		return
	}
	job.SetStatus(StatusStoring, "storing")
	req := treestore.TreeRequest{
		Title:        doc.Title,
		Roots:        outline.FromTree(roots),
		NodeCount:    len(doc.Nodes),
		RenderedText: text,
		Source:       job.Filename,
	}

	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.store.PutTree(ctx, job.OutlineID, req)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			lastErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		log.Error("store failed", "error", lastErr)
		job.AddError(fmt.Sprintf("store: %s", lastErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	job.MarkStored()
	job.SetStatus(StatusCompleted, "done")
	log.Info("outline stored", "nodes", len(doc.Nodes))
}

func maxDepth(doc *outline.Document) int {
	depth := 0
	for _, n := range doc.Nodes {
		if n.Depth > depth {
			depth = n.Depth
		}
	}
	return depth
}
