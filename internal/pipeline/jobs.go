package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/treelist/internal/outline"
)

// JobStatus represents the state of an outline ingestion job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusBuilding  JobStatus = "building"
	StatusRendering JobStatus = "rendering"
	StatusStoring   JobStatus = "storing"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single outline ingestion.
type Job struct {
	mu sync.Mutex

	ID        string `json:"job_id"`
	OutlineID string `json:"outline_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Filtered bool      `json:"filtered"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	doc      *outline.Document
	roots    []*outline.Node
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalNodes int      `json:"total_nodes"`
	RootCount  int      `json:"root_count"`
	MaxDepth   int      `json:"max_depth"`
	Stored     bool     `json:"stored"`
	Errors     []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetShape records the reconstructed tree's dimensions.
func (j *Job) SetShape(totalNodes, rootCount, maxDepth int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalNodes = totalNodes
	j.Progress.RootCount = rootCount
	j.Progress.MaxDepth = maxDepth
	j.UpdatedAt = time.Now()
}

// MarkStored records successful delivery to the tree store.
func (j *Job) MarkStored() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Stored = true
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// Result returns the reconstructed document and roots, or nil before
// the building phase completed.
func (j *Job) Result() (*outline.Document, []*outline.Node) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.doc, j.roots
}

func (j *Job) setResult(doc *outline.Document, roots []*outline.Node) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.doc = doc
	j.roots = roots
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	OutlineID string    `json:"outline_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Filename  string    `json:"filename"`
	Title     string    `json:"title"`
	Filtered  bool      `json:"filtered"`
	Progress  Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:        j.ID,
		OutlineID: j.OutlineID,
		Status:    j.Status,
		Phase:     j.Phase,
		Filename:  j.Filename,
		Title:     j.Title,
		Filtered:  j.Filtered,
		Progress: Progress{
			TotalNodes: j.Progress.TotalNodes,
			RootCount:  j.Progress.RootCount,
			MaxDepth:   j.Progress.MaxDepth,
			Stored:     j.Progress.Stored,
			Errors:     errs,
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
