package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/syllafetch/internal/summarize"
)

// JobStatus represents the state of a syllabus fetch job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusSearching   JobStatus = "searching"
	StatusCrawling    JobStatus = "crawling"
	StatusSummarizing JobStatus = "summarizing"
	StatusCompleted   JobStatus = "completed"
	StatusNoResults   JobStatus = "no_results"
	StatusFailed      JobStatus = "failed"
)

// Terminal reports whether no further transitions happen from s.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusNoResults || s == StatusFailed
}

// Job tracks the state of a single syllabus fetch. It implements
// ProgressSink so pipeline stage notifications land in its log in order.
type Job struct {
	mu sync.Mutex

	ID   string
	Exam string

	// Model optionally overrides the summarizer's default. Set before
	// Submit, read-only afterwards.
	Model string

	status   JobStatus
	progress []string
	errMsg   string
	result   *summarize.Syllabus

	CreatedAt time.Time
	updatedAt time.Time
}

func NewJob(exam string) *Job {
	now := time.Now()
	return &Job{
		ID:        newJobID(exam, now),
		Exam:      exam,
		status:    StatusQueued,
		CreatedAt: now,
		updatedAt: now,
	}
}

// Progress implements ProgressSink: records the stage and appends the
// message to the job's progress log.
func (j *Job) Progress(stage JobStatus, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = stage
	j.progress = append(j.progress, message)
	j.updatedAt = time.Now()
}

// SetResult marks the job completed with its structured syllabus.
func (j *Job) SetResult(s *summarize.Syllabus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = s
	j.status = StatusCompleted
	j.updatedAt = time.Now()
}

// Fail marks the job terminally failed with a user-visible message.
func (j *Job) Fail(status JobStatus, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = status
	j.errMsg = msg
	j.updatedAt = time.Now()
}

// Result returns the structured syllabus, or nil before completion.
func (j *Job) Result() *summarize.Syllabus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// Status returns the current job status.
func (j *Job) Status() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string              `json:"job_id"`
	Exam     string              `json:"exam"`
	Model    string              `json:"model,omitempty"`
	Status   JobStatus           `json:"status"`
	Progress []string            `json:"progress"`
	Error    string              `json:"error,omitempty"`
	Syllabus *summarize.Syllabus `json:"syllabus,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	progress := make([]string, len(j.progress))
	copy(progress, j.progress)
	return JobSnapshot{
		ID:       j.ID,
		Exam:     j.Exam,
		Model:    j.Model,
		Status:   j.status,
		Progress: progress,
		Error:    j.errMsg,
		Syllabus: j.result,
	}
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

// Cleanup removes jobs not updated within the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		stale := now.Sub(job.updatedAt) > s.ttl
		job.mu.Unlock()
		if stale {
			delete(s.jobs, id)
		}
	}
}

func newJobID(exam string, now time.Time) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s-%d", exam, now.UnixNano()))
	return fmt.Sprintf("%x", h[:])[:20]
}
