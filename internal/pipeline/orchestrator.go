package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/syllafetch/internal/config"
	"github.com/dgallion1/syllafetch/internal/summarize"
)

// Orchestrator queues syllabus fetch jobs and runs them on a small pool
// of workers. Each job is still one synchronous pipeline run.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	fetcher *Fetcher
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrchestrator(cfg config.Config, fetcher *Fetcher, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:    NewJobStore(cfg.JobTTL),
		queue:   make(chan *Job, cfg.MaxQueueSize),
		fetcher: fetcher,
		log:     log,
		cfg:     cfg,
	}
}

// Start launches worker goroutines and the job store cleanup loop.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(workerCtx, job)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the workers.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail(StatusFailed, "queue full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID, or nil.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// process runs one fetch and records the outcome on the job.
func (o *Orchestrator) process(ctx context.Context, job *Job) {
	log := o.log.With("job_id", job.ID, "exam", job.Exam)

	raw, err := o.fetcher.FetchSyllabus(ctx, job.Exam, job.Model, job)
	if err != nil {
		if errors.Is(err, ErrNoSyllabus) {
			log.Info("no syllabus found")
			job.Fail(StatusNoResults, NoSyllabusMessage)
			return
		}
		log.Error("fetch failed", "error", err)
		job.Fail(StatusFailed, err.Error())
		return
	}

	// Parsing the model output is an explicit, checked step: malformed
	// JSON fails the job with a visible parse error.
	syllabus, err := summarize.ParseSyllabus(raw)
	if err != nil {
		log.Error("model output unusable", "error", err)
		job.Fail(StatusFailed, err.Error())
		return
	}

	job.SetResult(syllabus)
	log.Info("syllabus ready", "subjects", len(syllabus.Subjects))
}
