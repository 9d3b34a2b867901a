package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is one unit of grading work: a single submission.
type Job struct {
	SubmissionID uuid.UUID
}

// Processor runs the full grading pass for one submission.
type Processor interface {
	ProcessSubmission(ctx context.Context, submissionID uuid.UUID) error
}

// GradingQueue is an in-process FIFO queue feeding one or more grading
// workers. A worker finishes a submission completely before pulling the
// next one, and a submission already queued or in flight is not enqueued
// a second time.
type GradingQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu guards closed and every send on ch, so Shutdown can never close
	// the channel underneath a producer waiting out backpressure.
	mu     sync.Mutex
	closed bool

	fmu      sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

type Option func(*GradingQueue)

func WithWorkers(n int) Option {
	return func(q *GradingQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *GradingQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *GradingQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewGradingQueue(proc Processor, logger *slog.Logger, opts ...Option) *GradingQueue {
	q := &GradingQueue{
		proc:     proc,
		logger:   logger,
		workers:  1,
		timeout:  3 * time.Minute,
		ch:       make(chan Job, 256),
		inFlight: make(map[uuid.UUID]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *GradingQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.ProcessSubmission(ctx, job.SubmissionID)
					cancel()

					q.forget(job.SubmissionID)

					if err != nil {
						q.logger.Error("grading failed", "worker_id", workerID, "submission_id", job.SubmissionID, "error", err)
					} else {
						q.logger.Info("graded submission", "worker_id", workerID, "submission_id", job.SubmissionID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue adds a submission to the tail of the queue. A submission that is
// already queued or being graded is skipped.
func (q *GradingQueue) Enqueue(_ context.Context, job Job) error {
	q.fmu.Lock()
	if _, dup := q.inFlight[job.SubmissionID]; dup {
		q.fmu.Unlock()
		q.logger.Info("submission already queued, skipping", "submission_id", job.SubmissionID)
		return nil
	}
	q.inFlight[job.SubmissionID] = struct{}{}
	q.fmu.Unlock()

	// The send stays under mu even when it blocks. Workers drain the
	// channel without touching mu, so a parked producer still completes,
	// and Shutdown waits its turn before closing.
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.forget(job.SubmissionID)
		q.logger.Warn("cannot enqueue: queue is shutting down", "submission_id", job.SubmissionID)
		return nil
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "submission_id", job.SubmissionID)
		q.ch <- job
	}
	q.mu.Unlock()

	q.logger.Info("queued submission for grading", "submission_id", job.SubmissionID)
	return nil
}

func (q *GradingQueue) forget(id uuid.UUID) {
	q.fmu.Lock()
	delete(q.inFlight, id)
	q.fmu.Unlock()
}

// Pending reports how many submissions are queued or in flight.
func (q *GradingQueue) Pending() int {
	q.fmu.Lock()
	defer q.fmu.Unlock()
	return len(q.inFlight)
}

func (q *GradingQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
