package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit handed to the worker pool.
type Job struct {
	JobID       uuid.UUID
	FilePath    string
	OwnerID     string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// ErrQueueFull is returned when the bounded queue cannot accept more work.
var ErrQueueFull = errors.New("processing queue is full")

// Processor consumes one job. The context carries the per-job deadline.
type Processor interface {
	ProcessJob(ctx context.Context, job Job) error
}

type options struct {
	workers        int
	queueSize      int
	processTimeout time.Duration
}

type Option func(*options)

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.processTimeout = d
		}
	}
}

// ProcessorQueue is a bounded in-process queue with a fixed worker pool.
// Each job runs under its own timeout so an unresponsive extraction cannot
// occupy a worker forever.
type ProcessorQueue struct {
	processor Processor
	logger    *slog.Logger
	opts      options

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(p Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	o := options{workers: 4, queueSize: 256, processTimeout: 3 * time.Minute}
	for _, fn := range opts {
		fn(&o)
	}
	q := &ProcessorQueue{
		processor: p,
		logger:    logger,
		opts:      o,
		jobs:      make(chan Job, o.queueSize),
	}
	for i := 0; i < o.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue accepts a job without blocking on processing. A full queue is an
// immediate error so intake can surface it instead of hanging.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// the send must happen under the same lock that guards closed, or a
	// concurrent Shutdown could close the channel between check and send
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("queue is shut down")
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *ProcessorQueue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.opts.processTimeout)
		start := time.Now()
		if err := q.processor.ProcessJob(ctx, job); err != nil {
			q.logger.Error("job processing failed", "job_id", job.JobID, "elapsed", time.Since(start), "err", err)
		} else {
			q.logger.Info("job processed", "job_id", job.JobID, "elapsed", time.Since(start))
		}
		cancel()
	}
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs in flight")
	}
}
