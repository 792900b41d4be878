package pipeline

import (
	"context"
	"log/slog"
	"time"

	"invoice-tracker/constants"
	"invoice-tracker/internal/async"
	"invoice-tracker/internal/jobs"
)

// Supervisor periodically re-dispatches queued jobs that never reached a
// worker (e.g. the queue was full or the process restarted) and fails jobs
// stuck in processing past the deadline.
type Supervisor struct {
	machine      *jobs.Machine
	queue        async.Queue
	interval     time.Duration
	processLimit time.Duration
	logger       *slog.Logger
}

func NewSupervisor(machine *jobs.Machine, queue async.Queue, interval, processLimit time.Duration, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &Supervisor{machine: machine, queue: queue, interval: interval, processLimit: processLimit, logger: logger}
}

// Run blocks until ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Supervisor) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.processLimit)

	s.machine.FailStuck(ctx, cutoff)

	// queued jobs older than the interval were accepted but never dispatched
	stale, err := s.machine.ListStuckQueued(ctx, time.Now().Add(-s.interval))
	if err != nil {
		s.logger.Error("queued job scan failed", "err", err)
		return
	}
	for _, job := range stale {
		j := async.Job{JobID: job.ID, FilePath: job.FilePath, OwnerID: job.OwnerID, SubmittedAt: job.CreatedAt}
		if err := s.queue.Enqueue(ctx, j); err != nil {
			s.logger.Warn("re-dispatch deferred", "job_id", job.ID, "err", err)
			return
		}
		s.logger.Info("re-dispatched queued job", "job_id", job.ID, "status", constants.JobStatusQueued)
	}
}
