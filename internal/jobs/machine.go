package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/notify"
)

// ErrIllegalTransition is returned when a requested status change is not a
// legal successor of the job's current status. The job is left unchanged.
var ErrIllegalTransition = errors.New("illegal job status transition")

// transitions is the static successor table. Terminal statuses have no
// successors and never appear as keys.
var transitions = map[constants.JobStatus][]constants.JobStatus{
	constants.JobStatusQueued: {
		constants.JobStatusProcessing,
	},
	constants.JobStatusProcessing: {
		constants.JobStatusSuccess,
		constants.JobStatusDuplicate,
		constants.JobStatusError,
		constants.JobStatusQuarantined,
	},
}

// CanTransition reports whether from → to is a legal edge.
func CanTransition(from, to constants.JobStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Predecessors returns the statuses from which `to` is reachable. The store
// uses this set as the compare half of its compare-and-set update.
func Predecessors(to constants.JobStatus) []constants.JobStatus {
	var from []constants.JobStatus
	for cur, nexts := range transitions {
		for _, next := range nexts {
			if next == to {
				from = append(from, cur)
			}
		}
	}
	return from
}

// CreateParams carries the intake-time job fields.
type CreateParams struct {
	OwnerID     string
	OwnerName   string
	FileName    string
	FileSize    int64
	Fingerprint string
	FilePath    string
}

// TransitionPayload carries the optional fields a transition may set.
type TransitionPayload struct {
	InvoiceID   *uuid.UUID
	ErrorDetail *string
}

// Store is the persistence the state machine needs. TransitionCAS must apply
// the update only while the job's current status is in `from`, atomically,
// and report ErrIllegalTransition otherwise.
type Store interface {
	Create(ctx context.Context, p CreateParams) (*entity.UploadJob, error)
	TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload TransitionPayload) (*entity.UploadJob, error)
	Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error)
	ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error)
	ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error)
}

// Machine owns the lifecycle of upload jobs from intake to a terminal
// status. All mutations go through Create and Transition so that every
// applied change is persisted and announced exactly once.
type Machine struct {
	store    Store
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewMachine(store Store, notifier notify.Notifier, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Machine{store: store, notifier: notifier, logger: logger}
}

// Create persists a new job in the queued status and announces it.
func (m *Machine) Create(ctx context.Context, p CreateParams) (*entity.UploadJob, error) {
	job, err := m.store.Create(ctx, p)
	if err != nil {
		m.logger.Error("upload_job create failed", "file_name", p.FileName, "owner_id", p.OwnerID, "err", err)
		return nil, err
	}
	m.logger.Info("upload_job created", "job_id", job.ID, "file_name", job.FileName, "owner_id", job.OwnerID)
	m.announce(job)
	return job, nil
}

// Transition moves a job to `next` if that is a legal successor of its
// current status. An illegal request is a programming error: it is logged
// and refused without touching the job.
func (m *Machine) Transition(ctx context.Context, jobID uuid.UUID, next constants.JobStatus, payload TransitionPayload) (*entity.UploadJob, error) {
	from := Predecessors(next)
	if len(from) == 0 {
		m.logger.Error("upload_job transition refused: status has no predecessors", "job_id", jobID, "next", next)
		return nil, ErrIllegalTransition
	}

	job, err := m.store.TransitionCAS(ctx, jobID, from, next, payload)
	if err != nil {
		if errors.Is(err, ErrIllegalTransition) {
			m.logger.Error("upload_job transition refused", "job_id", jobID, "next", next)
			return nil, ErrIllegalTransition
		}
		m.logger.Error("upload_job transition failed", "job_id", jobID, "next", next, "err", err)
		return nil, err
	}

	m.logger.Info("upload_job transitioned", "job_id", job.ID, "status", job.Status)
	m.announce(job)
	return job, nil
}

// Get returns one job.
func (m *Machine) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	return m.store.Get(ctx, jobID)
}

// ListRecent returns a page of the owner's jobs, newest first, with the
// total count for pagination.
func (m *Machine) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return m.store.ListRecent(ctx, ownerID, page, limit)
}

// FailStuck moves jobs that have sat in processing past the deadline to the
// error status. It backs the supervising timeout: an extraction that never
// reports is a failure, not "still processing" forever.
func (m *Machine) FailStuck(ctx context.Context, updatedBefore time.Time) int {
	stuck, err := m.store.ListStuck(ctx, constants.JobStatusProcessing, updatedBefore)
	if err != nil {
		m.logger.Error("stuck job scan failed", "err", err)
		return 0
	}
	recovered := 0
	for _, job := range stuck {
		detail := "extraction timed out while processing"
		if _, err := m.Transition(ctx, job.ID, constants.JobStatusError, TransitionPayload{ErrorDetail: &detail}); err == nil {
			recovered++
		}
	}
	if recovered > 0 {
		m.logger.Warn("recovered stuck jobs", "count", recovered)
	}
	return recovered
}

// ListStuckQueued returns queued jobs untouched since updatedBefore, so the
// supervisor can re-dispatch work that never reached the worker pool.
func (m *Machine) ListStuckQueued(ctx context.Context, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	return m.store.ListStuck(ctx, constants.JobStatusQueued, updatedBefore)
}

// announce pushes the job's current status to its owner. Delivery is
// best-effort and must never block a transition.
func (m *Machine) announce(job *entity.UploadJob) {
	data := notify.UploadEventData{
		JobID:    job.ID.String(),
		FileName: job.FileName,
		Status:   string(job.Status),
	}
	if job.InvoiceID != nil {
		data.InvoiceID = job.InvoiceID.String()
	}
	if job.ErrorDetail != nil {
		data.Error = *job.ErrorDetail
	}
	m.notifier.SendToUser(job.OwnerID, notify.Event{
		Type:      "upload:" + string(job.Status),
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}
