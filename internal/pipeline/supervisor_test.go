package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/constants"
	"invoice-tracker/internal/async"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/jobs"
)

// sweepJobStore keeps real UpdatedAt bookkeeping so ListStuck filters work.
type sweepJobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.UploadJob
}

func newSweepJobStore() *sweepJobStore {
	return &sweepJobStore{jobs: map[uuid.UUID]*entity.UploadJob{}}
}

func (s *sweepJobStore) seed(status constants.JobStatus, updatedAt time.Time) *entity.UploadJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := &entity.UploadJob{
		ID:        uuid.New(),
		OwnerID:   "u1",
		FileName:  "doc.pdf",
		FilePath:  "/tmp/doc.pdf",
		Status:    status,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	s.jobs[job.ID] = job
	return job
}

func (s *sweepJobStore) Create(ctx context.Context, p jobs.CreateParams) (*entity.UploadJob, error) {
	return s.seed(constants.JobStatusQueued, time.Now()), nil
}

func (s *sweepJobStore) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload jobs.TransitionPayload) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	for _, f := range from {
		if job.Status == f {
			job.Status = to
			job.UpdatedAt = time.Now()
			if payload.ErrorDetail != nil {
				job.ErrorDetail = payload.ErrorDetail
			}
			cp := *job
			return &cp, nil
		}
	}
	return nil, jobs.ErrIllegalTransition
}

func (s *sweepJobStore) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	cp := *job
	return &cp, nil
}

func (s *sweepJobStore) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	return nil, 0, nil
}

func (s *sweepJobStore) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.UploadJob
	for _, job := range s.jobs {
		if job.Status == status && job.UpdatedAt.Before(updatedBefore) {
			cp := *job
			out = append(out, &cp)
		}
	}
	return out, nil
}

type recordingQueue struct {
	mu       sync.Mutex
	enqueued []async.Job
	err      error
}

func (q *recordingQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func (q *recordingQueue) Shutdown(ctx context.Context) {}

func TestSupervisorSweepRedispatchesStaleQueued(t *testing.T) {
	store := newSweepJobStore()
	stale := store.seed(constants.JobStatusQueued, time.Now().Add(-10*time.Minute))
	store.seed(constants.JobStatusQueued, time.Now()) // fresh, must be left alone

	machine := jobs.NewMachine(store, nil, nil)
	queue := &recordingQueue{}
	sup := NewSupervisor(machine, queue, time.Minute, 5*time.Minute, nil)
	sup.sweep(context.Background())

	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, stale.ID, queue.enqueued[0].JobID)
	assert.Equal(t, stale.FilePath, queue.enqueued[0].FilePath)
}

func TestSupervisorSweepFailsStuckProcessing(t *testing.T) {
	store := newSweepJobStore()
	stuck := store.seed(constants.JobStatusProcessing, time.Now().Add(-time.Hour))

	machine := jobs.NewMachine(store, nil, nil)
	sup := NewSupervisor(machine, &recordingQueue{}, time.Minute, 5*time.Minute, nil)
	sup.sweep(context.Background())

	got, err := store.Get(context.Background(), stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusError, got.Status)
	require.NotNil(t, got.ErrorDetail)
	assert.Contains(t, *got.ErrorDetail, "timed out")
}

func TestSupervisorSweepToleratesFullQueue(t *testing.T) {
	store := newSweepJobStore()
	store.seed(constants.JobStatusQueued, time.Now().Add(-10*time.Minute))

	machine := jobs.NewMachine(store, nil, nil)
	queue := &recordingQueue{err: async.ErrQueueFull}
	sup := NewSupervisor(machine, queue, time.Minute, 5*time.Minute, nil)
	sup.sweep(context.Background())

	// job stays queued for the next sweep
	stale, err := machine.ListStuckQueued(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, stale, 1)
}
