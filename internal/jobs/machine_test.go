package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/constants"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/notify"
)

type memStore struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*entity.UploadJob
	lastPage  int
	lastLimit int
}

func newMemStore() *memStore {
	return &memStore{jobs: map[uuid.UUID]*entity.UploadJob{}}
}

func (s *memStore) Create(ctx context.Context, p CreateParams) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := &entity.UploadJob{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		FileName:    p.FileName,
		FileSize:    p.FileSize,
		Fingerprint: p.Fingerprint,
		FilePath:    p.FilePath,
		Status:      constants.JobStatusQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.jobs[job.ID] = job
	return copyJob(job), nil
}

func (s *memStore) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload TransitionPayload) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	eligible := false
	for _, f := range from {
		if job.Status == f {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, ErrIllegalTransition
	}
	job.Status = to
	job.UpdatedAt = time.Now()
	if payload.InvoiceID != nil {
		job.InvoiceID = payload.InvoiceID
	}
	if payload.ErrorDetail != nil {
		job.ErrorDetail = payload.ErrorDetail
	}
	return copyJob(job), nil
}

func (s *memStore) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	return copyJob(job), nil
}

func (s *memStore) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPage, s.lastLimit = page, limit
	var out []*entity.UploadJob
	for _, job := range s.jobs {
		if job.OwnerID == ownerID {
			out = append(out, copyJob(job))
		}
	}
	return out, len(out), nil
}

func (s *memStore) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.UploadJob
	for _, job := range s.jobs {
		if job.Status == status && job.UpdatedAt.Before(updatedBefore) {
			out = append(out, copyJob(job))
		}
	}
	return out, nil
}

func copyJob(j *entity.UploadJob) *entity.UploadJob {
	c := *j
	return &c
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) SendToUser(userID string, evt notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
}

func (n *recordingNotifier) Broadcast(evt notify.Event) {}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	for i, e := range n.events {
		out[i] = e.Type
	}
	return out
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to constants.JobStatus
		ok       bool
	}{
		{constants.JobStatusQueued, constants.JobStatusProcessing, true},
		{constants.JobStatusProcessing, constants.JobStatusSuccess, true},
		{constants.JobStatusProcessing, constants.JobStatusDuplicate, true},
		{constants.JobStatusProcessing, constants.JobStatusError, true},
		{constants.JobStatusProcessing, constants.JobStatusQuarantined, true},
		{constants.JobStatusQueued, constants.JobStatusSuccess, false},
		{constants.JobStatusQueued, constants.JobStatusError, false},
		{constants.JobStatusSuccess, constants.JobStatusProcessing, false},
		{constants.JobStatusError, constants.JobStatusQueued, false},
		{constants.JobStatusDuplicate, constants.JobStatusError, false},
		{constants.JobStatusQuarantined, constants.JobStatusProcessing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPredecessors(t *testing.T) {
	assert.ElementsMatch(t, []constants.JobStatus{constants.JobStatusQueued}, Predecessors(constants.JobStatusProcessing))
	assert.ElementsMatch(t, []constants.JobStatus{constants.JobStatusProcessing}, Predecessors(constants.JobStatusSuccess))
	assert.Empty(t, Predecessors(constants.JobStatusQueued))
}

func TestLifecycleAnnouncesEveryStatus(t *testing.T) {
	store := newMemStore()
	notif := &recordingNotifier{}
	m := NewMachine(store, notif, nil)

	job, err := m.Create(context.Background(), CreateParams{
		OwnerID: "u1", FileName: "a.pdf", FileSize: 10, Fingerprint: "ff", FilePath: "/tmp/a",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusQueued, job.Status)

	_, err = m.Transition(context.Background(), job.ID, constants.JobStatusProcessing, TransitionPayload{})
	require.NoError(t, err)

	invID := uuid.New()
	done, err := m.Transition(context.Background(), job.ID, constants.JobStatusSuccess, TransitionPayload{InvoiceID: &invID})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusSuccess, done.Status)
	require.NotNil(t, done.InvoiceID)
	assert.Equal(t, invID, *done.InvoiceID)

	assert.Equal(t, []string{"upload:queued", "upload:processing", "upload:success"}, notif.types())
	last := notif.events[len(notif.events)-1].Data.(notify.UploadEventData)
	assert.Equal(t, invID.String(), last.InvoiceID)
}

func TestIllegalTransitionRefusedAndSilent(t *testing.T) {
	store := newMemStore()
	notif := &recordingNotifier{}
	m := NewMachine(store, notif, nil)

	job, err := m.Create(context.Background(), CreateParams{OwnerID: "u1", FileName: "a.pdf", Fingerprint: "ff"})
	require.NoError(t, err)

	// success is only reachable from processing
	_, err = m.Transition(context.Background(), job.ID, constants.JobStatusSuccess, TransitionPayload{})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusQueued, got.Status)
	assert.Equal(t, []string{"upload:queued"}, notif.types())
}

func TestTerminalStatusesAreFinal(t *testing.T) {
	store := newMemStore()
	m := NewMachine(store, nil, nil)

	job, err := m.Create(context.Background(), CreateParams{OwnerID: "u1", FileName: "a.pdf", Fingerprint: "ff"})
	require.NoError(t, err)
	_, err = m.Transition(context.Background(), job.ID, constants.JobStatusProcessing, TransitionPayload{})
	require.NoError(t, err)
	detail := "boom"
	_, err = m.Transition(context.Background(), job.ID, constants.JobStatusError, TransitionPayload{ErrorDetail: &detail})
	require.NoError(t, err)

	for _, next := range constants.JobStatuses {
		_, err = m.Transition(context.Background(), job.ID, constants.JobStatus(next), TransitionPayload{})
		assert.ErrorIs(t, err, ErrIllegalTransition, "error -> %s must be refused", next)
	}
}

func TestTransitionToQueuedHasNoPredecessors(t *testing.T) {
	m := NewMachine(newMemStore(), nil, nil)
	_, err := m.Transition(context.Background(), uuid.New(), constants.JobStatusQueued, TransitionPayload{})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestListRecentClampsPaging(t *testing.T) {
	store := newMemStore()
	m := NewMachine(store, nil, nil)

	_, _, err := m.ListRecent(context.Background(), "u1", -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lastPage)
	assert.Equal(t, 20, store.lastLimit)

	_, _, err = m.ListRecent(context.Background(), "u1", 2, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, store.lastPage)
	assert.Equal(t, 20, store.lastLimit)
}

func TestFailStuckMovesProcessingToError(t *testing.T) {
	store := newMemStore()
	notif := &recordingNotifier{}
	m := NewMachine(store, notif, nil)

	job, err := m.Create(context.Background(), CreateParams{OwnerID: "u1", FileName: "a.pdf", Fingerprint: "ff"})
	require.NoError(t, err)
	_, err = m.Transition(context.Background(), job.ID, constants.JobStatusProcessing, TransitionPayload{})
	require.NoError(t, err)

	recovered := m.FailStuck(context.Background(), time.Now().Add(time.Minute))
	assert.Equal(t, 1, recovered)

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusError, got.Status)
	require.NotNil(t, got.ErrorDetail)
	assert.Contains(t, *got.ErrorDetail, "timed out")
}
