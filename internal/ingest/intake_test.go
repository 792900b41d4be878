package ingest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
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

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

type stubJobStore struct {
	created []jobs.CreateParams
	failOn  bool
}

func (s *stubJobStore) Create(ctx context.Context, p jobs.CreateParams) (*entity.UploadJob, error) {
	if s.failOn {
		return nil, common.WrapError(common.ErrDatabase, "creating upload job")
	}
	s.created = append(s.created, p)
	return &entity.UploadJob{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		FileName:    p.FileName,
		FileSize:    p.FileSize,
		Fingerprint: p.Fingerprint,
		FilePath:    p.FilePath,
		Status:      constants.JobStatusQueued,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *stubJobStore) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload jobs.TransitionPayload) (*entity.UploadJob, error) {
	return nil, jobs.ErrIllegalTransition
}

func (s *stubJobStore) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	return nil, common.WrapError(common.ErrNotFound, "upload job not found")
}

func (s *stubJobStore) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	return nil, 0, nil
}

func (s *stubJobStore) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	return nil, nil
}

type stubQueue struct {
	enqueued []async.Job
	err      error
}

func (q *stubQueue) Enqueue(ctx context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func (q *stubQueue) Shutdown(ctx context.Context) {}

func newTestIntake(t *testing.T, store *stubJobStore, queue *stubQueue) *Intake {
	t.Helper()
	machine := jobs.NewMachine(store, nil, nil)
	return NewIntake(machine, queue, t.TempDir(), 1<<20, nil)
}

func TestAcceptFileStoresAndEnqueues(t *testing.T) {
	store := &stubJobStore{}
	queue := &stubQueue{}
	intake := newTestIntake(t, store, queue)

	job, err := intake.AcceptFile(context.Background(), Owner{ID: "u1", Name: "Tester"}, "invoice.pdf", int64(len(pdfBytes)), bytes.NewReader(pdfBytes))
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusQueued, job.Status)
	assert.Equal(t, int64(len(pdfBytes)), job.FileSize)
	assert.Len(t, job.Fingerprint, 64)

	// the stored file carries the content under a fresh name
	require.Len(t, store.created, 1)
	data, err := os.ReadFile(store.created[0].FilePath)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, data)
	assert.NotEqual(t, "invoice.pdf", filepath.Base(store.created[0].FilePath))

	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, job.ID, queue.enqueued[0].JobID)
}

func TestAcceptFileRequiresOwner(t *testing.T) {
	intake := newTestIntake(t, &stubJobStore{}, &stubQueue{})
	_, err := intake.AcceptFile(context.Background(), Owner{}, "invoice.pdf", 10, bytes.NewReader(pdfBytes))
	assert.Error(t, err)
}

func TestAcceptFileRejectsDeclaredOversize(t *testing.T) {
	intake := newTestIntake(t, &stubJobStore{}, &stubQueue{})
	_, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.pdf", 2<<20, bytes.NewReader(pdfBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte limit")
}

func TestAcceptFileRejectsActualOversize(t *testing.T) {
	store := &stubJobStore{}
	intake := newTestIntake(t, store, &stubQueue{})

	// declared small, actually larger than the limit
	big := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte("A"), 1<<20+1024)...)
	_, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.pdf", 100, bytes.NewReader(big))
	require.Error(t, err)
	assert.Empty(t, store.created, "no job may exist for a rejected upload")
}

func TestAcceptFileRejectsExtension(t *testing.T) {
	intake := newTestIntake(t, &stubJobStore{}, &stubQueue{})
	_, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.exe", 10, bytes.NewReader(pdfBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestAcceptFileRejectsMismatchedContent(t *testing.T) {
	intake := newTestIntake(t, &stubJobStore{}, &stubQueue{})
	_, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.pdf", 20, strings.NewReader("just a text file"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestAcceptFileSurvivesFullQueue(t *testing.T) {
	store := &stubJobStore{}
	queue := &stubQueue{err: async.ErrQueueFull}
	intake := newTestIntake(t, store, queue)

	job, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.pdf", int64(len(pdfBytes)), bytes.NewReader(pdfBytes))
	require.NoError(t, err, "a full queue defers processing, it does not fail intake")
	assert.Equal(t, constants.JobStatusQueued, job.Status)
}

func TestAcceptFileRemovesFileWhenJobCreationFails(t *testing.T) {
	store := &stubJobStore{failOn: true}
	intake := newTestIntake(t, store, &stubQueue{})

	_, err := intake.AcceptFile(context.Background(), Owner{ID: "u1"}, "invoice.pdf", int64(len(pdfBytes)), bytes.NewReader(pdfBytes))
	require.Error(t, err)

	entries, err := os.ReadDir(intake.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
