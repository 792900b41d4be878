package pipeline

import (
	"context"
	"errors"
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
	"invoice-tracker/internal/extract"
	"invoice-tracker/internal/jobs"
)

type memJobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.UploadJob
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: map[uuid.UUID]*entity.UploadJob{}}
}

func (s *memJobStore) Create(ctx context.Context, p jobs.CreateParams) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := &entity.UploadJob{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		FileName:    p.FileName,
		Fingerprint: p.Fingerprint,
		FilePath:    p.FilePath,
		Status:      constants.JobStatusQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.jobs[job.ID] = job
	cp := *job
	return &cp, nil
}

func (s *memJobStore) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload jobs.TransitionPayload) (*entity.UploadJob, error) {
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
			if payload.InvoiceID != nil {
				job.InvoiceID = payload.InvoiceID
			}
			if payload.ErrorDetail != nil {
				job.ErrorDetail = payload.ErrorDetail
			}
			cp := *job
			return &cp, nil
		}
	}
	return nil, jobs.ErrIllegalTransition
}

func (s *memJobStore) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	cp := *job
	return &cp, nil
}

func (s *memJobStore) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	return nil, 0, nil
}

func (s *memJobStore) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	return nil, nil
}

type memInvoices struct {
	byFingerprint map[string]*entity.Invoice
	inserted      []entity.InvoiceInput
}

func (s *memInvoices) FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Invoice, error) {
	return s.byFingerprint[fingerprint], nil
}

func (s *memInvoices) Insert(ctx context.Context, in entity.InvoiceInput) (*entity.Invoice, error) {
	s.inserted = append(s.inserted, in)
	return &entity.Invoice{ID: uuid.New(), DocType: in.DocType, PartyName: in.PartyName}, nil
}

type memParties struct {
	calls []string
}

func (s *memParties) GetOrCreate(ctx context.Context, name, kind, taxID string) (*entity.Party, error) {
	s.calls = append(s.calls, name+"/"+kind)
	return &entity.Party{ID: uuid.New(), Name: name, Kind: kind}, nil
}

type stubExtractor struct {
	cand  *extract.Candidate
	err   error
	calls int
}

func (e *stubExtractor) Extract(ctx context.Context, path string) (*extract.Candidate, error) {
	e.calls++
	return e.cand, e.err
}

func setup(t *testing.T, ex extract.Extractor) (*Processor, *jobs.Machine, *memInvoices, *memParties) {
	t.Helper()
	store := newMemJobStore()
	machine := jobs.NewMachine(store, nil, nil)
	invoices := &memInvoices{byFingerprint: map[string]*entity.Invoice{}}
	parties := &memParties{}
	return NewProcessor(machine, invoices, parties, ex, nil), machine, invoices, parties
}

func queuedJob(t *testing.T, m *jobs.Machine, fingerprint string) *entity.UploadJob {
	t.Helper()
	job, err := m.Create(context.Background(), jobs.CreateParams{
		OwnerID: "u1", OwnerName: "Tester", FileName: "a.pdf", Fingerprint: fingerprint, FilePath: "",
	})
	require.NoError(t, err)
	return job
}

func TestProcessJobSuccess(t *testing.T) {
	ex := &stubExtractor{cand: &extract.Candidate{
		DocType:       "expense",
		InvoiceClass:  "A",
		InvoiceNumber: "A-0001",
		IssueDate:     "2024-03-05",
		PartyName:     "ACME S.A.",
		TaxID:         "30123456789",
		Subtotal:      "1020.30",
		TaxAmount:     "214.26",
		TotalAmount:   "1234.56",
		Confidence:    0.95,
	}}
	p, m, invoices, parties := setup(t, ex)
	job := queuedJob(t, m, "ff01")

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusSuccess, got.Status)
	assert.NotNil(t, got.InvoiceID)

	require.Len(t, invoices.inserted, 1)
	in := invoices.inserted[0]
	assert.Equal(t, constants.SourceExtracted, in.Source)
	assert.Equal(t, "ff01", in.Fingerprint)
	assert.False(t, in.NeedsReview)
	assert.Equal(t, []string{"ACME S.A./provider"}, parties.calls)
}

func TestProcessJobLowConfidenceNeedsReview(t *testing.T) {
	ex := &stubExtractor{cand: &extract.Candidate{
		DocType: "expense", PartyName: "ACME", TotalAmount: "1.00", Confidence: 0.3,
	}}
	p, m, invoices, _ := setup(t, ex)
	job := queuedJob(t, m, "ff02")

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))
	require.Len(t, invoices.inserted, 1)
	assert.True(t, invoices.inserted[0].NeedsReview)
}

func TestProcessJobDuplicateFingerprint(t *testing.T) {
	ex := &stubExtractor{}
	p, m, invoices, _ := setup(t, ex)
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	invoices.byFingerprint["ff03"] = &entity.Invoice{
		ID: uuid.New(), PartyName: "ACME", IssueDate: &d, TotalAmount: "1.00", FileName: "orig.pdf",
	}
	job := queuedJob(t, m, "ff03")

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusDuplicate, got.Status)
	require.NotNil(t, got.ErrorDetail)
	assert.Contains(t, *got.ErrorDetail, "orig.pdf")
	assert.Zero(t, ex.calls, "duplicates are decided before any extraction work")
	assert.Empty(t, invoices.inserted)
}

func TestProcessJobSchemaViolationQuarantines(t *testing.T) {
	ex := &stubExtractor{err: extract.ErrSchemaViolation}
	p, m, invoices, _ := setup(t, ex)
	job := queuedJob(t, m, "ff04")

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusQuarantined, got.Status)
	assert.Empty(t, invoices.inserted)
}

func TestProcessJobExtractionErrorFails(t *testing.T) {
	ex := &stubExtractor{err: &extract.ExtractionError{Message: "document is unreadable"}}
	p, m, _, _ := setup(t, ex)
	job := queuedJob(t, m, "ff05")

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusError, got.Status)
	require.NotNil(t, got.ErrorDetail)
	assert.Contains(t, *got.ErrorDetail, "unreadable")
}

func TestProcessJobSkipsNonQueued(t *testing.T) {
	ex := &stubExtractor{err: errors.New("must not be called")}
	p, m, _, _ := setup(t, ex)
	job := queuedJob(t, m, "ff06")

	_, err := m.Transition(context.Background(), job.ID, constants.JobStatusProcessing, jobs.TransitionPayload{})
	require.NoError(t, err)

	require.NoError(t, p.ProcessJob(context.Background(), async.Job{JobID: job.ID}))
	assert.Zero(t, ex.calls)

	got, err := m.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, got.Status)
}
