package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/constants"
	"invoice-tracker/internal/async"
	"invoice-tracker/internal/backup"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/export"
	"invoice-tracker/internal/importer"
	"invoice-tracker/internal/ingest"
	"invoice-tracker/internal/jobs"
	"invoice-tracker/internal/notify"
)

// fakeInvoices backs the import engines and exports with an in-memory
// invoice list.
type fakeInvoices struct {
	invoices []*entity.Invoice
}

func (s *fakeInvoices) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return s.invoices, nil
}

func (s *fakeInvoices) ListInvoicesByOwner(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.Invoice, error) {
	return s.invoices, nil
}

func (s *fakeInvoices) WithTx(ctx context.Context, fn func(tx importer.TxStore) error) error {
	tx := &fakeTx{invoices: append([]*entity.Invoice{}, s.invoices...)}
	if err := fn(tx); err != nil {
		return err
	}
	s.invoices = tx.invoices
	return nil
}

type fakeTx struct {
	invoices []*entity.Invoice
}

func (t *fakeTx) InsertInvoice(ctx context.Context, in *entity.InvoiceInput) (*entity.Invoice, error) {
	inv := &entity.Invoice{
		ID:            uuid.New(),
		DocType:       in.DocType,
		InvoiceClass:  in.InvoiceClass,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     in.IssueDate,
		PartyName:     in.PartyName,
		TaxID:         in.TaxID,
		TotalAmount:   in.TotalAmount,
		OwnerID:       in.OwnerID,
		Source:        in.Source,
	}
	t.invoices = append(t.invoices, inv)
	return inv, nil
}

func (t *fakeTx) UpdateInvoice(ctx context.Context, id uuid.UUID, in *entity.InvoiceInput) (*entity.Invoice, error) {
	return nil, errors.New("not expected in these tests")
}

// fakeJobStore is the minimal jobs.Store used through the machine.
type fakeJobStore struct {
	jobs map[uuid.UUID]*entity.UploadJob
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[uuid.UUID]*entity.UploadJob{}}
}

func (s *fakeJobStore) Create(ctx context.Context, p jobs.CreateParams) (*entity.UploadJob, error) {
	job := &entity.UploadJob{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		FileName:    p.FileName,
		FileSize:    p.FileSize,
		Fingerprint: p.Fingerprint,
		FilePath:    p.FilePath,
		Status:      constants.JobStatusQueued,
		CreatedAt:   time.Now(),
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *fakeJobStore) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload jobs.TransitionPayload) (*entity.UploadJob, error) {
	return nil, jobs.ErrIllegalTransition
}

func (s *fakeJobStore) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "upload job not found")
	}
	return job, nil
}

func (s *fakeJobStore) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	var out []*entity.UploadJob
	for _, job := range s.jobs {
		if job.OwnerID == ownerID {
			out = append(out, job)
		}
	}
	return out, len(out), nil
}

func (s *fakeJobStore) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	return nil, nil
}

type noopQueue struct{}

func (noopQueue) Enqueue(ctx context.Context, job async.Job) error { return nil }
func (noopQueue) Shutdown(ctx context.Context)                     {}

type stubDumper struct {
	err error
}

func (d *stubDumper) Dump(ctx context.Context, dest string, compress bool) error {
	if d.err != nil {
		return d.err
	}
	return os.WriteFile(dest, []byte("-- dump\n"), 0o644)
}

type testEnv struct {
	srv      *httptest.Server
	jobStore *fakeJobStore
	invoices *fakeInvoices
}

func newTestEnv(t *testing.T, dumperErr error) *testEnv {
	t.Helper()
	jobStore := newFakeJobStore()
	invoices := &fakeInvoices{}
	hub := notify.NewHub(nil)
	t.Cleanup(hub.Close)

	machine := jobs.NewMachine(jobStore, hub, nil)
	intake := ingest.NewIntake(machine, noopQueue{}, t.TempDir(), 1<<20, nil)

	backups := backup.NewService(common.BackupConfig{
		Enabled: true, Schedule: "0 2 * * *", Dir: t.TempDir(), MaxBackups: 5,
	}, &stubDumper{err: dumperErr}, nil)

	s := New(common.ServerConfig{HTTPAddr: ":0"}, Deps{
		Intake:  intake,
		Jobs:    machine,
		Hub:     hub,
		Preview: importer.NewPreviewEngine(invoices, nil),
		Commit:  importer.NewCommitEngine(invoices, backups, nil),
		Backups: backups,
		Export:  export.NewService(invoices, nil),
		Health:  func(ctx context.Context) error { return nil },
	}, nil)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, jobStore: jobStore, invoices: invoices}
}

func multipartBody(t *testing.T, field, filename, content string, extra map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doRequest(t *testing.T, method, url string, body io.Reader, contentType string, authed bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("X-User-Name", "Tester")
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func decode(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

const testCSV = "Fecha,Tipo,Cliente/Proveedor,CUIT,Numero,Subtotal,IVA,Total,Clase\n" +
	"05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n"

func TestIdentityRequired(t *testing.T) {
	env := newTestEnv(t, nil)
	res := doRequest(t, http.MethodGet, env.srv.URL+"/uploads/recent", nil, "", false)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, nil)
	res := doRequest(t, http.MethodGet, env.srv.URL+"/healthz", nil, "", false)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", decode(t, res)["status"])
}

func TestUploadAcceptsPDF(t *testing.T) {
	env := newTestEnv(t, nil)
	body, ct := multipartBody(t, "files", "invoice.pdf", "%PDF-1.4\nsome pdf\n%%EOF", nil)
	res := doRequest(t, http.MethodPost, env.srv.URL+"/uploads", body, ct, true)

	assert.Equal(t, http.StatusAccepted, res.StatusCode)
	out := decode(t, res)
	assert.Equal(t, float64(1), out["accepted"])
	require.Len(t, env.jobStore.jobs, 1)
}

func TestUploadRejectsBadExtensionPerFile(t *testing.T) {
	env := newTestEnv(t, nil)
	body, ct := multipartBody(t, "files", "invoice.exe", "MZ...", nil)
	res := doRequest(t, http.MethodPost, env.srv.URL+"/uploads", body, ct, true)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	out := decode(t, res)
	assert.Equal(t, float64(0), out["accepted"])
	assert.Empty(t, env.jobStore.jobs)
}

func TestImportPreview(t *testing.T) {
	env := newTestEnv(t, nil)
	body, ct := multipartBody(t, "file", "import.csv", testCSV, nil)
	res := doRequest(t, http.MethodPost, env.srv.URL+"/import/preview", body, ct, true)

	require.Equal(t, http.StatusOK, res.StatusCode)
	out := decode(t, res)
	summary := out["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["total"])
	assert.Equal(t, float64(1), summary["new"])
	// previews never write
	assert.Empty(t, env.invoices.invoices)
}

func TestImportCommit(t *testing.T) {
	env := newTestEnv(t, nil)
	body, ct := multipartBody(t, "file", "import.csv", testCSV, map[string]string{"duplicateMode": "skip"})
	res := doRequest(t, http.MethodPost, env.srv.URL+"/import/commit", body, ct, true)

	require.Equal(t, http.StatusOK, res.StatusCode)
	out := decode(t, res)
	assert.Equal(t, float64(1), out["imported"])
	require.Len(t, env.invoices.invoices, 1)
	assert.Equal(t, "u1", env.invoices.invoices[0].OwnerID)
}

func TestImportCommitRejectsUnknownMode(t *testing.T) {
	env := newTestEnv(t, nil)
	body, ct := multipartBody(t, "file", "import.csv", testCSV, map[string]string{"duplicateMode": "merge"})
	res := doRequest(t, http.MethodPost, env.srv.URL+"/import/commit", body, ct, true)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestImportCommitBackupFailureLeavesStoreUntouched(t *testing.T) {
	env := newTestEnv(t, errors.New("disk full"))
	body, ct := multipartBody(t, "file", "import.csv", testCSV, map[string]string{
		"duplicateMode": "skip",
		"createBackup":  "true",
	})
	res := doRequest(t, http.MethodPost, env.srv.URL+"/import/commit", body, ct, true)

	assert.GreaterOrEqual(t, res.StatusCode, 500)
	assert.Empty(t, env.invoices.invoices)
}

func TestBackupStatusAndHistory(t *testing.T) {
	env := newTestEnv(t, nil)

	res := doRequest(t, http.MethodPost, env.srv.URL+"/admin/backup/", nil, "", true)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res = doRequest(t, http.MethodGet, env.srv.URL+"/admin/backup/status", nil, "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	status := decode(t, res)
	assert.Equal(t, false, status["running"])

	res = doRequest(t, http.MethodGet, env.srv.URL+"/admin/backup/history", nil, "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	history := decode(t, res)["history"].([]any)
	assert.Len(t, history, 1)
}

func TestExportInvoicesXLSX(t *testing.T) {
	env := newTestEnv(t, nil)
	res := doRequest(t, http.MethodGet, env.srv.URL+"/export/invoices", nil, "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "spreadsheetml")
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"), "xlsx is a zip container")
}

func TestGetUploadScopedToOwner(t *testing.T) {
	env := newTestEnv(t, nil)
	job, err := env.jobStore.Create(context.Background(), jobs.CreateParams{OwnerID: "someone-else", FileName: "x.pdf"})
	require.NoError(t, err)

	res := doRequest(t, http.MethodGet, env.srv.URL+"/uploads/"+job.ID.String(), nil, "", true)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
