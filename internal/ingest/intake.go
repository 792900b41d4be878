package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/internal/async"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/jobs"
)

// Owner identifies the uploading user, resolved by the HTTP layer.
type Owner struct {
	ID   string
	Name string
}

// Intake accepts uploaded documents: it validates, stores the file, creates
// the tracking job and hands off to the async queue. It never waits for
// extraction; the returned job is in the queued status.
type Intake struct {
	machine  *jobs.Machine
	queue    async.Queue
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

func NewIntake(machine *jobs.Machine, queue async.Queue, dir string, maxBytes int64, logger *slog.Logger) *Intake {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBytes <= 0 {
		maxBytes = constants.MaxUploadBytes
	}
	return &Intake{machine: machine, queue: queue, dir: dir, maxBytes: maxBytes, logger: logger}
}

// AcceptFile validates and stores one uploaded document. Validation errors
// are returned before any job exists; once a job is created the caller only
// ever learns more through job status.
func (s *Intake) AcceptFile(ctx context.Context, owner Owner, fileName string, size int64, r io.Reader) (*entity.UploadJob, error) {
	if owner.ID == "" {
		return nil, common.ValidationError("owner is required")
	}
	if size > s.maxBytes {
		return nil, common.ValidationErrorf("file %q exceeds the %d byte limit", fileName, s.maxBytes)
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.ValidationErrorf("file type %q is not allowed; accepted: pdf, jpg, jpeg, png", ext)
	}

	// sniff the real content type instead of trusting the client header
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if _, ok := constants.AllowedMIMETypes[sniffMIME(head)]; !ok {
		return nil, common.ValidationErrorf("file %q content is not an accepted type (jpeg, png, pdf)", fileName)
	}

	path, sum, written, err := s.store(io.MultiReader(bytes.NewReader(head), io.LimitReader(r, s.maxBytes-int64(n)+1)), ext)
	if err != nil {
		return nil, err
	}
	if written > s.maxBytes {
		s.removeFile(path)
		return nil, common.ValidationErrorf("file %q exceeds the %d byte limit", fileName, s.maxBytes)
	}

	job, err := s.machine.Create(ctx, jobs.CreateParams{
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		FileName:    fileName,
		FileSize:    written,
		Fingerprint: hex.EncodeToString(sum),
		FilePath:    path,
	})
	if err != nil {
		s.removeFile(path)
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, FilePath: path, OwnerID: owner.ID, SubmittedAt: job.CreatedAt}); err != nil {
		// the job stays queued; the supervisor re-dispatches it later
		s.logger.Warn("enqueue deferred", "job_id", job.ID, "err", err)
	}
	return job, nil
}

// store writes the content under a fresh uuid name and hashes it in the
// same pass.
func (s *Intake) store(r io.Reader, ext string) (path string, sum []byte, written int64, err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", nil, 0, fmt.Errorf("create upload dir: %w", err)
	}
	path = filepath.Join(s.dir, uuid.New().String()+"."+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", nil, 0, fmt.Errorf("store upload: %w", err)
	}
	h := sha256.New()
	written, err = io.Copy(io.MultiWriter(f, h), r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.removeFile(path)
		return "", nil, 0, fmt.Errorf("store upload: %w", err)
	}
	return path, h.Sum(nil), written, nil
}

func (s *Intake) removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("could not remove upload", "path", path, "err", err)
	}
}

// sniffMIME strips parameters from the detected content type.
func sniffMIME(head []byte) string {
	mime := http.DetectContentType(head)
	for i := 0; i < len(mime); i++ {
		if mime[i] == ';' {
			return mime[:i]
		}
	}
	return mime
}
