package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/internal/async"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/extract"
	"invoice-tracker/internal/jobs"
)

// InvoiceStore is the persistence the processor needs for results.
type InvoiceStore interface {
	FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Invoice, error)
	Insert(ctx context.Context, in entity.InvoiceInput) (*entity.Invoice, error)
}

// PartyStore resolves counterpart names to registry rows.
type PartyStore interface {
	GetOrCreate(ctx context.Context, name, kind, taxID string) (*entity.Party, error)
}

// Processor drives one upload job from queued to a terminal status:
// duplicate check, extraction, structural validation, invoice persistence.
type Processor struct {
	machine  *jobs.Machine
	invoices InvoiceStore
	parties  PartyStore
	extract  extract.Extractor
	logger   *slog.Logger
}

func NewProcessor(machine *jobs.Machine, invoices InvoiceStore, parties PartyStore, ex extract.Extractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		machine:  machine,
		invoices: invoices,
		parties:  parties,
		extract:  ex,
		logger:   logger,
	}
}

// ProcessJob implements async.Processor. Any error it returns has already
// been reflected in the job's status; the caller only logs it.
func (p *Processor) ProcessJob(ctx context.Context, job async.Job) error {
	current, err := p.machine.Get(ctx, job.JobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if current.Status != constants.JobStatusQueued {
		// a supervising path (timeout, restart) already moved it
		p.logger.Warn("skipping job not in queued", "job_id", job.JobID, "status", current.Status)
		return nil
	}

	if _, err := p.machine.Transition(ctx, job.JobID, constants.JobStatusProcessing, jobs.TransitionPayload{}); err != nil {
		return err
	}
	defer p.removeStoredFile(current.FilePath)

	// content-level duplicate check before any extraction work
	existing, err := p.invoices.FindByFingerprint(ctx, current.Fingerprint)
	if err != nil {
		return p.fail(ctx, job.JobID, fmt.Sprintf("duplicate lookup failed: %v", err))
	}
	if existing != nil {
		detail := duplicateDetail(existing)
		_, terr := p.machine.Transition(ctx, job.JobID, constants.JobStatusDuplicate, jobs.TransitionPayload{ErrorDetail: &detail})
		return terr
	}

	cand, err := p.extract.Extract(ctx, current.FilePath)
	switch {
	case err == nil:
	case errors.Is(err, extract.ErrSchemaViolation):
		detail := err.Error()
		_, terr := p.machine.Transition(ctx, job.JobID, constants.JobStatusQuarantined, jobs.TransitionPayload{ErrorDetail: &detail})
		return terr
	default:
		var exErr *extract.ExtractionError
		msg := "extraction did not complete"
		if errors.As(err, &exErr) {
			msg = exErr.Message
		} else if ctx.Err() != nil {
			msg = "extraction timed out"
		} else {
			msg = err.Error()
		}
		return p.fail(ctx, job.JobID, msg)
	}

	invoice, err := p.persistCandidate(ctx, current, cand)
	if err != nil {
		return p.fail(ctx, job.JobID, fmt.Sprintf("could not store extracted invoice: %v", err))
	}

	_, err = p.machine.Transition(ctx, job.JobID, constants.JobStatusSuccess, jobs.TransitionPayload{InvoiceID: &invoice.ID})
	return err
}

func (p *Processor) persistCandidate(ctx context.Context, job *entity.UploadJob, cand *extract.Candidate) (*entity.Invoice, error) {
	var issueDate *time.Time
	if cand.IssueDate != "" {
		if t, err := time.Parse("2006-01-02", cand.IssueDate); err == nil {
			issueDate = &t
		}
	}

	// hold extractions with missing critical data for review instead of
	// rejecting them
	needsReview := issueDate == nil || cand.InvoiceNumber == "" || cand.Confidence < 0.6

	var partyID *uuid.UUID
	if cand.PartyName != "" {
		kind := constants.PartyProvider
		if cand.DocType == constants.DocTypeIncome {
			kind = constants.PartyClient
		}
		party, err := p.parties.GetOrCreate(ctx, cand.PartyName, kind, cand.TaxID)
		if err != nil {
			p.logger.Error("party lookup failed", "name", cand.PartyName, "err", err)
		} else {
			partyID = &party.ID
		}
	}

	rawCand, _ := json.Marshal(cand)

	in := entity.InvoiceInput{
		DocType:       cand.DocType,
		InvoiceClass:  orDefault(cand.InvoiceClass, "A"),
		InvoiceNumber: cand.InvoiceNumber,
		IssueDate:     issueDate,
		PartyID:       partyID,
		PartyName:     cand.PartyName,
		TaxID:         cand.TaxID,
		Subtotal:      orDefault(cand.Subtotal, "0.00"),
		TaxAmount:     orDefault(cand.TaxAmount, "0.00"),
		OtherTaxes:    "0.00",
		TotalAmount:   cand.TotalAmount,
		PaymentStatus: constants.PaymentPending,
		OwnerID:       job.OwnerID,
		OwnerName:     job.OwnerName,
		FileName:      job.FileName,
		FilePath:      job.FilePath,
		FileSize:      job.FileSize,
		Fingerprint:   job.Fingerprint,
		ExtractedJSON: rawCand,
		Source:        constants.SourceExtracted,
		NeedsReview:   needsReview,
	}
	return p.invoices.Insert(ctx, in)
}

func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, msg string) error {
	_, err := p.machine.Transition(ctx, jobID, constants.JobStatusError, jobs.TransitionPayload{ErrorDetail: &msg})
	return err
}

func (p *Processor) removeStoredFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("could not remove stored upload", "path", path, "err", err)
	}
}

func duplicateDetail(existing *entity.Invoice) string {
	date := "unknown date"
	if existing.IssueDate != nil {
		date = existing.IssueDate.Format("2006-01-02")
	}
	return fmt.Sprintf("content matches invoice %s (%s, %s, total %s) already uploaded as %q",
		existing.ID, existing.PartyName, date, existing.TotalAmount, existing.FileName)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
