package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
)

// TxStore is the mutating surface a commit runs against, scoped to one
// transaction.
type TxStore interface {
	InsertInvoice(ctx context.Context, in *entity.InvoiceInput) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, in *entity.InvoiceInput) (*entity.Invoice, error)
}

// Store combines the read surface previews use with transactional writes.
// WithTx rolls everything back when fn returns an error.
type Store interface {
	InvoiceLister
	WithTx(ctx context.Context, fn func(tx TxStore) error) error
}

// Snapshotter takes a database snapshot before a commit mutates anything.
type Snapshotter interface {
	CreateSnapshot(ctx context.Context, reason constants.BackupReason) error
}

// CommitOptions controls how matched rows are handled.
type CommitOptions struct {
	Owner         string
	OwnerName     string
	DuplicateMode constants.DuplicateMode
	CreateBackup  bool
}

// RowFailure is a row the commit could not apply.
type RowFailure struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

// CommitResult accounts for every parsed data row:
// Imported+Updated+Skipped+Failed always equals Total.
type CommitResult struct {
	Total    int          `json:"total"`
	Imported int          `json:"imported"`
	Updated  int          `json:"updated"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Failures []RowFailure `json:"failures,omitempty"`
}

// CommitEngine applies an import file to the invoice store.
type CommitEngine struct {
	store   Store
	backups Snapshotter
	fields  []string
	log     *slog.Logger
}

func NewCommitEngine(store Store, backups Snapshotter, logger *slog.Logger) *CommitEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommitEngine{store: store, backups: backups, fields: DefaultComparedFields, log: logger}
}

// Commit re-parses and re-classifies the file against current state, then
// applies it inside one transaction. When opts.CreateBackup is set the
// snapshot must succeed first; a failed snapshot aborts the whole commit
// with zero mutations.
func (e *CommitEngine) Commit(ctx context.Context, r io.Reader, ext string, opts CommitOptions) (*CommitResult, error) {
	if opts.Owner == "" {
		return nil, common.ValidationError("owner is required")
	}
	mode, ok := constants.ParseDuplicateMode(string(opts.DuplicateMode))
	if !ok {
		return nil, common.ValidationErrorf("unknown duplicate mode %q", opts.DuplicateMode)
	}

	sheet, err := ParseSheet(r, ext)
	if err != nil {
		return nil, common.WrapError(common.ErrInvalidInput, err.Error())
	}

	if opts.CreateBackup {
		if err := e.backups.CreateSnapshot(ctx, constants.BackupPreImport); err != nil {
			e.log.Error("import.backup_failed", "error", err)
			return nil, fmt.Errorf("pre-import backup failed: %w", err)
		}
	}

	existing, err := e.store.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	index := buildIndex(existing)

	res := &CommitResult{}
	err = e.store.WithTx(ctx, func(tx TxStore) error {
		for i, row := range sheet.Rows {
			res.Total++
			cand, err := buildCandidate(sheet, i+1, row)
			if err != nil {
				res.Failed++
				res.Failures = append(res.Failures, RowFailure{RowIndex: i + 1, Message: err.Error()})
				continue
			}

			unique, fallback := cand.Keys()
			match := index.lookup(unique, fallback, cand.TaxID)
			switch {
			case match == nil:
				inserted, err := tx.InsertInvoice(ctx, e.input(cand, opts, false))
				if err != nil {
					return fmt.Errorf("row %d: %w", cand.RowIndex, err)
				}
				index.add(inserted)
				res.Imported++

			case mode == constants.DuplicateSkip:
				res.Skipped++

			case mode == constants.DuplicateUpdate:
				updated, err := tx.UpdateInvoice(ctx, match.ID, e.input(cand, opts, false))
				if err != nil {
					return fmt.Errorf("row %d: %w", cand.RowIndex, err)
				}
				index.add(updated)
				res.Updated++

			case mode == constants.DuplicateDuplicate:
				if _, err := tx.InsertInvoice(ctx, e.input(cand, opts, true)); err != nil {
					return fmt.Errorf("row %d: %w", cand.RowIndex, err)
				}
				res.Imported++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("import.commit",
		"mode", mode,
		"total", res.Total,
		"imported", res.Imported,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"failed", res.Failed)
	return res, nil
}

// input maps a candidate to a writable invoice. Classification fields are
// derived here from the normalized row, never taken from the caller.
func (e *CommitEngine) input(cand *Candidate, opts CommitOptions, markDuplicate bool) *entity.InvoiceInput {
	ownerName := cand.OwnerName
	if ownerName == "" {
		ownerName = opts.OwnerName
	}
	in := &entity.InvoiceInput{
		DocType:       cand.DocType,
		InvoiceClass:  cand.InvoiceClass,
		InvoiceNumber: cand.InvoiceNumber,
		IssueDate:     cand.IssueDate,
		PartyName:     cand.PartyName,
		TaxID:         cand.TaxID,
		Subtotal:      cand.Subtotal,
		TaxAmount:     cand.TaxAmount,
		OtherTaxes:    cand.OtherTaxes,
		TotalAmount:   cand.TotalAmount,
		PaymentStatus: cand.PaymentStatus,
		OwnerID:       opts.Owner,
		OwnerName:     ownerName,
		Source:        constants.SourceImport,
	}
	if markDuplicate {
		raw, _ := json.Marshal(map[string]bool{"isDuplicate": true})
		in.ExtractedJSON = raw
	}
	return in
}
