package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"invoice-tracker/gen/ent"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/importer"
)

// InvoiceRepository persists invoices. It backs the extraction pipeline,
// the import engines and exports.
type InvoiceRepository interface {
	FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Invoice, error)
	Insert(ctx context.Context, in entity.InvoiceInput) (*entity.Invoice, error)
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
	ListInvoicesByOwner(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.Invoice, error)
	WithTx(ctx context.Context, fn func(tx importer.TxStore) error) error
}

type invoiceRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewInvoiceRepository(entc *ent.Client, log *slog.Logger) InvoiceRepository {
	if log == nil {
		log = slog.Default()
	}
	return &invoiceRepo{ent: entc, log: log}
}

func (r *invoiceRepo) FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Invoice, error) {
	row, err := r.ent.Invoice.Query().
		Where(invoice.FingerprintEQ(fingerprint)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, common.WrapError(common.ErrDatabase, "querying invoice by fingerprint")
	}
	return invoiceToEntity(row), nil
}

func (r *invoiceRepo) Insert(ctx context.Context, in entity.InvoiceInput) (*entity.Invoice, error) {
	row, err := insertInvoice(ctx, r.ent.Invoice, &in)
	if err != nil {
		r.log.Error("invoice insert failed", "party_name", in.PartyName, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "creating invoice")
	}
	return invoiceToEntity(row), nil
}

func (r *invoiceRepo) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.ent.Invoice.Query().
		Order(ent.Asc(invoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "listing invoices")
	}
	return invoicesToEntities(rows), nil
}

func (r *invoiceRepo) ListInvoicesByOwner(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.Invoice, error) {
	q := r.ent.Invoice.Query().Where(invoice.OwnerIDEQ(ownerID))
	if from != nil {
		q = q.Where(invoice.IssueDateGTE(*from))
	}
	if to != nil {
		q = q.Where(invoice.IssueDateLTE(*to))
	}
	rows, err := q.Order(ent.Asc(invoice.FieldIssueDate)).All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "listing invoices by owner")
	}
	return invoicesToEntities(rows), nil
}

// WithTx runs fn against a transactional store; any error rolls the whole
// transaction back.
func (r *invoiceRepo) WithTx(ctx context.Context, fn func(tx importer.TxStore) error) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "opening transaction")
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(&invoiceTxStore{tx: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(common.ErrDatabase, "committing transaction")
	}
	return nil
}

// invoiceTxStore implements importer.TxStore over one ent transaction.
type invoiceTxStore struct {
	tx *ent.Tx
}

func (s *invoiceTxStore) InsertInvoice(ctx context.Context, in *entity.InvoiceInput) (*entity.Invoice, error) {
	row, err := insertInvoice(ctx, s.tx.Invoice, in)
	if err != nil {
		return nil, err
	}
	return invoiceToEntity(row), nil
}

func (s *invoiceTxStore) UpdateInvoice(ctx context.Context, id uuid.UUID, in *entity.InvoiceInput) (*entity.Invoice, error) {
	upd := s.tx.Invoice.UpdateOneID(id).
		SetDocType(in.DocType).
		SetInvoiceClass(in.InvoiceClass).
		SetInvoiceNumber(in.InvoiceNumber).
		SetPartyName(in.PartyName).
		SetTaxID(in.TaxID).
		SetSubtotal(in.Subtotal).
		SetTaxAmount(in.TaxAmount).
		SetOtherTaxes(in.OtherTaxes).
		SetTotalAmount(in.TotalAmount).
		SetPaymentStatus(in.PaymentStatus).
		SetOwnerID(in.OwnerID).
		SetOwnerName(in.OwnerName).
		SetSource(in.Source).
		SetNeedsReview(in.NeedsReview)
	if in.IssueDate != nil {
		upd.SetIssueDate(*in.IssueDate)
	}
	if in.PartyID != nil {
		upd.SetPartyID(*in.PartyID)
	}
	if in.ExtractedJSON != nil {
		upd.SetExtractedJSON(in.ExtractedJSON)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "invoice not found")
		}
		return nil, err
	}
	return invoiceToEntity(row), nil
}

// insertInvoice builds a create over either the client or a transaction.
func insertInvoice(ctx context.Context, c *ent.InvoiceClient, in *entity.InvoiceInput) (*ent.Invoice, error) {
	cr := c.Create().
		SetDocType(in.DocType).
		SetInvoiceClass(in.InvoiceClass).
		SetInvoiceNumber(in.InvoiceNumber).
		SetPartyName(in.PartyName).
		SetTaxID(in.TaxID).
		SetSubtotal(in.Subtotal).
		SetTaxAmount(in.TaxAmount).
		SetOtherTaxes(in.OtherTaxes).
		SetTotalAmount(in.TotalAmount).
		SetPaymentStatus(in.PaymentStatus).
		SetOwnerID(in.OwnerID).
		SetOwnerName(in.OwnerName).
		SetFileName(in.FileName).
		SetFilePath(in.FilePath).
		SetFileSize(in.FileSize).
		SetFingerprint(in.Fingerprint).
		SetSource(in.Source).
		SetNeedsReview(in.NeedsReview)
	if in.IssueDate != nil {
		cr.SetIssueDate(*in.IssueDate)
	}
	if in.PartyID != nil {
		cr.SetPartyID(*in.PartyID)
	}
	if in.ExtractedJSON != nil {
		cr.SetExtractedJSON(in.ExtractedJSON)
	}
	return cr.Save(ctx)
}

func invoicesToEntities(rows []*ent.Invoice) []*entity.Invoice {
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = invoiceToEntity(row)
	}
	return out
}

func invoiceToEntity(row *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            row.ID,
		DocType:       row.DocType,
		InvoiceClass:  row.InvoiceClass,
		InvoiceNumber: row.InvoiceNumber,
		IssueDate:     row.IssueDate,
		PartyID:       row.PartyID,
		PartyName:     row.PartyName,
		TaxID:         row.TaxID,
		Subtotal:      row.Subtotal,
		TaxAmount:     row.TaxAmount,
		OtherTaxes:    row.OtherTaxes,
		TotalAmount:   row.TotalAmount,
		PaymentStatus: row.PaymentStatus,
		OwnerID:       row.OwnerID,
		OwnerName:     row.OwnerName,
		FileName:      row.FileName,
		FilePath:      row.FilePath,
		FileSize:      row.FileSize,
		Fingerprint:   row.Fingerprint,
		ExtractedJSON: row.ExtractedJSON,
		Source:        row.Source,
		NeedsReview:   row.NeedsReview,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
