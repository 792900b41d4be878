// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"invoice-tracker/gen/ent/predicate"
	"invoice-tracker/gen/ent/uploadjob"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iu *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetDocType sets the "doc_type" field.
func (iu *InvoiceUpdate) SetDocType(s string) *InvoiceUpdate {
	iu.mutation.SetDocType(s)
	return iu
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDocType(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetDocType(*s)
	}
	return iu
}

// SetInvoiceClass sets the "invoice_class" field.
func (iu *InvoiceUpdate) SetInvoiceClass(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceClass(s)
	return iu
}

// SetNillableInvoiceClass sets the "invoice_class" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceClass(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceClass(*s)
	}
	return iu
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iu *InvoiceUpdate) SetInvoiceNumber(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceNumber(s)
	return iu
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceNumber(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceNumber(*s)
	}
	return iu
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (iu *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	iu.mutation.ClearInvoiceNumber()
	return iu
}

// SetIssueDate sets the "issue_date" field.
func (iu *InvoiceUpdate) SetIssueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetIssueDate(t)
	return iu
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableIssueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetIssueDate(*t)
	}
	return iu
}

// ClearIssueDate clears the value of the "issue_date" field.
func (iu *InvoiceUpdate) ClearIssueDate() *InvoiceUpdate {
	iu.mutation.ClearIssueDate()
	return iu
}

// SetPartyID sets the "party_id" field.
func (iu *InvoiceUpdate) SetPartyID(u uuid.UUID) *InvoiceUpdate {
	iu.mutation.SetPartyID(u)
	return iu
}

// SetNillablePartyID sets the "party_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePartyID(u *uuid.UUID) *InvoiceUpdate {
	if u != nil {
		iu.SetPartyID(*u)
	}
	return iu
}

// ClearPartyID clears the value of the "party_id" field.
func (iu *InvoiceUpdate) ClearPartyID() *InvoiceUpdate {
	iu.mutation.ClearPartyID()
	return iu
}

// SetPartyName sets the "party_name" field.
func (iu *InvoiceUpdate) SetPartyName(s string) *InvoiceUpdate {
	iu.mutation.SetPartyName(s)
	return iu
}

// SetNillablePartyName sets the "party_name" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePartyName(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPartyName(*s)
	}
	return iu
}

// SetTaxID sets the "tax_id" field.
func (iu *InvoiceUpdate) SetTaxID(s string) *InvoiceUpdate {
	iu.mutation.SetTaxID(s)
	return iu
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetTaxID(*s)
	}
	return iu
}

// ClearTaxID clears the value of the "tax_id" field.
func (iu *InvoiceUpdate) ClearTaxID() *InvoiceUpdate {
	iu.mutation.ClearTaxID()
	return iu
}

// SetSubtotal sets the "subtotal" field.
func (iu *InvoiceUpdate) SetSubtotal(s string) *InvoiceUpdate {
	iu.mutation.SetSubtotal(s)
	return iu
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableSubtotal(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetSubtotal(*s)
	}
	return iu
}

// SetTaxAmount sets the "tax_amount" field.
func (iu *InvoiceUpdate) SetTaxAmount(s string) *InvoiceUpdate {
	iu.mutation.SetTaxAmount(s)
	return iu
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxAmount(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetTaxAmount(*s)
	}
	return iu
}

// SetOtherTaxes sets the "other_taxes" field.
func (iu *InvoiceUpdate) SetOtherTaxes(s string) *InvoiceUpdate {
	iu.mutation.SetOtherTaxes(s)
	return iu
}

// SetNillableOtherTaxes sets the "other_taxes" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableOtherTaxes(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetOtherTaxes(*s)
	}
	return iu
}

// SetTotalAmount sets the "total_amount" field.
func (iu *InvoiceUpdate) SetTotalAmount(s string) *InvoiceUpdate {
	iu.mutation.SetTotalAmount(s)
	return iu
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTotalAmount(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetTotalAmount(*s)
	}
	return iu
}

// SetPaymentStatus sets the "payment_status" field.
func (iu *InvoiceUpdate) SetPaymentStatus(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentStatus(s)
	return iu
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentStatus(*s)
	}
	return iu
}

// SetOwnerID sets the "owner_id" field.
func (iu *InvoiceUpdate) SetOwnerID(s string) *InvoiceUpdate {
	iu.mutation.SetOwnerID(s)
	return iu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableOwnerID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetOwnerID(*s)
	}
	return iu
}

// SetOwnerName sets the "owner_name" field.
func (iu *InvoiceUpdate) SetOwnerName(s string) *InvoiceUpdate {
	iu.mutation.SetOwnerName(s)
	return iu
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableOwnerName(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetOwnerName(*s)
	}
	return iu
}

// ClearOwnerName clears the value of the "owner_name" field.
func (iu *InvoiceUpdate) ClearOwnerName() *InvoiceUpdate {
	iu.mutation.ClearOwnerName()
	return iu
}

// SetFileName sets the "file_name" field.
func (iu *InvoiceUpdate) SetFileName(s string) *InvoiceUpdate {
	iu.mutation.SetFileName(s)
	return iu
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableFileName(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetFileName(*s)
	}
	return iu
}

// ClearFileName clears the value of the "file_name" field.
func (iu *InvoiceUpdate) ClearFileName() *InvoiceUpdate {
	iu.mutation.ClearFileName()
	return iu
}

// SetFilePath sets the "file_path" field.
func (iu *InvoiceUpdate) SetFilePath(s string) *InvoiceUpdate {
	iu.mutation.SetFilePath(s)
	return iu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableFilePath(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetFilePath(*s)
	}
	return iu
}

// ClearFilePath clears the value of the "file_path" field.
func (iu *InvoiceUpdate) ClearFilePath() *InvoiceUpdate {
	iu.mutation.ClearFilePath()
	return iu
}

// SetFileSize sets the "file_size" field.
func (iu *InvoiceUpdate) SetFileSize(i int64) *InvoiceUpdate {
	iu.mutation.ResetFileSize()
	iu.mutation.SetFileSize(i)
	return iu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableFileSize(i *int64) *InvoiceUpdate {
	if i != nil {
		iu.SetFileSize(*i)
	}
	return iu
}

// AddFileSize adds i to the "file_size" field.
func (iu *InvoiceUpdate) AddFileSize(i int64) *InvoiceUpdate {
	iu.mutation.AddFileSize(i)
	return iu
}

// ClearFileSize clears the value of the "file_size" field.
func (iu *InvoiceUpdate) ClearFileSize() *InvoiceUpdate {
	iu.mutation.ClearFileSize()
	return iu
}

// SetFingerprint sets the "fingerprint" field.
func (iu *InvoiceUpdate) SetFingerprint(s string) *InvoiceUpdate {
	iu.mutation.SetFingerprint(s)
	return iu
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableFingerprint(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetFingerprint(*s)
	}
	return iu
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (iu *InvoiceUpdate) ClearFingerprint() *InvoiceUpdate {
	iu.mutation.ClearFingerprint()
	return iu
}

// SetExtractedJSON sets the "extracted_json" field.
func (iu *InvoiceUpdate) SetExtractedJSON(jm json.RawMessage) *InvoiceUpdate {
	iu.mutation.SetExtractedJSON(jm)
	return iu
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (iu *InvoiceUpdate) AppendExtractedJSON(jm json.RawMessage) *InvoiceUpdate {
	iu.mutation.AppendExtractedJSON(jm)
	return iu
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (iu *InvoiceUpdate) ClearExtractedJSON() *InvoiceUpdate {
	iu.mutation.ClearExtractedJSON()
	return iu
}

// SetSource sets the "source" field.
func (iu *InvoiceUpdate) SetSource(s string) *InvoiceUpdate {
	iu.mutation.SetSource(s)
	return iu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableSource(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetSource(*s)
	}
	return iu
}

// SetNeedsReview sets the "needs_review" field.
func (iu *InvoiceUpdate) SetNeedsReview(b bool) *InvoiceUpdate {
	iu.mutation.SetNeedsReview(b)
	return iu
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableNeedsReview(b *bool) *InvoiceUpdate {
	if b != nil {
		iu.SetNeedsReview(*b)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InvoiceUpdate) SetUpdatedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// SetParty sets the "party" edge to the Party entity.
func (iu *InvoiceUpdate) SetParty(p *Party) *InvoiceUpdate {
	return iu.SetPartyID(p.ID)
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (iu *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	iu.mutation.AddJobIDs(ids...)
	return iu
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (iu *InvoiceUpdate) AddJobs(u ...*UploadJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return iu.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iu *InvoiceUpdate) Mutation() *InvoiceMutation {
	return iu.mutation
}

// ClearParty clears the "party" edge to the Party entity.
func (iu *InvoiceUpdate) ClearParty() *InvoiceUpdate {
	iu.mutation.ClearParty()
	return iu
}

// ClearJobs clears all "jobs" edges to the UploadJob entity.
func (iu *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	iu.mutation.ClearJobs()
	return iu
}

// RemoveJobIDs removes the "jobs" edge to UploadJob entities by IDs.
func (iu *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	iu.mutation.RemoveJobIDs(ids...)
	return iu
}

// RemoveJobs removes "jobs" edges to UploadJob entities.
func (iu *InvoiceUpdate) RemoveJobs(u ...*UploadJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return iu.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InvoiceUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InvoiceUpdate) check() error {
	if v, ok := iu.mutation.DocType(); ok {
		if err := invoice.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.doc_type": %w`, err)}
		}
	}
	if v, ok := iu.mutation.InvoiceClass(); ok {
		if err := invoice.InvoiceClassValidator(v); err != nil {
			return &ValidationError{Name: "invoice_class", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_class": %w`, err)}
		}
	}
	if v, ok := iu.mutation.PartyName(); ok {
		if err := invoice.PartyNameValidator(v); err != nil {
			return &ValidationError{Name: "party_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.party_name": %w`, err)}
		}
	}
	if v, ok := iu.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if v, ok := iu.mutation.OwnerID(); ok {
		if err := invoice.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.owner_id": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	return nil
}

func (iu *InvoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.DocType(); ok {
		_spec.SetField(invoice.FieldDocType, field.TypeString, value)
	}
	if value, ok := iu.mutation.InvoiceClass(); ok {
		_spec.SetField(invoice.FieldInvoiceClass, field.TypeString, value)
	}
	if value, ok := iu.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if iu.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := iu.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if iu.mutation.IssueDateCleared() {
		_spec.ClearField(invoice.FieldIssueDate, field.TypeTime)
	}
	if value, ok := iu.mutation.PartyName(); ok {
		_spec.SetField(invoice.FieldPartyName, field.TypeString, value)
	}
	if value, ok := iu.mutation.TaxID(); ok {
		_spec.SetField(invoice.FieldTaxID, field.TypeString, value)
	}
	if iu.mutation.TaxIDCleared() {
		_spec.ClearField(invoice.FieldTaxID, field.TypeString)
	}
	if value, ok := iu.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeString, value)
	}
	if value, ok := iu.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeString, value)
	}
	if value, ok := iu.mutation.OtherTaxes(); ok {
		_spec.SetField(invoice.FieldOtherTaxes, field.TypeString, value)
	}
	if value, ok := iu.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeString, value)
	}
	if value, ok := iu.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := iu.mutation.OwnerName(); ok {
		_spec.SetField(invoice.FieldOwnerName, field.TypeString, value)
	}
	if iu.mutation.OwnerNameCleared() {
		_spec.ClearField(invoice.FieldOwnerName, field.TypeString)
	}
	if value, ok := iu.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if iu.mutation.FileNameCleared() {
		_spec.ClearField(invoice.FieldFileName, field.TypeString)
	}
	if value, ok := iu.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if iu.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := iu.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := iu.mutation.AddedFileSize(); ok {
		_spec.AddField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if iu.mutation.FileSizeCleared() {
		_spec.ClearField(invoice.FieldFileSize, field.TypeInt64)
	}
	if value, ok := iu.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if iu.mutation.FingerprintCleared() {
		_spec.ClearField(invoice.FieldFingerprint, field.TypeString)
	}
	if value, ok := iu.mutation.ExtractedJSON(); ok {
		_spec.SetField(invoice.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedJSON, value)
		})
	}
	if iu.mutation.ExtractedJSONCleared() {
		_spec.ClearField(invoice.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := iu.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
	}
	if value, ok := iu.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iu.mutation.PartyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.PartyTable,
			Columns: []string{invoice.PartyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.PartyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.PartyTable,
			Columns: []string{invoice.PartyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if iu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !iu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetDocType sets the "doc_type" field.
func (iuo *InvoiceUpdateOne) SetDocType(s string) *InvoiceUpdateOne {
	iuo.mutation.SetDocType(s)
	return iuo
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDocType(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetDocType(*s)
	}
	return iuo
}

// SetInvoiceClass sets the "invoice_class" field.
func (iuo *InvoiceUpdateOne) SetInvoiceClass(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceClass(s)
	return iuo
}

// SetNillableInvoiceClass sets the "invoice_class" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceClass(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceClass(*s)
	}
	return iuo
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iuo *InvoiceUpdateOne) SetInvoiceNumber(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceNumber(s)
	return iuo
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceNumber(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceNumber(*s)
	}
	return iuo
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (iuo *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	iuo.mutation.ClearInvoiceNumber()
	return iuo
}

// SetIssueDate sets the "issue_date" field.
func (iuo *InvoiceUpdateOne) SetIssueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetIssueDate(t)
	return iuo
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableIssueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetIssueDate(*t)
	}
	return iuo
}

// ClearIssueDate clears the value of the "issue_date" field.
func (iuo *InvoiceUpdateOne) ClearIssueDate() *InvoiceUpdateOne {
	iuo.mutation.ClearIssueDate()
	return iuo
}

// SetPartyID sets the "party_id" field.
func (iuo *InvoiceUpdateOne) SetPartyID(u uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.SetPartyID(u)
	return iuo
}

// SetNillablePartyID sets the "party_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePartyID(u *uuid.UUID) *InvoiceUpdateOne {
	if u != nil {
		iuo.SetPartyID(*u)
	}
	return iuo
}

// ClearPartyID clears the value of the "party_id" field.
func (iuo *InvoiceUpdateOne) ClearPartyID() *InvoiceUpdateOne {
	iuo.mutation.ClearPartyID()
	return iuo
}

// SetPartyName sets the "party_name" field.
func (iuo *InvoiceUpdateOne) SetPartyName(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPartyName(s)
	return iuo
}

// SetNillablePartyName sets the "party_name" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePartyName(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPartyName(*s)
	}
	return iuo
}

// SetTaxID sets the "tax_id" field.
func (iuo *InvoiceUpdateOne) SetTaxID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetTaxID(s)
	return iuo
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetTaxID(*s)
	}
	return iuo
}

// ClearTaxID clears the value of the "tax_id" field.
func (iuo *InvoiceUpdateOne) ClearTaxID() *InvoiceUpdateOne {
	iuo.mutation.ClearTaxID()
	return iuo
}

// SetSubtotal sets the "subtotal" field.
func (iuo *InvoiceUpdateOne) SetSubtotal(s string) *InvoiceUpdateOne {
	iuo.mutation.SetSubtotal(s)
	return iuo
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableSubtotal(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetSubtotal(*s)
	}
	return iuo
}

// SetTaxAmount sets the "tax_amount" field.
func (iuo *InvoiceUpdateOne) SetTaxAmount(s string) *InvoiceUpdateOne {
	iuo.mutation.SetTaxAmount(s)
	return iuo
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxAmount(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetTaxAmount(*s)
	}
	return iuo
}

// SetOtherTaxes sets the "other_taxes" field.
func (iuo *InvoiceUpdateOne) SetOtherTaxes(s string) *InvoiceUpdateOne {
	iuo.mutation.SetOtherTaxes(s)
	return iuo
}

// SetNillableOtherTaxes sets the "other_taxes" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableOtherTaxes(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetOtherTaxes(*s)
	}
	return iuo
}

// SetTotalAmount sets the "total_amount" field.
func (iuo *InvoiceUpdateOne) SetTotalAmount(s string) *InvoiceUpdateOne {
	iuo.mutation.SetTotalAmount(s)
	return iuo
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTotalAmount(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetTotalAmount(*s)
	}
	return iuo
}

// SetPaymentStatus sets the "payment_status" field.
func (iuo *InvoiceUpdateOne) SetPaymentStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentStatus(s)
	return iuo
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentStatus(*s)
	}
	return iuo
}

// SetOwnerID sets the "owner_id" field.
func (iuo *InvoiceUpdateOne) SetOwnerID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetOwnerID(s)
	return iuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableOwnerID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetOwnerID(*s)
	}
	return iuo
}

// SetOwnerName sets the "owner_name" field.
func (iuo *InvoiceUpdateOne) SetOwnerName(s string) *InvoiceUpdateOne {
	iuo.mutation.SetOwnerName(s)
	return iuo
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableOwnerName(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetOwnerName(*s)
	}
	return iuo
}

// ClearOwnerName clears the value of the "owner_name" field.
func (iuo *InvoiceUpdateOne) ClearOwnerName() *InvoiceUpdateOne {
	iuo.mutation.ClearOwnerName()
	return iuo
}

// SetFileName sets the "file_name" field.
func (iuo *InvoiceUpdateOne) SetFileName(s string) *InvoiceUpdateOne {
	iuo.mutation.SetFileName(s)
	return iuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableFileName(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetFileName(*s)
	}
	return iuo
}

// ClearFileName clears the value of the "file_name" field.
func (iuo *InvoiceUpdateOne) ClearFileName() *InvoiceUpdateOne {
	iuo.mutation.ClearFileName()
	return iuo
}

// SetFilePath sets the "file_path" field.
func (iuo *InvoiceUpdateOne) SetFilePath(s string) *InvoiceUpdateOne {
	iuo.mutation.SetFilePath(s)
	return iuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableFilePath(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetFilePath(*s)
	}
	return iuo
}

// ClearFilePath clears the value of the "file_path" field.
func (iuo *InvoiceUpdateOne) ClearFilePath() *InvoiceUpdateOne {
	iuo.mutation.ClearFilePath()
	return iuo
}

// SetFileSize sets the "file_size" field.
func (iuo *InvoiceUpdateOne) SetFileSize(i int64) *InvoiceUpdateOne {
	iuo.mutation.ResetFileSize()
	iuo.mutation.SetFileSize(i)
	return iuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableFileSize(i *int64) *InvoiceUpdateOne {
	if i != nil {
		iuo.SetFileSize(*i)
	}
	return iuo
}

// AddFileSize adds i to the "file_size" field.
func (iuo *InvoiceUpdateOne) AddFileSize(i int64) *InvoiceUpdateOne {
	iuo.mutation.AddFileSize(i)
	return iuo
}

// ClearFileSize clears the value of the "file_size" field.
func (iuo *InvoiceUpdateOne) ClearFileSize() *InvoiceUpdateOne {
	iuo.mutation.ClearFileSize()
	return iuo
}

// SetFingerprint sets the "fingerprint" field.
func (iuo *InvoiceUpdateOne) SetFingerprint(s string) *InvoiceUpdateOne {
	iuo.mutation.SetFingerprint(s)
	return iuo
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableFingerprint(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetFingerprint(*s)
	}
	return iuo
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (iuo *InvoiceUpdateOne) ClearFingerprint() *InvoiceUpdateOne {
	iuo.mutation.ClearFingerprint()
	return iuo
}

// SetExtractedJSON sets the "extracted_json" field.
func (iuo *InvoiceUpdateOne) SetExtractedJSON(jm json.RawMessage) *InvoiceUpdateOne {
	iuo.mutation.SetExtractedJSON(jm)
	return iuo
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (iuo *InvoiceUpdateOne) AppendExtractedJSON(jm json.RawMessage) *InvoiceUpdateOne {
	iuo.mutation.AppendExtractedJSON(jm)
	return iuo
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (iuo *InvoiceUpdateOne) ClearExtractedJSON() *InvoiceUpdateOne {
	iuo.mutation.ClearExtractedJSON()
	return iuo
}

// SetSource sets the "source" field.
func (iuo *InvoiceUpdateOne) SetSource(s string) *InvoiceUpdateOne {
	iuo.mutation.SetSource(s)
	return iuo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableSource(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetSource(*s)
	}
	return iuo
}

// SetNeedsReview sets the "needs_review" field.
func (iuo *InvoiceUpdateOne) SetNeedsReview(b bool) *InvoiceUpdateOne {
	iuo.mutation.SetNeedsReview(b)
	return iuo
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableNeedsReview(b *bool) *InvoiceUpdateOne {
	if b != nil {
		iuo.SetNeedsReview(*b)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InvoiceUpdateOne) SetUpdatedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// SetParty sets the "party" edge to the Party entity.
func (iuo *InvoiceUpdateOne) SetParty(p *Party) *InvoiceUpdateOne {
	return iuo.SetPartyID(p.ID)
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (iuo *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.AddJobIDs(ids...)
	return iuo
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (iuo *InvoiceUpdateOne) AddJobs(u ...*UploadJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return iuo.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iuo *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return iuo.mutation
}

// ClearParty clears the "party" edge to the Party entity.
func (iuo *InvoiceUpdateOne) ClearParty() *InvoiceUpdateOne {
	iuo.mutation.ClearParty()
	return iuo
}

// ClearJobs clears all "jobs" edges to the UploadJob entity.
func (iuo *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	iuo.mutation.ClearJobs()
	return iuo
}

// RemoveJobIDs removes the "jobs" edge to UploadJob entities by IDs.
func (iuo *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.RemoveJobIDs(ids...)
	return iuo
}

// RemoveJobs removes "jobs" edges to UploadJob entities.
func (iuo *InvoiceUpdateOne) RemoveJobs(u ...*UploadJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return iuo.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iuo *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Invoice entity.
func (iuo *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InvoiceUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InvoiceUpdateOne) check() error {
	if v, ok := iuo.mutation.DocType(); ok {
		if err := invoice.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.doc_type": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.InvoiceClass(); ok {
		if err := invoice.InvoiceClassValidator(v); err != nil {
			return &ValidationError{Name: "invoice_class", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_class": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.PartyName(); ok {
		if err := invoice.PartyNameValidator(v); err != nil {
			return &ValidationError{Name: "party_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.party_name": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.OwnerID(); ok {
		if err := invoice.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.owner_id": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	return nil
}

func (iuo *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.DocType(); ok {
		_spec.SetField(invoice.FieldDocType, field.TypeString, value)
	}
	if value, ok := iuo.mutation.InvoiceClass(); ok {
		_spec.SetField(invoice.FieldInvoiceClass, field.TypeString, value)
	}
	if value, ok := iuo.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if iuo.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := iuo.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if iuo.mutation.IssueDateCleared() {
		_spec.ClearField(invoice.FieldIssueDate, field.TypeTime)
	}
	if value, ok := iuo.mutation.PartyName(); ok {
		_spec.SetField(invoice.FieldPartyName, field.TypeString, value)
	}
	if value, ok := iuo.mutation.TaxID(); ok {
		_spec.SetField(invoice.FieldTaxID, field.TypeString, value)
	}
	if iuo.mutation.TaxIDCleared() {
		_spec.ClearField(invoice.FieldTaxID, field.TypeString)
	}
	if value, ok := iuo.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeString, value)
	}
	if value, ok := iuo.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeString, value)
	}
	if value, ok := iuo.mutation.OtherTaxes(); ok {
		_spec.SetField(invoice.FieldOtherTaxes, field.TypeString, value)
	}
	if value, ok := iuo.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeString, value)
	}
	if value, ok := iuo.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := iuo.mutation.OwnerName(); ok {
		_spec.SetField(invoice.FieldOwnerName, field.TypeString, value)
	}
	if iuo.mutation.OwnerNameCleared() {
		_spec.ClearField(invoice.FieldOwnerName, field.TypeString)
	}
	if value, ok := iuo.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if iuo.mutation.FileNameCleared() {
		_spec.ClearField(invoice.FieldFileName, field.TypeString)
	}
	if value, ok := iuo.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if iuo.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := iuo.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := iuo.mutation.AddedFileSize(); ok {
		_spec.AddField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if iuo.mutation.FileSizeCleared() {
		_spec.ClearField(invoice.FieldFileSize, field.TypeInt64)
	}
	if value, ok := iuo.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
	}
	if iuo.mutation.FingerprintCleared() {
		_spec.ClearField(invoice.FieldFingerprint, field.TypeString)
	}
	if value, ok := iuo.mutation.ExtractedJSON(); ok {
		_spec.SetField(invoice.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtractedJSON, value)
		})
	}
	if iuo.mutation.ExtractedJSONCleared() {
		_spec.ClearField(invoice.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := iuo.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
	}
	if value, ok := iuo.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iuo.mutation.PartyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.PartyTable,
			Columns: []string{invoice.PartyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.PartyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.PartyTable,
			Columns: []string{invoice.PartyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if iuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !iuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
