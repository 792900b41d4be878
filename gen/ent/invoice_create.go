// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"invoice-tracker/gen/ent/uploadjob"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetDocType sets the "doc_type" field.
func (ic *InvoiceCreate) SetDocType(s string) *InvoiceCreate {
	ic.mutation.SetDocType(s)
	return ic
}

// SetInvoiceClass sets the "invoice_class" field.
func (ic *InvoiceCreate) SetInvoiceClass(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceClass(s)
	return ic
}

// SetNillableInvoiceClass sets the "invoice_class" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableInvoiceClass(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetInvoiceClass(*s)
	}
	return ic
}

// SetInvoiceNumber sets the "invoice_number" field.
func (ic *InvoiceCreate) SetInvoiceNumber(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceNumber(s)
	return ic
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableInvoiceNumber(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetInvoiceNumber(*s)
	}
	return ic
}

// SetIssueDate sets the "issue_date" field.
func (ic *InvoiceCreate) SetIssueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetIssueDate(t)
	return ic
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableIssueDate(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetIssueDate(*t)
	}
	return ic
}

// SetPartyID sets the "party_id" field.
func (ic *InvoiceCreate) SetPartyID(u uuid.UUID) *InvoiceCreate {
	ic.mutation.SetPartyID(u)
	return ic
}

// SetNillablePartyID sets the "party_id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePartyID(u *uuid.UUID) *InvoiceCreate {
	if u != nil {
		ic.SetPartyID(*u)
	}
	return ic
}

// SetPartyName sets the "party_name" field.
func (ic *InvoiceCreate) SetPartyName(s string) *InvoiceCreate {
	ic.mutation.SetPartyName(s)
	return ic
}

// SetTaxID sets the "tax_id" field.
func (ic *InvoiceCreate) SetTaxID(s string) *InvoiceCreate {
	ic.mutation.SetTaxID(s)
	return ic
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxID(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetTaxID(*s)
	}
	return ic
}

// SetSubtotal sets the "subtotal" field.
func (ic *InvoiceCreate) SetSubtotal(s string) *InvoiceCreate {
	ic.mutation.SetSubtotal(s)
	return ic
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableSubtotal(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetSubtotal(*s)
	}
	return ic
}

// SetTaxAmount sets the "tax_amount" field.
func (ic *InvoiceCreate) SetTaxAmount(s string) *InvoiceCreate {
	ic.mutation.SetTaxAmount(s)
	return ic
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxAmount(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetTaxAmount(*s)
	}
	return ic
}

// SetOtherTaxes sets the "other_taxes" field.
func (ic *InvoiceCreate) SetOtherTaxes(s string) *InvoiceCreate {
	ic.mutation.SetOtherTaxes(s)
	return ic
}

// SetNillableOtherTaxes sets the "other_taxes" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableOtherTaxes(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetOtherTaxes(*s)
	}
	return ic
}

// SetTotalAmount sets the "total_amount" field.
func (ic *InvoiceCreate) SetTotalAmount(s string) *InvoiceCreate {
	ic.mutation.SetTotalAmount(s)
	return ic
}

// SetPaymentStatus sets the "payment_status" field.
func (ic *InvoiceCreate) SetPaymentStatus(s string) *InvoiceCreate {
	ic.mutation.SetPaymentStatus(s)
	return ic
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentStatus(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetPaymentStatus(*s)
	}
	return ic
}

// SetOwnerID sets the "owner_id" field.
func (ic *InvoiceCreate) SetOwnerID(s string) *InvoiceCreate {
	ic.mutation.SetOwnerID(s)
	return ic
}

// SetOwnerName sets the "owner_name" field.
func (ic *InvoiceCreate) SetOwnerName(s string) *InvoiceCreate {
	ic.mutation.SetOwnerName(s)
	return ic
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableOwnerName(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetOwnerName(*s)
	}
	return ic
}

// SetFileName sets the "file_name" field.
func (ic *InvoiceCreate) SetFileName(s string) *InvoiceCreate {
	ic.mutation.SetFileName(s)
	return ic
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableFileName(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetFileName(*s)
	}
	return ic
}

// SetFilePath sets the "file_path" field.
func (ic *InvoiceCreate) SetFilePath(s string) *InvoiceCreate {
	ic.mutation.SetFilePath(s)
	return ic
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableFilePath(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetFilePath(*s)
	}
	return ic
}

// SetFileSize sets the "file_size" field.
func (ic *InvoiceCreate) SetFileSize(i int64) *InvoiceCreate {
	ic.mutation.SetFileSize(i)
	return ic
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableFileSize(i *int64) *InvoiceCreate {
	if i != nil {
		ic.SetFileSize(*i)
	}
	return ic
}

// SetFingerprint sets the "fingerprint" field.
func (ic *InvoiceCreate) SetFingerprint(s string) *InvoiceCreate {
	ic.mutation.SetFingerprint(s)
	return ic
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableFingerprint(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetFingerprint(*s)
	}
	return ic
}

// SetExtractedJSON sets the "extracted_json" field.
func (ic *InvoiceCreate) SetExtractedJSON(jm json.RawMessage) *InvoiceCreate {
	ic.mutation.SetExtractedJSON(jm)
	return ic
}

// SetSource sets the "source" field.
func (ic *InvoiceCreate) SetSource(s string) *InvoiceCreate {
	ic.mutation.SetSource(s)
	return ic
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableSource(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetSource(*s)
	}
	return ic
}

// SetNeedsReview sets the "needs_review" field.
func (ic *InvoiceCreate) SetNeedsReview(b bool) *InvoiceCreate {
	ic.mutation.SetNeedsReview(b)
	return ic
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableNeedsReview(b *bool) *InvoiceCreate {
	if b != nil {
		ic.SetNeedsReview(*b)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InvoiceCreate) SetCreatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InvoiceCreate) SetUpdatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InvoiceCreate) SetID(u uuid.UUID) *InvoiceCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableID(u *uuid.UUID) *InvoiceCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// SetParty sets the "party" edge to the Party entity.
func (ic *InvoiceCreate) SetParty(p *Party) *InvoiceCreate {
	return ic.SetPartyID(p.ID)
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by IDs.
func (ic *InvoiceCreate) AddJobIDs(ids ...uuid.UUID) *InvoiceCreate {
	ic.mutation.AddJobIDs(ids...)
	return ic
}

// AddJobs adds the "jobs" edges to the UploadJob entity.
func (ic *InvoiceCreate) AddJobs(u ...*UploadJob) *InvoiceCreate {
	ids := make([]uuid.UUID, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return ic.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (ic *InvoiceCreate) Mutation() *InvoiceMutation {
	return ic.mutation
}

// Save creates the Invoice in the database.
func (ic *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InvoiceCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InvoiceCreate) defaults() {
	if _, ok := ic.mutation.InvoiceClass(); !ok {
		v := invoice.DefaultInvoiceClass
		ic.mutation.SetInvoiceClass(v)
	}
	if _, ok := ic.mutation.Subtotal(); !ok {
		v := invoice.DefaultSubtotal
		ic.mutation.SetSubtotal(v)
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		v := invoice.DefaultTaxAmount
		ic.mutation.SetTaxAmount(v)
	}
	if _, ok := ic.mutation.OtherTaxes(); !ok {
		v := invoice.DefaultOtherTaxes
		ic.mutation.SetOtherTaxes(v)
	}
	if _, ok := ic.mutation.PaymentStatus(); !ok {
		v := invoice.DefaultPaymentStatus
		ic.mutation.SetPaymentStatus(v)
	}
	if _, ok := ic.mutation.Source(); !ok {
		v := invoice.DefaultSource
		ic.mutation.SetSource(v)
	}
	if _, ok := ic.mutation.NeedsReview(); !ok {
		v := invoice.DefaultNeedsReview
		ic.mutation.SetNeedsReview(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := invoice.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InvoiceCreate) check() error {
	if _, ok := ic.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Invoice.doc_type"`)}
	}
	if v, ok := ic.mutation.DocType(); ok {
		if err := invoice.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.doc_type": %w`, err)}
		}
	}
	if _, ok := ic.mutation.InvoiceClass(); !ok {
		return &ValidationError{Name: "invoice_class", err: errors.New(`ent: missing required field "Invoice.invoice_class"`)}
	}
	if v, ok := ic.mutation.InvoiceClass(); ok {
		if err := invoice.InvoiceClassValidator(v); err != nil {
			return &ValidationError{Name: "invoice_class", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_class": %w`, err)}
		}
	}
	if _, ok := ic.mutation.PartyName(); !ok {
		return &ValidationError{Name: "party_name", err: errors.New(`ent: missing required field "Invoice.party_name"`)}
	}
	if v, ok := ic.mutation.PartyName(); ok {
		if err := invoice.PartyNameValidator(v); err != nil {
			return &ValidationError{Name: "party_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.party_name": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Invoice.subtotal"`)}
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "Invoice.tax_amount"`)}
	}
	if _, ok := ic.mutation.OtherTaxes(); !ok {
		return &ValidationError{Name: "other_taxes", err: errors.New(`ent: missing required field "Invoice.other_taxes"`)}
	}
	if _, ok := ic.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Invoice.total_amount"`)}
	}
	if _, ok := ic.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Invoice.payment_status"`)}
	}
	if v, ok := ic.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if _, ok := ic.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Invoice.owner_id"`)}
	}
	if v, ok := ic.mutation.OwnerID(); ok {
		if err := invoice.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.owner_id": %w`, err)}
		}
	}
	if v, ok := ic.mutation.Fingerprint(); ok {
		if err := invoice.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Invoice.fingerprint": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Invoice.source"`)}
	}
	if v, ok := ic.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	if _, ok := ic.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Invoice.needs_review"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (ic *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.DocType(); ok {
		_spec.SetField(invoice.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := ic.mutation.InvoiceClass(); ok {
		_spec.SetField(invoice.FieldInvoiceClass, field.TypeString, value)
		_node.InvoiceClass = value
	}
	if value, ok := ic.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := ic.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = &value
	}
	if value, ok := ic.mutation.PartyName(); ok {
		_spec.SetField(invoice.FieldPartyName, field.TypeString, value)
		_node.PartyName = value
	}
	if value, ok := ic.mutation.TaxID(); ok {
		_spec.SetField(invoice.FieldTaxID, field.TypeString, value)
		_node.TaxID = value
	}
	if value, ok := ic.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeString, value)
		_node.Subtotal = value
	}
	if value, ok := ic.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeString, value)
		_node.TaxAmount = value
	}
	if value, ok := ic.mutation.OtherTaxes(); ok {
		_spec.SetField(invoice.FieldOtherTaxes, field.TypeString, value)
		_node.OtherTaxes = value
	}
	if value, ok := ic.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeString, value)
		_node.TotalAmount = value
	}
	if value, ok := ic.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
		_node.PaymentStatus = value
	}
	if value, ok := ic.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := ic.mutation.OwnerName(); ok {
		_spec.SetField(invoice.FieldOwnerName, field.TypeString, value)
		_node.OwnerName = value
	}
	if value, ok := ic.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := ic.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := ic.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := ic.mutation.Fingerprint(); ok {
		_spec.SetField(invoice.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := ic.mutation.ExtractedJSON(); ok {
		_spec.SetField(invoice.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := ic.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := ic.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ic.mutation.PartyIDs(); len(nodes) > 0 {
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
		_node.PartyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ic.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (icb *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Invoice, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
