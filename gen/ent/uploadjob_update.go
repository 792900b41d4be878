// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/predicate"
	"invoice-tracker/gen/ent/uploadjob"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UploadJobUpdate is the builder for updating UploadJob entities.
type UploadJobUpdate struct {
	config
	hooks    []Hook
	mutation *UploadJobMutation
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (uju *UploadJobUpdate) Where(ps ...predicate.UploadJob) *UploadJobUpdate {
	uju.mutation.Where(ps...)
	return uju
}

// SetOwnerID sets the "owner_id" field.
func (uju *UploadJobUpdate) SetOwnerID(s string) *UploadJobUpdate {
	uju.mutation.SetOwnerID(s)
	return uju
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableOwnerID(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetOwnerID(*s)
	}
	return uju
}

// SetOwnerName sets the "owner_name" field.
func (uju *UploadJobUpdate) SetOwnerName(s string) *UploadJobUpdate {
	uju.mutation.SetOwnerName(s)
	return uju
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableOwnerName(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetOwnerName(*s)
	}
	return uju
}

// ClearOwnerName clears the value of the "owner_name" field.
func (uju *UploadJobUpdate) ClearOwnerName() *UploadJobUpdate {
	uju.mutation.ClearOwnerName()
	return uju
}

// SetFileName sets the "file_name" field.
func (uju *UploadJobUpdate) SetFileName(s string) *UploadJobUpdate {
	uju.mutation.SetFileName(s)
	return uju
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableFileName(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetFileName(*s)
	}
	return uju
}

// SetFileSize sets the "file_size" field.
func (uju *UploadJobUpdate) SetFileSize(i int64) *UploadJobUpdate {
	uju.mutation.ResetFileSize()
	uju.mutation.SetFileSize(i)
	return uju
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableFileSize(i *int64) *UploadJobUpdate {
	if i != nil {
		uju.SetFileSize(*i)
	}
	return uju
}

// AddFileSize adds i to the "file_size" field.
func (uju *UploadJobUpdate) AddFileSize(i int64) *UploadJobUpdate {
	uju.mutation.AddFileSize(i)
	return uju
}

// SetFingerprint sets the "fingerprint" field.
func (uju *UploadJobUpdate) SetFingerprint(s string) *UploadJobUpdate {
	uju.mutation.SetFingerprint(s)
	return uju
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableFingerprint(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetFingerprint(*s)
	}
	return uju
}

// SetFilePath sets the "file_path" field.
func (uju *UploadJobUpdate) SetFilePath(s string) *UploadJobUpdate {
	uju.mutation.SetFilePath(s)
	return uju
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableFilePath(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetFilePath(*s)
	}
	return uju
}

// SetStatus sets the "status" field.
func (uju *UploadJobUpdate) SetStatus(s string) *UploadJobUpdate {
	uju.mutation.SetStatus(s)
	return uju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableStatus(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetStatus(*s)
	}
	return uju
}

// SetInvoiceID sets the "invoice_id" field.
func (uju *UploadJobUpdate) SetInvoiceID(u uuid.UUID) *UploadJobUpdate {
	uju.mutation.SetInvoiceID(u)
	return uju
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableInvoiceID(u *uuid.UUID) *UploadJobUpdate {
	if u != nil {
		uju.SetInvoiceID(*u)
	}
	return uju
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (uju *UploadJobUpdate) ClearInvoiceID() *UploadJobUpdate {
	uju.mutation.ClearInvoiceID()
	return uju
}

// SetErrorDetail sets the "error_detail" field.
func (uju *UploadJobUpdate) SetErrorDetail(s string) *UploadJobUpdate {
	uju.mutation.SetErrorDetail(s)
	return uju
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (uju *UploadJobUpdate) SetNillableErrorDetail(s *string) *UploadJobUpdate {
	if s != nil {
		uju.SetErrorDetail(*s)
	}
	return uju
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (uju *UploadJobUpdate) ClearErrorDetail() *UploadJobUpdate {
	uju.mutation.ClearErrorDetail()
	return uju
}

// SetUpdatedAt sets the "updated_at" field.
func (uju *UploadJobUpdate) SetUpdatedAt(t time.Time) *UploadJobUpdate {
	uju.mutation.SetUpdatedAt(t)
	return uju
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (uju *UploadJobUpdate) SetInvoice(i *Invoice) *UploadJobUpdate {
	return uju.SetInvoiceID(i.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (uju *UploadJobUpdate) Mutation() *UploadJobMutation {
	return uju.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (uju *UploadJobUpdate) ClearInvoice() *UploadJobUpdate {
	uju.mutation.ClearInvoice()
	return uju
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uju *UploadJobUpdate) Save(ctx context.Context) (int, error) {
	uju.defaults()
	return withHooks(ctx, uju.sqlSave, uju.mutation, uju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uju *UploadJobUpdate) SaveX(ctx context.Context) int {
	affected, err := uju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uju *UploadJobUpdate) Exec(ctx context.Context) error {
	_, err := uju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uju *UploadJobUpdate) ExecX(ctx context.Context) {
	if err := uju.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uju *UploadJobUpdate) defaults() {
	if _, ok := uju.mutation.UpdatedAt(); !ok {
		v := uploadjob.UpdateDefaultUpdatedAt()
		uju.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uju *UploadJobUpdate) check() error {
	if v, ok := uju.mutation.OwnerID(); ok {
		if err := uploadjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.owner_id": %w`, err)}
		}
	}
	if v, ok := uju.mutation.FileName(); ok {
		if err := uploadjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_name": %w`, err)}
		}
	}
	if v, ok := uju.mutation.Fingerprint(); ok {
		if err := uploadjob.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "UploadJob.fingerprint": %w`, err)}
		}
	}
	if v, ok := uju.mutation.FilePath(); ok {
		if err := uploadjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_path": %w`, err)}
		}
	}
	if v, ok := uju.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	return nil
}

func (uju *UploadJobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	if ps := uju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uju.mutation.OwnerID(); ok {
		_spec.SetField(uploadjob.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := uju.mutation.OwnerName(); ok {
		_spec.SetField(uploadjob.FieldOwnerName, field.TypeString, value)
	}
	if uju.mutation.OwnerNameCleared() {
		_spec.ClearField(uploadjob.FieldOwnerName, field.TypeString)
	}
	if value, ok := uju.mutation.FileName(); ok {
		_spec.SetField(uploadjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := uju.mutation.FileSize(); ok {
		_spec.SetField(uploadjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := uju.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := uju.mutation.Fingerprint(); ok {
		_spec.SetField(uploadjob.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := uju.mutation.FilePath(); ok {
		_spec.SetField(uploadjob.FieldFilePath, field.TypeString, value)
	}
	if value, ok := uju.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := uju.mutation.ErrorDetail(); ok {
		_spec.SetField(uploadjob.FieldErrorDetail, field.TypeString, value)
	}
	if uju.mutation.ErrorDetailCleared() {
		_spec.ClearField(uploadjob.FieldErrorDetail, field.TypeString)
	}
	if value, ok := uju.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if uju.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadjob.InvoiceTable,
			Columns: []string{uploadjob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uju.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadjob.InvoiceTable,
			Columns: []string{uploadjob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uju.mutation.done = true
	return n, nil
}

// UploadJobUpdateOne is the builder for updating a single UploadJob entity.
type UploadJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadJobMutation
}

// SetOwnerID sets the "owner_id" field.
func (ujuo *UploadJobUpdateOne) SetOwnerID(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetOwnerID(s)
	return ujuo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableOwnerID(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetOwnerID(*s)
	}
	return ujuo
}

// SetOwnerName sets the "owner_name" field.
func (ujuo *UploadJobUpdateOne) SetOwnerName(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetOwnerName(s)
	return ujuo
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableOwnerName(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetOwnerName(*s)
	}
	return ujuo
}

// ClearOwnerName clears the value of the "owner_name" field.
func (ujuo *UploadJobUpdateOne) ClearOwnerName() *UploadJobUpdateOne {
	ujuo.mutation.ClearOwnerName()
	return ujuo
}

// SetFileName sets the "file_name" field.
func (ujuo *UploadJobUpdateOne) SetFileName(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetFileName(s)
	return ujuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableFileName(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetFileName(*s)
	}
	return ujuo
}

// SetFileSize sets the "file_size" field.
func (ujuo *UploadJobUpdateOne) SetFileSize(i int64) *UploadJobUpdateOne {
	ujuo.mutation.ResetFileSize()
	ujuo.mutation.SetFileSize(i)
	return ujuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableFileSize(i *int64) *UploadJobUpdateOne {
	if i != nil {
		ujuo.SetFileSize(*i)
	}
	return ujuo
}

// AddFileSize adds i to the "file_size" field.
func (ujuo *UploadJobUpdateOne) AddFileSize(i int64) *UploadJobUpdateOne {
	ujuo.mutation.AddFileSize(i)
	return ujuo
}

// SetFingerprint sets the "fingerprint" field.
func (ujuo *UploadJobUpdateOne) SetFingerprint(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetFingerprint(s)
	return ujuo
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableFingerprint(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetFingerprint(*s)
	}
	return ujuo
}

// SetFilePath sets the "file_path" field.
func (ujuo *UploadJobUpdateOne) SetFilePath(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetFilePath(s)
	return ujuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableFilePath(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetFilePath(*s)
	}
	return ujuo
}

// SetStatus sets the "status" field.
func (ujuo *UploadJobUpdateOne) SetStatus(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetStatus(s)
	return ujuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableStatus(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetStatus(*s)
	}
	return ujuo
}

// SetInvoiceID sets the "invoice_id" field.
func (ujuo *UploadJobUpdateOne) SetInvoiceID(u uuid.UUID) *UploadJobUpdateOne {
	ujuo.mutation.SetInvoiceID(u)
	return ujuo
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableInvoiceID(u *uuid.UUID) *UploadJobUpdateOne {
	if u != nil {
		ujuo.SetInvoiceID(*u)
	}
	return ujuo
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (ujuo *UploadJobUpdateOne) ClearInvoiceID() *UploadJobUpdateOne {
	ujuo.mutation.ClearInvoiceID()
	return ujuo
}

// SetErrorDetail sets the "error_detail" field.
func (ujuo *UploadJobUpdateOne) SetErrorDetail(s string) *UploadJobUpdateOne {
	ujuo.mutation.SetErrorDetail(s)
	return ujuo
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (ujuo *UploadJobUpdateOne) SetNillableErrorDetail(s *string) *UploadJobUpdateOne {
	if s != nil {
		ujuo.SetErrorDetail(*s)
	}
	return ujuo
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (ujuo *UploadJobUpdateOne) ClearErrorDetail() *UploadJobUpdateOne {
	ujuo.mutation.ClearErrorDetail()
	return ujuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ujuo *UploadJobUpdateOne) SetUpdatedAt(t time.Time) *UploadJobUpdateOne {
	ujuo.mutation.SetUpdatedAt(t)
	return ujuo
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (ujuo *UploadJobUpdateOne) SetInvoice(i *Invoice) *UploadJobUpdateOne {
	return ujuo.SetInvoiceID(i.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (ujuo *UploadJobUpdateOne) Mutation() *UploadJobMutation {
	return ujuo.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (ujuo *UploadJobUpdateOne) ClearInvoice() *UploadJobUpdateOne {
	ujuo.mutation.ClearInvoice()
	return ujuo
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (ujuo *UploadJobUpdateOne) Where(ps ...predicate.UploadJob) *UploadJobUpdateOne {
	ujuo.mutation.Where(ps...)
	return ujuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ujuo *UploadJobUpdateOne) Select(field string, fields ...string) *UploadJobUpdateOne {
	ujuo.fields = append([]string{field}, fields...)
	return ujuo
}

// Save executes the query and returns the updated UploadJob entity.
func (ujuo *UploadJobUpdateOne) Save(ctx context.Context) (*UploadJob, error) {
	ujuo.defaults()
	return withHooks(ctx, ujuo.sqlSave, ujuo.mutation, ujuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ujuo *UploadJobUpdateOne) SaveX(ctx context.Context) *UploadJob {
	node, err := ujuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ujuo *UploadJobUpdateOne) Exec(ctx context.Context) error {
	_, err := ujuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ujuo *UploadJobUpdateOne) ExecX(ctx context.Context) {
	if err := ujuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ujuo *UploadJobUpdateOne) defaults() {
	if _, ok := ujuo.mutation.UpdatedAt(); !ok {
		v := uploadjob.UpdateDefaultUpdatedAt()
		ujuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ujuo *UploadJobUpdateOne) check() error {
	if v, ok := ujuo.mutation.OwnerID(); ok {
		if err := uploadjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.owner_id": %w`, err)}
		}
	}
	if v, ok := ujuo.mutation.FileName(); ok {
		if err := uploadjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_name": %w`, err)}
		}
	}
	if v, ok := ujuo.mutation.Fingerprint(); ok {
		if err := uploadjob.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "UploadJob.fingerprint": %w`, err)}
		}
	}
	if v, ok := ujuo.mutation.FilePath(); ok {
		if err := uploadjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_path": %w`, err)}
		}
	}
	if v, ok := ujuo.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	return nil
}

func (ujuo *UploadJobUpdateOne) sqlSave(ctx context.Context) (_node *UploadJob, err error) {
	if err := ujuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	id, ok := ujuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ujuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadjob.FieldID)
		for _, f := range fields {
			if !uploadjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ujuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ujuo.mutation.OwnerID(); ok {
		_spec.SetField(uploadjob.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := ujuo.mutation.OwnerName(); ok {
		_spec.SetField(uploadjob.FieldOwnerName, field.TypeString, value)
	}
	if ujuo.mutation.OwnerNameCleared() {
		_spec.ClearField(uploadjob.FieldOwnerName, field.TypeString)
	}
	if value, ok := ujuo.mutation.FileName(); ok {
		_spec.SetField(uploadjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := ujuo.mutation.FileSize(); ok {
		_spec.SetField(uploadjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := ujuo.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := ujuo.mutation.Fingerprint(); ok {
		_spec.SetField(uploadjob.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := ujuo.mutation.FilePath(); ok {
		_spec.SetField(uploadjob.FieldFilePath, field.TypeString, value)
	}
	if value, ok := ujuo.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := ujuo.mutation.ErrorDetail(); ok {
		_spec.SetField(uploadjob.FieldErrorDetail, field.TypeString, value)
	}
	if ujuo.mutation.ErrorDetailCleared() {
		_spec.ClearField(uploadjob.FieldErrorDetail, field.TypeString)
	}
	if value, ok := ujuo.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if ujuo.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadjob.InvoiceTable,
			Columns: []string{uploadjob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ujuo.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadjob.InvoiceTable,
			Columns: []string{uploadjob.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadJob{config: ujuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ujuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ujuo.mutation.done = true
	return _node, nil
}
