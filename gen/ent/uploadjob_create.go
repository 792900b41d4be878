// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/uploadjob"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UploadJobCreate is the builder for creating a UploadJob entity.
type UploadJobCreate struct {
	config
	mutation *UploadJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (ujc *UploadJobCreate) SetOwnerID(s string) *UploadJobCreate {
	ujc.mutation.SetOwnerID(s)
	return ujc
}

// SetOwnerName sets the "owner_name" field.
func (ujc *UploadJobCreate) SetOwnerName(s string) *UploadJobCreate {
	ujc.mutation.SetOwnerName(s)
	return ujc
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableOwnerName(s *string) *UploadJobCreate {
	if s != nil {
		ujc.SetOwnerName(*s)
	}
	return ujc
}

// SetFileName sets the "file_name" field.
func (ujc *UploadJobCreate) SetFileName(s string) *UploadJobCreate {
	ujc.mutation.SetFileName(s)
	return ujc
}

// SetFileSize sets the "file_size" field.
func (ujc *UploadJobCreate) SetFileSize(i int64) *UploadJobCreate {
	ujc.mutation.SetFileSize(i)
	return ujc
}

// SetFingerprint sets the "fingerprint" field.
func (ujc *UploadJobCreate) SetFingerprint(s string) *UploadJobCreate {
	ujc.mutation.SetFingerprint(s)
	return ujc
}

// SetFilePath sets the "file_path" field.
func (ujc *UploadJobCreate) SetFilePath(s string) *UploadJobCreate {
	ujc.mutation.SetFilePath(s)
	return ujc
}

// SetStatus sets the "status" field.
func (ujc *UploadJobCreate) SetStatus(s string) *UploadJobCreate {
	ujc.mutation.SetStatus(s)
	return ujc
}

// SetInvoiceID sets the "invoice_id" field.
func (ujc *UploadJobCreate) SetInvoiceID(u uuid.UUID) *UploadJobCreate {
	ujc.mutation.SetInvoiceID(u)
	return ujc
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableInvoiceID(u *uuid.UUID) *UploadJobCreate {
	if u != nil {
		ujc.SetInvoiceID(*u)
	}
	return ujc
}

// SetErrorDetail sets the "error_detail" field.
func (ujc *UploadJobCreate) SetErrorDetail(s string) *UploadJobCreate {
	ujc.mutation.SetErrorDetail(s)
	return ujc
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableErrorDetail(s *string) *UploadJobCreate {
	if s != nil {
		ujc.SetErrorDetail(*s)
	}
	return ujc
}

// SetCreatedAt sets the "created_at" field.
func (ujc *UploadJobCreate) SetCreatedAt(t time.Time) *UploadJobCreate {
	ujc.mutation.SetCreatedAt(t)
	return ujc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableCreatedAt(t *time.Time) *UploadJobCreate {
	if t != nil {
		ujc.SetCreatedAt(*t)
	}
	return ujc
}

// SetUpdatedAt sets the "updated_at" field.
func (ujc *UploadJobCreate) SetUpdatedAt(t time.Time) *UploadJobCreate {
	ujc.mutation.SetUpdatedAt(t)
	return ujc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableUpdatedAt(t *time.Time) *UploadJobCreate {
	if t != nil {
		ujc.SetUpdatedAt(*t)
	}
	return ujc
}

// SetID sets the "id" field.
func (ujc *UploadJobCreate) SetID(u uuid.UUID) *UploadJobCreate {
	ujc.mutation.SetID(u)
	return ujc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ujc *UploadJobCreate) SetNillableID(u *uuid.UUID) *UploadJobCreate {
	if u != nil {
		ujc.SetID(*u)
	}
	return ujc
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (ujc *UploadJobCreate) SetInvoice(i *Invoice) *UploadJobCreate {
	return ujc.SetInvoiceID(i.ID)
}

// Mutation returns the UploadJobMutation object of the builder.
func (ujc *UploadJobCreate) Mutation() *UploadJobMutation {
	return ujc.mutation
}

// Save creates the UploadJob in the database.
func (ujc *UploadJobCreate) Save(ctx context.Context) (*UploadJob, error) {
	ujc.defaults()
	return withHooks(ctx, ujc.sqlSave, ujc.mutation, ujc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ujc *UploadJobCreate) SaveX(ctx context.Context) *UploadJob {
	v, err := ujc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ujc *UploadJobCreate) Exec(ctx context.Context) error {
	_, err := ujc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ujc *UploadJobCreate) ExecX(ctx context.Context) {
	if err := ujc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ujc *UploadJobCreate) defaults() {
	if _, ok := ujc.mutation.CreatedAt(); !ok {
		v := uploadjob.DefaultCreatedAt()
		ujc.mutation.SetCreatedAt(v)
	}
	if _, ok := ujc.mutation.UpdatedAt(); !ok {
		v := uploadjob.DefaultUpdatedAt()
		ujc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ujc.mutation.ID(); !ok {
		v := uploadjob.DefaultID()
		ujc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ujc *UploadJobCreate) check() error {
	if _, ok := ujc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "UploadJob.owner_id"`)}
	}
	if v, ok := ujc.mutation.OwnerID(); ok {
		if err := uploadjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "UploadJob.owner_id": %w`, err)}
		}
	}
	if _, ok := ujc.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "UploadJob.file_name"`)}
	}
	if v, ok := ujc.mutation.FileName(); ok {
		if err := uploadjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_name": %w`, err)}
		}
	}
	if _, ok := ujc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "UploadJob.file_size"`)}
	}
	if _, ok := ujc.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "UploadJob.fingerprint"`)}
	}
	if v, ok := ujc.mutation.Fingerprint(); ok {
		if err := uploadjob.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "UploadJob.fingerprint": %w`, err)}
		}
	}
	if _, ok := ujc.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "UploadJob.file_path"`)}
	}
	if v, ok := ujc.mutation.FilePath(); ok {
		if err := uploadjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "UploadJob.file_path": %w`, err)}
		}
	}
	if _, ok := ujc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadJob.status"`)}
	}
	if v, ok := ujc.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if _, ok := ujc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadJob.created_at"`)}
	}
	if _, ok := ujc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UploadJob.updated_at"`)}
	}
	return nil
}

func (ujc *UploadJobCreate) sqlSave(ctx context.Context) (*UploadJob, error) {
	if err := ujc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ujc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ujc.driver, _spec); err != nil {
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
	ujc.mutation.id = &_node.ID
	ujc.mutation.done = true
	return _node, nil
}

func (ujc *UploadJobCreate) createSpec() (*UploadJob, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadJob{config: ujc.config}
		_spec = sqlgraph.NewCreateSpec(uploadjob.Table, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	)
	if id, ok := ujc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ujc.mutation.OwnerID(); ok {
		_spec.SetField(uploadjob.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := ujc.mutation.OwnerName(); ok {
		_spec.SetField(uploadjob.FieldOwnerName, field.TypeString, value)
		_node.OwnerName = value
	}
	if value, ok := ujc.mutation.FileName(); ok {
		_spec.SetField(uploadjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := ujc.mutation.FileSize(); ok {
		_spec.SetField(uploadjob.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := ujc.mutation.Fingerprint(); ok {
		_spec.SetField(uploadjob.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := ujc.mutation.FilePath(); ok {
		_spec.SetField(uploadjob.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := ujc.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ujc.mutation.ErrorDetail(); ok {
		_spec.SetField(uploadjob.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = &value
	}
	if value, ok := ujc.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ujc.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ujc.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadJobCreateBulk is the builder for creating many UploadJob entities in bulk.
type UploadJobCreateBulk struct {
	config
	err      error
	builders []*UploadJobCreate
}

// Save creates the UploadJob entities in the database.
func (ujcb *UploadJobCreateBulk) Save(ctx context.Context) ([]*UploadJob, error) {
	if ujcb.err != nil {
		return nil, ujcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ujcb.builders))
	nodes := make([]*UploadJob, len(ujcb.builders))
	mutators := make([]Mutator, len(ujcb.builders))
	for i := range ujcb.builders {
		func(i int, root context.Context) {
			builder := ujcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadJobMutation)
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
					_, err = mutators[i+1].Mutate(root, ujcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ujcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ujcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ujcb *UploadJobCreateBulk) SaveX(ctx context.Context) []*UploadJob {
	v, err := ujcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ujcb *UploadJobCreateBulk) Exec(ctx context.Context) error {
	_, err := ujcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ujcb *UploadJobCreateBulk) ExecX(ctx context.Context) {
	if err := ujcb.Exec(ctx); err != nil {
		panic(err)
	}
}
