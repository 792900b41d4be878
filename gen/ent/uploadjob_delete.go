// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"invoice-tracker/gen/ent/predicate"
	"invoice-tracker/gen/ent/uploadjob"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UploadJobDelete is the builder for deleting a UploadJob entity.
type UploadJobDelete struct {
	config
	hooks    []Hook
	mutation *UploadJobMutation
}

// Where appends a list predicates to the UploadJobDelete builder.
func (ujd *UploadJobDelete) Where(ps ...predicate.UploadJob) *UploadJobDelete {
	ujd.mutation.Where(ps...)
	return ujd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ujd *UploadJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ujd.sqlExec, ujd.mutation, ujd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ujd *UploadJobDelete) ExecX(ctx context.Context) int {
	n, err := ujd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ujd *UploadJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(uploadjob.Table, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	if ps := ujd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ujd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ujd.mutation.done = true
	return affected, err
}

// UploadJobDeleteOne is the builder for deleting a single UploadJob entity.
type UploadJobDeleteOne struct {
	ujd *UploadJobDelete
}

// Where appends a list predicates to the UploadJobDelete builder.
func (ujdo *UploadJobDeleteOne) Where(ps ...predicate.UploadJob) *UploadJobDeleteOne {
	ujdo.ujd.mutation.Where(ps...)
	return ujdo
}

// Exec executes the deletion query.
func (ujdo *UploadJobDeleteOne) Exec(ctx context.Context) error {
	n, err := ujdo.ujd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{uploadjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ujdo *UploadJobDeleteOne) ExecX(ctx context.Context) {
	if err := ujdo.Exec(ctx); err != nil {
		panic(err)
	}
}
