// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PartyCreate is the builder for creating a Party entity.
type PartyCreate struct {
	config
	mutation *PartyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (pc *PartyCreate) SetName(s string) *PartyCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetKind sets the "kind" field.
func (pc *PartyCreate) SetKind(s string) *PartyCreate {
	pc.mutation.SetKind(s)
	return pc
}

// SetTaxID sets the "tax_id" field.
func (pc *PartyCreate) SetTaxID(s string) *PartyCreate {
	pc.mutation.SetTaxID(s)
	return pc
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (pc *PartyCreate) SetNillableTaxID(s *string) *PartyCreate {
	if s != nil {
		pc.SetTaxID(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PartyCreate) SetCreatedAt(t time.Time) *PartyCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PartyCreate) SetNillableCreatedAt(t *time.Time) *PartyCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *PartyCreate) SetID(u uuid.UUID) *PartyCreate {
	pc.mutation.SetID(u)
	return pc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pc *PartyCreate) SetNillableID(u *uuid.UUID) *PartyCreate {
	if u != nil {
		pc.SetID(*u)
	}
	return pc
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (pc *PartyCreate) AddInvoiceIDs(ids ...uuid.UUID) *PartyCreate {
	pc.mutation.AddInvoiceIDs(ids...)
	return pc
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (pc *PartyCreate) AddInvoices(i ...*Invoice) *PartyCreate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return pc.AddInvoiceIDs(ids...)
}

// Mutation returns the PartyMutation object of the builder.
func (pc *PartyCreate) Mutation() *PartyMutation {
	return pc.mutation
}

// Save creates the Party in the database.
func (pc *PartyCreate) Save(ctx context.Context) (*Party, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PartyCreate) SaveX(ctx context.Context) *Party {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PartyCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PartyCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PartyCreate) defaults() {
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := party.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.ID(); !ok {
		v := party.DefaultID()
		pc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PartyCreate) check() error {
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Party.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := party.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Party.name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Party.kind"`)}
	}
	if v, ok := pc.mutation.Kind(); ok {
		if err := party.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Party.kind": %w`, err)}
		}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Party.created_at"`)}
	}
	return nil
}

func (pc *PartyCreate) sqlSave(ctx context.Context) (*Party, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
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
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PartyCreate) createSpec() (*Party, *sqlgraph.CreateSpec) {
	var (
		_node = &Party{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(party.Table, sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(party.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.Kind(); ok {
		_spec.SetField(party.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := pc.mutation.TaxID(); ok {
		_spec.SetField(party.FieldTaxID, field.TypeString, value)
		_node.TaxID = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(party.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := pc.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   party.InvoicesTable,
			Columns: []string{party.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PartyCreateBulk is the builder for creating many Party entities in bulk.
type PartyCreateBulk struct {
	config
	err      error
	builders []*PartyCreate
}

// Save creates the Party entities in the database.
func (pcb *PartyCreateBulk) Save(ctx context.Context) ([]*Party, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Party, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartyMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PartyCreateBulk) SaveX(ctx context.Context) []*Party {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PartyCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PartyCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
