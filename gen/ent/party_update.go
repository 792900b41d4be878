// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"invoice-tracker/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PartyUpdate is the builder for updating Party entities.
type PartyUpdate struct {
	config
	hooks    []Hook
	mutation *PartyMutation
}

// Where appends a list predicates to the PartyUpdate builder.
func (pu *PartyUpdate) Where(ps ...predicate.Party) *PartyUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetName sets the "name" field.
func (pu *PartyUpdate) SetName(s string) *PartyUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *PartyUpdate) SetNillableName(s *string) *PartyUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetKind sets the "kind" field.
func (pu *PartyUpdate) SetKind(s string) *PartyUpdate {
	pu.mutation.SetKind(s)
	return pu
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (pu *PartyUpdate) SetNillableKind(s *string) *PartyUpdate {
	if s != nil {
		pu.SetKind(*s)
	}
	return pu
}

// SetTaxID sets the "tax_id" field.
func (pu *PartyUpdate) SetTaxID(s string) *PartyUpdate {
	pu.mutation.SetTaxID(s)
	return pu
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (pu *PartyUpdate) SetNillableTaxID(s *string) *PartyUpdate {
	if s != nil {
		pu.SetTaxID(*s)
	}
	return pu
}

// ClearTaxID clears the value of the "tax_id" field.
func (pu *PartyUpdate) ClearTaxID() *PartyUpdate {
	pu.mutation.ClearTaxID()
	return pu
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (pu *PartyUpdate) AddInvoiceIDs(ids ...uuid.UUID) *PartyUpdate {
	pu.mutation.AddInvoiceIDs(ids...)
	return pu
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (pu *PartyUpdate) AddInvoices(i ...*Invoice) *PartyUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return pu.AddInvoiceIDs(ids...)
}

// Mutation returns the PartyMutation object of the builder.
func (pu *PartyUpdate) Mutation() *PartyMutation {
	return pu.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (pu *PartyUpdate) ClearInvoices() *PartyUpdate {
	pu.mutation.ClearInvoices()
	return pu
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (pu *PartyUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *PartyUpdate {
	pu.mutation.RemoveInvoiceIDs(ids...)
	return pu
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (pu *PartyUpdate) RemoveInvoices(i ...*Invoice) *PartyUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return pu.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PartyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PartyUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PartyUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PartyUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PartyUpdate) check() error {
	if v, ok := pu.mutation.Name(); ok {
		if err := party.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Party.name": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Kind(); ok {
		if err := party.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Party.kind": %w`, err)}
		}
	}
	return nil
}

func (pu *PartyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(party.Table, party.Columns, sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(party.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.Kind(); ok {
		_spec.SetField(party.FieldKind, field.TypeString, value)
	}
	if value, ok := pu.mutation.TaxID(); ok {
		_spec.SetField(party.FieldTaxID, field.TypeString, value)
	}
	if pu.mutation.TaxIDCleared() {
		_spec.ClearField(party.FieldTaxID, field.TypeString)
	}
	if pu.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !pu.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{party.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PartyUpdateOne is the builder for updating a single Party entity.
type PartyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartyMutation
}

// SetName sets the "name" field.
func (puo *PartyUpdateOne) SetName(s string) *PartyUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *PartyUpdateOne) SetNillableName(s *string) *PartyUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetKind sets the "kind" field.
func (puo *PartyUpdateOne) SetKind(s string) *PartyUpdateOne {
	puo.mutation.SetKind(s)
	return puo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (puo *PartyUpdateOne) SetNillableKind(s *string) *PartyUpdateOne {
	if s != nil {
		puo.SetKind(*s)
	}
	return puo
}

// SetTaxID sets the "tax_id" field.
func (puo *PartyUpdateOne) SetTaxID(s string) *PartyUpdateOne {
	puo.mutation.SetTaxID(s)
	return puo
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (puo *PartyUpdateOne) SetNillableTaxID(s *string) *PartyUpdateOne {
	if s != nil {
		puo.SetTaxID(*s)
	}
	return puo
}

// ClearTaxID clears the value of the "tax_id" field.
func (puo *PartyUpdateOne) ClearTaxID() *PartyUpdateOne {
	puo.mutation.ClearTaxID()
	return puo
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (puo *PartyUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *PartyUpdateOne {
	puo.mutation.AddInvoiceIDs(ids...)
	return puo
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (puo *PartyUpdateOne) AddInvoices(i ...*Invoice) *PartyUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return puo.AddInvoiceIDs(ids...)
}

// Mutation returns the PartyMutation object of the builder.
func (puo *PartyUpdateOne) Mutation() *PartyMutation {
	return puo.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (puo *PartyUpdateOne) ClearInvoices() *PartyUpdateOne {
	puo.mutation.ClearInvoices()
	return puo
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (puo *PartyUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *PartyUpdateOne {
	puo.mutation.RemoveInvoiceIDs(ids...)
	return puo
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (puo *PartyUpdateOne) RemoveInvoices(i ...*Invoice) *PartyUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return puo.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the PartyUpdate builder.
func (puo *PartyUpdateOne) Where(ps ...predicate.Party) *PartyUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PartyUpdateOne) Select(field string, fields ...string) *PartyUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Party entity.
func (puo *PartyUpdateOne) Save(ctx context.Context) (*Party, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PartyUpdateOne) SaveX(ctx context.Context) *Party {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PartyUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PartyUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PartyUpdateOne) check() error {
	if v, ok := puo.mutation.Name(); ok {
		if err := party.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Party.name": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Kind(); ok {
		if err := party.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Party.kind": %w`, err)}
		}
	}
	return nil
}

func (puo *PartyUpdateOne) sqlSave(ctx context.Context) (_node *Party, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(party.Table, party.Columns, sqlgraph.NewFieldSpec(party.FieldID, field.TypeUUID))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Party.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, party.FieldID)
		for _, f := range fields {
			if !party.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != party.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(party.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.Kind(); ok {
		_spec.SetField(party.FieldKind, field.TypeString, value)
	}
	if value, ok := puo.mutation.TaxID(); ok {
		_spec.SetField(party.FieldTaxID, field.TypeString, value)
	}
	if puo.mutation.TaxIDCleared() {
		_spec.ClearField(party.FieldTaxID, field.TypeString)
	}
	if puo.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !puo.mutation.InvoicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Party{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{party.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
