// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/predicate"
	"invoice-tracker/gen/ent/uploadjob"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UploadJobQuery is the builder for querying UploadJob entities.
type UploadJobQuery struct {
	config
	ctx         *QueryContext
	order       []uploadjob.OrderOption
	inters      []Interceptor
	predicates  []predicate.UploadJob
	withInvoice *InvoiceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UploadJobQuery builder.
func (ujq *UploadJobQuery) Where(ps ...predicate.UploadJob) *UploadJobQuery {
	ujq.predicates = append(ujq.predicates, ps...)
	return ujq
}

// Limit the number of records to be returned by this query.
func (ujq *UploadJobQuery) Limit(limit int) *UploadJobQuery {
	ujq.ctx.Limit = &limit
	return ujq
}

// Offset to start from.
func (ujq *UploadJobQuery) Offset(offset int) *UploadJobQuery {
	ujq.ctx.Offset = &offset
	return ujq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ujq *UploadJobQuery) Unique(unique bool) *UploadJobQuery {
	ujq.ctx.Unique = &unique
	return ujq
}

// Order specifies how the records should be ordered.
func (ujq *UploadJobQuery) Order(o ...uploadjob.OrderOption) *UploadJobQuery {
	ujq.order = append(ujq.order, o...)
	return ujq
}

// QueryInvoice chains the current query on the "invoice" edge.
func (ujq *UploadJobQuery) QueryInvoice() *InvoiceQuery {
	query := (&InvoiceClient{config: ujq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ujq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ujq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadjob.Table, uploadjob.FieldID, selector),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadjob.InvoiceTable, uploadjob.InvoiceColumn),
		)
		fromU = sqlgraph.SetNeighbors(ujq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UploadJob entity from the query.
// Returns a *NotFoundError when no UploadJob was found.
func (ujq *UploadJobQuery) First(ctx context.Context) (*UploadJob, error) {
	nodes, err := ujq.Limit(1).All(setContextOp(ctx, ujq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{uploadjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ujq *UploadJobQuery) FirstX(ctx context.Context) *UploadJob {
	node, err := ujq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UploadJob ID from the query.
// Returns a *NotFoundError when no UploadJob ID was found.
func (ujq *UploadJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ujq.Limit(1).IDs(setContextOp(ctx, ujq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{uploadjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ujq *UploadJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ujq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UploadJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UploadJob entity is found.
// Returns a *NotFoundError when no UploadJob entities are found.
func (ujq *UploadJobQuery) Only(ctx context.Context) (*UploadJob, error) {
	nodes, err := ujq.Limit(2).All(setContextOp(ctx, ujq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{uploadjob.Label}
	default:
		return nil, &NotSingularError{uploadjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ujq *UploadJobQuery) OnlyX(ctx context.Context) *UploadJob {
	node, err := ujq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UploadJob ID in the query.
// Returns a *NotSingularError when more than one UploadJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (ujq *UploadJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ujq.Limit(2).IDs(setContextOp(ctx, ujq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{uploadjob.Label}
	default:
		err = &NotSingularError{uploadjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ujq *UploadJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ujq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UploadJobs.
func (ujq *UploadJobQuery) All(ctx context.Context) ([]*UploadJob, error) {
	ctx = setContextOp(ctx, ujq.ctx, ent.OpQueryAll)
	if err := ujq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UploadJob, *UploadJobQuery]()
	return withInterceptors[[]*UploadJob](ctx, ujq, qr, ujq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ujq *UploadJobQuery) AllX(ctx context.Context) []*UploadJob {
	nodes, err := ujq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UploadJob IDs.
func (ujq *UploadJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ujq.ctx.Unique == nil && ujq.path != nil {
		ujq.Unique(true)
	}
	ctx = setContextOp(ctx, ujq.ctx, ent.OpQueryIDs)
	if err = ujq.Select(uploadjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ujq *UploadJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ujq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ujq *UploadJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ujq.ctx, ent.OpQueryCount)
	if err := ujq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ujq, querierCount[*UploadJobQuery](), ujq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ujq *UploadJobQuery) CountX(ctx context.Context) int {
	count, err := ujq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ujq *UploadJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ujq.ctx, ent.OpQueryExist)
	switch _, err := ujq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ujq *UploadJobQuery) ExistX(ctx context.Context) bool {
	exist, err := ujq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UploadJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ujq *UploadJobQuery) Clone() *UploadJobQuery {
	if ujq == nil {
		return nil
	}
	return &UploadJobQuery{
		config:      ujq.config,
		ctx:         ujq.ctx.Clone(),
		order:       append([]uploadjob.OrderOption{}, ujq.order...),
		inters:      append([]Interceptor{}, ujq.inters...),
		predicates:  append([]predicate.UploadJob{}, ujq.predicates...),
		withInvoice: ujq.withInvoice.Clone(),
		// clone intermediate query.
		sql:  ujq.sql.Clone(),
		path: ujq.path,
	}
}

// WithInvoice tells the query-builder to eager-load the nodes that are connected to
// the "invoice" edge. The optional arguments are used to configure the query builder of the edge.
func (ujq *UploadJobQuery) WithInvoice(opts ...func(*InvoiceQuery)) *UploadJobQuery {
	query := (&InvoiceClient{config: ujq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ujq.withInvoice = query
	return ujq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OwnerID string `json:"owner_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UploadJob.Query().
//		GroupBy(uploadjob.FieldOwnerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ujq *UploadJobQuery) GroupBy(field string, fields ...string) *UploadJobGroupBy {
	ujq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UploadJobGroupBy{build: ujq}
	grbuild.flds = &ujq.ctx.Fields
	grbuild.label = uploadjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OwnerID string `json:"owner_id,omitempty"`
//	}
//
//	client.UploadJob.Query().
//		Select(uploadjob.FieldOwnerID).
//		Scan(ctx, &v)
func (ujq *UploadJobQuery) Select(fields ...string) *UploadJobSelect {
	ujq.ctx.Fields = append(ujq.ctx.Fields, fields...)
	sbuild := &UploadJobSelect{UploadJobQuery: ujq}
	sbuild.label = uploadjob.Label
	sbuild.flds, sbuild.scan = &ujq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UploadJobSelect configured with the given aggregations.
func (ujq *UploadJobQuery) Aggregate(fns ...AggregateFunc) *UploadJobSelect {
	return ujq.Select().Aggregate(fns...)
}

func (ujq *UploadJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ujq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ujq); err != nil {
				return err
			}
		}
	}
	for _, f := range ujq.ctx.Fields {
		if !uploadjob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ujq.path != nil {
		prev, err := ujq.path(ctx)
		if err != nil {
			return err
		}
		ujq.sql = prev
	}
	return nil
}

func (ujq *UploadJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UploadJob, error) {
	var (
		nodes       = []*UploadJob{}
		_spec       = ujq.querySpec()
		loadedTypes = [1]bool{
			ujq.withInvoice != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UploadJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UploadJob{config: ujq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ujq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ujq.withInvoice; query != nil {
		if err := ujq.loadInvoice(ctx, query, nodes, nil,
			func(n *UploadJob, e *Invoice) { n.Edges.Invoice = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ujq *UploadJobQuery) loadInvoice(ctx context.Context, query *InvoiceQuery, nodes []*UploadJob, init func(*UploadJob), assign func(*UploadJob, *Invoice)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*UploadJob)
	for i := range nodes {
		if nodes[i].InvoiceID == nil {
			continue
		}
		fk := *nodes[i].InvoiceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(invoice.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "invoice_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ujq *UploadJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ujq.querySpec()
	_spec.Node.Columns = ujq.ctx.Fields
	if len(ujq.ctx.Fields) > 0 {
		_spec.Unique = ujq.ctx.Unique != nil && *ujq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ujq.driver, _spec)
}

func (ujq *UploadJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	_spec.From = ujq.sql
	if unique := ujq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ujq.path != nil {
		_spec.Unique = true
	}
	if fields := ujq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadjob.FieldID)
		for i := range fields {
			if fields[i] != uploadjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ujq.withInvoice != nil {
			_spec.Node.AddColumnOnce(uploadjob.FieldInvoiceID)
		}
	}
	if ps := ujq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ujq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ujq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ujq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ujq *UploadJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ujq.driver.Dialect())
	t1 := builder.Table(uploadjob.Table)
	columns := ujq.ctx.Fields
	if len(columns) == 0 {
		columns = uploadjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ujq.sql != nil {
		selector = ujq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ujq.ctx.Unique != nil && *ujq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ujq.predicates {
		p(selector)
	}
	for _, p := range ujq.order {
		p(selector)
	}
	if offset := ujq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ujq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UploadJobGroupBy is the group-by builder for UploadJob entities.
type UploadJobGroupBy struct {
	selector
	build *UploadJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ujgb *UploadJobGroupBy) Aggregate(fns ...AggregateFunc) *UploadJobGroupBy {
	ujgb.fns = append(ujgb.fns, fns...)
	return ujgb
}

// Scan applies the selector query and scans the result into the given value.
func (ujgb *UploadJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ujgb.build.ctx, ent.OpQueryGroupBy)
	if err := ujgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadJobQuery, *UploadJobGroupBy](ctx, ujgb.build, ujgb, ujgb.build.inters, v)
}

func (ujgb *UploadJobGroupBy) sqlScan(ctx context.Context, root *UploadJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ujgb.fns))
	for _, fn := range ujgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ujgb.flds)+len(ujgb.fns))
		for _, f := range *ujgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ujgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ujgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UploadJobSelect is the builder for selecting fields of UploadJob entities.
type UploadJobSelect struct {
	*UploadJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ujs *UploadJobSelect) Aggregate(fns ...AggregateFunc) *UploadJobSelect {
	ujs.fns = append(ujs.fns, fns...)
	return ujs
}

// Scan applies the selector query and scans the result into the given value.
func (ujs *UploadJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ujs.ctx, ent.OpQuerySelect)
	if err := ujs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadJobQuery, *UploadJobSelect](ctx, ujs.UploadJobQuery, ujs, ujs.inters, v)
}

func (ujs *UploadJobSelect) sqlScan(ctx context.Context, root *UploadJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ujs.fns))
	for _, fn := range ujs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ujs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ujs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
