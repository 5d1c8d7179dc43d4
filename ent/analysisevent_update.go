// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rizve/percepta/ent/analysisevent"
	"github.com/rizve/percepta/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *AnalysisEventUpdate) SetDatasetID(v string) *AnalysisEventUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDatasetID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnalysisEventUpdate) SetKind(v string) *AnalysisEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableKind(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *AnalysisEventUpdate) SetRows(v int) *AnalysisEventUpdate {
	_u.mutation.ResetRows()
	_u.mutation.SetRows(v)
	return _u
}

// SetNillableRows sets the "rows" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableRows(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetRows(*v)
	}
	return _u
}

// AddRows adds value to the "rows" field.
func (_u *AnalysisEventUpdate) AddRows(v int) *AnalysisEventUpdate {
	_u.mutation.AddRows(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *AnalysisEventUpdate) SetOutput(v string) *AnalysisEventUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableOutput(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysisevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(analysisevent.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysisevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(analysisevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRows(); ok {
		_spec.AddField(analysisevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(analysisevent.FieldOutput, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *AnalysisEventUpdateOne) SetDatasetID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDatasetID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnalysisEventUpdateOne) SetKind(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableKind(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *AnalysisEventUpdateOne) SetRows(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetRows()
	_u.mutation.SetRows(v)
	return _u
}

// SetNillableRows sets the "rows" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableRows(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetRows(*v)
	}
	return _u
}

// AddRows adds value to the "rows" field.
func (_u *AnalysisEventUpdateOne) AddRows(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddRows(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *AnalysisEventUpdateOne) SetOutput(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableOutput(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysisevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(analysisevent.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysisevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(analysisevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRows(); ok {
		_spec.AddField(analysisevent.FieldRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(analysisevent.FieldOutput, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
