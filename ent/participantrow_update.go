// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rizve/percepta/ent/participantrow"
	"github.com/rizve/percepta/ent/predicate"
)

// ParticipantRowUpdate is the builder for updating ParticipantRow entities.
type ParticipantRowUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantRowMutation
}

// Where appends a list predicates to the ParticipantRowUpdate builder.
func (_u *ParticipantRowUpdate) Where(ps ...predicate.ParticipantRow) *ParticipantRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *ParticipantRowUpdate) SetRowIndex(v int) *ParticipantRowUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *ParticipantRowUpdate) SetNillableRowIndex(v *int) *ParticipantRowUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *ParticipantRowUpdate) AddRowIndex(v int) *ParticipantRowUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCells sets the "cells" field.
func (_u *ParticipantRowUpdate) SetCells(v map[string]string) *ParticipantRowUpdate {
	_u.mutation.SetCells(v)
	return _u
}

// Mutation returns the ParticipantRowMutation object of the builder.
func (_u *ParticipantRowUpdate) Mutation() *ParticipantRowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParticipantRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(participantrow.Table, participantrow.Columns, sqlgraph.NewFieldSpec(participantrow.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(participantrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(participantrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cells(); ok {
		_spec.SetField(participantrow.FieldCells, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantRowUpdateOne is the builder for updating a single ParticipantRow entity.
type ParticipantRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantRowMutation
}

// SetRowIndex sets the "row_index" field.
func (_u *ParticipantRowUpdateOne) SetRowIndex(v int) *ParticipantRowUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *ParticipantRowUpdateOne) SetNillableRowIndex(v *int) *ParticipantRowUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *ParticipantRowUpdateOne) AddRowIndex(v int) *ParticipantRowUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCells sets the "cells" field.
func (_u *ParticipantRowUpdateOne) SetCells(v map[string]string) *ParticipantRowUpdateOne {
	_u.mutation.SetCells(v)
	return _u
}

// Mutation returns the ParticipantRowMutation object of the builder.
func (_u *ParticipantRowUpdateOne) Mutation() *ParticipantRowMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParticipantRowUpdate builder.
func (_u *ParticipantRowUpdateOne) Where(ps ...predicate.ParticipantRow) *ParticipantRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantRowUpdateOne) Select(field string, fields ...string) *ParticipantRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParticipantRow entity.
func (_u *ParticipantRowUpdateOne) Save(ctx context.Context) (*ParticipantRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantRowUpdateOne) SaveX(ctx context.Context) *ParticipantRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ParticipantRowUpdateOne) sqlSave(ctx context.Context) (_node *ParticipantRow, err error) {
	_spec := sqlgraph.NewUpdateSpec(participantrow.Table, participantrow.Columns, sqlgraph.NewFieldSpec(participantrow.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParticipantRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participantrow.FieldID)
		for _, f := range fields {
			if !participantrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participantrow.FieldID {
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
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(participantrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(participantrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cells(); ok {
		_spec.SetField(participantrow.FieldCells, field.TypeJSON, value)
	}
	_node = &ParticipantRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
