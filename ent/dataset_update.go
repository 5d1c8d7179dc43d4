// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rizve/percepta/ent/dataset"
	"github.com/rizve/percepta/ent/predicate"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdate) SetName(v string) *DatasetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableName(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSurvey sets the "survey" field.
func (_u *DatasetUpdate) SetSurvey(v string) *DatasetUpdate {
	_u.mutation.SetSurvey(v)
	return _u
}

// SetNillableSurvey sets the "survey" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableSurvey(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetSurvey(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DatasetUpdate) SetSource(v string) *DatasetUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableSource(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *DatasetUpdate) SetRowCount(v int) *DatasetUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRowCount(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *DatasetUpdate) AddRowCount(v int) *DatasetUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Survey(); ok {
		if err := dataset.SurveyValidator(v); err != nil {
			return &ValidationError{Name: "survey", err: fmt.Errorf(`ent: validator failed for field "Dataset.survey": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Survey(); ok {
		_spec.SetField(dataset.FieldSurvey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(dataset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(dataset.FieldRowCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetName sets the "name" field.
func (_u *DatasetUpdateOne) SetName(v string) *DatasetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableName(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSurvey sets the "survey" field.
func (_u *DatasetUpdateOne) SetSurvey(v string) *DatasetUpdateOne {
	_u.mutation.SetSurvey(v)
	return _u
}

// SetNillableSurvey sets the "survey" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableSurvey(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetSurvey(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DatasetUpdateOne) SetSource(v string) *DatasetUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableSource(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *DatasetUpdateOne) SetRowCount(v int) *DatasetUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRowCount(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *DatasetUpdateOne) AddRowCount(v int) *DatasetUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Survey(); ok {
		if err := dataset.SurveyValidator(v); err != nil {
			return &ValidationError{Name: "survey", err: fmt.Errorf(`ent: validator failed for field "Dataset.survey": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Survey(); ok {
		_spec.SetField(dataset.FieldSurvey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(dataset.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(dataset.FieldRowCount, field.TypeInt, value)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
