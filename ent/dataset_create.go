// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rizve/percepta/ent/dataset"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *DatasetCreate) SetDatasetID(v string) *DatasetCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DatasetCreate) SetName(v string) *DatasetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSurvey sets the "survey" field.
func (_c *DatasetCreate) SetSurvey(v string) *DatasetCreate {
	_c.mutation.SetSurvey(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *DatasetCreate) SetSource(v string) *DatasetCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableSource(v *string) *DatasetCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *DatasetCreate) SetRowCount(v int) *DatasetCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableRowCount(v *int) *DatasetCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *DatasetCreate) SetImportedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableImportedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := dataset.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		v := dataset.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := dataset.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "Dataset.dataset_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Dataset.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Survey(); !ok {
		return &ValidationError{Name: "survey", err: errors.New(`ent: missing required field "Dataset.survey"`)}
	}
	if v, ok := _c.mutation.Survey(); ok {
		if err := dataset.SurveyValidator(v); err != nil {
			return &ValidationError{Name: "survey", err: fmt.Errorf(`ent: validator failed for field "Dataset.survey": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Dataset.source"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "Dataset.row_count"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "Dataset.imported_at"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(dataset.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Survey(); ok {
		_spec.SetField(dataset.FieldSurvey, field.TypeString, value)
		_node.Survey = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(dataset.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(dataset.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(dataset.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
