// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rizve/percepta/ent/participantrow"
)

// ParticipantRowCreate is the builder for creating a ParticipantRow entity.
type ParticipantRowCreate struct {
	config
	mutation *ParticipantRowMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *ParticipantRowCreate) SetDatasetID(v string) *ParticipantRowCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *ParticipantRowCreate) SetRowIndex(v int) *ParticipantRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCells sets the "cells" field.
func (_c *ParticipantRowCreate) SetCells(v map[string]string) *ParticipantRowCreate {
	_c.mutation.SetCells(v)
	return _c
}

// Mutation returns the ParticipantRowMutation object of the builder.
func (_c *ParticipantRowCreate) Mutation() *ParticipantRowMutation {
	return _c.mutation
}

// Save creates the ParticipantRow in the database.
func (_c *ParticipantRowCreate) Save(ctx context.Context) (*ParticipantRow, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantRowCreate) SaveX(ctx context.Context) *ParticipantRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantRowCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "ParticipantRow.dataset_id"`)}
	}
	if v, ok := _c.mutation.DatasetID(); ok {
		if err := participantrow.DatasetIDValidator(v); err != nil {
			return &ValidationError{Name: "dataset_id", err: fmt.Errorf(`ent: validator failed for field "ParticipantRow.dataset_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "ParticipantRow.row_index"`)}
	}
	if _, ok := _c.mutation.Cells(); !ok {
		return &ValidationError{Name: "cells", err: errors.New(`ent: missing required field "ParticipantRow.cells"`)}
	}
	return nil
}

func (_c *ParticipantRowCreate) sqlSave(ctx context.Context) (*ParticipantRow, error) {
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

func (_c *ParticipantRowCreate) createSpec() (*ParticipantRow, *sqlgraph.CreateSpec) {
	var (
		_node = &ParticipantRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participantrow.Table, sqlgraph.NewFieldSpec(participantrow.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(participantrow.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(participantrow.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Cells(); ok {
		_spec.SetField(participantrow.FieldCells, field.TypeJSON, value)
		_node.Cells = value
	}
	return _node, _spec
}

// ParticipantRowCreateBulk is the builder for creating many ParticipantRow entities in bulk.
type ParticipantRowCreateBulk struct {
	config
	err      error
	builders []*ParticipantRowCreate
}

// Save creates the ParticipantRow entities in the database.
func (_c *ParticipantRowCreateBulk) Save(ctx context.Context) ([]*ParticipantRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParticipantRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantRowMutation)
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
func (_c *ParticipantRowCreateBulk) SaveX(ctx context.Context) []*ParticipantRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
