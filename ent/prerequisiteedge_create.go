// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
)

// PrerequisiteEdgeCreate is the builder for creating a PrerequisiteEdge entity.
type PrerequisiteEdgeCreate struct {
	config
	mutation *PrerequisiteEdgeMutation
	hooks    []Hook
}

// SetConceptCode sets the "concept_code" field.
func (_c *PrerequisiteEdgeCreate) SetConceptCode(v string) *PrerequisiteEdgeCreate {
	_c.mutation.SetConceptCode(v)
	return _c
}

// SetPrerequisiteCode sets the "prerequisite_code" field.
func (_c *PrerequisiteEdgeCreate) SetPrerequisiteCode(v string) *PrerequisiteEdgeCreate {
	_c.mutation.SetPrerequisiteCode(v)
	return _c
}

// Mutation returns the PrerequisiteEdgeMutation object of the builder.
func (_c *PrerequisiteEdgeCreate) Mutation() *PrerequisiteEdgeMutation {
	return _c.mutation
}

// Save creates the PrerequisiteEdge in the database.
func (_c *PrerequisiteEdgeCreate) Save(ctx context.Context) (*PrerequisiteEdge, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrerequisiteEdgeCreate) SaveX(ctx context.Context) *PrerequisiteEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrerequisiteEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrerequisiteEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrerequisiteEdgeCreate) check() error {
	if _, ok := _c.mutation.ConceptCode(); !ok {
		return &ValidationError{Name: "concept_code", err: errors.New(`ent: missing required field "PrerequisiteEdge.concept_code"`)}
	}
	if v, ok := _c.mutation.ConceptCode(); ok {
		if err := prerequisiteedge.ConceptCodeValidator(v); err != nil {
			return &ValidationError{Name: "concept_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.concept_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrerequisiteCode(); !ok {
		return &ValidationError{Name: "prerequisite_code", err: errors.New(`ent: missing required field "PrerequisiteEdge.prerequisite_code"`)}
	}
	if v, ok := _c.mutation.PrerequisiteCode(); ok {
		if err := prerequisiteedge.PrerequisiteCodeValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.prerequisite_code": %w`, err)}
		}
	}
	return nil
}

func (_c *PrerequisiteEdgeCreate) sqlSave(ctx context.Context) (*PrerequisiteEdge, error) {
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

func (_c *PrerequisiteEdgeCreate) createSpec() (*PrerequisiteEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &PrerequisiteEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prerequisiteedge.Table, sqlgraph.NewFieldSpec(prerequisiteedge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConceptCode(); ok {
		_spec.SetField(prerequisiteedge.FieldConceptCode, field.TypeString, value)
		_node.ConceptCode = value
	}
	if value, ok := _c.mutation.PrerequisiteCode(); ok {
		_spec.SetField(prerequisiteedge.FieldPrerequisiteCode, field.TypeString, value)
		_node.PrerequisiteCode = value
	}
	return _node, _spec
}

// PrerequisiteEdgeCreateBulk is the builder for creating many PrerequisiteEdge entities in bulk.
type PrerequisiteEdgeCreateBulk struct {
	config
	err      error
	builders []*PrerequisiteEdgeCreate
}

// Save creates the PrerequisiteEdge entities in the database.
func (_c *PrerequisiteEdgeCreateBulk) Save(ctx context.Context) ([]*PrerequisiteEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PrerequisiteEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrerequisiteEdgeMutation)
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
func (_c *PrerequisiteEdgeCreateBulk) SaveX(ctx context.Context) []*PrerequisiteEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrerequisiteEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrerequisiteEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
