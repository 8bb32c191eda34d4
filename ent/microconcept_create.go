// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
)

// MicroConceptCreate is the builder for creating a MicroConcept entity.
type MicroConceptCreate struct {
	config
	mutation *MicroConceptMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *MicroConceptCreate) SetCode(v string) *MicroConceptCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MicroConceptCreate) SetName(v string) *MicroConceptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MicroConceptCreate) SetSubject(v string) *MicroConceptCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *MicroConceptCreate) SetTerm(v string) *MicroConceptCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *MicroConceptCreate) SetActive(v bool) *MicroConceptCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *MicroConceptCreate) SetNillableActive(v *bool) *MicroConceptCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the MicroConceptMutation object of the builder.
func (_c *MicroConceptCreate) Mutation() *MicroConceptMutation {
	return _c.mutation
}

// Save creates the MicroConcept in the database.
func (_c *MicroConceptCreate) Save(ctx context.Context) (*MicroConcept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MicroConceptCreate) SaveX(ctx context.Context) *MicroConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MicroConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MicroConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MicroConceptCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := microconcept.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MicroConceptCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "MicroConcept.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := microconcept.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MicroConcept.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := microconcept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "MicroConcept.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := microconcept.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "MicroConcept.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := microconcept.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "MicroConcept.active"`)}
	}
	return nil
}

func (_c *MicroConceptCreate) sqlSave(ctx context.Context) (*MicroConcept, error) {
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

func (_c *MicroConceptCreate) createSpec() (*MicroConcept, *sqlgraph.CreateSpec) {
	var (
		_node = &MicroConcept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(microconcept.Table, sqlgraph.NewFieldSpec(microconcept.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(microconcept.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(microconcept.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(microconcept.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(microconcept.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(microconcept.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// MicroConceptCreateBulk is the builder for creating many MicroConcept entities in bulk.
type MicroConceptCreateBulk struct {
	config
	err      error
	builders []*MicroConceptCreate
}

// Save creates the MicroConcept entities in the database.
func (_c *MicroConceptCreateBulk) Save(ctx context.Context) ([]*MicroConcept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MicroConcept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MicroConceptMutation)
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
func (_c *MicroConceptCreateBulk) SaveX(ctx context.Context) []*MicroConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MicroConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MicroConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
