// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

// TutorDecisionCreate is the builder for creating a TutorDecision entity.
type TutorDecisionCreate struct {
	config
	mutation *TutorDecisionMutation
	hooks    []Hook
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *TutorDecisionCreate) SetRecommendationID(v string) *TutorDecisionCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetTutorID sets the "tutor_id" field.
func (_c *TutorDecisionCreate) SetTutorID(v string) *TutorDecisionCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *TutorDecisionCreate) SetDecision(v string) *TutorDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TutorDecisionCreate) SetNotes(v string) *TutorDecisionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TutorDecisionCreate) SetNillableNotes(v *string) *TutorDecisionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *TutorDecisionCreate) SetDecidedAt(v time.Time) *TutorDecisionCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TutorDecisionCreate) SetID(v string) *TutorDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TutorDecisionCreate) SetNillableID(v *string) *TutorDecisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TutorDecisionMutation object of the builder.
func (_c *TutorDecisionCreate) Mutation() *TutorDecisionMutation {
	return _c.mutation
}

// Save creates the TutorDecision in the database.
func (_c *TutorDecisionCreate) Save(ctx context.Context) (*TutorDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorDecisionCreate) SaveX(ctx context.Context) *TutorDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorDecisionCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := tutordecision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorDecisionCreate) check() error {
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "TutorDecision.recommendation_id"`)}
	}
	if v, ok := _c.mutation.RecommendationID(); ok {
		if err := tutordecision.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.recommendation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`ent: missing required field "TutorDecision.tutor_id"`)}
	}
	if v, ok := _c.mutation.TutorID(); ok {
		if err := tutordecision.TutorIDValidator(v); err != nil {
			return &ValidationError{Name: "tutor_id", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.tutor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "TutorDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := tutordecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecidedAt(); !ok {
		return &ValidationError{Name: "decided_at", err: errors.New(`ent: missing required field "TutorDecision.decided_at"`)}
	}
	return nil
}

func (_c *TutorDecisionCreate) sqlSave(ctx context.Context) (*TutorDecision, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TutorDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TutorDecisionCreate) createSpec() (*TutorDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutordecision.Table, sqlgraph.NewFieldSpec(tutordecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(tutordecision.FieldRecommendationID, field.TypeString, value)
		_node.RecommendationID = value
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(tutordecision.FieldTutorID, field.TypeString, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(tutordecision.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(tutordecision.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(tutordecision.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = value
	}
	return _node, _spec
}

// TutorDecisionCreateBulk is the builder for creating many TutorDecision entities in bulk.
type TutorDecisionCreateBulk struct {
	config
	err      error
	builders []*TutorDecisionCreate
}

// Save creates the TutorDecision entities in the database.
func (_c *TutorDecisionCreateBulk) Save(ctx context.Context) ([]*TutorDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorDecisionMutation)
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
func (_c *TutorDecisionCreateBulk) SaveX(ctx context.Context) []*TutorDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
