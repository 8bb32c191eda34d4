// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
)

// RecommendationOutcomeCreate is the builder for creating a RecommendationOutcome entity.
type RecommendationOutcomeCreate struct {
	config
	mutation *RecommendationOutcomeMutation
	hooks    []Hook
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *RecommendationOutcomeCreate) SetRecommendationID(v string) *RecommendationOutcomeCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *RecommendationOutcomeCreate) SetWindowStart(v time.Time) *RecommendationOutcomeCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *RecommendationOutcomeCreate) SetWindowEnd(v time.Time) *RecommendationOutcomeCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *RecommendationOutcomeCreate) SetSuccess(v string) *RecommendationOutcomeCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetDeltaMastery sets the "delta_mastery" field.
func (_c *RecommendationOutcomeCreate) SetDeltaMastery(v float64) *RecommendationOutcomeCreate {
	_c.mutation.SetDeltaMastery(v)
	return _c
}

// SetNillableDeltaMastery sets the "delta_mastery" field if the given value is not nil.
func (_c *RecommendationOutcomeCreate) SetNillableDeltaMastery(v *float64) *RecommendationOutcomeCreate {
	if v != nil {
		_c.SetDeltaMastery(*v)
	}
	return _c
}

// SetDeltaAccuracy sets the "delta_accuracy" field.
func (_c *RecommendationOutcomeCreate) SetDeltaAccuracy(v float64) *RecommendationOutcomeCreate {
	_c.mutation.SetDeltaAccuracy(v)
	return _c
}

// SetNillableDeltaAccuracy sets the "delta_accuracy" field if the given value is not nil.
func (_c *RecommendationOutcomeCreate) SetNillableDeltaAccuracy(v *float64) *RecommendationOutcomeCreate {
	if v != nil {
		_c.SetDeltaAccuracy(*v)
	}
	return _c
}

// SetDeltaHintRate sets the "delta_hint_rate" field.
func (_c *RecommendationOutcomeCreate) SetDeltaHintRate(v float64) *RecommendationOutcomeCreate {
	_c.mutation.SetDeltaHintRate(v)
	return _c
}

// SetNillableDeltaHintRate sets the "delta_hint_rate" field if the given value is not nil.
func (_c *RecommendationOutcomeCreate) SetNillableDeltaHintRate(v *float64) *RecommendationOutcomeCreate {
	if v != nil {
		_c.SetDeltaHintRate(*v)
	}
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *RecommendationOutcomeCreate) SetComputedAt(v time.Time) *RecommendationOutcomeCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *RecommendationOutcomeCreate) SetEngineVersion(v string) *RecommendationOutcomeCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_c *RecommendationOutcomeCreate) SetRulesetVersion(v string) *RecommendationOutcomeCreate {
	_c.mutation.SetRulesetVersion(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationOutcomeCreate) SetID(v string) *RecommendationOutcomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendationOutcomeCreate) SetNillableID(v *string) *RecommendationOutcomeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecommendationOutcomeMutation object of the builder.
func (_c *RecommendationOutcomeCreate) Mutation() *RecommendationOutcomeMutation {
	return _c.mutation
}

// Save creates the RecommendationOutcome in the database.
func (_c *RecommendationOutcomeCreate) Save(ctx context.Context) (*RecommendationOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationOutcomeCreate) SaveX(ctx context.Context) *RecommendationOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationOutcomeCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendationoutcome.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationOutcomeCreate) check() error {
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "RecommendationOutcome.recommendation_id"`)}
	}
	if v, ok := _c.mutation.RecommendationID(); ok {
		if err := recommendationoutcome.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.recommendation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "RecommendationOutcome.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "RecommendationOutcome.window_end"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "RecommendationOutcome.success"`)}
	}
	if v, ok := _c.mutation.Success(); ok {
		if err := recommendationoutcome.SuccessValidator(v); err != nil {
			return &ValidationError{Name: "success", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.success": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "RecommendationOutcome.computed_at"`)}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "RecommendationOutcome.engine_version"`)}
	}
	if v, ok := _c.mutation.EngineVersion(); ok {
		if err := recommendationoutcome.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.engine_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RulesetVersion(); !ok {
		return &ValidationError{Name: "ruleset_version", err: errors.New(`ent: missing required field "RecommendationOutcome.ruleset_version"`)}
	}
	if v, ok := _c.mutation.RulesetVersion(); ok {
		if err := recommendationoutcome.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.ruleset_version": %w`, err)}
		}
	}
	return nil
}

func (_c *RecommendationOutcomeCreate) sqlSave(ctx context.Context) (*RecommendationOutcome, error) {
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
			return nil, fmt.Errorf("unexpected RecommendationOutcome.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationOutcomeCreate) createSpec() (*RecommendationOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationoutcome.Table, sqlgraph.NewFieldSpec(recommendationoutcome.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(recommendationoutcome.FieldRecommendationID, field.TypeString, value)
		_node.RecommendationID = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(recommendationoutcome.FieldSuccess, field.TypeString, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.DeltaMastery(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64, value)
		_node.DeltaMastery = &value
	}
	if value, ok := _c.mutation.DeltaAccuracy(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64, value)
		_node.DeltaAccuracy = &value
	}
	if value, ok := _c.mutation.DeltaHintRate(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64, value)
		_node.DeltaHintRate = &value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(recommendationoutcome.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	if value, ok := _c.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldRulesetVersion, field.TypeString, value)
		_node.RulesetVersion = value
	}
	return _node, _spec
}

// RecommendationOutcomeCreateBulk is the builder for creating many RecommendationOutcome entities in bulk.
type RecommendationOutcomeCreateBulk struct {
	config
	err      error
	builders []*RecommendationOutcomeCreate
}

// Save creates the RecommendationOutcome entities in the database.
func (_c *RecommendationOutcomeCreateBulk) Save(ctx context.Context) ([]*RecommendationOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationOutcomeMutation)
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
func (_c *RecommendationOutcomeCreateBulk) SaveX(ctx context.Context) []*RecommendationOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
