// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
)

// RecommendationEvidenceCreate is the builder for creating a RecommendationEvidence entity.
type RecommendationEvidenceCreate struct {
	config
	mutation *RecommendationEvidenceMutation
	hooks    []Hook
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *RecommendationEvidenceCreate) SetRecommendationID(v string) *RecommendationEvidenceCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *RecommendationEvidenceCreate) SetPosition(v int) *RecommendationEvidenceCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetEvidenceType sets the "evidence_type" field.
func (_c *RecommendationEvidenceCreate) SetEvidenceType(v string) *RecommendationEvidenceCreate {
	_c.mutation.SetEvidenceType(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *RecommendationEvidenceCreate) SetKey(v string) *RecommendationEvidenceCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *RecommendationEvidenceCreate) SetValue(v string) *RecommendationEvidenceCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecommendationEvidenceCreate) SetDescription(v string) *RecommendationEvidenceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// Mutation returns the RecommendationEvidenceMutation object of the builder.
func (_c *RecommendationEvidenceCreate) Mutation() *RecommendationEvidenceMutation {
	return _c.mutation
}

// Save creates the RecommendationEvidence in the database.
func (_c *RecommendationEvidenceCreate) Save(ctx context.Context) (*RecommendationEvidence, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationEvidenceCreate) SaveX(ctx context.Context) *RecommendationEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationEvidenceCreate) check() error {
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "RecommendationEvidence.recommendation_id"`)}
	}
	if v, ok := _c.mutation.RecommendationID(); ok {
		if err := recommendationevidence.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.recommendation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "RecommendationEvidence.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := recommendationevidence.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvidenceType(); !ok {
		return &ValidationError{Name: "evidence_type", err: errors.New(`ent: missing required field "RecommendationEvidence.evidence_type"`)}
	}
	if v, ok := _c.mutation.EvidenceType(); ok {
		if err := recommendationevidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.evidence_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "RecommendationEvidence.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := recommendationevidence.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "RecommendationEvidence.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := recommendationevidence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "RecommendationEvidence.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := recommendationevidence.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.description": %w`, err)}
		}
	}
	return nil
}

func (_c *RecommendationEvidenceCreate) sqlSave(ctx context.Context) (*RecommendationEvidence, error) {
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

func (_c *RecommendationEvidenceCreate) createSpec() (*RecommendationEvidence, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationEvidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationevidence.Table, sqlgraph.NewFieldSpec(recommendationevidence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(recommendationevidence.FieldRecommendationID, field.TypeString, value)
		_node.RecommendationID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(recommendationevidence.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.EvidenceType(); ok {
		_spec.SetField(recommendationevidence.FieldEvidenceType, field.TypeString, value)
		_node.EvidenceType = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(recommendationevidence.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(recommendationevidence.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recommendationevidence.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// RecommendationEvidenceCreateBulk is the builder for creating many RecommendationEvidence entities in bulk.
type RecommendationEvidenceCreateBulk struct {
	config
	err      error
	builders []*RecommendationEvidenceCreate
}

// Save creates the RecommendationEvidence entities in the database.
func (_c *RecommendationEvidenceCreateBulk) Save(ctx context.Context) ([]*RecommendationEvidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationEvidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationEvidenceMutation)
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
func (_c *RecommendationEvidenceCreateBulk) SaveX(ctx context.Context) []*RecommendationEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
