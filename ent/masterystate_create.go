// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
)

// MasteryStateCreate is the builder for creating a MasteryState entity.
type MasteryStateCreate struct {
	config
	mutation *MasteryStateMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryStateCreate) SetStudentID(v string) *MasteryStateCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryStateCreate) SetConceptID(v string) *MasteryStateCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryStateCreate) SetScore(v float64) *MasteryStateCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MasteryStateCreate) SetStatus(v string) *MasteryStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLastPracticeAt sets the "last_practice_at" field.
func (_c *MasteryStateCreate) SetLastPracticeAt(v time.Time) *MasteryStateCreate {
	_c.mutation.SetLastPracticeAt(v)
	return _c
}

// SetNillableLastPracticeAt sets the "last_practice_at" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableLastPracticeAt(v *time.Time) *MasteryStateCreate {
	if v != nil {
		_c.SetLastPracticeAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MasteryStateCreate) SetNextReviewAt(v time.Time) *MasteryStateCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableNextReviewAt(v *time.Time) *MasteryStateCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *MasteryStateCreate) SetEngineVersion(v string) *MasteryStateCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryStateCreate) SetUpdatedAt(v time.Time) *MasteryStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_c *MasteryStateCreate) Mutation() *MasteryStateMutation {
	return _c.mutation
}

// Save creates the MasteryState in the database.
func (_c *MasteryStateCreate) Save(ctx context.Context) (*MasteryState, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryStateCreate) SaveX(ctx context.Context) *MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryStateCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryState.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryState.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryState.score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MasteryState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := masterystate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasteryState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "MasteryState.engine_version"`)}
	}
	if v, ok := _c.mutation.EngineVersion(); ok {
		if err := masterystate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MasteryState.engine_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryState.updated_at"`)}
	}
	return nil
}

func (_c *MasteryStateCreate) sqlSave(ctx context.Context) (*MasteryState, error) {
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

func (_c *MasteryStateCreate) createSpec() (*MasteryState, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterystate.Table, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masterystate.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(masterystate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastPracticeAt(); ok {
		_spec.SetField(masterystate.FieldLastPracticeAt, field.TypeTime, value)
		_node.LastPracticeAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(masterystate.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(masterystate.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryStateCreateBulk is the builder for creating many MasteryState entities in bulk.
type MasteryStateCreateBulk struct {
	config
	err      error
	builders []*MasteryStateCreate
}

// Save creates the MasteryState entities in the database.
func (_c *MasteryStateCreateBulk) Save(ctx context.Context) ([]*MasteryState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryStateMutation)
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
func (_c *MasteryStateCreateBulk) SaveX(ctx context.Context) []*MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
