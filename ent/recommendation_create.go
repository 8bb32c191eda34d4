// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *RecommendationCreate) SetStudentID(v string) *RecommendationCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *RecommendationCreate) SetConceptID(v string) *RecommendationCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableConceptID(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetRuleCode sets the "rule_code" field.
func (_c *RecommendationCreate) SetRuleCode(v string) *RecommendationCreate {
	_c.mutation.SetRuleCode(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RecommendationCreate) SetPriority(v string) *RecommendationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecommendationCreate) SetStatus(v string) *RecommendationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableStatus(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RecommendationCreate) SetTitle(v string) *RecommendationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecommendationCreate) SetDescription(v string) *RecommendationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetWindowDays sets the "window_days" field.
func (_c *RecommendationCreate) SetWindowDays(v int) *RecommendationCreate {
	_c.mutation.SetWindowDays(v)
	return _c
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableWindowDays(v *int) *RecommendationCreate {
	if v != nil {
		_c.SetWindowDays(*v)
	}
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *RecommendationCreate) SetEngineVersion(v string) *RecommendationCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_c *RecommendationCreate) SetRulesetVersion(v string) *RecommendationCreate {
	_c.mutation.SetRulesetVersion(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *RecommendationCreate) SetGeneratedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecommendationCreate) SetUpdatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationCreate) SetID(v string) *RecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableID(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := recommendation.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recommendation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.WindowDays(); !ok {
		v := recommendation.DefaultWindowDays
		_c.mutation.SetWindowDays(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Recommendation.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := recommendation.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "Recommendation.concept_id"`)}
	}
	if _, ok := _c.mutation.RuleCode(); !ok {
		return &ValidationError{Name: "rule_code", err: errors.New(`ent: missing required field "Recommendation.rule_code"`)}
	}
	if v, ok := _c.mutation.RuleCode(); ok {
		if err := recommendation.RuleCodeValidator(v); err != nil {
			return &ValidationError{Name: "rule_code", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rule_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Recommendation.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := recommendation.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Recommendation.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recommendation.status"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Recommendation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Recommendation.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowDays(); !ok {
		return &ValidationError{Name: "window_days", err: errors.New(`ent: missing required field "Recommendation.window_days"`)}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "Recommendation.engine_version"`)}
	}
	if v, ok := _c.mutation.EngineVersion(); ok {
		if err := recommendation.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.engine_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RulesetVersion(); !ok {
		return &ValidationError{Name: "ruleset_version", err: errors.New(`ent: missing required field "Recommendation.ruleset_version"`)}
	}
	if v, ok := _c.mutation.RulesetVersion(); ok {
		if err := recommendation.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.ruleset_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Recommendation.generated_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recommendation.updated_at"`)}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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
			return nil, fmt.Errorf("unexpected Recommendation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(recommendation.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.RuleCode(); ok {
		_spec.SetField(recommendation.FieldRuleCode, field.TypeString, value)
		_node.RuleCode = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.WindowDays(); ok {
		_spec.SetField(recommendation.FieldWindowDays, field.TypeInt, value)
		_node.WindowDays = value
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(recommendation.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	if value, ok := _c.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendation.FieldRulesetVersion, field.TypeString, value)
		_node.RulesetVersion = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(recommendation.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
