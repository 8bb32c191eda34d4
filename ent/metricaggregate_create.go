// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
)

// MetricAggregateCreate is the builder for creating a MetricAggregate entity.
type MetricAggregateCreate struct {
	config
	mutation *MetricAggregateMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MetricAggregateCreate) SetStudentID(v string) *MetricAggregateCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MetricAggregateCreate) SetSubject(v string) *MetricAggregateCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *MetricAggregateCreate) SetTerm(v string) *MetricAggregateCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetWindowDays sets the "window_days" field.
func (_c *MetricAggregateCreate) SetWindowDays(v int) *MetricAggregateCreate {
	_c.mutation.SetWindowDays(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *MetricAggregateCreate) SetAccuracy(v float64) *MetricAggregateCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetFirstAttemptAccuracy sets the "first_attempt_accuracy" field.
func (_c *MetricAggregateCreate) SetFirstAttemptAccuracy(v float64) *MetricAggregateCreate {
	_c.mutation.SetFirstAttemptAccuracy(v)
	return _c
}

// SetErrorRate sets the "error_rate" field.
func (_c *MetricAggregateCreate) SetErrorRate(v float64) *MetricAggregateCreate {
	_c.mutation.SetErrorRate(v)
	return _c
}

// SetHintRate sets the "hint_rate" field.
func (_c *MetricAggregateCreate) SetHintRate(v float64) *MetricAggregateCreate {
	_c.mutation.SetHintRate(v)
	return _c
}

// SetMedianResponseMs sets the "median_response_ms" field.
func (_c *MetricAggregateCreate) SetMedianResponseMs(v int) *MetricAggregateCreate {
	_c.mutation.SetMedianResponseMs(v)
	return _c
}

// SetAttemptsPerItem sets the "attempts_per_item" field.
func (_c *MetricAggregateCreate) SetAttemptsPerItem(v float64) *MetricAggregateCreate {
	_c.mutation.SetAttemptsPerItem(v)
	return _c
}

// SetAbandonRate sets the "abandon_rate" field.
func (_c *MetricAggregateCreate) SetAbandonRate(v float64) *MetricAggregateCreate {
	_c.mutation.SetAbandonRate(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *MetricAggregateCreate) SetComputedAt(v time.Time) *MetricAggregateCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *MetricAggregateCreate) SetEngineVersion(v string) *MetricAggregateCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// Mutation returns the MetricAggregateMutation object of the builder.
func (_c *MetricAggregateCreate) Mutation() *MetricAggregateMutation {
	return _c.mutation
}

// Save creates the MetricAggregate in the database.
func (_c *MetricAggregateCreate) Save(ctx context.Context) (*MetricAggregate, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricAggregateCreate) SaveX(ctx context.Context) *MetricAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricAggregateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricAggregateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricAggregateCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MetricAggregate.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := metricaggregate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "MetricAggregate.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := metricaggregate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "MetricAggregate.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := metricaggregate.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowDays(); !ok {
		return &ValidationError{Name: "window_days", err: errors.New(`ent: missing required field "MetricAggregate.window_days"`)}
	}
	if v, ok := _c.mutation.WindowDays(); ok {
		if err := metricaggregate.WindowDaysValidator(v); err != nil {
			return &ValidationError{Name: "window_days", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.window_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "MetricAggregate.accuracy"`)}
	}
	if _, ok := _c.mutation.FirstAttemptAccuracy(); !ok {
		return &ValidationError{Name: "first_attempt_accuracy", err: errors.New(`ent: missing required field "MetricAggregate.first_attempt_accuracy"`)}
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		return &ValidationError{Name: "error_rate", err: errors.New(`ent: missing required field "MetricAggregate.error_rate"`)}
	}
	if _, ok := _c.mutation.HintRate(); !ok {
		return &ValidationError{Name: "hint_rate", err: errors.New(`ent: missing required field "MetricAggregate.hint_rate"`)}
	}
	if _, ok := _c.mutation.MedianResponseMs(); !ok {
		return &ValidationError{Name: "median_response_ms", err: errors.New(`ent: missing required field "MetricAggregate.median_response_ms"`)}
	}
	if _, ok := _c.mutation.AttemptsPerItem(); !ok {
		return &ValidationError{Name: "attempts_per_item", err: errors.New(`ent: missing required field "MetricAggregate.attempts_per_item"`)}
	}
	if _, ok := _c.mutation.AbandonRate(); !ok {
		return &ValidationError{Name: "abandon_rate", err: errors.New(`ent: missing required field "MetricAggregate.abandon_rate"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "MetricAggregate.computed_at"`)}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "MetricAggregate.engine_version"`)}
	}
	if v, ok := _c.mutation.EngineVersion(); ok {
		if err := metricaggregate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.engine_version": %w`, err)}
		}
	}
	return nil
}

func (_c *MetricAggregateCreate) sqlSave(ctx context.Context) (*MetricAggregate, error) {
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

func (_c *MetricAggregateCreate) createSpec() (*MetricAggregate, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricAggregate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricaggregate.Table, sqlgraph.NewFieldSpec(metricaggregate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(metricaggregate.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(metricaggregate.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(metricaggregate.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.WindowDays(); ok {
		_spec.SetField(metricaggregate.FieldWindowDays, field.TypeInt, value)
		_node.WindowDays = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(metricaggregate.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.FirstAttemptAccuracy(); ok {
		_spec.SetField(metricaggregate.FieldFirstAttemptAccuracy, field.TypeFloat64, value)
		_node.FirstAttemptAccuracy = value
	}
	if value, ok := _c.mutation.ErrorRate(); ok {
		_spec.SetField(metricaggregate.FieldErrorRate, field.TypeFloat64, value)
		_node.ErrorRate = value
	}
	if value, ok := _c.mutation.HintRate(); ok {
		_spec.SetField(metricaggregate.FieldHintRate, field.TypeFloat64, value)
		_node.HintRate = value
	}
	if value, ok := _c.mutation.MedianResponseMs(); ok {
		_spec.SetField(metricaggregate.FieldMedianResponseMs, field.TypeInt, value)
		_node.MedianResponseMs = value
	}
	if value, ok := _c.mutation.AttemptsPerItem(); ok {
		_spec.SetField(metricaggregate.FieldAttemptsPerItem, field.TypeFloat64, value)
		_node.AttemptsPerItem = value
	}
	if value, ok := _c.mutation.AbandonRate(); ok {
		_spec.SetField(metricaggregate.FieldAbandonRate, field.TypeFloat64, value)
		_node.AbandonRate = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(metricaggregate.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(metricaggregate.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	return _node, _spec
}

// MetricAggregateCreateBulk is the builder for creating many MetricAggregate entities in bulk.
type MetricAggregateCreateBulk struct {
	config
	err      error
	builders []*MetricAggregateCreate
}

// Save creates the MetricAggregate entities in the database.
func (_c *MetricAggregateCreateBulk) Save(ctx context.Context) ([]*MetricAggregate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricAggregate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricAggregateMutation)
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
func (_c *MetricAggregateCreateBulk) SaveX(ctx context.Context) []*MetricAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricAggregateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricAggregateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
