// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/metricaggregate"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// MetricAggregateUpdate is the builder for updating MetricAggregate entities.
type MetricAggregateUpdate struct {
	config
	hooks    []Hook
	mutation *MetricAggregateMutation
}

// Where appends a list predicates to the MetricAggregateUpdate builder.
func (_u *MetricAggregateUpdate) Where(ps ...predicate.MetricAggregate) *MetricAggregateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MetricAggregateUpdate) SetStudentID(v string) *MetricAggregateUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableStudentID(v *string) *MetricAggregateUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MetricAggregateUpdate) SetSubject(v string) *MetricAggregateUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableSubject(v *string) *MetricAggregateUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *MetricAggregateUpdate) SetTerm(v string) *MetricAggregateUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableTerm(v *string) *MetricAggregateUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *MetricAggregateUpdate) SetWindowDays(v int) *MetricAggregateUpdate {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableWindowDays(v *int) *MetricAggregateUpdate {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *MetricAggregateUpdate) AddWindowDays(v int) *MetricAggregateUpdate {
	_u.mutation.AddWindowDays(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MetricAggregateUpdate) SetAccuracy(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableAccuracy(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MetricAggregateUpdate) AddAccuracy(v float64) *MetricAggregateUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetFirstAttemptAccuracy sets the "first_attempt_accuracy" field.
func (_u *MetricAggregateUpdate) SetFirstAttemptAccuracy(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetFirstAttemptAccuracy()
	_u.mutation.SetFirstAttemptAccuracy(v)
	return _u
}

// SetNillableFirstAttemptAccuracy sets the "first_attempt_accuracy" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableFirstAttemptAccuracy(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetFirstAttemptAccuracy(*v)
	}
	return _u
}

// AddFirstAttemptAccuracy adds value to the "first_attempt_accuracy" field.
func (_u *MetricAggregateUpdate) AddFirstAttemptAccuracy(v float64) *MetricAggregateUpdate {
	_u.mutation.AddFirstAttemptAccuracy(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *MetricAggregateUpdate) SetErrorRate(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableErrorRate(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *MetricAggregateUpdate) AddErrorRate(v float64) *MetricAggregateUpdate {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetHintRate sets the "hint_rate" field.
func (_u *MetricAggregateUpdate) SetHintRate(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetHintRate()
	_u.mutation.SetHintRate(v)
	return _u
}

// SetNillableHintRate sets the "hint_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableHintRate(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetHintRate(*v)
	}
	return _u
}

// AddHintRate adds value to the "hint_rate" field.
func (_u *MetricAggregateUpdate) AddHintRate(v float64) *MetricAggregateUpdate {
	_u.mutation.AddHintRate(v)
	return _u
}

// SetMedianResponseMs sets the "median_response_ms" field.
func (_u *MetricAggregateUpdate) SetMedianResponseMs(v int) *MetricAggregateUpdate {
	_u.mutation.ResetMedianResponseMs()
	_u.mutation.SetMedianResponseMs(v)
	return _u
}

// SetNillableMedianResponseMs sets the "median_response_ms" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableMedianResponseMs(v *int) *MetricAggregateUpdate {
	if v != nil {
		_u.SetMedianResponseMs(*v)
	}
	return _u
}

// AddMedianResponseMs adds value to the "median_response_ms" field.
func (_u *MetricAggregateUpdate) AddMedianResponseMs(v int) *MetricAggregateUpdate {
	_u.mutation.AddMedianResponseMs(v)
	return _u
}

// SetAttemptsPerItem sets the "attempts_per_item" field.
func (_u *MetricAggregateUpdate) SetAttemptsPerItem(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetAttemptsPerItem()
	_u.mutation.SetAttemptsPerItem(v)
	return _u
}

// SetNillableAttemptsPerItem sets the "attempts_per_item" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableAttemptsPerItem(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetAttemptsPerItem(*v)
	}
	return _u
}

// AddAttemptsPerItem adds value to the "attempts_per_item" field.
func (_u *MetricAggregateUpdate) AddAttemptsPerItem(v float64) *MetricAggregateUpdate {
	_u.mutation.AddAttemptsPerItem(v)
	return _u
}

// SetAbandonRate sets the "abandon_rate" field.
func (_u *MetricAggregateUpdate) SetAbandonRate(v float64) *MetricAggregateUpdate {
	_u.mutation.ResetAbandonRate()
	_u.mutation.SetAbandonRate(v)
	return _u
}

// SetNillableAbandonRate sets the "abandon_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableAbandonRate(v *float64) *MetricAggregateUpdate {
	if v != nil {
		_u.SetAbandonRate(*v)
	}
	return _u
}

// AddAbandonRate adds value to the "abandon_rate" field.
func (_u *MetricAggregateUpdate) AddAbandonRate(v float64) *MetricAggregateUpdate {
	_u.mutation.AddAbandonRate(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *MetricAggregateUpdate) SetComputedAt(v time.Time) *MetricAggregateUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableComputedAt(v *time.Time) *MetricAggregateUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *MetricAggregateUpdate) SetEngineVersion(v string) *MetricAggregateUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *MetricAggregateUpdate) SetNillableEngineVersion(v *string) *MetricAggregateUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// Mutation returns the MetricAggregateMutation object of the builder.
func (_u *MetricAggregateUpdate) Mutation() *MetricAggregateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricAggregateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricAggregateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricAggregateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricAggregateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricAggregateUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := metricaggregate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := metricaggregate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := metricaggregate.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WindowDays(); ok {
		if err := metricaggregate.WindowDaysValidator(v); err != nil {
			return &ValidationError{Name: "window_days", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.window_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := metricaggregate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.engine_version": %w`, err)}
		}
	}
	return nil
}

func (_u *MetricAggregateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricaggregate.Table, metricaggregate.Columns, sqlgraph.NewFieldSpec(metricaggregate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(metricaggregate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(metricaggregate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(metricaggregate.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(metricaggregate.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(metricaggregate.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(metricaggregate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(metricaggregate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstAttemptAccuracy(); ok {
		_spec.SetField(metricaggregate.FieldFirstAttemptAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstAttemptAccuracy(); ok {
		_spec.AddField(metricaggregate.FieldFirstAttemptAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(metricaggregate.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(metricaggregate.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintRate(); ok {
		_spec.SetField(metricaggregate.FieldHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHintRate(); ok {
		_spec.AddField(metricaggregate.FieldHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MedianResponseMs(); ok {
		_spec.SetField(metricaggregate.FieldMedianResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedianResponseMs(); ok {
		_spec.AddField(metricaggregate.FieldMedianResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptsPerItem(); ok {
		_spec.SetField(metricaggregate.FieldAttemptsPerItem, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttemptsPerItem(); ok {
		_spec.AddField(metricaggregate.FieldAttemptsPerItem, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbandonRate(); ok {
		_spec.SetField(metricaggregate.FieldAbandonRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbandonRate(); ok {
		_spec.AddField(metricaggregate.FieldAbandonRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(metricaggregate.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(metricaggregate.FieldEngineVersion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricAggregateUpdateOne is the builder for updating a single MetricAggregate entity.
type MetricAggregateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricAggregateMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MetricAggregateUpdateOne) SetStudentID(v string) *MetricAggregateUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableStudentID(v *string) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MetricAggregateUpdateOne) SetSubject(v string) *MetricAggregateUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableSubject(v *string) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *MetricAggregateUpdateOne) SetTerm(v string) *MetricAggregateUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableTerm(v *string) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *MetricAggregateUpdateOne) SetWindowDays(v int) *MetricAggregateUpdateOne {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableWindowDays(v *int) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *MetricAggregateUpdateOne) AddWindowDays(v int) *MetricAggregateUpdateOne {
	_u.mutation.AddWindowDays(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MetricAggregateUpdateOne) SetAccuracy(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableAccuracy(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MetricAggregateUpdateOne) AddAccuracy(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetFirstAttemptAccuracy sets the "first_attempt_accuracy" field.
func (_u *MetricAggregateUpdateOne) SetFirstAttemptAccuracy(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetFirstAttemptAccuracy()
	_u.mutation.SetFirstAttemptAccuracy(v)
	return _u
}

// SetNillableFirstAttemptAccuracy sets the "first_attempt_accuracy" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableFirstAttemptAccuracy(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetFirstAttemptAccuracy(*v)
	}
	return _u
}

// AddFirstAttemptAccuracy adds value to the "first_attempt_accuracy" field.
func (_u *MetricAggregateUpdateOne) AddFirstAttemptAccuracy(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddFirstAttemptAccuracy(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *MetricAggregateUpdateOne) SetErrorRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableErrorRate(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *MetricAggregateUpdateOne) AddErrorRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetHintRate sets the "hint_rate" field.
func (_u *MetricAggregateUpdateOne) SetHintRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetHintRate()
	_u.mutation.SetHintRate(v)
	return _u
}

// SetNillableHintRate sets the "hint_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableHintRate(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetHintRate(*v)
	}
	return _u
}

// AddHintRate adds value to the "hint_rate" field.
func (_u *MetricAggregateUpdateOne) AddHintRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddHintRate(v)
	return _u
}

// SetMedianResponseMs sets the "median_response_ms" field.
func (_u *MetricAggregateUpdateOne) SetMedianResponseMs(v int) *MetricAggregateUpdateOne {
	_u.mutation.ResetMedianResponseMs()
	_u.mutation.SetMedianResponseMs(v)
	return _u
}

// SetNillableMedianResponseMs sets the "median_response_ms" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableMedianResponseMs(v *int) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetMedianResponseMs(*v)
	}
	return _u
}

// AddMedianResponseMs adds value to the "median_response_ms" field.
func (_u *MetricAggregateUpdateOne) AddMedianResponseMs(v int) *MetricAggregateUpdateOne {
	_u.mutation.AddMedianResponseMs(v)
	return _u
}

// SetAttemptsPerItem sets the "attempts_per_item" field.
func (_u *MetricAggregateUpdateOne) SetAttemptsPerItem(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetAttemptsPerItem()
	_u.mutation.SetAttemptsPerItem(v)
	return _u
}

// SetNillableAttemptsPerItem sets the "attempts_per_item" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableAttemptsPerItem(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetAttemptsPerItem(*v)
	}
	return _u
}

// AddAttemptsPerItem adds value to the "attempts_per_item" field.
func (_u *MetricAggregateUpdateOne) AddAttemptsPerItem(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddAttemptsPerItem(v)
	return _u
}

// SetAbandonRate sets the "abandon_rate" field.
func (_u *MetricAggregateUpdateOne) SetAbandonRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.ResetAbandonRate()
	_u.mutation.SetAbandonRate(v)
	return _u
}

// SetNillableAbandonRate sets the "abandon_rate" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableAbandonRate(v *float64) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetAbandonRate(*v)
	}
	return _u
}

// AddAbandonRate adds value to the "abandon_rate" field.
func (_u *MetricAggregateUpdateOne) AddAbandonRate(v float64) *MetricAggregateUpdateOne {
	_u.mutation.AddAbandonRate(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *MetricAggregateUpdateOne) SetComputedAt(v time.Time) *MetricAggregateUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableComputedAt(v *time.Time) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *MetricAggregateUpdateOne) SetEngineVersion(v string) *MetricAggregateUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *MetricAggregateUpdateOne) SetNillableEngineVersion(v *string) *MetricAggregateUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// Mutation returns the MetricAggregateMutation object of the builder.
func (_u *MetricAggregateUpdateOne) Mutation() *MetricAggregateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MetricAggregateUpdate builder.
func (_u *MetricAggregateUpdateOne) Where(ps ...predicate.MetricAggregate) *MetricAggregateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricAggregateUpdateOne) Select(field string, fields ...string) *MetricAggregateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetricAggregate entity.
func (_u *MetricAggregateUpdateOne) Save(ctx context.Context) (*MetricAggregate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricAggregateUpdateOne) SaveX(ctx context.Context) *MetricAggregate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricAggregateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricAggregateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricAggregateUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := metricaggregate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := metricaggregate.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := metricaggregate.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WindowDays(); ok {
		if err := metricaggregate.WindowDaysValidator(v); err != nil {
			return &ValidationError{Name: "window_days", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.window_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := metricaggregate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MetricAggregate.engine_version": %w`, err)}
		}
	}
	return nil
}

func (_u *MetricAggregateUpdateOne) sqlSave(ctx context.Context) (_node *MetricAggregate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricaggregate.Table, metricaggregate.Columns, sqlgraph.NewFieldSpec(metricaggregate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetricAggregate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metricaggregate.FieldID)
		for _, f := range fields {
			if !metricaggregate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metricaggregate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(metricaggregate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(metricaggregate.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(metricaggregate.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(metricaggregate.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(metricaggregate.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(metricaggregate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(metricaggregate.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstAttemptAccuracy(); ok {
		_spec.SetField(metricaggregate.FieldFirstAttemptAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstAttemptAccuracy(); ok {
		_spec.AddField(metricaggregate.FieldFirstAttemptAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(metricaggregate.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(metricaggregate.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HintRate(); ok {
		_spec.SetField(metricaggregate.FieldHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHintRate(); ok {
		_spec.AddField(metricaggregate.FieldHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MedianResponseMs(); ok {
		_spec.SetField(metricaggregate.FieldMedianResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedianResponseMs(); ok {
		_spec.AddField(metricaggregate.FieldMedianResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptsPerItem(); ok {
		_spec.SetField(metricaggregate.FieldAttemptsPerItem, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttemptsPerItem(); ok {
		_spec.AddField(metricaggregate.FieldAttemptsPerItem, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbandonRate(); ok {
		_spec.SetField(metricaggregate.FieldAbandonRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbandonRate(); ok {
		_spec.AddField(metricaggregate.FieldAbandonRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(metricaggregate.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(metricaggregate.FieldEngineVersion, field.TypeString, value)
	}
	_node = &MetricAggregate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
