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
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
	"github.com/diversifica/decies-platform-sub000/ent/recommendationoutcome"
)

// RecommendationOutcomeUpdate is the builder for updating RecommendationOutcome entities.
type RecommendationOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationOutcomeMutation
}

// Where appends a list predicates to the RecommendationOutcomeUpdate builder.
func (_u *RecommendationOutcomeUpdate) Where(ps ...predicate.RecommendationOutcome) *RecommendationOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RecommendationOutcomeUpdate) SetWindowStart(v time.Time) *RecommendationOutcomeUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableWindowStart(v *time.Time) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *RecommendationOutcomeUpdate) SetWindowEnd(v time.Time) *RecommendationOutcomeUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableWindowEnd(v *time.Time) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RecommendationOutcomeUpdate) SetSuccess(v string) *RecommendationOutcomeUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableSuccess(v *string) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetDeltaMastery sets the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdate) SetDeltaMastery(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.ResetDeltaMastery()
	_u.mutation.SetDeltaMastery(v)
	return _u
}

// SetNillableDeltaMastery sets the "delta_mastery" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableDeltaMastery(v *float64) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetDeltaMastery(*v)
	}
	return _u
}

// AddDeltaMastery adds value to the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdate) AddDeltaMastery(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.AddDeltaMastery(v)
	return _u
}

// ClearDeltaMastery clears the value of the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdate) ClearDeltaMastery() *RecommendationOutcomeUpdate {
	_u.mutation.ClearDeltaMastery()
	return _u
}

// SetDeltaAccuracy sets the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdate) SetDeltaAccuracy(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.ResetDeltaAccuracy()
	_u.mutation.SetDeltaAccuracy(v)
	return _u
}

// SetNillableDeltaAccuracy sets the "delta_accuracy" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableDeltaAccuracy(v *float64) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetDeltaAccuracy(*v)
	}
	return _u
}

// AddDeltaAccuracy adds value to the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdate) AddDeltaAccuracy(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.AddDeltaAccuracy(v)
	return _u
}

// ClearDeltaAccuracy clears the value of the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdate) ClearDeltaAccuracy() *RecommendationOutcomeUpdate {
	_u.mutation.ClearDeltaAccuracy()
	return _u
}

// SetDeltaHintRate sets the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdate) SetDeltaHintRate(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.ResetDeltaHintRate()
	_u.mutation.SetDeltaHintRate(v)
	return _u
}

// SetNillableDeltaHintRate sets the "delta_hint_rate" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableDeltaHintRate(v *float64) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetDeltaHintRate(*v)
	}
	return _u
}

// AddDeltaHintRate adds value to the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdate) AddDeltaHintRate(v float64) *RecommendationOutcomeUpdate {
	_u.mutation.AddDeltaHintRate(v)
	return _u
}

// ClearDeltaHintRate clears the value of the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdate) ClearDeltaHintRate() *RecommendationOutcomeUpdate {
	_u.mutation.ClearDeltaHintRate()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *RecommendationOutcomeUpdate) SetComputedAt(v time.Time) *RecommendationOutcomeUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableComputedAt(v *time.Time) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *RecommendationOutcomeUpdate) SetEngineVersion(v string) *RecommendationOutcomeUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableEngineVersion(v *string) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *RecommendationOutcomeUpdate) SetRulesetVersion(v string) *RecommendationOutcomeUpdate {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdate) SetNillableRulesetVersion(v *string) *RecommendationOutcomeUpdate {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// Mutation returns the RecommendationOutcomeMutation object of the builder.
func (_u *RecommendationOutcomeUpdate) Mutation() *RecommendationOutcomeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationOutcomeUpdate) check() error {
	if v, ok := _u.mutation.Success(); ok {
		if err := recommendationoutcome.SuccessValidator(v); err != nil {
			return &ValidationError{Name: "success", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.success": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := recommendationoutcome.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RulesetVersion(); ok {
		if err := recommendationoutcome.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.ruleset_version": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationoutcome.Table, recommendationoutcome.Columns, sqlgraph.NewFieldSpec(recommendationoutcome.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(recommendationoutcome.FieldSuccess, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaMastery(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaMastery(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaMasteryCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeltaAccuracy(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaAccuracy(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaAccuracyCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeltaHintRate(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaHintRate(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaHintRateCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(recommendationoutcome.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldRulesetVersion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationOutcomeUpdateOne is the builder for updating a single RecommendationOutcome entity.
type RecommendationOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationOutcomeMutation
}

// SetWindowStart sets the "window_start" field.
func (_u *RecommendationOutcomeUpdateOne) SetWindowStart(v time.Time) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableWindowStart(v *time.Time) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *RecommendationOutcomeUpdateOne) SetWindowEnd(v time.Time) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableWindowEnd(v *time.Time) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RecommendationOutcomeUpdateOne) SetSuccess(v string) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableSuccess(v *string) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetDeltaMastery sets the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdateOne) SetDeltaMastery(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.ResetDeltaMastery()
	_u.mutation.SetDeltaMastery(v)
	return _u
}

// SetNillableDeltaMastery sets the "delta_mastery" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableDeltaMastery(v *float64) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetDeltaMastery(*v)
	}
	return _u
}

// AddDeltaMastery adds value to the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdateOne) AddDeltaMastery(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.AddDeltaMastery(v)
	return _u
}

// ClearDeltaMastery clears the value of the "delta_mastery" field.
func (_u *RecommendationOutcomeUpdateOne) ClearDeltaMastery() *RecommendationOutcomeUpdateOne {
	_u.mutation.ClearDeltaMastery()
	return _u
}

// SetDeltaAccuracy sets the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdateOne) SetDeltaAccuracy(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.ResetDeltaAccuracy()
	_u.mutation.SetDeltaAccuracy(v)
	return _u
}

// SetNillableDeltaAccuracy sets the "delta_accuracy" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableDeltaAccuracy(v *float64) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetDeltaAccuracy(*v)
	}
	return _u
}

// AddDeltaAccuracy adds value to the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdateOne) AddDeltaAccuracy(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.AddDeltaAccuracy(v)
	return _u
}

// ClearDeltaAccuracy clears the value of the "delta_accuracy" field.
func (_u *RecommendationOutcomeUpdateOne) ClearDeltaAccuracy() *RecommendationOutcomeUpdateOne {
	_u.mutation.ClearDeltaAccuracy()
	return _u
}

// SetDeltaHintRate sets the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdateOne) SetDeltaHintRate(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.ResetDeltaHintRate()
	_u.mutation.SetDeltaHintRate(v)
	return _u
}

// SetNillableDeltaHintRate sets the "delta_hint_rate" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableDeltaHintRate(v *float64) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetDeltaHintRate(*v)
	}
	return _u
}

// AddDeltaHintRate adds value to the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdateOne) AddDeltaHintRate(v float64) *RecommendationOutcomeUpdateOne {
	_u.mutation.AddDeltaHintRate(v)
	return _u
}

// ClearDeltaHintRate clears the value of the "delta_hint_rate" field.
func (_u *RecommendationOutcomeUpdateOne) ClearDeltaHintRate() *RecommendationOutcomeUpdateOne {
	_u.mutation.ClearDeltaHintRate()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *RecommendationOutcomeUpdateOne) SetComputedAt(v time.Time) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableComputedAt(v *time.Time) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *RecommendationOutcomeUpdateOne) SetEngineVersion(v string) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableEngineVersion(v *string) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *RecommendationOutcomeUpdateOne) SetRulesetVersion(v string) *RecommendationOutcomeUpdateOne {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *RecommendationOutcomeUpdateOne) SetNillableRulesetVersion(v *string) *RecommendationOutcomeUpdateOne {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// Mutation returns the RecommendationOutcomeMutation object of the builder.
func (_u *RecommendationOutcomeUpdateOne) Mutation() *RecommendationOutcomeMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationOutcomeUpdate builder.
func (_u *RecommendationOutcomeUpdateOne) Where(ps ...predicate.RecommendationOutcome) *RecommendationOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationOutcomeUpdateOne) Select(field string, fields ...string) *RecommendationOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationOutcome entity.
func (_u *RecommendationOutcomeUpdateOne) Save(ctx context.Context) (*RecommendationOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationOutcomeUpdateOne) SaveX(ctx context.Context) *RecommendationOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationOutcomeUpdateOne) check() error {
	if v, ok := _u.mutation.Success(); ok {
		if err := recommendationoutcome.SuccessValidator(v); err != nil {
			return &ValidationError{Name: "success", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.success": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := recommendationoutcome.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RulesetVersion(); ok {
		if err := recommendationoutcome.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "RecommendationOutcome.ruleset_version": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationoutcome.Table, recommendationoutcome.Columns, sqlgraph.NewFieldSpec(recommendationoutcome.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationoutcome.FieldID)
		for _, f := range fields {
			if !recommendationoutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationoutcome.FieldID {
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
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(recommendationoutcome.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(recommendationoutcome.FieldSuccess, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaMastery(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaMastery(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaMasteryCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaMastery, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeltaAccuracy(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaAccuracy(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaAccuracyCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeltaHintRate(); ok {
		_spec.SetField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeltaHintRate(); ok {
		_spec.AddField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64, value)
	}
	if _u.mutation.DeltaHintRateCleared() {
		_spec.ClearField(recommendationoutcome.FieldDeltaHintRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(recommendationoutcome.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendationoutcome.FieldRulesetVersion, field.TypeString, value)
	}
	_node = &RecommendationOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
