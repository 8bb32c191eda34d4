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
	"github.com/diversifica/decies-platform-sub000/ent/masterystate"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// MasteryStateUpdate is the builder for updating MasteryState entities.
type MasteryStateUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryStateMutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdate) Where(ps ...predicate.MasteryState) *MasteryStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryStateUpdate) SetStudentID(v string) *MasteryStateUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableStudentID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryStateUpdate) SetConceptID(v string) *MasteryStateUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableConceptID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryStateUpdate) SetScore(v float64) *MasteryStateUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableScore(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryStateUpdate) AddScore(v float64) *MasteryStateUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MasteryStateUpdate) SetStatus(v string) *MasteryStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableStatus(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastPracticeAt sets the "last_practice_at" field.
func (_u *MasteryStateUpdate) SetLastPracticeAt(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetLastPracticeAt(v)
	return _u
}

// SetNillableLastPracticeAt sets the "last_practice_at" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableLastPracticeAt(v *time.Time) *MasteryStateUpdate {
	if v != nil {
		_u.SetLastPracticeAt(*v)
	}
	return _u
}

// ClearLastPracticeAt clears the value of the "last_practice_at" field.
func (_u *MasteryStateUpdate) ClearLastPracticeAt() *MasteryStateUpdate {
	_u.mutation.ClearLastPracticeAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryStateUpdate) SetNextReviewAt(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableNextReviewAt(v *time.Time) *MasteryStateUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryStateUpdate) ClearNextReviewAt() *MasteryStateUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *MasteryStateUpdate) SetEngineVersion(v string) *MasteryStateUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableEngineVersion(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryStateUpdate) SetUpdatedAt(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableUpdatedAt(v *time.Time) *MasteryStateUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdate) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := masterystate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasteryState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := masterystate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MasteryState.engine_version": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masterystate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masterystate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masterystate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticeAt(); ok {
		_spec.SetField(masterystate.FieldLastPracticeAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticeAtCleared() {
		_spec.ClearField(masterystate.FieldLastPracticeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masterystate.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masterystate.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(masterystate.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryStateUpdateOne is the builder for updating a single MasteryState entity.
type MasteryStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryStateMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryStateUpdateOne) SetStudentID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableStudentID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryStateUpdateOne) SetConceptID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableConceptID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryStateUpdateOne) SetScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableScore(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryStateUpdateOne) AddScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MasteryStateUpdateOne) SetStatus(v string) *MasteryStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableStatus(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastPracticeAt sets the "last_practice_at" field.
func (_u *MasteryStateUpdateOne) SetLastPracticeAt(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetLastPracticeAt(v)
	return _u
}

// SetNillableLastPracticeAt sets the "last_practice_at" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableLastPracticeAt(v *time.Time) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetLastPracticeAt(*v)
	}
	return _u
}

// ClearLastPracticeAt clears the value of the "last_practice_at" field.
func (_u *MasteryStateUpdateOne) ClearLastPracticeAt() *MasteryStateUpdateOne {
	_u.mutation.ClearLastPracticeAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryStateUpdateOne) SetNextReviewAt(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableNextReviewAt(v *time.Time) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryStateUpdateOne) ClearNextReviewAt() *MasteryStateUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *MasteryStateUpdateOne) SetEngineVersion(v string) *MasteryStateUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableEngineVersion(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryStateUpdateOne) SetUpdatedAt(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableUpdatedAt(v *time.Time) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdateOne) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdateOne) Where(ps ...predicate.MasteryState) *MasteryStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryStateUpdateOne) Select(field string, fields ...string) *MasteryStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryState entity.
func (_u *MasteryStateUpdateOne) Save(ctx context.Context) (*MasteryState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) SaveX(ctx context.Context) *MasteryState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := masterystate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasteryState.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := masterystate.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "MasteryState.engine_version": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdateOne) sqlSave(ctx context.Context) (_node *MasteryState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterystate.FieldID)
		for _, f := range fields {
			if !masterystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterystate.FieldID {
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
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masterystate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masterystate.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masterystate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticeAt(); ok {
		_spec.SetField(masterystate.FieldLastPracticeAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticeAtCleared() {
		_spec.ClearField(masterystate.FieldLastPracticeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masterystate.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masterystate.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(masterystate.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masterystate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
