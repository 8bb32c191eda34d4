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
	"github.com/diversifica/decies-platform-sub000/ent/tutordecision"
)

// TutorDecisionUpdate is the builder for updating TutorDecision entities.
type TutorDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *TutorDecisionMutation
}

// Where appends a list predicates to the TutorDecisionUpdate builder.
func (_u *TutorDecisionUpdate) Where(ps ...predicate.TutorDecision) *TutorDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTutorID sets the "tutor_id" field.
func (_u *TutorDecisionUpdate) SetTutorID(v string) *TutorDecisionUpdate {
	_u.mutation.SetTutorID(v)
	return _u
}

// SetNillableTutorID sets the "tutor_id" field if the given value is not nil.
func (_u *TutorDecisionUpdate) SetNillableTutorID(v *string) *TutorDecisionUpdate {
	if v != nil {
		_u.SetTutorID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *TutorDecisionUpdate) SetDecision(v string) *TutorDecisionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TutorDecisionUpdate) SetNillableDecision(v *string) *TutorDecisionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TutorDecisionUpdate) SetNotes(v string) *TutorDecisionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TutorDecisionUpdate) SetNillableNotes(v *string) *TutorDecisionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TutorDecisionUpdate) ClearNotes() *TutorDecisionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TutorDecisionUpdate) SetDecidedAt(v time.Time) *TutorDecisionUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TutorDecisionUpdate) SetNillableDecidedAt(v *time.Time) *TutorDecisionUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// Mutation returns the TutorDecisionMutation object of the builder.
func (_u *TutorDecisionUpdate) Mutation() *TutorDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorDecisionUpdate) check() error {
	if v, ok := _u.mutation.TutorID(); ok {
		if err := tutordecision.TutorIDValidator(v); err != nil {
			return &ValidationError{Name: "tutor_id", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.tutor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := tutordecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutordecision.Table, tutordecision.Columns, sqlgraph.NewFieldSpec(tutordecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TutorID(); ok {
		_spec.SetField(tutordecision.FieldTutorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(tutordecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(tutordecision.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(tutordecision.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(tutordecision.FieldDecidedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutordecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorDecisionUpdateOne is the builder for updating a single TutorDecision entity.
type TutorDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorDecisionMutation
}

// SetTutorID sets the "tutor_id" field.
func (_u *TutorDecisionUpdateOne) SetTutorID(v string) *TutorDecisionUpdateOne {
	_u.mutation.SetTutorID(v)
	return _u
}

// SetNillableTutorID sets the "tutor_id" field if the given value is not nil.
func (_u *TutorDecisionUpdateOne) SetNillableTutorID(v *string) *TutorDecisionUpdateOne {
	if v != nil {
		_u.SetTutorID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *TutorDecisionUpdateOne) SetDecision(v string) *TutorDecisionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TutorDecisionUpdateOne) SetNillableDecision(v *string) *TutorDecisionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TutorDecisionUpdateOne) SetNotes(v string) *TutorDecisionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TutorDecisionUpdateOne) SetNillableNotes(v *string) *TutorDecisionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TutorDecisionUpdateOne) ClearNotes() *TutorDecisionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TutorDecisionUpdateOne) SetDecidedAt(v time.Time) *TutorDecisionUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TutorDecisionUpdateOne) SetNillableDecidedAt(v *time.Time) *TutorDecisionUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// Mutation returns the TutorDecisionMutation object of the builder.
func (_u *TutorDecisionUpdateOne) Mutation() *TutorDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorDecisionUpdate builder.
func (_u *TutorDecisionUpdateOne) Where(ps ...predicate.TutorDecision) *TutorDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorDecisionUpdateOne) Select(field string, fields ...string) *TutorDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorDecision entity.
func (_u *TutorDecisionUpdateOne) Save(ctx context.Context) (*TutorDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorDecisionUpdateOne) SaveX(ctx context.Context) *TutorDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.TutorID(); ok {
		if err := tutordecision.TutorIDValidator(v); err != nil {
			return &ValidationError{Name: "tutor_id", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.tutor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := tutordecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TutorDecision.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorDecisionUpdateOne) sqlSave(ctx context.Context) (_node *TutorDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutordecision.Table, tutordecision.Columns, sqlgraph.NewFieldSpec(tutordecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutordecision.FieldID)
		for _, f := range fields {
			if !tutordecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutordecision.FieldID {
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
	if value, ok := _u.mutation.TutorID(); ok {
		_spec.SetField(tutordecision.FieldTutorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(tutordecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(tutordecision.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(tutordecision.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(tutordecision.FieldDecidedAt, field.TypeTime, value)
	}
	_node = &TutorDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutordecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
