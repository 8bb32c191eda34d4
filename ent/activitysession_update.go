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
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// ActivitySessionUpdate is the builder for updating ActivitySession entities.
type ActivitySessionUpdate struct {
	config
	hooks    []Hook
	mutation *ActivitySessionMutation
}

// Where appends a list predicates to the ActivitySessionUpdate builder.
func (_u *ActivitySessionUpdate) Where(ps ...predicate.ActivitySession) *ActivitySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivitySessionUpdate) SetSessionID(v string) *ActivitySessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableSessionID(v *string) *ActivitySessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ActivitySessionUpdate) SetStudentID(v string) *ActivitySessionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableStudentID(v *string) *ActivitySessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ActivitySessionUpdate) SetSubject(v string) *ActivitySessionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableSubject(v *string) *ActivitySessionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *ActivitySessionUpdate) SetTerm(v string) *ActivitySessionUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableTerm(v *string) *ActivitySessionUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivitySessionUpdate) SetActivityType(v string) *ActivitySessionUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableActivityType(v *string) *ActivitySessionUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ActivitySessionUpdate) SetStartedAt(v time.Time) *ActivitySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableStartedAt(v *time.Time) *ActivitySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ActivitySessionUpdate) SetEndedAt(v time.Time) *ActivitySessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ActivitySessionUpdate) SetNillableEndedAt(v *time.Time) *ActivitySessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ActivitySessionUpdate) ClearEndedAt() *ActivitySessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the ActivitySessionMutation object of the builder.
func (_u *ActivitySessionUpdate) Mutation() *ActivitySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivitySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivitySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivitySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivitySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivitySessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activitysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := activitysession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := activitysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := activitysession.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activitysession.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivitySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitysession.Table, activitysession.Columns, sqlgraph.NewFieldSpec(activitysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activitysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(activitysession.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(activitysession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(activitysession.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activitysession.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(activitysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(activitysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(activitysession.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivitySessionUpdateOne is the builder for updating a single ActivitySession entity.
type ActivitySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivitySessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ActivitySessionUpdateOne) SetSessionID(v string) *ActivitySessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableSessionID(v *string) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ActivitySessionUpdateOne) SetStudentID(v string) *ActivitySessionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableStudentID(v *string) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ActivitySessionUpdateOne) SetSubject(v string) *ActivitySessionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableSubject(v *string) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *ActivitySessionUpdateOne) SetTerm(v string) *ActivitySessionUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableTerm(v *string) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivitySessionUpdateOne) SetActivityType(v string) *ActivitySessionUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableActivityType(v *string) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ActivitySessionUpdateOne) SetStartedAt(v time.Time) *ActivitySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableStartedAt(v *time.Time) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ActivitySessionUpdateOne) SetEndedAt(v time.Time) *ActivitySessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ActivitySessionUpdateOne) SetNillableEndedAt(v *time.Time) *ActivitySessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ActivitySessionUpdateOne) ClearEndedAt() *ActivitySessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the ActivitySessionMutation object of the builder.
func (_u *ActivitySessionUpdateOne) Mutation() *ActivitySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivitySessionUpdate builder.
func (_u *ActivitySessionUpdateOne) Where(ps ...predicate.ActivitySession) *ActivitySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivitySessionUpdateOne) Select(field string, fields ...string) *ActivitySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivitySession entity.
func (_u *ActivitySessionUpdateOne) Save(ctx context.Context) (*ActivitySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivitySessionUpdateOne) SaveX(ctx context.Context) *ActivitySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivitySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivitySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivitySessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activitysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := activitysession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := activitysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := activitysession.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activitysession.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivitySessionUpdateOne) sqlSave(ctx context.Context) (_node *ActivitySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitysession.Table, activitysession.Columns, sqlgraph.NewFieldSpec(activitysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivitySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitysession.FieldID)
		for _, f := range fields {
			if !activitysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activitysession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activitysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(activitysession.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(activitysession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(activitysession.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activitysession.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(activitysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(activitysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(activitysession.FieldEndedAt, field.TypeTime)
	}
	_node = &ActivitySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
