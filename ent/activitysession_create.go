// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/activitysession"
)

// ActivitySessionCreate is the builder for creating a ActivitySession entity.
type ActivitySessionCreate struct {
	config
	mutation *ActivitySessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ActivitySessionCreate) SetSessionID(v string) *ActivitySessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *ActivitySessionCreate) SetStudentID(v string) *ActivitySessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ActivitySessionCreate) SetSubject(v string) *ActivitySessionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *ActivitySessionCreate) SetTerm(v string) *ActivitySessionCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *ActivitySessionCreate) SetActivityType(v string) *ActivitySessionCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ActivitySessionCreate) SetStartedAt(v time.Time) *ActivitySessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ActivitySessionCreate) SetEndedAt(v time.Time) *ActivitySessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ActivitySessionCreate) SetNillableEndedAt(v *time.Time) *ActivitySessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// Mutation returns the ActivitySessionMutation object of the builder.
func (_c *ActivitySessionCreate) Mutation() *ActivitySessionMutation {
	return _c.mutation
}

// Save creates the ActivitySession in the database.
func (_c *ActivitySessionCreate) Save(ctx context.Context) (*ActivitySession, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivitySessionCreate) SaveX(ctx context.Context) *ActivitySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivitySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivitySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivitySessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActivitySession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := activitysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ActivitySession.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := activitysession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ActivitySession.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := activitysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "ActivitySession.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := activitysession.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "ActivitySession.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := activitysession.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivitySession.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ActivitySession.started_at"`)}
	}
	return nil
}

func (_c *ActivitySessionCreate) sqlSave(ctx context.Context) (*ActivitySession, error) {
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

func (_c *ActivitySessionCreate) createSpec() (*ActivitySession, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivitySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activitysession.Table, sqlgraph.NewFieldSpec(activitysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(activitysession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(activitysession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(activitysession.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(activitysession.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(activitysession.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(activitysession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(activitysession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// ActivitySessionCreateBulk is the builder for creating many ActivitySession entities in bulk.
type ActivitySessionCreateBulk struct {
	config
	err      error
	builders []*ActivitySessionCreate
}

// Save creates the ActivitySession entities in the database.
func (_c *ActivitySessionCreateBulk) Save(ctx context.Context) ([]*ActivitySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivitySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivitySessionMutation)
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
func (_c *ActivitySessionCreateBulk) SaveX(ctx context.Context) []*ActivitySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivitySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivitySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
