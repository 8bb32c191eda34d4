// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
)

// MicroConceptUpdate is the builder for updating MicroConcept entities.
type MicroConceptUpdate struct {
	config
	hooks    []Hook
	mutation *MicroConceptMutation
}

// Where appends a list predicates to the MicroConceptUpdate builder.
func (_u *MicroConceptUpdate) Where(ps ...predicate.MicroConcept) *MicroConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *MicroConceptUpdate) SetCode(v string) *MicroConceptUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *MicroConceptUpdate) SetNillableCode(v *string) *MicroConceptUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MicroConceptUpdate) SetName(v string) *MicroConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MicroConceptUpdate) SetNillableName(v *string) *MicroConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MicroConceptUpdate) SetSubject(v string) *MicroConceptUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MicroConceptUpdate) SetNillableSubject(v *string) *MicroConceptUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *MicroConceptUpdate) SetTerm(v string) *MicroConceptUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *MicroConceptUpdate) SetNillableTerm(v *string) *MicroConceptUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *MicroConceptUpdate) SetActive(v bool) *MicroConceptUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *MicroConceptUpdate) SetNillableActive(v *bool) *MicroConceptUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the MicroConceptMutation object of the builder.
func (_u *MicroConceptUpdate) Mutation() *MicroConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MicroConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MicroConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MicroConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MicroConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MicroConceptUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := microconcept.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := microconcept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := microconcept.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := microconcept.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.term": %w`, err)}
		}
	}
	return nil
}

func (_u *MicroConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(microconcept.Table, microconcept.Columns, sqlgraph.NewFieldSpec(microconcept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(microconcept.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(microconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(microconcept.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(microconcept.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(microconcept.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{microconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MicroConceptUpdateOne is the builder for updating a single MicroConcept entity.
type MicroConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MicroConceptMutation
}

// SetCode sets the "code" field.
func (_u *MicroConceptUpdateOne) SetCode(v string) *MicroConceptUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *MicroConceptUpdateOne) SetNillableCode(v *string) *MicroConceptUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MicroConceptUpdateOne) SetName(v string) *MicroConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MicroConceptUpdateOne) SetNillableName(v *string) *MicroConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MicroConceptUpdateOne) SetSubject(v string) *MicroConceptUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MicroConceptUpdateOne) SetNillableSubject(v *string) *MicroConceptUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *MicroConceptUpdateOne) SetTerm(v string) *MicroConceptUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *MicroConceptUpdateOne) SetNillableTerm(v *string) *MicroConceptUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *MicroConceptUpdateOne) SetActive(v bool) *MicroConceptUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *MicroConceptUpdateOne) SetNillableActive(v *bool) *MicroConceptUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the MicroConceptMutation object of the builder.
func (_u *MicroConceptUpdateOne) Mutation() *MicroConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MicroConceptUpdate builder.
func (_u *MicroConceptUpdateOne) Where(ps ...predicate.MicroConcept) *MicroConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MicroConceptUpdateOne) Select(field string, fields ...string) *MicroConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MicroConcept entity.
func (_u *MicroConceptUpdateOne) Save(ctx context.Context) (*MicroConcept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MicroConceptUpdateOne) SaveX(ctx context.Context) *MicroConcept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MicroConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MicroConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MicroConceptUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := microconcept.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := microconcept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := microconcept.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := microconcept.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "MicroConcept.term": %w`, err)}
		}
	}
	return nil
}

func (_u *MicroConceptUpdateOne) sqlSave(ctx context.Context) (_node *MicroConcept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(microconcept.Table, microconcept.Columns, sqlgraph.NewFieldSpec(microconcept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MicroConcept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, microconcept.FieldID)
		for _, f := range fields {
			if !microconcept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != microconcept.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(microconcept.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(microconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(microconcept.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(microconcept.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(microconcept.FieldActive, field.TypeBool, value)
	}
	_node = &MicroConcept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{microconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
