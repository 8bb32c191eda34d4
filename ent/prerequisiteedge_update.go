// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
)

// PrerequisiteEdgeUpdate is the builder for updating PrerequisiteEdge entities.
type PrerequisiteEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *PrerequisiteEdgeMutation
}

// Where appends a list predicates to the PrerequisiteEdgeUpdate builder.
func (_u *PrerequisiteEdgeUpdate) Where(ps ...predicate.PrerequisiteEdge) *PrerequisiteEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptCode sets the "concept_code" field.
func (_u *PrerequisiteEdgeUpdate) SetConceptCode(v string) *PrerequisiteEdgeUpdate {
	_u.mutation.SetConceptCode(v)
	return _u
}

// SetNillableConceptCode sets the "concept_code" field if the given value is not nil.
func (_u *PrerequisiteEdgeUpdate) SetNillableConceptCode(v *string) *PrerequisiteEdgeUpdate {
	if v != nil {
		_u.SetConceptCode(*v)
	}
	return _u
}

// SetPrerequisiteCode sets the "prerequisite_code" field.
func (_u *PrerequisiteEdgeUpdate) SetPrerequisiteCode(v string) *PrerequisiteEdgeUpdate {
	_u.mutation.SetPrerequisiteCode(v)
	return _u
}

// SetNillablePrerequisiteCode sets the "prerequisite_code" field if the given value is not nil.
func (_u *PrerequisiteEdgeUpdate) SetNillablePrerequisiteCode(v *string) *PrerequisiteEdgeUpdate {
	if v != nil {
		_u.SetPrerequisiteCode(*v)
	}
	return _u
}

// Mutation returns the PrerequisiteEdgeMutation object of the builder.
func (_u *PrerequisiteEdgeUpdate) Mutation() *PrerequisiteEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrerequisiteEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrerequisiteEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrerequisiteEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrerequisiteEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrerequisiteEdgeUpdate) check() error {
	if v, ok := _u.mutation.ConceptCode(); ok {
		if err := prerequisiteedge.ConceptCodeValidator(v); err != nil {
			return &ValidationError{Name: "concept_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.concept_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrerequisiteCode(); ok {
		if err := prerequisiteedge.PrerequisiteCodeValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.prerequisite_code": %w`, err)}
		}
	}
	return nil
}

func (_u *PrerequisiteEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prerequisiteedge.Table, prerequisiteedge.Columns, sqlgraph.NewFieldSpec(prerequisiteedge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptCode(); ok {
		_spec.SetField(prerequisiteedge.FieldConceptCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrerequisiteCode(); ok {
		_spec.SetField(prerequisiteedge.FieldPrerequisiteCode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prerequisiteedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrerequisiteEdgeUpdateOne is the builder for updating a single PrerequisiteEdge entity.
type PrerequisiteEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrerequisiteEdgeMutation
}

// SetConceptCode sets the "concept_code" field.
func (_u *PrerequisiteEdgeUpdateOne) SetConceptCode(v string) *PrerequisiteEdgeUpdateOne {
	_u.mutation.SetConceptCode(v)
	return _u
}

// SetNillableConceptCode sets the "concept_code" field if the given value is not nil.
func (_u *PrerequisiteEdgeUpdateOne) SetNillableConceptCode(v *string) *PrerequisiteEdgeUpdateOne {
	if v != nil {
		_u.SetConceptCode(*v)
	}
	return _u
}

// SetPrerequisiteCode sets the "prerequisite_code" field.
func (_u *PrerequisiteEdgeUpdateOne) SetPrerequisiteCode(v string) *PrerequisiteEdgeUpdateOne {
	_u.mutation.SetPrerequisiteCode(v)
	return _u
}

// SetNillablePrerequisiteCode sets the "prerequisite_code" field if the given value is not nil.
func (_u *PrerequisiteEdgeUpdateOne) SetNillablePrerequisiteCode(v *string) *PrerequisiteEdgeUpdateOne {
	if v != nil {
		_u.SetPrerequisiteCode(*v)
	}
	return _u
}

// Mutation returns the PrerequisiteEdgeMutation object of the builder.
func (_u *PrerequisiteEdgeUpdateOne) Mutation() *PrerequisiteEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrerequisiteEdgeUpdate builder.
func (_u *PrerequisiteEdgeUpdateOne) Where(ps ...predicate.PrerequisiteEdge) *PrerequisiteEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrerequisiteEdgeUpdateOne) Select(field string, fields ...string) *PrerequisiteEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PrerequisiteEdge entity.
func (_u *PrerequisiteEdgeUpdateOne) Save(ctx context.Context) (*PrerequisiteEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrerequisiteEdgeUpdateOne) SaveX(ctx context.Context) *PrerequisiteEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrerequisiteEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrerequisiteEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrerequisiteEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptCode(); ok {
		if err := prerequisiteedge.ConceptCodeValidator(v); err != nil {
			return &ValidationError{Name: "concept_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.concept_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrerequisiteCode(); ok {
		if err := prerequisiteedge.PrerequisiteCodeValidator(v); err != nil {
			return &ValidationError{Name: "prerequisite_code", err: fmt.Errorf(`ent: validator failed for field "PrerequisiteEdge.prerequisite_code": %w`, err)}
		}
	}
	return nil
}

func (_u *PrerequisiteEdgeUpdateOne) sqlSave(ctx context.Context) (_node *PrerequisiteEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prerequisiteedge.Table, prerequisiteedge.Columns, sqlgraph.NewFieldSpec(prerequisiteedge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PrerequisiteEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prerequisiteedge.FieldID)
		for _, f := range fields {
			if !prerequisiteedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prerequisiteedge.FieldID {
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
	if value, ok := _u.mutation.ConceptCode(); ok {
		_spec.SetField(prerequisiteedge.FieldConceptCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrerequisiteCode(); ok {
		_spec.SetField(prerequisiteedge.FieldPrerequisiteCode, field.TypeString, value)
	}
	_node = &PrerequisiteEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prerequisiteedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
