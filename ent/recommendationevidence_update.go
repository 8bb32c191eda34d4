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
	"github.com/diversifica/decies-platform-sub000/ent/recommendationevidence"
)

// RecommendationEvidenceUpdate is the builder for updating RecommendationEvidence entities.
type RecommendationEvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationEvidenceMutation
}

// Where appends a list predicates to the RecommendationEvidenceUpdate builder.
func (_u *RecommendationEvidenceUpdate) Where(ps ...predicate.RecommendationEvidence) *RecommendationEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *RecommendationEvidenceUpdate) SetEvidenceType(v string) *RecommendationEvidenceUpdate {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdate) SetNillableEvidenceType(v *string) *RecommendationEvidenceUpdate {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *RecommendationEvidenceUpdate) SetKey(v string) *RecommendationEvidenceUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdate) SetNillableKey(v *string) *RecommendationEvidenceUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RecommendationEvidenceUpdate) SetValue(v string) *RecommendationEvidenceUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdate) SetNillableValue(v *string) *RecommendationEvidenceUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationEvidenceUpdate) SetDescription(v string) *RecommendationEvidenceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdate) SetNillableDescription(v *string) *RecommendationEvidenceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the RecommendationEvidenceMutation object of the builder.
func (_u *RecommendationEvidenceUpdate) Mutation() *RecommendationEvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationEvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEvidenceUpdate) check() error {
	if v, ok := _u.mutation.EvidenceType(); ok {
		if err := recommendationevidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.evidence_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := recommendationevidence.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := recommendationevidence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendationevidence.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.description": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevidence.Table, recommendationevidence.Columns, sqlgraph.NewFieldSpec(recommendationevidence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(recommendationevidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(recommendationevidence.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(recommendationevidence.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendationevidence.FieldDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationEvidenceUpdateOne is the builder for updating a single RecommendationEvidence entity.
type RecommendationEvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationEvidenceMutation
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *RecommendationEvidenceUpdateOne) SetEvidenceType(v string) *RecommendationEvidenceUpdateOne {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdateOne) SetNillableEvidenceType(v *string) *RecommendationEvidenceUpdateOne {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *RecommendationEvidenceUpdateOne) SetKey(v string) *RecommendationEvidenceUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdateOne) SetNillableKey(v *string) *RecommendationEvidenceUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RecommendationEvidenceUpdateOne) SetValue(v string) *RecommendationEvidenceUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdateOne) SetNillableValue(v *string) *RecommendationEvidenceUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationEvidenceUpdateOne) SetDescription(v string) *RecommendationEvidenceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationEvidenceUpdateOne) SetNillableDescription(v *string) *RecommendationEvidenceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the RecommendationEvidenceMutation object of the builder.
func (_u *RecommendationEvidenceUpdateOne) Mutation() *RecommendationEvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationEvidenceUpdate builder.
func (_u *RecommendationEvidenceUpdateOne) Where(ps ...predicate.RecommendationEvidence) *RecommendationEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationEvidenceUpdateOne) Select(field string, fields ...string) *RecommendationEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationEvidence entity.
func (_u *RecommendationEvidenceUpdateOne) Save(ctx context.Context) (*RecommendationEvidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEvidenceUpdateOne) SaveX(ctx context.Context) *RecommendationEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.EvidenceType(); ok {
		if err := recommendationevidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.evidence_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := recommendationevidence.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := recommendationevidence.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendationevidence.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvidence.description": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevidence.Table, recommendationevidence.Columns, sqlgraph.NewFieldSpec(recommendationevidence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationevidence.FieldID)
		for _, f := range fields {
			if !recommendationevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationevidence.FieldID {
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
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(recommendationevidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(recommendationevidence.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(recommendationevidence.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendationevidence.FieldDescription, field.TypeString, value)
	}
	_node = &RecommendationEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
