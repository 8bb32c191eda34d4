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
	"github.com/diversifica/decies-platform-sub000/ent/recommendation"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *RecommendationUpdate) SetStudentID(v string) *RecommendationUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableStudentID(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *RecommendationUpdate) SetConceptID(v string) *RecommendationUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableConceptID(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRuleCode sets the "rule_code" field.
func (_u *RecommendationUpdate) SetRuleCode(v string) *RecommendationUpdate {
	_u.mutation.SetRuleCode(v)
	return _u
}

// SetNillableRuleCode sets the "rule_code" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRuleCode(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetRuleCode(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdate) SetPriority(v string) *RecommendationUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePriority(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdate) SetStatus(v string) *RecommendationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableStatus(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdate) SetTitle(v string) *RecommendationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableTitle(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdate) SetDescription(v string) *RecommendationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDescription(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *RecommendationUpdate) SetWindowDays(v int) *RecommendationUpdate {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableWindowDays(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *RecommendationUpdate) AddWindowDays(v int) *RecommendationUpdate {
	_u.mutation.AddWindowDays(v)
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *RecommendationUpdate) SetEngineVersion(v string) *RecommendationUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableEngineVersion(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *RecommendationUpdate) SetRulesetVersion(v string) *RecommendationUpdate {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRulesetVersion(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *RecommendationUpdate) SetGeneratedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableGeneratedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdate) SetUpdatedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableUpdatedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := recommendation.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleCode(); ok {
		if err := recommendation.RuleCodeValidator(v); err != nil {
			return &ValidationError{Name: "rule_code", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rule_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := recommendation.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Recommendation.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := recommendation.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RulesetVersion(); ok {
		if err := recommendation.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.ruleset_version": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(recommendation.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleCode(); ok {
		_spec.SetField(recommendation.FieldRuleCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(recommendation.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(recommendation.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(recommendation.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendation.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(recommendation.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetStudentID sets the "student_id" field.
func (_u *RecommendationUpdateOne) SetStudentID(v string) *RecommendationUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableStudentID(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *RecommendationUpdateOne) SetConceptID(v string) *RecommendationUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableConceptID(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRuleCode sets the "rule_code" field.
func (_u *RecommendationUpdateOne) SetRuleCode(v string) *RecommendationUpdateOne {
	_u.mutation.SetRuleCode(v)
	return _u
}

// SetNillableRuleCode sets the "rule_code" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRuleCode(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRuleCode(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdateOne) SetPriority(v string) *RecommendationUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePriority(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdateOne) SetStatus(v string) *RecommendationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableStatus(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdateOne) SetTitle(v string) *RecommendationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableTitle(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdateOne) SetDescription(v string) *RecommendationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDescription(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *RecommendationUpdateOne) SetWindowDays(v int) *RecommendationUpdateOne {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableWindowDays(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *RecommendationUpdateOne) AddWindowDays(v int) *RecommendationUpdateOne {
	_u.mutation.AddWindowDays(v)
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *RecommendationUpdateOne) SetEngineVersion(v string) *RecommendationUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableEngineVersion(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *RecommendationUpdateOne) SetRulesetVersion(v string) *RecommendationUpdateOne {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRulesetVersion(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *RecommendationUpdateOne) SetGeneratedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableGeneratedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdateOne) SetUpdatedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableUpdatedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := recommendation.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleCode(); ok {
		if err := recommendation.RuleCodeValidator(v); err != nil {
			return &ValidationError{Name: "rule_code", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rule_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := recommendation.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Recommendation.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := recommendation.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RulesetVersion(); ok {
		if err := recommendation.RulesetVersionValidator(v); err != nil {
			return &ValidationError{Name: "ruleset_version", err: fmt.Errorf(`ent: validator failed for field "Recommendation.ruleset_version": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
		_spec.SetField(recommendation.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleCode(); ok {
		_spec.SetField(recommendation.FieldRuleCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(recommendation.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(recommendation.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(recommendation.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(recommendation.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(recommendation.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
