// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
)

// PrerequisiteEdgeDelete is the builder for deleting a PrerequisiteEdge entity.
type PrerequisiteEdgeDelete struct {
	config
	hooks    []Hook
	mutation *PrerequisiteEdgeMutation
}

// Where appends a list predicates to the PrerequisiteEdgeDelete builder.
func (_d *PrerequisiteEdgeDelete) Where(ps ...predicate.PrerequisiteEdge) *PrerequisiteEdgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PrerequisiteEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrerequisiteEdgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PrerequisiteEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(prerequisiteedge.Table, sqlgraph.NewFieldSpec(prerequisiteedge.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PrerequisiteEdgeDeleteOne is the builder for deleting a single PrerequisiteEdge entity.
type PrerequisiteEdgeDeleteOne struct {
	_d *PrerequisiteEdgeDelete
}

// Where appends a list predicates to the PrerequisiteEdgeDelete builder.
func (_d *PrerequisiteEdgeDeleteOne) Where(ps ...predicate.PrerequisiteEdge) *PrerequisiteEdgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PrerequisiteEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{prerequisiteedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PrerequisiteEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
