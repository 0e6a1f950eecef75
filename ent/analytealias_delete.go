// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/predicate"
)

// AnalyteAliasDelete is the builder for deleting a AnalyteAlias entity.
type AnalyteAliasDelete struct {
	config
	hooks    []Hook
	mutation *AnalyteAliasMutation
}

// Where appends a list predicates to the AnalyteAliasDelete builder.
func (_d *AnalyteAliasDelete) Where(ps ...predicate.AnalyteAlias) *AnalyteAliasDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalyteAliasDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyteAliasDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalyteAliasDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analytealias.Table, sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeUUID))
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

// AnalyteAliasDeleteOne is the builder for deleting a single AnalyteAlias entity.
type AnalyteAliasDeleteOne struct {
	_d *AnalyteAliasDelete
}

// Where appends a list predicates to the AnalyteAliasDelete builder.
func (_d *AnalyteAliasDeleteOne) Where(ps ...predicate.AnalyteAlias) *AnalyteAliasDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalyteAliasDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analytealias.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyteAliasDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
