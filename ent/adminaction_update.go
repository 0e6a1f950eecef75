// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labtrail/labtrail/ent/adminaction"
	"github.com/labtrail/labtrail/ent/predicate"
)

// AdminActionUpdate is the builder for updating AdminAction entities.
type AdminActionUpdate struct {
	config
	hooks    []Hook
	mutation *AdminActionMutation
}

// Where appends a list predicates to the AdminActionUpdate builder.
func (_u *AdminActionUpdate) Where(ps ...predicate.AdminAction) *AdminActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AdminActionMutation object of the builder.
func (_u *AdminActionUpdate) Mutation() *AdminActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdminActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(adminaction.Table, adminaction.Columns, sqlgraph.NewFieldSpec(adminaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(adminaction.FieldActorID, field.TypeUUID)
	}
	if _u.mutation.ActorEmailCleared() {
		_spec.ClearField(adminaction.FieldActorEmail, field.TypeString)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(adminaction.FieldTarget, field.TypeString)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(adminaction.FieldDetail, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminActionUpdateOne is the builder for updating a single AdminAction entity.
type AdminActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminActionMutation
}

// Mutation returns the AdminActionMutation object of the builder.
func (_u *AdminActionUpdateOne) Mutation() *AdminActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdminActionUpdate builder.
func (_u *AdminActionUpdateOne) Where(ps ...predicate.AdminAction) *AdminActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminActionUpdateOne) Select(field string, fields ...string) *AdminActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminAction entity.
func (_u *AdminActionUpdateOne) Save(ctx context.Context) (*AdminAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminActionUpdateOne) SaveX(ctx context.Context) *AdminAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdminActionUpdateOne) sqlSave(ctx context.Context) (_node *AdminAction, err error) {
	_spec := sqlgraph.NewUpdateSpec(adminaction.Table, adminaction.Columns, sqlgraph.NewFieldSpec(adminaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adminaction.FieldID)
		for _, f := range fields {
			if !adminaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adminaction.FieldID {
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
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(adminaction.FieldActorID, field.TypeUUID)
	}
	if _u.mutation.ActorEmailCleared() {
		_spec.ClearField(adminaction.FieldActorEmail, field.TypeString)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(adminaction.FieldTarget, field.TypeString)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(adminaction.FieldDetail, field.TypeJSON)
	}
	_node = &AdminAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
