// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/adminaction"
)

// AdminActionCreate is the builder for creating a AdminAction entity.
type AdminActionCreate struct {
	config
	mutation *AdminActionMutation
	hooks    []Hook
}

// SetActorID sets the "actor_id" field.
func (_c *AdminActionCreate) SetActorID(v uuid.UUID) *AdminActionCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *AdminActionCreate) SetNillableActorID(v *uuid.UUID) *AdminActionCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetActorEmail sets the "actor_email" field.
func (_c *AdminActionCreate) SetActorEmail(v string) *AdminActionCreate {
	_c.mutation.SetActorEmail(v)
	return _c
}

// SetNillableActorEmail sets the "actor_email" field if the given value is not nil.
func (_c *AdminActionCreate) SetNillableActorEmail(v *string) *AdminActionCreate {
	if v != nil {
		_c.SetActorEmail(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *AdminActionCreate) SetAction(v string) *AdminActionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *AdminActionCreate) SetTarget(v string) *AdminActionCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *AdminActionCreate) SetNillableTarget(v *string) *AdminActionCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *AdminActionCreate) SetDetail(v map[string]interface{}) *AdminActionCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminActionCreate) SetCreatedAt(v time.Time) *AdminActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminActionCreate) SetNillableCreatedAt(v *time.Time) *AdminActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdminActionCreate) SetID(v uuid.UUID) *AdminActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdminActionCreate) SetNillableID(v *uuid.UUID) *AdminActionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AdminActionMutation object of the builder.
func (_c *AdminActionCreate) Mutation() *AdminActionMutation {
	return _c.mutation
}

// Save creates the AdminAction in the database.
func (_c *AdminActionCreate) Save(ctx context.Context) (*AdminAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminActionCreate) SaveX(ctx context.Context) *AdminAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := adminaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminActionCreate) check() error {
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AdminAction.action"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminAction.created_at"`)}
	}
	return nil
}

func (_c *AdminActionCreate) sqlSave(ctx context.Context) (*AdminAction, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminActionCreate) createSpec() (*AdminAction, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminaction.Table, sqlgraph.NewFieldSpec(adminaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(adminaction.FieldActorID, field.TypeUUID, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.ActorEmail(); ok {
		_spec.SetField(adminaction.FieldActorEmail, field.TypeString, value)
		_node.ActorEmail = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(adminaction.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(adminaction.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(adminaction.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AdminActionCreateBulk is the builder for creating many AdminAction entities in bulk.
type AdminActionCreateBulk struct {
	config
	err      error
	builders []*AdminActionCreate
}

// Save creates the AdminAction entities in the database.
func (_c *AdminActionCreateBulk) Save(ctx context.Context) ([]*AdminAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminActionMutation)
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
func (_c *AdminActionCreateBulk) SaveX(ctx context.Context) []*AdminAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
