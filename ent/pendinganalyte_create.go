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
	"github.com/labtrail/labtrail/ent/pendinganalyte"
)

// PendingAnalyteCreate is the builder for creating a PendingAnalyte entity.
type PendingAnalyteCreate struct {
	config
	mutation *PendingAnalyteMutation
	hooks    []Hook
}

// SetProposedCode sets the "proposed_code" field.
func (_c *PendingAnalyteCreate) SetProposedCode(v string) *PendingAnalyteCreate {
	_c.mutation.SetProposedCode(v)
	return _c
}

// SetProposedName sets the "proposed_name" field.
func (_c *PendingAnalyteCreate) SetProposedName(v string) *PendingAnalyteCreate {
	_c.mutation.SetProposedName(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *PendingAnalyteCreate) SetEvidence(v []map[string]interface{}) *PendingAnalyteCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetVariations sets the "variations" field.
func (_c *PendingAnalyteCreate) SetVariations(v []map[string]string) *PendingAnalyteCreate {
	_c.mutation.SetVariations(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingAnalyteCreate) SetStatus(v pendinganalyte.Status) *PendingAnalyteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingAnalyteCreate) SetCreatedAt(v time.Time) *PendingAnalyteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableCreatedAt(v *time.Time) *PendingAnalyteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *PendingAnalyteCreate) SetResolvedAt(v time.Time) *PendingAnalyteCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableResolvedAt(v *time.Time) *PendingAnalyteCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingAnalyteCreate) SetID(v uuid.UUID) *PendingAnalyteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableID(v *uuid.UUID) *PendingAnalyteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_c *PendingAnalyteCreate) Mutation() *PendingAnalyteMutation {
	return _c.mutation
}

// Save creates the PendingAnalyte in the database.
func (_c *PendingAnalyteCreate) Save(ctx context.Context) (*PendingAnalyte, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingAnalyteCreate) SaveX(ctx context.Context) *PendingAnalyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingAnalyteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingAnalyteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingAnalyteCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendinganalyte.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendinganalyte.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pendinganalyte.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingAnalyteCreate) check() error {
	if _, ok := _c.mutation.ProposedCode(); !ok {
		return &ValidationError{Name: "proposed_code", err: errors.New(`ent: missing required field "PendingAnalyte.proposed_code"`)}
	}
	if _, ok := _c.mutation.ProposedName(); !ok {
		return &ValidationError{Name: "proposed_name", err: errors.New(`ent: missing required field "PendingAnalyte.proposed_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingAnalyte.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingAnalyte.created_at"`)}
	}
	return nil
}

func (_c *PendingAnalyteCreate) sqlSave(ctx context.Context) (*PendingAnalyte, error) {
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

func (_c *PendingAnalyteCreate) createSpec() (*PendingAnalyte, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingAnalyte{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendinganalyte.Table, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
		_node.ProposedCode = value
	}
	if value, ok := _c.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
		_node.ProposedName = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Variations(); ok {
		_spec.SetField(pendinganalyte.FieldVariations, field.TypeJSON, value)
		_node.Variations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendinganalyte.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(pendinganalyte.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// PendingAnalyteCreateBulk is the builder for creating many PendingAnalyte entities in bulk.
type PendingAnalyteCreateBulk struct {
	config
	err      error
	builders []*PendingAnalyteCreate
}

// Save creates the PendingAnalyte entities in the database.
func (_c *PendingAnalyteCreateBulk) Save(ctx context.Context) ([]*PendingAnalyte, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingAnalyte, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingAnalyteMutation)
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
func (_c *PendingAnalyteCreateBulk) SaveX(ctx context.Context) []*PendingAnalyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingAnalyteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingAnalyteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
