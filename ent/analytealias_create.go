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
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
)

// AnalyteAliasCreate is the builder for creating a AnalyteAlias entity.
type AnalyteAliasCreate struct {
	config
	mutation *AnalyteAliasMutation
	hooks    []Hook
}

// SetAnalyteID sets the "analyte_id" field.
func (_c *AnalyteAliasCreate) SetAnalyteID(v uuid.UUID) *AnalyteAliasCreate {
	_c.mutation.SetAnalyteID(v)
	return _c
}

// SetNormalized sets the "normalized" field.
func (_c *AnalyteAliasCreate) SetNormalized(v string) *AnalyteAliasCreate {
	_c.mutation.SetNormalized(v)
	return _c
}

// SetDisplay sets the "display" field.
func (_c *AnalyteAliasCreate) SetDisplay(v string) *AnalyteAliasCreate {
	_c.mutation.SetDisplay(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *AnalyteAliasCreate) SetLanguage(v string) *AnalyteAliasCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *AnalyteAliasCreate) SetNillableLanguage(v *string) *AnalyteAliasCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalyteAliasCreate) SetConfidence(v float64) *AnalyteAliasCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AnalyteAliasCreate) SetNillableConfidence(v *float64) *AnalyteAliasCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *AnalyteAliasCreate) SetSource(v analytealias.Source) *AnalyteAliasCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AnalyteAliasCreate) SetNillableSource(v *analytealias.Source) *AnalyteAliasCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalyteAliasCreate) SetCreatedAt(v time.Time) *AnalyteAliasCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalyteAliasCreate) SetNillableCreatedAt(v *time.Time) *AnalyteAliasCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalyteAliasCreate) SetID(v uuid.UUID) *AnalyteAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalyteAliasCreate) SetNillableID(v *uuid.UUID) *AnalyteAliasCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_c *AnalyteAliasCreate) SetAnalyte(v *Analyte) *AnalyteAliasCreate {
	return _c.SetAnalyteID(v.ID)
}

// Mutation returns the AnalyteAliasMutation object of the builder.
func (_c *AnalyteAliasCreate) Mutation() *AnalyteAliasMutation {
	return _c.mutation
}

// Save creates the AnalyteAlias in the database.
func (_c *AnalyteAliasCreate) Save(ctx context.Context) (*AnalyteAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyteAliasCreate) SaveX(ctx context.Context) *AnalyteAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyteAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyteAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyteAliasCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := analytealias.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := analytealias.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := analytealias.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analytealias.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analytealias.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyteAliasCreate) check() error {
	if _, ok := _c.mutation.AnalyteID(); !ok {
		return &ValidationError{Name: "analyte_id", err: errors.New(`ent: missing required field "AnalyteAlias.analyte_id"`)}
	}
	if _, ok := _c.mutation.Normalized(); !ok {
		return &ValidationError{Name: "normalized", err: errors.New(`ent: missing required field "AnalyteAlias.normalized"`)}
	}
	if _, ok := _c.mutation.Display(); !ok {
		return &ValidationError{Name: "display", err: errors.New(`ent: missing required field "AnalyteAlias.display"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "AnalyteAlias.language"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AnalyteAlias.confidence"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AnalyteAlias.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := analytealias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AnalyteAlias.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalyteAlias.created_at"`)}
	}
	if len(_c.mutation.AnalyteIDs()) == 0 {
		return &ValidationError{Name: "analyte", err: errors.New(`ent: missing required edge "AnalyteAlias.analyte"`)}
	}
	return nil
}

func (_c *AnalyteAliasCreate) sqlSave(ctx context.Context) (*AnalyteAlias, error) {
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

func (_c *AnalyteAliasCreate) createSpec() (*AnalyteAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyteAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analytealias.Table, sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Normalized(); ok {
		_spec.SetField(analytealias.FieldNormalized, field.TypeString, value)
		_node.Normalized = value
	}
	if value, ok := _c.mutation.Display(); ok {
		_spec.SetField(analytealias.FieldDisplay, field.TypeString, value)
		_node.Display = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(analytealias.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analytealias.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(analytealias.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analytealias.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analytealias.AnalyteTable,
			Columns: []string{analytealias.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalyteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalyteAliasCreateBulk is the builder for creating many AnalyteAlias entities in bulk.
type AnalyteAliasCreateBulk struct {
	config
	err      error
	builders []*AnalyteAliasCreate
}

// Save creates the AnalyteAlias entities in the database.
func (_c *AnalyteAliasCreateBulk) Save(ctx context.Context) ([]*AnalyteAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyteAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyteAliasMutation)
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
func (_c *AnalyteAliasCreateBulk) SaveX(ctx context.Context) []*AnalyteAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyteAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyteAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
