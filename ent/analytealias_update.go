// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/predicate"
)

// AnalyteAliasUpdate is the builder for updating AnalyteAlias entities.
type AnalyteAliasUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyteAliasMutation
}

// Where appends a list predicates to the AnalyteAliasUpdate builder.
func (_u *AnalyteAliasUpdate) Where(ps ...predicate.AnalyteAlias) *AnalyteAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNormalized sets the "normalized" field.
func (_u *AnalyteAliasUpdate) SetNormalized(v string) *AnalyteAliasUpdate {
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *AnalyteAliasUpdate) SetNillableNormalized(v *string) *AnalyteAliasUpdate {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// SetDisplay sets the "display" field.
func (_u *AnalyteAliasUpdate) SetDisplay(v string) *AnalyteAliasUpdate {
	_u.mutation.SetDisplay(v)
	return _u
}

// SetNillableDisplay sets the "display" field if the given value is not nil.
func (_u *AnalyteAliasUpdate) SetNillableDisplay(v *string) *AnalyteAliasUpdate {
	if v != nil {
		_u.SetDisplay(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AnalyteAliasUpdate) SetLanguage(v string) *AnalyteAliasUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AnalyteAliasUpdate) SetNillableLanguage(v *string) *AnalyteAliasUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalyteAliasUpdate) SetConfidence(v float64) *AnalyteAliasUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalyteAliasUpdate) SetNillableConfidence(v *float64) *AnalyteAliasUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalyteAliasUpdate) AddConfidence(v float64) *AnalyteAliasUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalyteAliasUpdate) SetSource(v analytealias.Source) *AnalyteAliasUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalyteAliasUpdate) SetNillableSource(v *analytealias.Source) *AnalyteAliasUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AnalyteAliasMutation object of the builder.
func (_u *AnalyteAliasUpdate) Mutation() *AnalyteAliasMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyteAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyteAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyteAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyteAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyteAliasUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := analytealias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AnalyteAlias.source": %w`, err)}
		}
	}
	if _u.mutation.AnalyteCleared() && len(_u.mutation.AnalyteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyteAlias.analyte"`)
	}
	return nil
}

func (_u *AnalyteAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analytealias.Table, analytealias.Columns, sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(analytealias.FieldNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(analytealias.FieldDisplay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(analytealias.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analytealias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analytealias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analytealias.FieldSource, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analytealias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyteAliasUpdateOne is the builder for updating a single AnalyteAlias entity.
type AnalyteAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyteAliasMutation
}

// SetNormalized sets the "normalized" field.
func (_u *AnalyteAliasUpdateOne) SetNormalized(v string) *AnalyteAliasUpdateOne {
	_u.mutation.SetNormalized(v)
	return _u
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (_u *AnalyteAliasUpdateOne) SetNillableNormalized(v *string) *AnalyteAliasUpdateOne {
	if v != nil {
		_u.SetNormalized(*v)
	}
	return _u
}

// SetDisplay sets the "display" field.
func (_u *AnalyteAliasUpdateOne) SetDisplay(v string) *AnalyteAliasUpdateOne {
	_u.mutation.SetDisplay(v)
	return _u
}

// SetNillableDisplay sets the "display" field if the given value is not nil.
func (_u *AnalyteAliasUpdateOne) SetNillableDisplay(v *string) *AnalyteAliasUpdateOne {
	if v != nil {
		_u.SetDisplay(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AnalyteAliasUpdateOne) SetLanguage(v string) *AnalyteAliasUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AnalyteAliasUpdateOne) SetNillableLanguage(v *string) *AnalyteAliasUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalyteAliasUpdateOne) SetConfidence(v float64) *AnalyteAliasUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalyteAliasUpdateOne) SetNillableConfidence(v *float64) *AnalyteAliasUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalyteAliasUpdateOne) AddConfidence(v float64) *AnalyteAliasUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalyteAliasUpdateOne) SetSource(v analytealias.Source) *AnalyteAliasUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalyteAliasUpdateOne) SetNillableSource(v *analytealias.Source) *AnalyteAliasUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AnalyteAliasMutation object of the builder.
func (_u *AnalyteAliasUpdateOne) Mutation() *AnalyteAliasMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalyteAliasUpdate builder.
func (_u *AnalyteAliasUpdateOne) Where(ps ...predicate.AnalyteAlias) *AnalyteAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyteAliasUpdateOne) Select(field string, fields ...string) *AnalyteAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyteAlias entity.
func (_u *AnalyteAliasUpdateOne) Save(ctx context.Context) (*AnalyteAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyteAliasUpdateOne) SaveX(ctx context.Context) *AnalyteAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyteAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyteAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyteAliasUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := analytealias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AnalyteAlias.source": %w`, err)}
		}
	}
	if _u.mutation.AnalyteCleared() && len(_u.mutation.AnalyteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyteAlias.analyte"`)
	}
	return nil
}

func (_u *AnalyteAliasUpdateOne) sqlSave(ctx context.Context) (_node *AnalyteAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analytealias.Table, analytealias.Columns, sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyteAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analytealias.FieldID)
		for _, f := range fields {
			if !analytealias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analytealias.FieldID {
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
	if value, ok := _u.mutation.Normalized(); ok {
		_spec.SetField(analytealias.FieldNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.Display(); ok {
		_spec.SetField(analytealias.FieldDisplay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(analytealias.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analytealias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analytealias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analytealias.FieldSource, field.TypeEnum, value)
	}
	_node = &AnalyteAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analytealias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
