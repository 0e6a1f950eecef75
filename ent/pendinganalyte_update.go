// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/ent/predicate"
)

// PendingAnalyteUpdate is the builder for updating PendingAnalyte entities.
type PendingAnalyteUpdate struct {
	config
	hooks    []Hook
	mutation *PendingAnalyteMutation
}

// Where appends a list predicates to the PendingAnalyteUpdate builder.
func (_u *PendingAnalyteUpdate) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposedCode sets the "proposed_code" field.
func (_u *PendingAnalyteUpdate) SetProposedCode(v string) *PendingAnalyteUpdate {
	_u.mutation.SetProposedCode(v)
	return _u
}

// SetNillableProposedCode sets the "proposed_code" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableProposedCode(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetProposedCode(*v)
	}
	return _u
}

// SetProposedName sets the "proposed_name" field.
func (_u *PendingAnalyteUpdate) SetProposedName(v string) *PendingAnalyteUpdate {
	_u.mutation.SetProposedName(v)
	return _u
}

// SetNillableProposedName sets the "proposed_name" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableProposedName(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetProposedName(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PendingAnalyteUpdate) SetEvidence(v []map[string]interface{}) *PendingAnalyteUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *PendingAnalyteUpdate) AppendEvidence(v []map[string]interface{}) *PendingAnalyteUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PendingAnalyteUpdate) ClearEvidence() *PendingAnalyteUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetVariations sets the "variations" field.
func (_u *PendingAnalyteUpdate) SetVariations(v []map[string]string) *PendingAnalyteUpdate {
	_u.mutation.SetVariations(v)
	return _u
}

// AppendVariations appends value to the "variations" field.
func (_u *PendingAnalyteUpdate) AppendVariations(v []map[string]string) *PendingAnalyteUpdate {
	_u.mutation.AppendVariations(v)
	return _u
}

// ClearVariations clears the value of the "variations" field.
func (_u *PendingAnalyteUpdate) ClearVariations() *PendingAnalyteUpdate {
	_u.mutation.ClearVariations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingAnalyteUpdate) SetStatus(v pendinganalyte.Status) *PendingAnalyteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingAnalyteUpdate) SetResolvedAt(v time.Time) *PendingAnalyteUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableResolvedAt(v *time.Time) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingAnalyteUpdate) ClearResolvedAt() *PendingAnalyteUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_u *PendingAnalyteUpdate) Mutation() *PendingAnalyteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingAnalyteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingAnalyteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingAnalyteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingAnalyteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingAnalyteUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingAnalyteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendinganalyte.Table, pendinganalyte.Columns, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(pendinganalyte.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variations(); ok {
		_spec.SetField(pendinganalyte.FieldVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldVariations, value)
		})
	}
	if _u.mutation.VariationsCleared() {
		_spec.ClearField(pendinganalyte.FieldVariations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendinganalyte.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendinganalyte.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendinganalyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingAnalyteUpdateOne is the builder for updating a single PendingAnalyte entity.
type PendingAnalyteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingAnalyteMutation
}

// SetProposedCode sets the "proposed_code" field.
func (_u *PendingAnalyteUpdateOne) SetProposedCode(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetProposedCode(v)
	return _u
}

// SetNillableProposedCode sets the "proposed_code" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableProposedCode(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetProposedCode(*v)
	}
	return _u
}

// SetProposedName sets the "proposed_name" field.
func (_u *PendingAnalyteUpdateOne) SetProposedName(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetProposedName(v)
	return _u
}

// SetNillableProposedName sets the "proposed_name" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableProposedName(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetProposedName(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PendingAnalyteUpdateOne) SetEvidence(v []map[string]interface{}) *PendingAnalyteUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *PendingAnalyteUpdateOne) AppendEvidence(v []map[string]interface{}) *PendingAnalyteUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PendingAnalyteUpdateOne) ClearEvidence() *PendingAnalyteUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetVariations sets the "variations" field.
func (_u *PendingAnalyteUpdateOne) SetVariations(v []map[string]string) *PendingAnalyteUpdateOne {
	_u.mutation.SetVariations(v)
	return _u
}

// AppendVariations appends value to the "variations" field.
func (_u *PendingAnalyteUpdateOne) AppendVariations(v []map[string]string) *PendingAnalyteUpdateOne {
	_u.mutation.AppendVariations(v)
	return _u
}

// ClearVariations clears the value of the "variations" field.
func (_u *PendingAnalyteUpdateOne) ClearVariations() *PendingAnalyteUpdateOne {
	_u.mutation.ClearVariations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingAnalyteUpdateOne) SetStatus(v pendinganalyte.Status) *PendingAnalyteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingAnalyteUpdateOne) SetResolvedAt(v time.Time) *PendingAnalyteUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableResolvedAt(v *time.Time) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingAnalyteUpdateOne) ClearResolvedAt() *PendingAnalyteUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_u *PendingAnalyteUpdateOne) Mutation() *PendingAnalyteMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingAnalyteUpdate builder.
func (_u *PendingAnalyteUpdateOne) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingAnalyteUpdateOne) Select(field string, fields ...string) *PendingAnalyteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingAnalyte entity.
func (_u *PendingAnalyteUpdateOne) Save(ctx context.Context) (*PendingAnalyte, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingAnalyteUpdateOne) SaveX(ctx context.Context) *PendingAnalyte {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingAnalyteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingAnalyteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingAnalyteUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingAnalyteUpdateOne) sqlSave(ctx context.Context) (_node *PendingAnalyte, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendinganalyte.Table, pendinganalyte.Columns, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingAnalyte.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendinganalyte.FieldID)
		for _, f := range fields {
			if !pendinganalyte.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendinganalyte.FieldID {
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
	if value, ok := _u.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(pendinganalyte.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variations(); ok {
		_spec.SetField(pendinganalyte.FieldVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldVariations, value)
		})
	}
	if _u.mutation.VariationsCleared() {
		_spec.ClearField(pendinganalyte.FieldVariations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendinganalyte.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendinganalyte.FieldResolvedAt, field.TypeTime)
	}
	_node = &PendingAnalyte{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendinganalyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
