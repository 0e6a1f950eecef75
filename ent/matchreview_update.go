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
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/predicate"
)

// MatchReviewUpdate is the builder for updating MatchReview entities.
type MatchReviewUpdate struct {
	config
	hooks    []Hook
	mutation *MatchReviewMutation
}

// Where appends a list predicates to the MatchReviewUpdate builder.
func (_u *MatchReviewUpdate) Where(ps ...predicate.MatchReview) *MatchReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *MatchReviewUpdate) SetParameterName(v string) *MatchReviewUpdate {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *MatchReviewUpdate) SetNillableParameterName(v *string) *MatchReviewUpdate {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *MatchReviewUpdate) SetCandidates(v []map[string]interface{}) *MatchReviewUpdate {
	_u.mutation.SetCandidates(v)
	return _u
}

// AppendCandidates appends value to the "candidates" field.
func (_u *MatchReviewUpdate) AppendCandidates(v []map[string]interface{}) *MatchReviewUpdate {
	_u.mutation.AppendCandidates(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchReviewUpdate) SetStatus(v matchreview.Status) *MatchReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchReviewUpdate) SetNillableStatus(v *matchreview.Status) *MatchReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MatchReviewUpdate) SetResolvedAt(v time.Time) *MatchReviewUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MatchReviewUpdate) SetNillableResolvedAt(v *time.Time) *MatchReviewUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MatchReviewUpdate) ClearResolvedAt() *MatchReviewUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MatchReviewMutation object of the builder.
func (_u *MatchReviewUpdate) Mutation() *MatchReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchReviewUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matchreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatchReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MatchReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchreview.Table, matchreview.Columns, sqlgraph.NewFieldSpec(matchreview.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(matchreview.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(matchreview.FieldCandidates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchreview.FieldCandidates, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matchreview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(matchreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(matchreview.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchReviewUpdateOne is the builder for updating a single MatchReview entity.
type MatchReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchReviewMutation
}

// SetParameterName sets the "parameter_name" field.
func (_u *MatchReviewUpdateOne) SetParameterName(v string) *MatchReviewUpdateOne {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *MatchReviewUpdateOne) SetNillableParameterName(v *string) *MatchReviewUpdateOne {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetCandidates sets the "candidates" field.
func (_u *MatchReviewUpdateOne) SetCandidates(v []map[string]interface{}) *MatchReviewUpdateOne {
	_u.mutation.SetCandidates(v)
	return _u
}

// AppendCandidates appends value to the "candidates" field.
func (_u *MatchReviewUpdateOne) AppendCandidates(v []map[string]interface{}) *MatchReviewUpdateOne {
	_u.mutation.AppendCandidates(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchReviewUpdateOne) SetStatus(v matchreview.Status) *MatchReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchReviewUpdateOne) SetNillableStatus(v *matchreview.Status) *MatchReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MatchReviewUpdateOne) SetResolvedAt(v time.Time) *MatchReviewUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MatchReviewUpdateOne) SetNillableResolvedAt(v *time.Time) *MatchReviewUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MatchReviewUpdateOne) ClearResolvedAt() *MatchReviewUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MatchReviewMutation object of the builder.
func (_u *MatchReviewUpdateOne) Mutation() *MatchReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatchReviewUpdate builder.
func (_u *MatchReviewUpdateOne) Where(ps ...predicate.MatchReview) *MatchReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchReviewUpdateOne) Select(field string, fields ...string) *MatchReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchReview entity.
func (_u *MatchReviewUpdateOne) Save(ctx context.Context) (*MatchReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchReviewUpdateOne) SaveX(ctx context.Context) *MatchReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matchreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatchReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MatchReviewUpdateOne) sqlSave(ctx context.Context) (_node *MatchReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchreview.Table, matchreview.Columns, sqlgraph.NewFieldSpec(matchreview.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchreview.FieldID)
		for _, f := range fields {
			if !matchreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchreview.FieldID {
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
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(matchreview.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Candidates(); ok {
		_spec.SetField(matchreview.FieldCandidates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matchreview.FieldCandidates, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matchreview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(matchreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(matchreview.FieldResolvedAt, field.TypeTime)
	}
	_node = &MatchReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
