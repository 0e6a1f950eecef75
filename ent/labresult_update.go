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
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/predicate"
)

// LabResultUpdate is the builder for updating LabResult entities.
type LabResultUpdate struct {
	config
	hooks    []Hook
	mutation *LabResultMutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdate) Where(ps ...predicate.LabResult) *LabResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *LabResultUpdate) SetParameterName(v string) *LabResultUpdate {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableParameterName(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValueNumeric sets the "value_numeric" field.
func (_u *LabResultUpdate) SetValueNumeric(v float64) *LabResultUpdate {
	_u.mutation.ResetValueNumeric()
	_u.mutation.SetValueNumeric(v)
	return _u
}

// SetNillableValueNumeric sets the "value_numeric" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableValueNumeric(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetValueNumeric(*v)
	}
	return _u
}

// AddValueNumeric adds value to the "value_numeric" field.
func (_u *LabResultUpdate) AddValueNumeric(v float64) *LabResultUpdate {
	_u.mutation.AddValueNumeric(v)
	return _u
}

// ClearValueNumeric clears the value of the "value_numeric" field.
func (_u *LabResultUpdate) ClearValueNumeric() *LabResultUpdate {
	_u.mutation.ClearValueNumeric()
	return _u
}

// SetValueText sets the "value_text" field.
func (_u *LabResultUpdate) SetValueText(v string) *LabResultUpdate {
	_u.mutation.SetValueText(v)
	return _u
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableValueText(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetValueText(*v)
	}
	return _u
}

// ClearValueText clears the value of the "value_text" field.
func (_u *LabResultUpdate) ClearValueText() *LabResultUpdate {
	_u.mutation.ClearValueText()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *LabResultUpdate) SetUnit(v string) *LabResultUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUnit(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *LabResultUpdate) ClearUnit() *LabResultUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceLow sets the "reference_low" field.
func (_u *LabResultUpdate) SetReferenceLow(v float64) *LabResultUpdate {
	_u.mutation.ResetReferenceLow()
	_u.mutation.SetReferenceLow(v)
	return _u
}

// SetNillableReferenceLow sets the "reference_low" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReferenceLow(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetReferenceLow(*v)
	}
	return _u
}

// AddReferenceLow adds value to the "reference_low" field.
func (_u *LabResultUpdate) AddReferenceLow(v float64) *LabResultUpdate {
	_u.mutation.AddReferenceLow(v)
	return _u
}

// ClearReferenceLow clears the value of the "reference_low" field.
func (_u *LabResultUpdate) ClearReferenceLow() *LabResultUpdate {
	_u.mutation.ClearReferenceLow()
	return _u
}

// SetReferenceHigh sets the "reference_high" field.
func (_u *LabResultUpdate) SetReferenceHigh(v float64) *LabResultUpdate {
	_u.mutation.ResetReferenceHigh()
	_u.mutation.SetReferenceHigh(v)
	return _u
}

// SetNillableReferenceHigh sets the "reference_high" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReferenceHigh(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetReferenceHigh(*v)
	}
	return _u
}

// AddReferenceHigh adds value to the "reference_high" field.
func (_u *LabResultUpdate) AddReferenceHigh(v float64) *LabResultUpdate {
	_u.mutation.AddReferenceHigh(v)
	return _u
}

// ClearReferenceHigh clears the value of the "reference_high" field.
func (_u *LabResultUpdate) ClearReferenceHigh() *LabResultUpdate {
	_u.mutation.ClearReferenceHigh()
	return _u
}

// SetReferenceText sets the "reference_text" field.
func (_u *LabResultUpdate) SetReferenceText(v string) *LabResultUpdate {
	_u.mutation.SetReferenceText(v)
	return _u
}

// SetNillableReferenceText sets the "reference_text" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReferenceText(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetReferenceText(*v)
	}
	return _u
}

// ClearReferenceText clears the value of the "reference_text" field.
func (_u *LabResultUpdate) ClearReferenceText() *LabResultUpdate {
	_u.mutation.ClearReferenceText()
	return _u
}

// SetOutOfRange sets the "out_of_range" field.
func (_u *LabResultUpdate) SetOutOfRange(v labresult.OutOfRange) *LabResultUpdate {
	_u.mutation.SetOutOfRange(v)
	return _u
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableOutOfRange(v *labresult.OutOfRange) *LabResultUpdate {
	if v != nil {
		_u.SetOutOfRange(*v)
	}
	return _u
}

// SetAnalyteID sets the "analyte_id" field.
func (_u *LabResultUpdate) SetAnalyteID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetAnalyteID(v)
	return _u
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableAnalyteID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetAnalyteID(*v)
	}
	return _u
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (_u *LabResultUpdate) ClearAnalyteID() *LabResultUpdate {
	_u.mutation.ClearAnalyteID()
	return _u
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_u *LabResultUpdate) SetMappingConfidence(v float64) *LabResultUpdate {
	_u.mutation.ResetMappingConfidence()
	_u.mutation.SetMappingConfidence(v)
	return _u
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappingConfidence(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetMappingConfidence(*v)
	}
	return _u
}

// AddMappingConfidence adds value to the "mapping_confidence" field.
func (_u *LabResultUpdate) AddMappingConfidence(v float64) *LabResultUpdate {
	_u.mutation.AddMappingConfidence(v)
	return _u
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (_u *LabResultUpdate) ClearMappingConfidence() *LabResultUpdate {
	_u.mutation.ClearMappingConfidence()
	return _u
}

// SetMappingSource sets the "mapping_source" field.
func (_u *LabResultUpdate) SetMappingSource(v labresult.MappingSource) *LabResultUpdate {
	_u.mutation.SetMappingSource(v)
	return _u
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappingSource(v *labresult.MappingSource) *LabResultUpdate {
	if v != nil {
		_u.SetMappingSource(*v)
	}
	return _u
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (_u *LabResultUpdate) ClearMappingSource() *LabResultUpdate {
	_u.mutation.ClearMappingSource()
	return _u
}

// SetMappedAt sets the "mapped_at" field.
func (_u *LabResultUpdate) SetMappedAt(v time.Time) *LabResultUpdate {
	_u.mutation.SetMappedAt(v)
	return _u
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappedAt(v *time.Time) *LabResultUpdate {
	if v != nil {
		_u.SetMappedAt(*v)
	}
	return _u
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (_u *LabResultUpdate) ClearMappedAt() *LabResultUpdate {
	_u.mutation.ClearMappedAt()
	return _u
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdate) SetAnalyte(v *Analyte) *LabResultUpdate {
	return _u.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdate) Mutation() *LabResultMutation {
	return _u.mutation
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdate) ClearAnalyte() *LabResultUpdate {
	_u.mutation.ClearAnalyte()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdate) check() error {
	if v, ok := _u.mutation.OutOfRange(); ok {
		if err := labresult.OutOfRangeValidator(v); err != nil {
			return &ValidationError{Name: "out_of_range", err: fmt.Errorf(`ent: validator failed for field "LabResult.out_of_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MappingSource(); ok {
		if err := labresult.MappingSourceValidator(v); err != nil {
			return &ValidationError{Name: "mapping_source", err: fmt.Errorf(`ent: validator failed for field "LabResult.mapping_source": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabResult.report"`)
	}
	return nil
}

func (_u *LabResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueNumeric(); ok {
		_spec.SetField(labresult.FieldValueNumeric, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNumeric(); ok {
		_spec.AddField(labresult.FieldValueNumeric, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumericCleared() {
		_spec.ClearField(labresult.FieldValueNumeric, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueText(); ok {
		_spec.SetField(labresult.FieldValueText, field.TypeString, value)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(labresult.FieldValueText, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(labresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceLow(); ok {
		_spec.SetField(labresult.FieldReferenceLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceLow(); ok {
		_spec.AddField(labresult.FieldReferenceLow, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceLowCleared() {
		_spec.ClearField(labresult.FieldReferenceLow, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceHigh(); ok {
		_spec.SetField(labresult.FieldReferenceHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceHigh(); ok {
		_spec.AddField(labresult.FieldReferenceHigh, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceHighCleared() {
		_spec.ClearField(labresult.FieldReferenceHigh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceText(); ok {
		_spec.SetField(labresult.FieldReferenceText, field.TypeString, value)
	}
	if _u.mutation.ReferenceTextCleared() {
		_spec.ClearField(labresult.FieldReferenceText, field.TypeString)
	}
	if value, ok := _u.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMappingConfidence(); ok {
		_spec.AddField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MappingConfidenceCleared() {
		_spec.ClearField(labresult.FieldMappingConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeEnum, value)
	}
	if _u.mutation.MappingSourceCleared() {
		_spec.ClearField(labresult.FieldMappingSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
	}
	if _u.mutation.MappedAtCleared() {
		_spec.ClearField(labresult.FieldMappedAt, field.TypeTime)
	}
	if _u.mutation.AnalyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabResultUpdateOne is the builder for updating a single LabResult entity.
type LabResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabResultMutation
}

// SetParameterName sets the "parameter_name" field.
func (_u *LabResultUpdateOne) SetParameterName(v string) *LabResultUpdateOne {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableParameterName(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValueNumeric sets the "value_numeric" field.
func (_u *LabResultUpdateOne) SetValueNumeric(v float64) *LabResultUpdateOne {
	_u.mutation.ResetValueNumeric()
	_u.mutation.SetValueNumeric(v)
	return _u
}

// SetNillableValueNumeric sets the "value_numeric" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableValueNumeric(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetValueNumeric(*v)
	}
	return _u
}

// AddValueNumeric adds value to the "value_numeric" field.
func (_u *LabResultUpdateOne) AddValueNumeric(v float64) *LabResultUpdateOne {
	_u.mutation.AddValueNumeric(v)
	return _u
}

// ClearValueNumeric clears the value of the "value_numeric" field.
func (_u *LabResultUpdateOne) ClearValueNumeric() *LabResultUpdateOne {
	_u.mutation.ClearValueNumeric()
	return _u
}

// SetValueText sets the "value_text" field.
func (_u *LabResultUpdateOne) SetValueText(v string) *LabResultUpdateOne {
	_u.mutation.SetValueText(v)
	return _u
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableValueText(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetValueText(*v)
	}
	return _u
}

// ClearValueText clears the value of the "value_text" field.
func (_u *LabResultUpdateOne) ClearValueText() *LabResultUpdateOne {
	_u.mutation.ClearValueText()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *LabResultUpdateOne) SetUnit(v string) *LabResultUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUnit(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *LabResultUpdateOne) ClearUnit() *LabResultUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceLow sets the "reference_low" field.
func (_u *LabResultUpdateOne) SetReferenceLow(v float64) *LabResultUpdateOne {
	_u.mutation.ResetReferenceLow()
	_u.mutation.SetReferenceLow(v)
	return _u
}

// SetNillableReferenceLow sets the "reference_low" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReferenceLow(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetReferenceLow(*v)
	}
	return _u
}

// AddReferenceLow adds value to the "reference_low" field.
func (_u *LabResultUpdateOne) AddReferenceLow(v float64) *LabResultUpdateOne {
	_u.mutation.AddReferenceLow(v)
	return _u
}

// ClearReferenceLow clears the value of the "reference_low" field.
func (_u *LabResultUpdateOne) ClearReferenceLow() *LabResultUpdateOne {
	_u.mutation.ClearReferenceLow()
	return _u
}

// SetReferenceHigh sets the "reference_high" field.
func (_u *LabResultUpdateOne) SetReferenceHigh(v float64) *LabResultUpdateOne {
	_u.mutation.ResetReferenceHigh()
	_u.mutation.SetReferenceHigh(v)
	return _u
}

// SetNillableReferenceHigh sets the "reference_high" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReferenceHigh(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetReferenceHigh(*v)
	}
	return _u
}

// AddReferenceHigh adds value to the "reference_high" field.
func (_u *LabResultUpdateOne) AddReferenceHigh(v float64) *LabResultUpdateOne {
	_u.mutation.AddReferenceHigh(v)
	return _u
}

// ClearReferenceHigh clears the value of the "reference_high" field.
func (_u *LabResultUpdateOne) ClearReferenceHigh() *LabResultUpdateOne {
	_u.mutation.ClearReferenceHigh()
	return _u
}

// SetReferenceText sets the "reference_text" field.
func (_u *LabResultUpdateOne) SetReferenceText(v string) *LabResultUpdateOne {
	_u.mutation.SetReferenceText(v)
	return _u
}

// SetNillableReferenceText sets the "reference_text" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReferenceText(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetReferenceText(*v)
	}
	return _u
}

// ClearReferenceText clears the value of the "reference_text" field.
func (_u *LabResultUpdateOne) ClearReferenceText() *LabResultUpdateOne {
	_u.mutation.ClearReferenceText()
	return _u
}

// SetOutOfRange sets the "out_of_range" field.
func (_u *LabResultUpdateOne) SetOutOfRange(v labresult.OutOfRange) *LabResultUpdateOne {
	_u.mutation.SetOutOfRange(v)
	return _u
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableOutOfRange(v *labresult.OutOfRange) *LabResultUpdateOne {
	if v != nil {
		_u.SetOutOfRange(*v)
	}
	return _u
}

// SetAnalyteID sets the "analyte_id" field.
func (_u *LabResultUpdateOne) SetAnalyteID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetAnalyteID(v)
	return _u
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableAnalyteID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetAnalyteID(*v)
	}
	return _u
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (_u *LabResultUpdateOne) ClearAnalyteID() *LabResultUpdateOne {
	_u.mutation.ClearAnalyteID()
	return _u
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_u *LabResultUpdateOne) SetMappingConfidence(v float64) *LabResultUpdateOne {
	_u.mutation.ResetMappingConfidence()
	_u.mutation.SetMappingConfidence(v)
	return _u
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappingConfidence(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappingConfidence(*v)
	}
	return _u
}

// AddMappingConfidence adds value to the "mapping_confidence" field.
func (_u *LabResultUpdateOne) AddMappingConfidence(v float64) *LabResultUpdateOne {
	_u.mutation.AddMappingConfidence(v)
	return _u
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (_u *LabResultUpdateOne) ClearMappingConfidence() *LabResultUpdateOne {
	_u.mutation.ClearMappingConfidence()
	return _u
}

// SetMappingSource sets the "mapping_source" field.
func (_u *LabResultUpdateOne) SetMappingSource(v labresult.MappingSource) *LabResultUpdateOne {
	_u.mutation.SetMappingSource(v)
	return _u
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappingSource(v *labresult.MappingSource) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappingSource(*v)
	}
	return _u
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (_u *LabResultUpdateOne) ClearMappingSource() *LabResultUpdateOne {
	_u.mutation.ClearMappingSource()
	return _u
}

// SetMappedAt sets the "mapped_at" field.
func (_u *LabResultUpdateOne) SetMappedAt(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetMappedAt(v)
	return _u
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappedAt(v *time.Time) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappedAt(*v)
	}
	return _u
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (_u *LabResultUpdateOne) ClearMappedAt() *LabResultUpdateOne {
	_u.mutation.ClearMappedAt()
	return _u
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdateOne) SetAnalyte(v *Analyte) *LabResultUpdateOne {
	return _u.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdateOne) Mutation() *LabResultMutation {
	return _u.mutation
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdateOne) ClearAnalyte() *LabResultUpdateOne {
	_u.mutation.ClearAnalyte()
	return _u
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdateOne) Where(ps ...predicate.LabResult) *LabResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabResultUpdateOne) Select(field string, fields ...string) *LabResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabResult entity.
func (_u *LabResultUpdateOne) Save(ctx context.Context) (*LabResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdateOne) SaveX(ctx context.Context) *LabResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdateOne) check() error {
	if v, ok := _u.mutation.OutOfRange(); ok {
		if err := labresult.OutOfRangeValidator(v); err != nil {
			return &ValidationError{Name: "out_of_range", err: fmt.Errorf(`ent: validator failed for field "LabResult.out_of_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MappingSource(); ok {
		if err := labresult.MappingSourceValidator(v); err != nil {
			return &ValidationError{Name: "mapping_source", err: fmt.Errorf(`ent: validator failed for field "LabResult.mapping_source": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabResult.report"`)
	}
	return nil
}

func (_u *LabResultUpdateOne) sqlSave(ctx context.Context) (_node *LabResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for _, f := range fields {
			if !labresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labresult.FieldID {
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
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValueNumeric(); ok {
		_spec.SetField(labresult.FieldValueNumeric, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNumeric(); ok {
		_spec.AddField(labresult.FieldValueNumeric, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumericCleared() {
		_spec.ClearField(labresult.FieldValueNumeric, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueText(); ok {
		_spec.SetField(labresult.FieldValueText, field.TypeString, value)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(labresult.FieldValueText, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(labresult.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceLow(); ok {
		_spec.SetField(labresult.FieldReferenceLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceLow(); ok {
		_spec.AddField(labresult.FieldReferenceLow, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceLowCleared() {
		_spec.ClearField(labresult.FieldReferenceLow, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceHigh(); ok {
		_spec.SetField(labresult.FieldReferenceHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceHigh(); ok {
		_spec.AddField(labresult.FieldReferenceHigh, field.TypeFloat64, value)
	}
	if _u.mutation.ReferenceHighCleared() {
		_spec.ClearField(labresult.FieldReferenceHigh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReferenceText(); ok {
		_spec.SetField(labresult.FieldReferenceText, field.TypeString, value)
	}
	if _u.mutation.ReferenceTextCleared() {
		_spec.ClearField(labresult.FieldReferenceText, field.TypeString)
	}
	if value, ok := _u.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMappingConfidence(); ok {
		_spec.AddField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MappingConfidenceCleared() {
		_spec.ClearField(labresult.FieldMappingConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeEnum, value)
	}
	if _u.mutation.MappingSourceCleared() {
		_spec.ClearField(labresult.FieldMappingSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
	}
	if _u.mutation.MappedAtCleared() {
		_spec.ClearField(labresult.FieldMappedAt, field.TypeTime)
	}
	if _u.mutation.AnalyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
