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
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/report"
)

// LabResultCreate is the builder for creating a LabResult entity.
type LabResultCreate struct {
	config
	mutation *LabResultMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *LabResultCreate) SetReportID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LabResultCreate) SetUserID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LabResultCreate) SetPatientID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetParameterName sets the "parameter_name" field.
func (_c *LabResultCreate) SetParameterName(v string) *LabResultCreate {
	_c.mutation.SetParameterName(v)
	return _c
}

// SetValueNumeric sets the "value_numeric" field.
func (_c *LabResultCreate) SetValueNumeric(v float64) *LabResultCreate {
	_c.mutation.SetValueNumeric(v)
	return _c
}

// SetNillableValueNumeric sets the "value_numeric" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableValueNumeric(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetValueNumeric(*v)
	}
	return _c
}

// SetValueText sets the "value_text" field.
func (_c *LabResultCreate) SetValueText(v string) *LabResultCreate {
	_c.mutation.SetValueText(v)
	return _c
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableValueText(v *string) *LabResultCreate {
	if v != nil {
		_c.SetValueText(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *LabResultCreate) SetUnit(v string) *LabResultCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUnit(v *string) *LabResultCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetReferenceLow sets the "reference_low" field.
func (_c *LabResultCreate) SetReferenceLow(v float64) *LabResultCreate {
	_c.mutation.SetReferenceLow(v)
	return _c
}

// SetNillableReferenceLow sets the "reference_low" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableReferenceLow(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetReferenceLow(*v)
	}
	return _c
}

// SetReferenceHigh sets the "reference_high" field.
func (_c *LabResultCreate) SetReferenceHigh(v float64) *LabResultCreate {
	_c.mutation.SetReferenceHigh(v)
	return _c
}

// SetNillableReferenceHigh sets the "reference_high" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableReferenceHigh(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetReferenceHigh(*v)
	}
	return _c
}

// SetReferenceText sets the "reference_text" field.
func (_c *LabResultCreate) SetReferenceText(v string) *LabResultCreate {
	_c.mutation.SetReferenceText(v)
	return _c
}

// SetNillableReferenceText sets the "reference_text" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableReferenceText(v *string) *LabResultCreate {
	if v != nil {
		_c.SetReferenceText(*v)
	}
	return _c
}

// SetOutOfRange sets the "out_of_range" field.
func (_c *LabResultCreate) SetOutOfRange(v labresult.OutOfRange) *LabResultCreate {
	_c.mutation.SetOutOfRange(v)
	return _c
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableOutOfRange(v *labresult.OutOfRange) *LabResultCreate {
	if v != nil {
		_c.SetOutOfRange(*v)
	}
	return _c
}

// SetAnalyteID sets the "analyte_id" field.
func (_c *LabResultCreate) SetAnalyteID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetAnalyteID(v)
	return _c
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableAnalyteID(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetAnalyteID(*v)
	}
	return _c
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_c *LabResultCreate) SetMappingConfidence(v float64) *LabResultCreate {
	_c.mutation.SetMappingConfidence(v)
	return _c
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappingConfidence(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetMappingConfidence(*v)
	}
	return _c
}

// SetMappingSource sets the "mapping_source" field.
func (_c *LabResultCreate) SetMappingSource(v labresult.MappingSource) *LabResultCreate {
	_c.mutation.SetMappingSource(v)
	return _c
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappingSource(v *labresult.MappingSource) *LabResultCreate {
	if v != nil {
		_c.SetMappingSource(*v)
	}
	return _c
}

// SetMappedAt sets the "mapped_at" field.
func (_c *LabResultCreate) SetMappedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetMappedAt(v)
	return _c
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetMappedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabResultCreate) SetCreatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCreatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabResultCreate) SetID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableID(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *LabResultCreate) SetReport(v *Report) *LabResultCreate {
	return _c.SetReportID(v.ID)
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_c *LabResultCreate) SetAnalyte(v *Analyte) *LabResultCreate {
	return _c.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_c *LabResultCreate) Mutation() *LabResultMutation {
	return _c.mutation
}

// Save creates the LabResult in the database.
func (_c *LabResultCreate) Save(ctx context.Context) (*LabResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabResultCreate) SaveX(ctx context.Context) *LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabResultCreate) defaults() {
	if _, ok := _c.mutation.OutOfRange(); !ok {
		v := labresult.DefaultOutOfRange
		_c.mutation.SetOutOfRange(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabResultCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "LabResult.report_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LabResult.user_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "LabResult.patient_id"`)}
	}
	if _, ok := _c.mutation.ParameterName(); !ok {
		return &ValidationError{Name: "parameter_name", err: errors.New(`ent: missing required field "LabResult.parameter_name"`)}
	}
	if _, ok := _c.mutation.OutOfRange(); !ok {
		return &ValidationError{Name: "out_of_range", err: errors.New(`ent: missing required field "LabResult.out_of_range"`)}
	}
	if v, ok := _c.mutation.OutOfRange(); ok {
		if err := labresult.OutOfRangeValidator(v); err != nil {
			return &ValidationError{Name: "out_of_range", err: fmt.Errorf(`ent: validator failed for field "LabResult.out_of_range": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MappingSource(); ok {
		if err := labresult.MappingSourceValidator(v); err != nil {
			return &ValidationError{Name: "mapping_source", err: fmt.Errorf(`ent: validator failed for field "LabResult.mapping_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabResult.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "LabResult.report"`)}
	}
	return nil
}

func (_c *LabResultCreate) sqlSave(ctx context.Context) (*LabResult, error) {
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

func (_c *LabResultCreate) createSpec() (*LabResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LabResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labresult.Table, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(labresult.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(labresult.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.ParameterName(); ok {
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
		_node.ParameterName = value
	}
	if value, ok := _c.mutation.ValueNumeric(); ok {
		_spec.SetField(labresult.FieldValueNumeric, field.TypeFloat64, value)
		_node.ValueNumeric = &value
	}
	if value, ok := _c.mutation.ValueText(); ok {
		_spec.SetField(labresult.FieldValueText, field.TypeString, value)
		_node.ValueText = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(labresult.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.ReferenceLow(); ok {
		_spec.SetField(labresult.FieldReferenceLow, field.TypeFloat64, value)
		_node.ReferenceLow = &value
	}
	if value, ok := _c.mutation.ReferenceHigh(); ok {
		_spec.SetField(labresult.FieldReferenceHigh, field.TypeFloat64, value)
		_node.ReferenceHigh = &value
	}
	if value, ok := _c.mutation.ReferenceText(); ok {
		_spec.SetField(labresult.FieldReferenceText, field.TypeString, value)
		_node.ReferenceText = value
	}
	if value, ok := _c.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeEnum, value)
		_node.OutOfRange = value
	}
	if value, ok := _c.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
		_node.MappingConfidence = &value
	}
	if value, ok := _c.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeEnum, value)
		_node.MappingSource = &value
	}
	if value, ok := _c.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
		_node.MappedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalyteIDs(); len(nodes) > 0 {
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
		_node.AnalyteID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabResultCreateBulk is the builder for creating many LabResult entities in bulk.
type LabResultCreateBulk struct {
	config
	err      error
	builders []*LabResultCreate
}

// Save creates the LabResult entities in the database.
func (_c *LabResultCreateBulk) Save(ctx context.Context) ([]*LabResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabResultMutation)
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
func (_c *LabResultCreateBulk) SaveX(ctx context.Context) []*LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
