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
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/predicate"
	"github.com/labtrail/labtrail/ent/report"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportUpdate) SetFilename(v string) *ReportUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilename(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ReportUpdate) SetMimeType(v string) *ReportUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableMimeType(v *string) *ReportUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ReportUpdate) SetStoragePath(v string) *ReportUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStoragePath(v *string) *ReportUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ReportUpdate) SetChecksum(v string) *ReportUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableChecksum(v *string) *ReportUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportUpdate) SetErrorMessage(v string) *ReportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableErrorMessage(v *string) *ReportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportUpdate) ClearErrorMessage() *ReportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *ReportUpdate) SetRawOutput(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetRawOutput(v)
	return _u
}

// ClearRawOutput clears the value of the "raw_output" field.
func (_u *ReportUpdate) ClearRawOutput() *ReportUpdate {
	_u.mutation.ClearRawOutput()
	return _u
}

// SetTestDateText sets the "test_date_text" field.
func (_u *ReportUpdate) SetTestDateText(v string) *ReportUpdate {
	_u.mutation.SetTestDateText(v)
	return _u
}

// SetNillableTestDateText sets the "test_date_text" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTestDateText(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTestDateText(*v)
	}
	return _u
}

// ClearTestDateText clears the value of the "test_date_text" field.
func (_u *ReportUpdate) ClearTestDateText() *ReportUpdate {
	_u.mutation.ClearTestDateText()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ReportUpdate) SetEffectiveDate(v time.Time) *ReportUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableEffectiveDate(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ReportUpdate) ClearEffectiveDate() *ReportUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetPatientNameSnapshot sets the "patient_name_snapshot" field.
func (_u *ReportUpdate) SetPatientNameSnapshot(v string) *ReportUpdate {
	_u.mutation.SetPatientNameSnapshot(v)
	return _u
}

// SetNillablePatientNameSnapshot sets the "patient_name_snapshot" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePatientNameSnapshot(v *string) *ReportUpdate {
	if v != nil {
		_u.SetPatientNameSnapshot(*v)
	}
	return _u
}

// ClearPatientNameSnapshot clears the value of the "patient_name_snapshot" field.
func (_u *ReportUpdate) ClearPatientNameSnapshot() *ReportUpdate {
	_u.mutation.ClearPatientNameSnapshot()
	return _u
}

// SetLabName sets the "lab_name" field.
func (_u *ReportUpdate) SetLabName(v string) *ReportUpdate {
	_u.mutation.SetLabName(v)
	return _u
}

// SetNillableLabName sets the "lab_name" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLabName(v *string) *ReportUpdate {
	if v != nil {
		_u.SetLabName(*v)
	}
	return _u
}

// ClearLabName clears the value of the "lab_name" field.
func (_u *ReportUpdate) ClearLabName() *ReportUpdate {
	_u.mutation.ClearLabName()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ReportUpdate) SetModelName(v string) *ReportUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableModelName(v *string) *ReportUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ReportUpdate) ClearModelName() *ReportUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetRecognizedAt sets the "recognized_at" field.
func (_u *ReportUpdate) SetRecognizedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetRecognizedAt(v)
	return _u
}

// SetNillableRecognizedAt sets the "recognized_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRecognizedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetRecognizedAt(*v)
	}
	return _u
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (_u *ReportUpdate) ClearRecognizedAt() *ReportUpdate {
	_u.mutation.ClearRecognizedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *ReportUpdate) AddResultIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *ReportUpdate) AddResults(v ...*LabResult) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *ReportUpdate) ClearResults() *ReportUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *ReportUpdate) RemoveResultIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *ReportUpdate) RemoveResults(v ...*LabResult) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.owner"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.patient"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(report.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(report.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(report.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(report.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(report.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(report.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(report.FieldRawOutput, field.TypeJSON, value)
	}
	if _u.mutation.RawOutputCleared() {
		_spec.ClearField(report.FieldRawOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestDateText(); ok {
		_spec.SetField(report.FieldTestDateText, field.TypeString, value)
	}
	if _u.mutation.TestDateTextCleared() {
		_spec.ClearField(report.FieldTestDateText, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(report.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(report.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientNameSnapshot(); ok {
		_spec.SetField(report.FieldPatientNameSnapshot, field.TypeString, value)
	}
	if _u.mutation.PatientNameSnapshotCleared() {
		_spec.ClearField(report.FieldPatientNameSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.LabName(); ok {
		_spec.SetField(report.FieldLabName, field.TypeString, value)
	}
	if _u.mutation.LabNameCleared() {
		_spec.ClearField(report.FieldLabName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(report.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(report.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizedAt(); ok {
		_spec.SetField(report.FieldRecognizedAt, field.TypeTime, value)
	}
	if _u.mutation.RecognizedAtCleared() {
		_spec.ClearField(report.FieldRecognizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetFilename sets the "filename" field.
func (_u *ReportUpdateOne) SetFilename(v string) *ReportUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilename(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ReportUpdateOne) SetMimeType(v string) *ReportUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableMimeType(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ReportUpdateOne) SetStoragePath(v string) *ReportUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStoragePath(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ReportUpdateOne) SetChecksum(v string) *ReportUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableChecksum(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportUpdateOne) SetErrorMessage(v string) *ReportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableErrorMessage(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportUpdateOne) ClearErrorMessage() *ReportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *ReportUpdateOne) SetRawOutput(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetRawOutput(v)
	return _u
}

// ClearRawOutput clears the value of the "raw_output" field.
func (_u *ReportUpdateOne) ClearRawOutput() *ReportUpdateOne {
	_u.mutation.ClearRawOutput()
	return _u
}

// SetTestDateText sets the "test_date_text" field.
func (_u *ReportUpdateOne) SetTestDateText(v string) *ReportUpdateOne {
	_u.mutation.SetTestDateText(v)
	return _u
}

// SetNillableTestDateText sets the "test_date_text" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTestDateText(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTestDateText(*v)
	}
	return _u
}

// ClearTestDateText clears the value of the "test_date_text" field.
func (_u *ReportUpdateOne) ClearTestDateText() *ReportUpdateOne {
	_u.mutation.ClearTestDateText()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ReportUpdateOne) SetEffectiveDate(v time.Time) *ReportUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableEffectiveDate(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ReportUpdateOne) ClearEffectiveDate() *ReportUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetPatientNameSnapshot sets the "patient_name_snapshot" field.
func (_u *ReportUpdateOne) SetPatientNameSnapshot(v string) *ReportUpdateOne {
	_u.mutation.SetPatientNameSnapshot(v)
	return _u
}

// SetNillablePatientNameSnapshot sets the "patient_name_snapshot" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePatientNameSnapshot(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetPatientNameSnapshot(*v)
	}
	return _u
}

// ClearPatientNameSnapshot clears the value of the "patient_name_snapshot" field.
func (_u *ReportUpdateOne) ClearPatientNameSnapshot() *ReportUpdateOne {
	_u.mutation.ClearPatientNameSnapshot()
	return _u
}

// SetLabName sets the "lab_name" field.
func (_u *ReportUpdateOne) SetLabName(v string) *ReportUpdateOne {
	_u.mutation.SetLabName(v)
	return _u
}

// SetNillableLabName sets the "lab_name" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLabName(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetLabName(*v)
	}
	return _u
}

// ClearLabName clears the value of the "lab_name" field.
func (_u *ReportUpdateOne) ClearLabName() *ReportUpdateOne {
	_u.mutation.ClearLabName()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ReportUpdateOne) SetModelName(v string) *ReportUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableModelName(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ReportUpdateOne) ClearModelName() *ReportUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetRecognizedAt sets the "recognized_at" field.
func (_u *ReportUpdateOne) SetRecognizedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetRecognizedAt(v)
	return _u
}

// SetNillableRecognizedAt sets the "recognized_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRecognizedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetRecognizedAt(*v)
	}
	return _u
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (_u *ReportUpdateOne) ClearRecognizedAt() *ReportUpdateOne {
	_u.mutation.ClearRecognizedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *ReportUpdateOne) AddResultIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *ReportUpdateOne) AddResults(v ...*LabResult) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *ReportUpdateOne) ClearResults() *ReportUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *ReportUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *ReportUpdateOne) RemoveResults(v ...*LabResult) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.owner"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.patient"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(report.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(report.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(report.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(report.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(report.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(report.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(report.FieldRawOutput, field.TypeJSON, value)
	}
	if _u.mutation.RawOutputCleared() {
		_spec.ClearField(report.FieldRawOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestDateText(); ok {
		_spec.SetField(report.FieldTestDateText, field.TypeString, value)
	}
	if _u.mutation.TestDateTextCleared() {
		_spec.ClearField(report.FieldTestDateText, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(report.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(report.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientNameSnapshot(); ok {
		_spec.SetField(report.FieldPatientNameSnapshot, field.TypeString, value)
	}
	if _u.mutation.PatientNameSnapshotCleared() {
		_spec.ClearField(report.FieldPatientNameSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.LabName(); ok {
		_spec.SetField(report.FieldLabName, field.TypeString, value)
	}
	if _u.mutation.LabNameCleared() {
		_spec.ClearField(report.FieldLabName, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(report.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(report.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.RecognizedAt(); ok {
		_spec.SetField(report.FieldRecognizedAt, field.TypeTime, value)
	}
	if _u.mutation.RecognizedAtCleared() {
		_spec.ClearField(report.FieldRecognizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ResultsTable,
			Columns: []string{report.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
