// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUserID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPatientID, v))
}

// ParameterName applies equality check predicate on the "parameter_name" field. It's identical to ParameterNameEQ.
func ParameterName(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldParameterName, v))
}

// ValueNumeric applies equality check predicate on the "value_numeric" field. It's identical to ValueNumericEQ.
func ValueNumeric(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldValueNumeric, v))
}

// ValueText applies equality check predicate on the "value_text" field. It's identical to ValueTextEQ.
func ValueText(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldValueText, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnit, v))
}

// ReferenceLow applies equality check predicate on the "reference_low" field. It's identical to ReferenceLowEQ.
func ReferenceLow(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceLow, v))
}

// ReferenceHigh applies equality check predicate on the "reference_high" field. It's identical to ReferenceHighEQ.
func ReferenceHigh(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceHigh, v))
}

// ReferenceText applies equality check predicate on the "reference_text" field. It's identical to ReferenceTextEQ.
func ReferenceText(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceText, v))
}

// AnalyteID applies equality check predicate on the "analyte_id" field. It's identical to AnalyteIDEQ.
func AnalyteID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAnalyteID, v))
}

// MappingConfidence applies equality check predicate on the "mapping_confidence" field. It's identical to MappingConfidenceEQ.
func MappingConfidence(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingConfidence, v))
}

// MappedAt applies equality check predicate on the "mapped_at" field. It's identical to MappedAtEQ.
func MappedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReportID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUserID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldPatientID, v))
}

// ParameterNameEQ applies the EQ predicate on the "parameter_name" field.
func ParameterNameEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldParameterName, v))
}

// ParameterNameNEQ applies the NEQ predicate on the "parameter_name" field.
func ParameterNameNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldParameterName, v))
}

// ParameterNameIn applies the In predicate on the "parameter_name" field.
func ParameterNameIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldParameterName, vs...))
}

// ParameterNameNotIn applies the NotIn predicate on the "parameter_name" field.
func ParameterNameNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldParameterName, vs...))
}

// ParameterNameGT applies the GT predicate on the "parameter_name" field.
func ParameterNameGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldParameterName, v))
}

// ParameterNameGTE applies the GTE predicate on the "parameter_name" field.
func ParameterNameGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldParameterName, v))
}

// ParameterNameLT applies the LT predicate on the "parameter_name" field.
func ParameterNameLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldParameterName, v))
}

// ParameterNameLTE applies the LTE predicate on the "parameter_name" field.
func ParameterNameLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldParameterName, v))
}

// ParameterNameContains applies the Contains predicate on the "parameter_name" field.
func ParameterNameContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldParameterName, v))
}

// ParameterNameHasPrefix applies the HasPrefix predicate on the "parameter_name" field.
func ParameterNameHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldParameterName, v))
}

// ParameterNameHasSuffix applies the HasSuffix predicate on the "parameter_name" field.
func ParameterNameHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldParameterName, v))
}

// ParameterNameEqualFold applies the EqualFold predicate on the "parameter_name" field.
func ParameterNameEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldParameterName, v))
}

// ParameterNameContainsFold applies the ContainsFold predicate on the "parameter_name" field.
func ParameterNameContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldParameterName, v))
}

// ValueNumericEQ applies the EQ predicate on the "value_numeric" field.
func ValueNumericEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldValueNumeric, v))
}

// ValueNumericNEQ applies the NEQ predicate on the "value_numeric" field.
func ValueNumericNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldValueNumeric, v))
}

// ValueNumericIn applies the In predicate on the "value_numeric" field.
func ValueNumericIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldValueNumeric, vs...))
}

// ValueNumericNotIn applies the NotIn predicate on the "value_numeric" field.
func ValueNumericNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldValueNumeric, vs...))
}

// ValueNumericGT applies the GT predicate on the "value_numeric" field.
func ValueNumericGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldValueNumeric, v))
}

// ValueNumericGTE applies the GTE predicate on the "value_numeric" field.
func ValueNumericGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldValueNumeric, v))
}

// ValueNumericLT applies the LT predicate on the "value_numeric" field.
func ValueNumericLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldValueNumeric, v))
}

// ValueNumericLTE applies the LTE predicate on the "value_numeric" field.
func ValueNumericLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldValueNumeric, v))
}

// ValueNumericIsNil applies the IsNil predicate on the "value_numeric" field.
func ValueNumericIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldValueNumeric))
}

// ValueNumericNotNil applies the NotNil predicate on the "value_numeric" field.
func ValueNumericNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldValueNumeric))
}

// ValueTextEQ applies the EQ predicate on the "value_text" field.
func ValueTextEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldValueText, v))
}

// ValueTextNEQ applies the NEQ predicate on the "value_text" field.
func ValueTextNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldValueText, v))
}

// ValueTextIn applies the In predicate on the "value_text" field.
func ValueTextIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldValueText, vs...))
}

// ValueTextNotIn applies the NotIn predicate on the "value_text" field.
func ValueTextNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldValueText, vs...))
}

// ValueTextGT applies the GT predicate on the "value_text" field.
func ValueTextGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldValueText, v))
}

// ValueTextGTE applies the GTE predicate on the "value_text" field.
func ValueTextGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldValueText, v))
}

// ValueTextLT applies the LT predicate on the "value_text" field.
func ValueTextLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldValueText, v))
}

// ValueTextLTE applies the LTE predicate on the "value_text" field.
func ValueTextLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldValueText, v))
}

// ValueTextContains applies the Contains predicate on the "value_text" field.
func ValueTextContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldValueText, v))
}

// ValueTextHasPrefix applies the HasPrefix predicate on the "value_text" field.
func ValueTextHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldValueText, v))
}

// ValueTextHasSuffix applies the HasSuffix predicate on the "value_text" field.
func ValueTextHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldValueText, v))
}

// ValueTextIsNil applies the IsNil predicate on the "value_text" field.
func ValueTextIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldValueText))
}

// ValueTextNotNil applies the NotNil predicate on the "value_text" field.
func ValueTextNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldValueText))
}

// ValueTextEqualFold applies the EqualFold predicate on the "value_text" field.
func ValueTextEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldValueText, v))
}

// ValueTextContainsFold applies the ContainsFold predicate on the "value_text" field.
func ValueTextContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldValueText, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUnit, v))
}

// ReferenceLowEQ applies the EQ predicate on the "reference_low" field.
func ReferenceLowEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceLow, v))
}

// ReferenceLowNEQ applies the NEQ predicate on the "reference_low" field.
func ReferenceLowNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReferenceLow, v))
}

// ReferenceLowIn applies the In predicate on the "reference_low" field.
func ReferenceLowIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReferenceLow, vs...))
}

// ReferenceLowNotIn applies the NotIn predicate on the "reference_low" field.
func ReferenceLowNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReferenceLow, vs...))
}

// ReferenceLowGT applies the GT predicate on the "reference_low" field.
func ReferenceLowGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReferenceLow, v))
}

// ReferenceLowGTE applies the GTE predicate on the "reference_low" field.
func ReferenceLowGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReferenceLow, v))
}

// ReferenceLowLT applies the LT predicate on the "reference_low" field.
func ReferenceLowLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReferenceLow, v))
}

// ReferenceLowLTE applies the LTE predicate on the "reference_low" field.
func ReferenceLowLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReferenceLow, v))
}

// ReferenceLowIsNil applies the IsNil predicate on the "reference_low" field.
func ReferenceLowIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldReferenceLow))
}

// ReferenceLowNotNil applies the NotNil predicate on the "reference_low" field.
func ReferenceLowNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldReferenceLow))
}

// ReferenceHighEQ applies the EQ predicate on the "reference_high" field.
func ReferenceHighEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceHigh, v))
}

// ReferenceHighNEQ applies the NEQ predicate on the "reference_high" field.
func ReferenceHighNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReferenceHigh, v))
}

// ReferenceHighIn applies the In predicate on the "reference_high" field.
func ReferenceHighIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReferenceHigh, vs...))
}

// ReferenceHighNotIn applies the NotIn predicate on the "reference_high" field.
func ReferenceHighNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReferenceHigh, vs...))
}

// ReferenceHighGT applies the GT predicate on the "reference_high" field.
func ReferenceHighGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReferenceHigh, v))
}

// ReferenceHighGTE applies the GTE predicate on the "reference_high" field.
func ReferenceHighGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReferenceHigh, v))
}

// ReferenceHighLT applies the LT predicate on the "reference_high" field.
func ReferenceHighLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReferenceHigh, v))
}

// ReferenceHighLTE applies the LTE predicate on the "reference_high" field.
func ReferenceHighLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReferenceHigh, v))
}

// ReferenceHighIsNil applies the IsNil predicate on the "reference_high" field.
func ReferenceHighIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldReferenceHigh))
}

// ReferenceHighNotNil applies the NotNil predicate on the "reference_high" field.
func ReferenceHighNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldReferenceHigh))
}

// ReferenceTextEQ applies the EQ predicate on the "reference_text" field.
func ReferenceTextEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceText, v))
}

// ReferenceTextNEQ applies the NEQ predicate on the "reference_text" field.
func ReferenceTextNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReferenceText, v))
}

// ReferenceTextIn applies the In predicate on the "reference_text" field.
func ReferenceTextIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReferenceText, vs...))
}

// ReferenceTextNotIn applies the NotIn predicate on the "reference_text" field.
func ReferenceTextNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReferenceText, vs...))
}

// ReferenceTextGT applies the GT predicate on the "reference_text" field.
func ReferenceTextGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReferenceText, v))
}

// ReferenceTextGTE applies the GTE predicate on the "reference_text" field.
func ReferenceTextGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReferenceText, v))
}

// ReferenceTextLT applies the LT predicate on the "reference_text" field.
func ReferenceTextLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReferenceText, v))
}

// ReferenceTextLTE applies the LTE predicate on the "reference_text" field.
func ReferenceTextLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReferenceText, v))
}

// ReferenceTextContains applies the Contains predicate on the "reference_text" field.
func ReferenceTextContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldReferenceText, v))
}

// ReferenceTextHasPrefix applies the HasPrefix predicate on the "reference_text" field.
func ReferenceTextHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldReferenceText, v))
}

// ReferenceTextHasSuffix applies the HasSuffix predicate on the "reference_text" field.
func ReferenceTextHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldReferenceText, v))
}

// ReferenceTextIsNil applies the IsNil predicate on the "reference_text" field.
func ReferenceTextIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldReferenceText))
}

// ReferenceTextNotNil applies the NotNil predicate on the "reference_text" field.
func ReferenceTextNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldReferenceText))
}

// ReferenceTextEqualFold applies the EqualFold predicate on the "reference_text" field.
func ReferenceTextEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldReferenceText, v))
}

// ReferenceTextContainsFold applies the ContainsFold predicate on the "reference_text" field.
func ReferenceTextContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldReferenceText, v))
}

// OutOfRangeEQ applies the EQ predicate on the "out_of_range" field.
func OutOfRangeEQ(v OutOfRange) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOutOfRange, v))
}

// OutOfRangeNEQ applies the NEQ predicate on the "out_of_range" field.
func OutOfRangeNEQ(v OutOfRange) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldOutOfRange, v))
}

// OutOfRangeIn applies the In predicate on the "out_of_range" field.
func OutOfRangeIn(vs ...OutOfRange) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldOutOfRange, vs...))
}

// OutOfRangeNotIn applies the NotIn predicate on the "out_of_range" field.
func OutOfRangeNotIn(vs ...OutOfRange) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldOutOfRange, vs...))
}

// AnalyteIDEQ applies the EQ predicate on the "analyte_id" field.
func AnalyteIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAnalyteID, v))
}

// AnalyteIDNEQ applies the NEQ predicate on the "analyte_id" field.
func AnalyteIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldAnalyteID, v))
}

// AnalyteIDIn applies the In predicate on the "analyte_id" field.
func AnalyteIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldAnalyteID, vs...))
}

// AnalyteIDNotIn applies the NotIn predicate on the "analyte_id" field.
func AnalyteIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldAnalyteID, vs...))
}

// AnalyteIDIsNil applies the IsNil predicate on the "analyte_id" field.
func AnalyteIDIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldAnalyteID))
}

// AnalyteIDNotNil applies the NotNil predicate on the "analyte_id" field.
func AnalyteIDNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldAnalyteID))
}

// MappingConfidenceEQ applies the EQ predicate on the "mapping_confidence" field.
func MappingConfidenceEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingConfidence, v))
}

// MappingConfidenceNEQ applies the NEQ predicate on the "mapping_confidence" field.
func MappingConfidenceNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappingConfidence, v))
}

// MappingConfidenceIn applies the In predicate on the "mapping_confidence" field.
func MappingConfidenceIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappingConfidence, vs...))
}

// MappingConfidenceNotIn applies the NotIn predicate on the "mapping_confidence" field.
func MappingConfidenceNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappingConfidence, vs...))
}

// MappingConfidenceGT applies the GT predicate on the "mapping_confidence" field.
func MappingConfidenceGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldMappingConfidence, v))
}

// MappingConfidenceGTE applies the GTE predicate on the "mapping_confidence" field.
func MappingConfidenceGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldMappingConfidence, v))
}

// MappingConfidenceLT applies the LT predicate on the "mapping_confidence" field.
func MappingConfidenceLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldMappingConfidence, v))
}

// MappingConfidenceLTE applies the LTE predicate on the "mapping_confidence" field.
func MappingConfidenceLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldMappingConfidence, v))
}

// MappingConfidenceIsNil applies the IsNil predicate on the "mapping_confidence" field.
func MappingConfidenceIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappingConfidence))
}

// MappingConfidenceNotNil applies the NotNil predicate on the "mapping_confidence" field.
func MappingConfidenceNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappingConfidence))
}

// MappingSourceEQ applies the EQ predicate on the "mapping_source" field.
func MappingSourceEQ(v MappingSource) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingSource, v))
}

// MappingSourceNEQ applies the NEQ predicate on the "mapping_source" field.
func MappingSourceNEQ(v MappingSource) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappingSource, v))
}

// MappingSourceIn applies the In predicate on the "mapping_source" field.
func MappingSourceIn(vs ...MappingSource) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappingSource, vs...))
}

// MappingSourceNotIn applies the NotIn predicate on the "mapping_source" field.
func MappingSourceNotIn(vs ...MappingSource) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappingSource, vs...))
}

// MappingSourceIsNil applies the IsNil predicate on the "mapping_source" field.
func MappingSourceIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappingSource))
}

// MappingSourceNotNil applies the NotNil predicate on the "mapping_source" field.
func MappingSourceNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappingSource))
}

// MappedAtEQ applies the EQ predicate on the "mapped_at" field.
func MappedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappedAt, v))
}

// MappedAtNEQ applies the NEQ predicate on the "mapped_at" field.
func MappedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappedAt, v))
}

// MappedAtIn applies the In predicate on the "mapped_at" field.
func MappedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappedAt, vs...))
}

// MappedAtNotIn applies the NotIn predicate on the "mapped_at" field.
func MappedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappedAt, vs...))
}

// MappedAtGT applies the GT predicate on the "mapped_at" field.
func MappedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldMappedAt, v))
}

// MappedAtGTE applies the GTE predicate on the "mapped_at" field.
func MappedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldMappedAt, v))
}

// MappedAtLT applies the LT predicate on the "mapped_at" field.
func MappedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldMappedAt, v))
}

// MappedAtLTE applies the LTE predicate on the "mapped_at" field.
func MappedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldMappedAt, v))
}

// MappedAtIsNil applies the IsNil predicate on the "mapped_at" field.
func MappedAtIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappedAt))
}

// MappedAtNotNil applies the NotNil predicate on the "mapped_at" field.
func MappedAtNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalyte applies the HasEdge predicate on the "analyte" edge.
func HasAnalyte() predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalyteWith applies the HasEdge predicate on the "analyte" edge with a given conditions (other predicates).
func HasAnalyteWith(preds ...predicate.Analyte) predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := newAnalyteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.NotPredicates(p))
}
