// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the labresult type in the database.
	Label = "lab_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldParameterName holds the string denoting the parameter_name field in the database.
	FieldParameterName = "parameter_name"
	// FieldValueNumeric holds the string denoting the value_numeric field in the database.
	FieldValueNumeric = "value_numeric"
	// FieldValueText holds the string denoting the value_text field in the database.
	FieldValueText = "value_text"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldReferenceLow holds the string denoting the reference_low field in the database.
	FieldReferenceLow = "reference_low"
	// FieldReferenceHigh holds the string denoting the reference_high field in the database.
	FieldReferenceHigh = "reference_high"
	// FieldReferenceText holds the string denoting the reference_text field in the database.
	FieldReferenceText = "reference_text"
	// FieldOutOfRange holds the string denoting the out_of_range field in the database.
	FieldOutOfRange = "out_of_range"
	// FieldAnalyteID holds the string denoting the analyte_id field in the database.
	FieldAnalyteID = "analyte_id"
	// FieldMappingConfidence holds the string denoting the mapping_confidence field in the database.
	FieldMappingConfidence = "mapping_confidence"
	// FieldMappingSource holds the string denoting the mapping_source field in the database.
	FieldMappingSource = "mapping_source"
	// FieldMappedAt holds the string denoting the mapped_at field in the database.
	FieldMappedAt = "mapped_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeAnalyte holds the string denoting the analyte edge name in mutations.
	EdgeAnalyte = "analyte"
	// Table holds the table name of the labresult in the database.
	Table = "lab_results"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "lab_results"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// AnalyteTable is the table that holds the analyte relation/edge.
	AnalyteTable = "lab_results"
	// AnalyteInverseTable is the table name for the Analyte entity.
	// It exists in this package in order to avoid circular dependency with the "analyte" package.
	AnalyteInverseTable = "analytes"
	// AnalyteColumn is the table column denoting the analyte relation/edge.
	AnalyteColumn = "analyte_id"
)

// Columns holds all SQL columns for labresult fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldUserID,
	FieldPatientID,
	FieldParameterName,
	FieldValueNumeric,
	FieldValueText,
	FieldUnit,
	FieldReferenceLow,
	FieldReferenceHigh,
	FieldReferenceText,
	FieldOutOfRange,
	FieldAnalyteID,
	FieldMappingConfidence,
	FieldMappingSource,
	FieldMappedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OutOfRange defines the type for the "out_of_range" enum field.
type OutOfRange string

// OutOfRangeUnknown is the default value of the OutOfRange enum.
const DefaultOutOfRange = OutOfRangeUnknown

// OutOfRange values.
const (
	OutOfRangeAbove        OutOfRange = "above"
	OutOfRangeBelow        OutOfRange = "below"
	OutOfRangeWithin       OutOfRange = "within"
	OutOfRangeFlaggedByLab OutOfRange = "flagged_by_lab"
	OutOfRangeUnknown      OutOfRange = "unknown"
)

func (oor OutOfRange) String() string {
	return string(oor)
}

// OutOfRangeValidator is a validator for the "out_of_range" field enum values. It is called by the builders before save.
func OutOfRangeValidator(oor OutOfRange) error {
	switch oor {
	case OutOfRangeAbove, OutOfRangeBelow, OutOfRangeWithin, OutOfRangeFlaggedByLab, OutOfRangeUnknown:
		return nil
	default:
		return fmt.Errorf("labresult: invalid enum value for out_of_range field: %q", oor)
	}
}

// MappingSource defines the type for the "mapping_source" enum field.
type MappingSource string

// MappingSource values.
const (
	MappingSourceAliasExact      MappingSource = "alias_exact"
	MappingSourceFuzzyAuto       MappingSource = "fuzzy_auto"
	MappingSourceLlmAuto         MappingSource = "llm_auto"
	MappingSourceManualResolved  MappingSource = "manual_resolved"
	MappingSourcePendingApproved MappingSource = "pending_approved"
	MappingSourceManualApproved  MappingSource = "manual_approved"
)

func (ms MappingSource) String() string {
	return string(ms)
}

// MappingSourceValidator is a validator for the "mapping_source" field enum values. It is called by the builders before save.
func MappingSourceValidator(ms MappingSource) error {
	switch ms {
	case MappingSourceAliasExact, MappingSourceFuzzyAuto, MappingSourceLlmAuto, MappingSourceManualResolved, MappingSourcePendingApproved, MappingSourceManualApproved:
		return nil
	default:
		return fmt.Errorf("labresult: invalid enum value for mapping_source field: %q", ms)
	}
}

// OrderOption defines the ordering options for the LabResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByParameterName orders the results by the parameter_name field.
func ByParameterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameterName, opts...).ToFunc()
}

// ByValueNumeric orders the results by the value_numeric field.
func ByValueNumeric(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueNumeric, opts...).ToFunc()
}

// ByValueText orders the results by the value_text field.
func ByValueText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueText, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByReferenceLow orders the results by the reference_low field.
func ByReferenceLow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceLow, opts...).ToFunc()
}

// ByReferenceHigh orders the results by the reference_high field.
func ByReferenceHigh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceHigh, opts...).ToFunc()
}

// ByReferenceText orders the results by the reference_text field.
func ByReferenceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceText, opts...).ToFunc()
}

// ByOutOfRange orders the results by the out_of_range field.
func ByOutOfRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutOfRange, opts...).ToFunc()
}

// ByAnalyteID orders the results by the analyte_id field.
func ByAnalyteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyteID, opts...).ToFunc()
}

// ByMappingConfidence orders the results by the mapping_confidence field.
func ByMappingConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappingConfidence, opts...).ToFunc()
}

// ByMappingSource orders the results by the mapping_source field.
func ByMappingSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappingSource, opts...).ToFunc()
}

// ByMappedAt orders the results by the mapped_at field.
func ByMappedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalyteField orders the results by analyte field.
func ByAnalyteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalyteStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newAnalyteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalyteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
	)
}
