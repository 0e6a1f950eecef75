// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/report"
)

// LabResult is the model entity for the LabResult schema.
type LabResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Denormalized owner for row-level policies
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Denormalized patient for chat-scope filters
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Raw name as printed on the report
	ParameterName string `json:"parameter_name,omitempty"`
	// ValueNumeric holds the value of the "value_numeric" field.
	ValueNumeric *float64 `json:"value_numeric,omitempty"`
	// ValueText holds the value of the "value_text" field.
	ValueText string `json:"value_text,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// ReferenceLow holds the value of the "reference_low" field.
	ReferenceLow *float64 `json:"reference_low,omitempty"`
	// ReferenceHigh holds the value of the "reference_high" field.
	ReferenceHigh *float64 `json:"reference_high,omitempty"`
	// ReferenceText holds the value of the "reference_text" field.
	ReferenceText string `json:"reference_text,omitempty"`
	// OutOfRange holds the value of the "out_of_range" field.
	OutOfRange labresult.OutOfRange `json:"out_of_range,omitempty"`
	// AnalyteID holds the value of the "analyte_id" field.
	AnalyteID *uuid.UUID `json:"analyte_id,omitempty"`
	// MappingConfidence holds the value of the "mapping_confidence" field.
	MappingConfidence *float64 `json:"mapping_confidence,omitempty"`
	// MappingSource holds the value of the "mapping_source" field.
	MappingSource *labresult.MappingSource `json:"mapping_source,omitempty"`
	// MappedAt holds the value of the "mapped_at" field.
	MappedAt *time.Time `json:"mapped_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabResultQuery when eager-loading is set.
	Edges        LabResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabResultEdges holds the relations/edges for other nodes in the graph.
type LabResultEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Analyte holds the value of the analyte edge.
	Analyte *Analyte `json:"analyte,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabResultEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// AnalyteOrErr returns the Analyte value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabResultEdges) AnalyteOrErr() (*Analyte, error) {
	if e.Analyte != nil {
		return e.Analyte, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: analyte.Label}
	}
	return nil, &NotLoadedError{edge: "analyte"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labresult.FieldAnalyteID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case labresult.FieldValueNumeric, labresult.FieldReferenceLow, labresult.FieldReferenceHigh, labresult.FieldMappingConfidence:
			values[i] = new(sql.NullFloat64)
		case labresult.FieldParameterName, labresult.FieldValueText, labresult.FieldUnit, labresult.FieldReferenceText, labresult.FieldOutOfRange, labresult.FieldMappingSource:
			values[i] = new(sql.NullString)
		case labresult.FieldMappedAt, labresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case labresult.FieldID, labresult.FieldReportID, labresult.FieldUserID, labresult.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabResult fields.
func (_m *LabResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labresult.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case labresult.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case labresult.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case labresult.FieldParameterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_name", values[i])
			} else if value.Valid {
				_m.ParameterName = value.String
			}
		case labresult.FieldValueNumeric:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value_numeric", values[i])
			} else if value.Valid {
				_m.ValueNumeric = new(float64)
				*_m.ValueNumeric = value.Float64
			}
		case labresult.FieldValueText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_text", values[i])
			} else if value.Valid {
				_m.ValueText = value.String
			}
		case labresult.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case labresult.FieldReferenceLow:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_low", values[i])
			} else if value.Valid {
				_m.ReferenceLow = new(float64)
				*_m.ReferenceLow = value.Float64
			}
		case labresult.FieldReferenceHigh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_high", values[i])
			} else if value.Valid {
				_m.ReferenceHigh = new(float64)
				*_m.ReferenceHigh = value.Float64
			}
		case labresult.FieldReferenceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_text", values[i])
			} else if value.Valid {
				_m.ReferenceText = value.String
			}
		case labresult.FieldOutOfRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field out_of_range", values[i])
			} else if value.Valid {
				_m.OutOfRange = labresult.OutOfRange(value.String)
			}
		case labresult.FieldAnalyteID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field analyte_id", values[i])
			} else if value.Valid {
				_m.AnalyteID = new(uuid.UUID)
				*_m.AnalyteID = *value.S.(*uuid.UUID)
			}
		case labresult.FieldMappingConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mapping_confidence", values[i])
			} else if value.Valid {
				_m.MappingConfidence = new(float64)
				*_m.MappingConfidence = value.Float64
			}
		case labresult.FieldMappingSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mapping_source", values[i])
			} else if value.Valid {
				_m.MappingSource = new(labresult.MappingSource)
				*_m.MappingSource = labresult.MappingSource(value.String)
			}
		case labresult.FieldMappedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mapped_at", values[i])
			} else if value.Valid {
				_m.MappedAt = new(time.Time)
				*_m.MappedAt = value.Time
			}
		case labresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabResult.
// This includes values selected through modifiers, order, etc.
func (_m *LabResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the LabResult entity.
func (_m *LabResult) QueryReport() *ReportQuery {
	return NewLabResultClient(_m.config).QueryReport(_m)
}

// QueryAnalyte queries the "analyte" edge of the LabResult entity.
func (_m *LabResult) QueryAnalyte() *AnalyteQuery {
	return NewLabResultClient(_m.config).QueryAnalyte(_m)
}

// Update returns a builder for updating this LabResult.
// Note that you need to call LabResult.Unwrap() before calling this method if this LabResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabResult) Update() *LabResultUpdateOne {
	return NewLabResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabResult) Unwrap() *LabResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LabResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabResult) String() string {
	var builder strings.Builder
	builder.WriteString("LabResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("parameter_name=")
	builder.WriteString(_m.ParameterName)
	builder.WriteString(", ")
	if v := _m.ValueNumeric; v != nil {
		builder.WriteString("value_numeric=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("value_text=")
	builder.WriteString(_m.ValueText)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	if v := _m.ReferenceLow; v != nil {
		builder.WriteString("reference_low=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReferenceHigh; v != nil {
		builder.WriteString("reference_high=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reference_text=")
	builder.WriteString(_m.ReferenceText)
	builder.WriteString(", ")
	builder.WriteString("out_of_range=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutOfRange))
	builder.WriteString(", ")
	if v := _m.AnalyteID; v != nil {
		builder.WriteString("analyte_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MappingConfidence; v != nil {
		builder.WriteString("mapping_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MappingSource; v != nil {
		builder.WriteString("mapping_source=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MappedAt; v != nil {
		builder.WriteString("mapped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LabResults is a parsable slice of LabResult.
type LabResults []*LabResult
