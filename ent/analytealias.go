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
	"github.com/labtrail/labtrail/ent/analytealias"
)

// AnalyteAlias is the model entity for the AnalyteAlias schema.
type AnalyteAlias struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AnalyteID holds the value of the "analyte_id" field.
	AnalyteID uuid.UUID `json:"analyte_id,omitempty"`
	// Lowercased, NFKC, punctuation-stripped match key
	Normalized string `json:"normalized,omitempty"`
	// Display holds the value of the "display" field.
	Display string `json:"display,omitempty"`
	// BCP 47 tag of the alias spelling
	Language string `json:"language,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Source holds the value of the "source" field.
	Source analytealias.Source `json:"source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalyteAliasQuery when eager-loading is set.
	Edges        AnalyteAliasEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalyteAliasEdges holds the relations/edges for other nodes in the graph.
type AnalyteAliasEdges struct {
	// Analyte holds the value of the analyte edge.
	Analyte *Analyte `json:"analyte,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalyteOrErr returns the Analyte value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalyteAliasEdges) AnalyteOrErr() (*Analyte, error) {
	if e.Analyte != nil {
		return e.Analyte, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analyte.Label}
	}
	return nil, &NotLoadedError{edge: "analyte"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalyteAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analytealias.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case analytealias.FieldNormalized, analytealias.FieldDisplay, analytealias.FieldLanguage, analytealias.FieldSource:
			values[i] = new(sql.NullString)
		case analytealias.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case analytealias.FieldID, analytealias.FieldAnalyteID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalyteAlias fields.
func (_m *AnalyteAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analytealias.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analytealias.FieldAnalyteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field analyte_id", values[i])
			} else if value != nil {
				_m.AnalyteID = *value
			}
		case analytealias.FieldNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized", values[i])
			} else if value.Valid {
				_m.Normalized = value.String
			}
		case analytealias.FieldDisplay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display", values[i])
			} else if value.Valid {
				_m.Display = value.String
			}
		case analytealias.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case analytealias.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case analytealias.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = analytealias.Source(value.String)
			}
		case analytealias.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnalyteAlias.
// This includes values selected through modifiers, order, etc.
func (_m *AnalyteAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalyte queries the "analyte" edge of the AnalyteAlias entity.
func (_m *AnalyteAlias) QueryAnalyte() *AnalyteQuery {
	return NewAnalyteAliasClient(_m.config).QueryAnalyte(_m)
}

// Update returns a builder for updating this AnalyteAlias.
// Note that you need to call AnalyteAlias.Unwrap() before calling this method if this AnalyteAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalyteAlias) Update() *AnalyteAliasUpdateOne {
	return NewAnalyteAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalyteAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalyteAlias) Unwrap() *AnalyteAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalyteAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalyteAlias) String() string {
	var builder strings.Builder
	builder.WriteString("AnalyteAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analyte_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalyteID))
	builder.WriteString(", ")
	builder.WriteString("normalized=")
	builder.WriteString(_m.Normalized)
	builder.WriteString(", ")
	builder.WriteString("display=")
	builder.WriteString(_m.Display)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalyteAliasSlice is a parsable slice of AnalyteAlias.
type AnalyteAliasSlice []*AnalyteAlias
