// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
)

// PendingAnalyte is the model entity for the PendingAnalyte schema.
type PendingAnalyte struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposedCode holds the value of the "proposed_code" field.
	ProposedCode string `json:"proposed_code,omitempty"`
	// ProposedName holds the value of the "proposed_name" field.
	ProposedName string `json:"proposed_name,omitempty"`
	// Result rows that motivated the proposal
	Evidence []map[string]interface{} `json:"evidence,omitempty"`
	// Language-tagged parameter spellings, e.g. {text, language}
	Variations []map[string]string `json:"variations,omitempty"`
	// Status holds the value of the "status" field.
	Status pendinganalyte.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingAnalyte) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendinganalyte.FieldEvidence, pendinganalyte.FieldVariations:
			values[i] = new([]byte)
		case pendinganalyte.FieldProposedCode, pendinganalyte.FieldProposedName, pendinganalyte.FieldStatus:
			values[i] = new(sql.NullString)
		case pendinganalyte.FieldCreatedAt, pendinganalyte.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case pendinganalyte.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingAnalyte fields.
func (_m *PendingAnalyte) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendinganalyte.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pendinganalyte.FieldProposedCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_code", values[i])
			} else if value.Valid {
				_m.ProposedCode = value.String
			}
		case pendinganalyte.FieldProposedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_name", values[i])
			} else if value.Valid {
				_m.ProposedName = value.String
			}
		case pendinganalyte.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case pendinganalyte.FieldVariations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variations); err != nil {
					return fmt.Errorf("unmarshal field variations: %w", err)
				}
			}
		case pendinganalyte.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendinganalyte.Status(value.String)
			}
		case pendinganalyte.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pendinganalyte.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingAnalyte.
// This includes values selected through modifiers, order, etc.
func (_m *PendingAnalyte) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingAnalyte.
// Note that you need to call PendingAnalyte.Unwrap() before calling this method if this PendingAnalyte
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingAnalyte) Update() *PendingAnalyteUpdateOne {
	return NewPendingAnalyteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingAnalyte entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingAnalyte) Unwrap() *PendingAnalyte {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingAnalyte is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingAnalyte) String() string {
	var builder strings.Builder
	builder.WriteString("PendingAnalyte(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposed_code=")
	builder.WriteString(_m.ProposedCode)
	builder.WriteString(", ")
	builder.WriteString("proposed_name=")
	builder.WriteString(_m.ProposedName)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("variations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variations))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PendingAnalytes is a parsable slice of PendingAnalyte.
type PendingAnalytes []*PendingAnalyte
