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
	"github.com/labtrail/labtrail/ent/adminaction"
)

// AdminAction is the model entity for the AdminAction schema.
type AdminAction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Empty for failed-auth rows where no actor resolved
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
	// ActorEmail holds the value of the "actor_email" field.
	ActorEmail string `json:"actor_email,omitempty"`
	// e.g. approve_pending_analyte, resolve_review, reset_store, login_failed
	Action string `json:"action,omitempty"`
	// Identifier of the affected entity, when one applies
	Target string `json:"target,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail map[string]interface{} `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdminAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adminaction.FieldActorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case adminaction.FieldDetail:
			values[i] = new([]byte)
		case adminaction.FieldActorEmail, adminaction.FieldAction, adminaction.FieldTarget:
			values[i] = new(sql.NullString)
		case adminaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case adminaction.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdminAction fields.
func (_m *AdminAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adminaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case adminaction.FieldActorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = new(uuid.UUID)
				*_m.ActorID = *value.S.(*uuid.UUID)
			}
		case adminaction.FieldActorEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_email", values[i])
			} else if value.Valid {
				_m.ActorEmail = value.String
			}
		case adminaction.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case adminaction.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case adminaction.FieldDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detail); err != nil {
					return fmt.Errorf("unmarshal field detail: %w", err)
				}
			}
		case adminaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AdminAction.
// This includes values selected through modifiers, order, etc.
func (_m *AdminAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdminAction.
// Note that you need to call AdminAction.Unwrap() before calling this method if this AdminAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdminAction) Update() *AdminActionUpdateOne {
	return NewAdminActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdminAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdminAction) Unwrap() *AdminAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdminAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdminAction) String() string {
	var builder strings.Builder
	builder.WriteString("AdminAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ActorID; v != nil {
		builder.WriteString("actor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("actor_email=")
	builder.WriteString(_m.ActorEmail)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detail))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdminActions is a parsable slice of AdminAction.
type AdminActions []*AdminAction
