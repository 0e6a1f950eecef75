// Code generated by ent, DO NOT EDIT.

package pendinganalyte

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pendinganalyte type in the database.
	Label = "pending_analyte"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProposedCode holds the string denoting the proposed_code field in the database.
	FieldProposedCode = "proposed_code"
	// FieldProposedName holds the string denoting the proposed_name field in the database.
	FieldProposedName = "proposed_name"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldVariations holds the string denoting the variations field in the database.
	FieldVariations = "variations"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the pendinganalyte in the database.
	Table = "pending_analytes"
)

// Columns holds all SQL columns for pendinganalyte fields.
var Columns = []string{
	FieldID,
	FieldProposedCode,
	FieldProposedName,
	FieldEvidence,
	FieldVariations,
	FieldStatus,
	FieldCreatedAt,
	FieldResolvedAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDiscarded Status = "discarded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusDiscarded:
		return nil
	default:
		return fmt.Errorf("pendinganalyte: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PendingAnalyte queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProposedCode orders the results by the proposed_code field.
func ByProposedCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedCode, opts...).ToFunc()
}

// ByProposedName orders the results by the proposed_name field.
func ByProposedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
