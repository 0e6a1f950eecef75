// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminAction is the predicate function for adminaction builders.
type AdminAction func(*sql.Selector)

// Analyte is the predicate function for analyte builders.
type Analyte func(*sql.Selector)

// AnalyteAlias is the predicate function for analytealias builders.
type AnalyteAlias func(*sql.Selector)

// LabResult is the predicate function for labresult builders.
type LabResult func(*sql.Selector)

// MatchReview is the predicate function for matchreview builders.
type MatchReview func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PendingAnalyte is the predicate function for pendinganalyte builders.
type PendingAnalyte func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
