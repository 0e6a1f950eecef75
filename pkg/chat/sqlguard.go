package chat

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/labtrail/labtrail/pkg/schema"
)

// ScopeError is a patient-scope violation. It is returned to the LLM as a
// tool failure and never reaches the database.
type ScopeError struct {
	Reason string
}

func (e *ScopeError) Error() string {
	return "patient scope violation: " + e.Reason
}

// SQLError is any other rejection by the validator.
type SQLError struct {
	Reason string
}

func (e *SQLError) Error() string {
	return "invalid query: " + e.Reason
}

// Scope binds a query to one patient. Nil scope means single-patient owners
// or enforcement disabled.
type Scope struct {
	PatientID uuid.UUID
}

// SchemaSource resolves the queryable tables for identifier validation.
// Satisfied by *schema.Service.
type SchemaSource interface {
	Tables(ctx context.Context) ([]schema.Table, error)
}

// Guard validates exploratory SQL before execution: read-only outermost
// form, single statement, known identifiers, bounded LIMIT, and the patient
// scope rules.
type Guard struct {
	schema SchemaSource
	rowCap int
}

func NewGuard(source SchemaSource, rowCap int) *Guard {
	return &Guard{schema: source, rowCap: rowCap}
}

var (
	uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	// Statement keywords that have no place in a read-only query.
	forbiddenPattern = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|MERGE|DROP|ALTER|CREATE|TRUNCATE|GRANT|REVOKE|COPY|EXECUTE|CALL|VACUUM|SET|RESET|LISTEN|NOTIFY|PREPARE|DEALLOCATE)\b`)

	tableRefPattern = regexp.MustCompile(`(?i)\b(?:FROM|JOIN)\s+("?[a-zA-Z_][a-zA-Z0-9_."]*)`)
	limitPattern    = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)`)

	// patient_id, optionally quoted or table-qualified.
	patientRefPattern = regexp.MustCompile(`(?i)(?:[a-z_][a-z0-9_]*\s*\.\s*)?"?patient_id"?`)
)

// Validate returns the (possibly LIMIT-amended) statement, or an error.
func (g *Guard) Validate(ctx context.Context, sql string, scope *Scope) (string, error) {
	stmt := strings.TrimSpace(sql)
	if stmt == "" {
		return "", &SQLError{Reason: "empty statement"}
	}

	stmt = strings.TrimRight(stmt, "; \t\n")
	if strings.Contains(stmt, ";") {
		return "", &SQLError{Reason: "multiple statements are not allowed"}
	}

	head := firstWord(stmt)
	if head != "SELECT" && head != "WITH" {
		return "", &SQLError{Reason: "only SELECT and WITH queries are allowed"}
	}
	if m := forbiddenPattern.FindString(stmt); m != "" {
		return "", &SQLError{Reason: fmt.Sprintf("statement keyword %q is not allowed in a read-only query", strings.ToUpper(m))}
	}

	if err := g.checkIdentifiers(ctx, stmt); err != nil {
		return "", err
	}
	if scope != nil {
		if err := checkPatientScope(stmt, scope.PatientID); err != nil {
			return "", err
		}
	}

	return injectLimit(stmt, g.rowCap), nil
}

// checkIdentifiers resolves every FROM/JOIN target against the queryable
// schema snapshot. CTE names declared in the statement are allowed too.
func (g *Guard) checkIdentifiers(ctx context.Context, stmt string) error {
	tables, err := g.schema.Tables(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve schema: %w", err)
	}
	allowed := make(map[string]bool, len(tables)*2)
	for _, t := range tables {
		allowed[t.Name] = true
		for _, alias := range t.Aliases {
			allowed[alias] = true
		}
	}
	for _, name := range cteNames(stmt) {
		allowed[name] = true
	}

	for _, m := range tableRefPattern.FindAllStringSubmatch(stmt, -1) {
		name := strings.ToLower(strings.ReplaceAll(m[1], `"`, ""))
		name = strings.TrimPrefix(name, "public.")
		if !allowed[name] {
			return &SQLError{Reason: fmt.Sprintf("unknown table %q", name)}
		}
	}
	return nil
}

var ctePattern = regexp.MustCompile(`(?i)(?:\bWITH\b|,)\s*("?[a-zA-Z_][a-zA-Z0-9_]*"?)\s+AS\s*\(`)

func cteNames(stmt string) []string {
	var names []string
	for _, m := range ctePattern.FindAllStringSubmatch(stmt, -1) {
		names = append(names, strings.ToLower(strings.ReplaceAll(m[1], `"`, "")))
	}
	return names
}

// checkPatientScope enforces that the statement filters patient_id with a
// literal equality on the selected id, carries no foreign UUIDs, no negation
// of the patient filter, and no comment sequences adjacent to it.
func checkPatientScope(stmt string, patientID uuid.UUID) error {
	selected := strings.ToLower(patientID.String())

	for _, u := range uuidPattern.FindAllString(stmt, -1) {
		if strings.ToLower(u) != selected {
			return &ScopeError{Reason: fmt.Sprintf("query references an id other than the selected patient; use patient_id = '%s'", selected)}
		}
	}

	refs := patientRefPattern.FindAllStringIndex(stmt, -1)
	if len(refs) == 0 {
		return &ScopeError{Reason: fmt.Sprintf("query must filter by patient_id = '%s'", selected)}
	}

	bound := false
	for _, ref := range refs {
		before := stmt[max(0, ref[0]-24):ref[0]]
		after := stmt[ref[1]:min(len(stmt), ref[1]+64)]

		if strings.Contains(before, "--") || strings.Contains(before, "/*") ||
			strings.Contains(after[:min(len(after), 24)], "--") || strings.Contains(after[:min(len(after), 24)], "/*") {
			return &ScopeError{Reason: "comment sequences are not allowed near the patient filter"}
		}
		if negationBefore.MatchString(before) || negationAfter.MatchString(after) {
			return &ScopeError{Reason: "negating the patient filter is not allowed"}
		}
		if m := equalityAfter.FindStringSubmatch(after); m != nil {
			if strings.ToLower(m[1]) == selected {
				bound = true
			}
		}
	}
	if !bound {
		return &ScopeError{Reason: fmt.Sprintf("patient_id must be compared with = to the literal '%s'", selected)}
	}
	return nil
}

var (
	negationBefore = regexp.MustCompile(`(?i)\bNOT\s*$`)
	negationAfter  = regexp.MustCompile(`(?i)^\s*(!=|<>|NOT\s+IN\b|IS\s+NOT\b|NOT\s*=)`)
	equalityAfter  = regexp.MustCompile(`(?i)^\s*=\s*'?([0-9a-fA-F-]{36})'?`)
)

// injectLimit appends a LIMIT when the query has none and clamps an
// oversized one.
func injectLimit(stmt string, rowCap int) string {
	if m := limitPattern.FindStringSubmatch(stmt); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n <= rowCap {
			return stmt
		}
		return limitPattern.ReplaceAllString(stmt, fmt.Sprintf("LIMIT %d", rowCap))
	}
	return fmt.Sprintf("%s LIMIT %d", stmt, rowCap)
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '(' {
			return strings.ToUpper(s[:i])
		}
	}
	return strings.ToUpper(s)
}
