package chat

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/pkg/schema"
)

type staticSchema struct{}

func (staticSchema) Tables(context.Context) ([]schema.Table, error) {
	return []schema.Table{
		{Name: "patients"},
		{Name: "reports"},
		{Name: "lab_results"},
		{Name: "analytes"},
	}, nil
}

func newTestGuard(t *testing.T) *Guard {
	t.Helper()
	return NewGuard(staticSchema{}, 10000)
}

var testPatientID = uuid.MustParse("6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11")

func scoped() *Scope { return &Scope{PatientID: testPatientID} }

func TestValidateReadOnlyForm(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		sql    string
		reason string
	}{
		{"empty", "   ", "empty statement"},
		{"non-select", "SHOW search_path", "only SELECT and WITH"},
		{"update", "UPDATE lab_results SET value_numeric = 0", "only SELECT and WITH"},
		{"multi-statement", "SELECT 1; SELECT 2", "multiple statements"},
		{"embedded delete", "SELECT * FROM lab_results WHERE id IN (DELETE FROM reports RETURNING id)", "DELETE"},
		{"embedded copy", "WITH x AS (SELECT 1) SELECT * FROM x; COPY reports TO '/tmp/out'", "multiple statements"},
		{"unknown table", "SELECT * FROM pg_shadow", `unknown table "pg_shadow"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Validate(ctx, tt.sql, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestValidateTrailingSemicolon(t *testing.T) {
	guard := newTestGuard(t)

	// A single trailing semicolon is tolerated and stripped.
	out, err := guard.Validate(context.Background(), "SELECT name FROM patients;", nil)
	require.NoError(t, err)
	assert.NotContains(t, out, ";")
}

func TestValidateCTE(t *testing.T) {
	guard := newTestGuard(t)

	out, err := guard.Validate(context.Background(),
		`WITH recent AS (SELECT * FROM lab_results), counts AS (SELECT COUNT(*) FROM recent)
		 SELECT * FROM counts`, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "LIMIT 10000")
}

func TestValidateLimitInjection(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	out, err := guard.Validate(ctx, "SELECT * FROM lab_results", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM lab_results LIMIT 10000", out)

	// A limit inside the cap is preserved as written.
	out, err = guard.Validate(ctx, "SELECT * FROM lab_results LIMIT 20", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM lab_results LIMIT 20", out)

	// An oversized limit is clamped.
	out, err = guard.Validate(ctx, "SELECT * FROM lab_results LIMIT 999999", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM lab_results LIMIT 10000", out)
}

func TestPatientScopeAccepted(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	accepted := []string{
		"SELECT * FROM lab_results WHERE patient_id = '6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11'",
		"SELECT * FROM lab_results r WHERE r.patient_id = '6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11' AND r.parameter_name = 'Hb'",
		// Quoted column and uppercase literal.
		`SELECT * FROM reports WHERE "patient_id" = '6F1ADF35-6C0F-4B5A-9D39-2C1A9F0E8B11'`,
	}
	for _, sql := range accepted {
		_, err := guard.Validate(ctx, sql, scoped())
		assert.NoError(t, err, sql)
	}
}

func TestPatientScopeRejected(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	tests := []struct {
		name string
		sql  string
	}{
		{"no filter", "SELECT * FROM lab_results"},
		{"foreign uuid", "SELECT * FROM lab_results WHERE patient_id = 'aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee'"},
		{"not equal", "SELECT * FROM lab_results WHERE patient_id != '6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11'"},
		{"angle negation", "SELECT * FROM lab_results WHERE patient_id <> '6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11'"},
		{"not in", "SELECT * FROM lab_results WHERE patient_id NOT IN ('6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11')"},
		{"preceding not", "SELECT * FROM lab_results WHERE NOT patient_id = '6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11'"},
		{"comment splice", "SELECT * FROM lab_results WHERE patient_id = --\n'6f1adf35-6c0f-4b5a-9d39-2c1a9f0e8b11'"},
		{"column only, no equality", "SELECT patient_id FROM lab_results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Validate(ctx, tt.sql, scoped())
			require.Error(t, err)
			var scopeErr *ScopeError
			assert.ErrorAs(t, err, &scopeErr)
		})
	}
}

func TestNilScopeSkipsPatientRules(t *testing.T) {
	guard := newTestGuard(t)

	// Single-patient owners query without a binding.
	_, err := guard.Validate(context.Background(), "SELECT * FROM lab_results", nil)
	assert.NoError(t, err)
}
