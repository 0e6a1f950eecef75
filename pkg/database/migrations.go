package database

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// CreateTrigramSupport installs the pg_trgm extension and the trigram GIN
// index backing fuzzy alias lookup. Ent's index DSL cannot express operator
// classes, so this runs as raw SQL after the declarative schema step.
func CreateTrigramSupport(ctx context.Context, drv *entsql.Driver) error {
	statements := []struct {
		name string
		sql  string
	}{
		{
			name: "pg_trgm extension",
			sql:  `CREATE EXTENSION IF NOT EXISTS pg_trgm`,
		},
		{
			name: "analyte alias trigram index",
			sql: `CREATE INDEX IF NOT EXISTS analytealias_normalized_trgm
				ON analyte_aliases USING gin (normalized gin_trgm_ops)`,
		},
	}

	for _, stmt := range statements {
		if _, err := drv.DB().ExecContext(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}

// scopedTables carry a user_id column and get a row-level security policy.
var scopedTables = []string{"patients", "reports", "lab_results"}

// ApplyRowPolicies enables row-level security on patient-scoped tables and
// installs policies keyed off the app.user_id transaction setting. When the
// setting is absent (service pool, admin mode) the policy admits every row;
// inside a scoped transaction only rows owned by the set user pass.
func ApplyRowPolicies(ctx context.Context, drv *entsql.Driver) error {
	for _, table := range scopedTables {
		statements := []string{
			fmt.Sprintf(`ALTER TABLE %s ENABLE ROW LEVEL SECURITY`, table),
			fmt.Sprintf(`ALTER TABLE %s FORCE ROW LEVEL SECURITY`, table),
			fmt.Sprintf(`DROP POLICY IF EXISTS %s_user_scope ON %s`, table, table),
			fmt.Sprintf(`CREATE POLICY %s_user_scope ON %s
				USING (
					current_setting('app.user_id', true) IS NULL
					OR current_setting('app.user_id', true) = ''
					OR user_id = current_setting('app.user_id', true)::uuid
				)`, table, table),
		}
		for _, sql := range statements {
			if _, err := drv.DB().ExecContext(ctx, sql); err != nil {
				return fmt.Errorf("failed to apply row policy on %s: %w", table, err)
			}
		}
	}
	return nil
}
