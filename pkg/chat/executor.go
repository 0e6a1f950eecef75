package chat

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/models"
)

const queryTimeout = 15 * time.Second

// Executor runs validated exploratory SQL inside a user-scoped transaction
// so row-level policies apply.
type Executor struct {
	db    *stdsql.DB
	guard *Guard
}

func NewExecutor(db *stdsql.DB, guard *Guard) *Executor {
	return &Executor{db: db, guard: guard}
}

// Query validates and executes one read-only statement for the given user.
func (e *Executor) Query(ctx context.Context, userID uuid.UUID, sqlText string, scope *Scope) (*models.QueryResult, error) {
	validated, err := e.guard.Validate(ctx, sqlText, scope)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var result *models.QueryResult
	err = database.WithUserScope(ctx, e.db, userID, func(tx *stdsql.Tx) error {
		rows, err := tx.QueryContext(ctx, validated)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		defer rows.Close()
		result, err = scanRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	result.RowLimitApplied = validated != sqlText
	return result, nil
}

// ParameterNames lists the distinct raw parameter names across the user's
// lab results, for fuzzy_search.
func (e *Executor) ParameterNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var names []string
	err := database.WithUserScope(ctx, e.db, userID, func(tx *stdsql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT DISTINCT parameter_name FROM lab_results ORDER BY parameter_name LIMIT 500`)
		if err != nil {
			return fmt.Errorf("failed to list parameter names: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// scanRows materializes a result set as column-name-keyed maps. Byte slices
// become strings so the JSON handed to the LLM stays readable.
func scanRows(rows *stdsql.Rows) (*models.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &models.QueryResult{Columns: columns, Rows: []map[string]any{}}
	values := make([]any, len(columns))
	scanTargets := make([]any, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				row[col] = string(v)
			case time.Time:
				row[col] = v.Format(time.RFC3339)
			default:
				row[col] = v
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}
