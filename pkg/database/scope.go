package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/google/uuid"
)

// WithUserScope runs fn inside a read-only transaction where the row-level
// policies admit only rows owned by userID. The setting is transaction-local
// (set_config with is_local=true), so the connection returns to the pool
// without residual state.
func WithUserScope(ctx context.Context, db *stdsql.DB, userID uuid.UUID, fn func(tx *stdsql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &stdsql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to begin scoped transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT set_config('app.user_id', $1, true)`, userID.String()); err != nil {
		return fmt.Errorf("failed to set user scope: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
