// Package database provides a ready-to-use database client for integration
// tests: isolated schema, migrations, trigram support, and row policies.
package database

import (
	"testing"

	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/test/util"
)

// NewTestClient returns a migrated client backed by an isolated schema.
// In CI (CI_DATABASE_URL set) it targets the external PostgreSQL service;
// locally it uses a shared testcontainer. Cleanup is registered on t.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
