// Package database provides the PostgreSQL client and boot-time schema setup.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/labtrail/labtrail/ent"
)

// Config holds database configuration.
type Config struct {
	// URL is a pgx-compatible connection string (DATABASE_URL).
	URL string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns pool settings suitable for a single replica.
func DefaultPoolConfig(url string) Config {
	return Config{
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// Client wraps the Ent client and provides access to the underlying pools.
// The primary pool serves services and admin-mode reads; the scoped pool is
// reserved for user-scoped SQL where the per-transaction current-user setting
// activates the row-level policies.
type Client struct {
	*ent.Client
	db       *stdsql.DB
	scopedDB *stdsql.DB
}

// DB returns the primary pool for health checks and direct queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// ScopedDB returns the pool dedicated to user-scoped SQL execution.
func (c *Client) ScopedDB() *stdsql.DB {
	return c.scopedDB
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client:   entClient,
		db:       db,
		scopedDB: db,
	}
}

// Close releases both pools. The ent client shares the primary pool.
func (c *Client) Close() error {
	err := c.Client.Close()
	if c.scopedDB != c.db {
		if serr := c.scopedDB.Close(); err == nil {
			err = serr
		}
	}
	return err
}

// NewClient opens the pools, applies the schema declaratively, and installs
// the raw-SQL pieces ent cannot express (pg_trgm, trigram GIN index,
// row-level security policies).
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := openPool(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	scopedDB, err := openPool(cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	// dialect.Postgres for Ent compatibility while pgx handles the connection
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Declarative schema application at boot; no versioned migrations.
	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		_ = scopedDB.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	if err := CreateTrigramSupport(ctx, drv); err != nil {
		_ = entClient.Close()
		_ = scopedDB.Close()
		return nil, fmt.Errorf("failed to create trigram support: %w", err)
	}
	if err := ApplyRowPolicies(ctx, drv); err != nil {
		_ = entClient.Close()
		_ = scopedDB.Close()
		return nil, fmt.Errorf("failed to apply row policies: %w", err)
	}

	return &Client{
		Client:   entClient,
		db:       db,
		scopedDB: scopedDB,
	}, nil
}

func openPool(cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}
