// Package schema reflects the queryable relational surface into a compact
// manifest for prompt injection and identifier validation. The manifest is
// cached until Bust; its content hash is the snapshot id persisted with each
// generation for reproducibility.
package schema

import (
	"context"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// queryableTables allow-lists what the assistant may see, with the semantic
// aliases surfaced in the manifest so the model uses user-visible names.
var queryableTables = map[string][]string{
	"patients":    {"patient", "person", "subject"},
	"reports":     {"report", "lab report", "document"},
	"lab_results": {"result", "lab value", "parameter", "measurement"},
	"analytes":    {"analyte", "biomarker", "test"},
}

// Table describes one queryable table for the SQL validator.
type Table struct {
	Name    string
	Columns []Column
	Aliases []string
}

// Column is one column with its SQL type.
type Column struct {
	Name string
	Type string
}

// Service builds and caches the schema snapshot.
type Service struct {
	db *stdsql.DB

	mu         sync.RWMutex
	manifest   []byte
	snapshotID string
	tables     []Table
}

// NewService creates a snapshot service over the primary pool.
func NewService(db *stdsql.DB) *Service {
	if db == nil {
		panic("schema.NewService: db must not be nil")
	}
	return &Service{db: db}
}

// Snapshot returns the cached manifest and its content-hash id, reflecting
// the store on first use. Rebuild cost is amortized over many chat turns.
func (s *Service) Snapshot(ctx context.Context) ([]byte, string, error) {
	s.mu.RLock()
	if s.manifest != nil {
		manifest, id := s.manifest, s.snapshotID
		s.mu.RUnlock()
		return manifest, id, nil
	}
	s.mu.RUnlock()

	return s.rebuild(ctx)
}

// Tables returns the reflected tables for identifier resolution. Triggers a
// reflect when the cache is cold.
func (s *Service) Tables(ctx context.Context) ([]Table, error) {
	s.mu.RLock()
	if s.manifest != nil {
		tables := s.tables
		s.mu.RUnlock()
		return tables, nil
	}
	s.mu.RUnlock()

	if _, _, err := s.rebuild(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables, nil
}

// Bust invalidates the cache. Called after boot-time schema changes; the
// running store never alters its shape mid-flight.
func (s *Service) Bust() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest = nil
	s.snapshotID = ""
	s.tables = nil
}

func (s *Service) rebuild(ctx context.Context) ([]byte, string, error) {
	tables, err := s.reflect(ctx)
	if err != nil {
		return nil, "", err
	}

	manifest := renderManifest(tables)
	sum := sha256.Sum256(manifest)
	id := hex.EncodeToString(sum[:8])

	s.mu.Lock()
	s.manifest = manifest
	s.snapshotID = id
	s.tables = tables
	s.mu.Unlock()

	return manifest, id, nil
}

func (s *Service) reflect(ctx context.Context) ([]Table, error) {
	names := make([]string, 0, len(queryableTables))
	for name := range queryableTables {
		names = append(names, name)
	}
	sort.Strings(names)

	var tables []Table
	for _, name := range names {
		columns, err := s.reflectColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		if len(columns) == 0 {
			continue // table absent; schema not applied yet
		}
		tables = append(tables, Table{
			Name:    name,
			Columns: columns,
			Aliases: queryableTables[name],
		})
	}
	return tables, nil
}

func (s *Service) reflectColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position`,
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns of %s: %w", table, err)
	}
	return columns, nil
}

// renderManifest produces the deterministic text block injected into the
// system prompt.
func renderManifest(tables []Table) []byte {
	var b strings.Builder
	b.WriteString("# Queryable tables\n")
	for _, table := range tables {
		b.WriteString("\n## ")
		b.WriteString(table.Name)
		if len(table.Aliases) > 0 {
			b.WriteString(" (also: ")
			b.WriteString(strings.Join(table.Aliases, ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
		for _, col := range table.Columns {
			b.WriteString("- ")
			b.WriteString(col.Name)
			b.WriteString(" ")
			b.WriteString(col.Type)
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}
