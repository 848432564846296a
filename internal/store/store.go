// Package store provides SQLite-backed persistence for catalog snapshots.
// The import command writes a validated catalog; the browser and server
// read it back when started with --db.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/petrotech/petrotech/internal/catalog"
)

// ErrEmpty is returned by LoadCatalog when no catalog has been imported.
var ErrEmpty = errors.New("catalog database is empty")

// Snapshot describes the catalog currently held by the store.
type Snapshot struct {
	SchemaVersion string
	ImportedAt    time.Time
	Tools         int
	Categories    int
}

// Store wraps a SQLite database holding one catalog snapshot.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite database at dbPath and ensures
// all required tables exist. Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id       TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name     TEXT NOT NULL,
			icon     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS tools (
			id           TEXT PRIMARY KEY,
			position     INTEGER NOT NULL,
			name         TEXT NOT NULL,
			icon         TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL REFERENCES categories(id),
			description  TEXT NOT NULL DEFAULT '',
			tags         TEXT NOT NULL DEFAULT '[]',
			key_features TEXT NOT NULL DEFAULT '[]',
			use_case     TEXT NOT NULL DEFAULT '',
			integrations TEXT NOT NULL DEFAULT '[]',
			licensing    TEXT NOT NULL DEFAULT '',
			added        TEXT NOT NULL DEFAULT '',
			homepage     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// SaveCatalog replaces the stored catalog with c in a single transaction.
// Catalog order is kept in the position column.
func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM tools`, `DELETE FROM categories`, `DELETE FROM catalog_meta`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	for i, cat := range c.Categories() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, position, name, icon) VALUES (?, ?, ?, ?)`,
			cat.ID, i, cat.Name, string(cat.Icon),
		)
		if err != nil {
			return fmt.Errorf("save category %s: %w", cat.ID, err)
		}
	}

	for i, t := range c.Tools() {
		tags, err := encodeList(t.Tags)
		if err != nil {
			return err
		}
		features, err := encodeList(t.Features)
		if err != nil {
			return err
		}
		integrations, err := encodeList(t.Integrations)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO tools (id, position, name, icon, category, description, tags,
			 key_features, use_case, integrations, licensing, added, homepage)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Name, string(t.Icon), t.Category, t.Description, tags,
			features, t.UseCase, integrations, t.Licensing, t.Added, t.Homepage,
		)
		if err != nil {
			return fmt.Errorf("save tool %s: %w", t.ID, err)
		}
	}

	meta := map[string]string{
		"schema_version": c.SchemaVersion(),
		"imported_at":    time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO catalog_meta (key, value) VALUES (?, ?)`, k, v,
		); err != nil {
			return fmt.Errorf("save meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadCatalog reads the stored catalog and validates it with catalog.New.
// It returns ErrEmpty when nothing has been imported.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrEmpty
	}
	tools, err := s.loadTools(ctx)
	if err != nil {
		return nil, err
	}
	version, err := s.meta(ctx, "schema_version")
	if err != nil {
		return nil, err
	}
	return catalog.FromFile(&catalog.File{
		SchemaVersion: version,
		Categories:    categories,
		Tools:         tools,
	})
}

// meta returns a catalog_meta value, or "" when the key is absent.
func (s *Store) meta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM catalog_meta WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) loadCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon FROM categories ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		var icon string
		if err := rows.Scan(&c.ID, &c.Name, &icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Icon = catalog.Icon(icon)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) loadTools(ctx context.Context) ([]catalog.Tool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon, category, description, tags, key_features,
		 use_case, integrations, licensing, added, homepage
		 FROM tools ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var tools []catalog.Tool
	for rows.Next() {
		var t catalog.Tool
		var icon, tags, features, integrations string
		if err := rows.Scan(&t.ID, &t.Name, &icon, &t.Category, &t.Description, &tags,
			&features, &t.UseCase, &integrations, &t.Licensing, &t.Added, &t.Homepage,
		); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		t.Icon = catalog.Icon(icon)
		if t.Tags, err = decodeList(tags); err != nil {
			return nil, fmt.Errorf("tool %s tags: %w", t.ID, err)
		}
		if t.Features, err = decodeList(features); err != nil {
			return nil, fmt.Errorf("tool %s key_features: %w", t.ID, err)
		}
		if t.Integrations, err = decodeList(integrations); err != nil {
			return nil, fmt.Errorf("tool %s integrations: %w", t.ID, err)
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// Snapshot returns metadata about the stored catalog. It returns ErrEmpty
// when nothing has been imported.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	var importedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM catalog_meta WHERE key = 'imported_at'`,
	).Scan(&importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	if snap.ImportedAt, err = time.Parse(time.RFC3339, importedAt); err != nil {
		return nil, fmt.Errorf("parse imported_at: %w", err)
	}

	if snap.SchemaVersion, err = s.meta(ctx, "schema_version"); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tools`).Scan(&snap.Tools); err != nil {
		return nil, fmt.Errorf("count tools: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&snap.Categories); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return &snap, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
