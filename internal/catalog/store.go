// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records converted papers in a local SQLite database so
// past conversions can be listed, searched and exported.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/papertex/pkg/types"
)

const (
	dbFile            = "catalog.db"
	defaultMaxResults = 20
)

// ErrNotFound is returned when a paper ID is not in the catalog.
var ErrNotFound = errors.New("paper not found in catalog")

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// Open opens or creates the catalog database at dir/catalog.db and
// brings its schema up to date.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts or replaces the catalog entry for paper.
func (s *Store) Record(ctx context.Context, paper types.Paper) error {
	if paper.ID == "" {
		return errors.New("recording paper: empty ID")
	}

	convertedAt := ""
	if !paper.ConvertedAt.IsZero() {
		convertedAt = paper.ConvertedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO papers (id, title, authors, abstract, source_path, tex_path, converted_at, conversion_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, authors=excluded.authors, abstract=excluded.abstract,
			source_path=excluded.source_path, tex_path=excluded.tex_path,
			converted_at=excluded.converted_at, conversion_status=excluded.conversion_status`,
		paper.ID, paper.Title, paper.Authors, paper.Abstract,
		paper.SourcePath, paper.TexPath, convertedAt, string(paper.ConversionStatus),
	)
	if err != nil {
		return fmt.Errorf("recording paper %s: %w", paper.ID, err)
	}
	return nil
}
