// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists attribution records in SQLite and serves
// full-text and structured searches over them.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

const (
	defaultBatchSize   = 1000
	defaultSearchLimit = 5
)

// Store manages the quote database. Authors and sources are deduplicated
// by exact string identity; quote rows are always inserted, since the
// same quote text legitimately recurs under different attributions.
type Store struct {
	db          *sql.DB
	log         zerolog.Logger
	batchSize   int
	searchLimit int
}

// NewStore opens or creates the SQLite database at cfg.DBPath and
// ensures the schema and FTS index exist.
func NewStore(cfg types.StoreConfig, searchLimit int, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}

	s := &Store{
		db:          db,
		log:         log,
		batchSize:   batchSize,
		searchLimit: searchLimit,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS sources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			author_id INTEGER NOT NULL REFERENCES authors(id),
			source_id INTEGER NOT NULL REFERENCES sources(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_author_id ON quotes(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_source_id ON quotes(source_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='quotes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE quotes_fts USING fts5(text, content=quotes, content_rowid=id)`,
			`CREATE TRIGGER quotes_ai AFTER INSERT ON quotes BEGIN
				INSERT INTO quotes_fts(rowid, text) VALUES (new.id, new.text);
			END`,
			`CREATE TRIGGER quotes_ad AFTER DELETE ON quotes BEGIN
				INSERT INTO quotes_fts(quotes_fts, rowid, text) VALUES('delete', old.id, old.text);
			END`,
			`CREATE TRIGGER quotes_au AFTER UPDATE ON quotes BEGIN
				INSERT INTO quotes_fts(quotes_fts, rowid, text) VALUES('delete', old.id, old.text);
				INSERT INTO quotes_fts(rowid, text) VALUES (new.id, new.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Reset deletes every quote, author, and source.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM quotes`,
		`DELETE FROM authors`,
		`DELETE FROM sources`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing database: %w", err)
		}
	}
	s.log.Info().Msg("database cleared")
	return nil
}

// LoadSummary holds counts from a population run.
type LoadSummary struct {
	Loaded  int
	Batches int
}

// LoadRecords inserts the record list in batches of the configured size,
// one transaction per batch. The context is checked between batches.
func (s *Store) LoadRecords(ctx context.Context, records []types.Record) (LoadSummary, error) {
	var summary LoadSummary

	for start := 0; start < len(records); start += s.batchSize {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		end := start + s.batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := s.loadBatch(ctx, records[start:end]); err != nil {
			return summary, fmt.Errorf("loading batch %d: %w", summary.Batches+1, err)
		}

		summary.Loaded += end - start
		summary.Batches++
		s.log.Info().Int("batch", summary.Batches).Int("loaded", summary.Loaded).
			Msg("loaded batch")
	}

	return summary, nil
}

func (s *Store) loadBatch(ctx context.Context, batch []types.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	insertAuthor, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO authors (name) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer insertAuthor.Close()

	insertSource, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO sources (title) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("preparing source insert: %w", err)
	}
	defer insertSource.Close()

	insertQuote, err := tx.PrepareContext(ctx,
		`INSERT INTO quotes (text, author_id, source_id)
		 VALUES (?, (SELECT id FROM authors WHERE name = ?), (SELECT id FROM sources WHERE title = ?))`)
	if err != nil {
		return fmt.Errorf("preparing quote insert: %w", err)
	}
	defer insertQuote.Close()

	for _, r := range batch {
		if _, err := insertAuthor.ExecContext(ctx, r.Author); err != nil {
			return fmt.Errorf("inserting author %q: %w", r.Author, err)
		}
		if _, err := insertSource.ExecContext(ctx, r.Source); err != nil {
			return fmt.Errorf("inserting source %q: %w", r.Source, err)
		}
		if _, err := insertQuote.ExecContext(ctx, r.Quote, r.Author, r.Source); err != nil {
			return fmt.Errorf("inserting quote: %w", err)
		}
	}

	return tx.Commit()
}

// Stats holds row counts for the populated database.
type Stats struct {
	Authors int
	Quotes  int
	Sources int
}

// GetStats returns row counts across the three tables.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, q := range []struct {
		query string
		dest  *int
	}{
		{`SELECT count(*) FROM authors`, &stats.Authors},
		{`SELECT count(*) FROM quotes`, &stats.Quotes},
		{`SELECT count(*) FROM sources`, &stats.Sources},
	} {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("counting rows: %w", err)
		}
	}
	return stats, nil
}
