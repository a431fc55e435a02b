// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SearchResult is one quote returned by a search, with its attribution.
// Relevance is the FTS5 rank for full-text queries and zero for the
// structured author/source searches.
type SearchResult struct {
	Quote     string  `json:"quote" yaml:"quote"`
	Author    string  `json:"author" yaml:"author"`
	Source    string  `json:"source" yaml:"source"`
	Relevance float64 `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// Autocomplete runs a full-text search over quote text with prefix
// matching on the final term, ranked by relevance. An empty term yields
// no results. limit of zero uses the store default.
func (s *Store) Autocomplete(ctx context.Context, term string, limit int) ([]SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = s.searchLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT q.text, a.name, src.title, quotes_fts.rank
		 FROM quotes_fts
		 JOIN quotes q ON q.id = quotes_fts.rowid
		 JOIN authors a ON a.id = q.author_id
		 JOIN sources src ON src.id = q.source_id
		 WHERE quotes_fts MATCH ?
		 ORDER BY quotes_fts.rank
		 LIMIT ?`,
		ftsQuery(term), limit)
	if err != nil {
		return nil, fmt.Errorf("searching quotes: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, true)
}

// SearchByAuthor returns quotes whose author name contains name,
// case-insensitively, ordered by author then quote text.
func (s *Store) SearchByAuthor(ctx context.Context, name string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = s.searchLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT q.text, a.name, src.title
		 FROM quotes q
		 JOIN authors a ON a.id = q.author_id
		 JOIN sources src ON src.id = q.source_id
		 WHERE a.name LIKE ?
		 ORDER BY a.name, q.text
		 LIMIT ?`,
		"%"+name+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching by author: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, false)
}

// SearchBySource returns quotes whose source title contains title,
// case-insensitively, ordered by source then author.
func (s *Store) SearchBySource(ctx context.Context, title string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = s.searchLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT q.text, a.name, src.title
		 FROM quotes q
		 JOIN authors a ON a.id = q.author_id
		 JOIN sources src ON src.id = q.source_id
		 WHERE src.title LIKE ?
		 ORDER BY src.title, a.name
		 LIMIT ?`,
		"%"+title+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching by source: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, false)
}

// ftsQuery turns free text into an FTS5 match expression: each term is
// quoted to neutralize operator syntax, and the final term gets a
// trailing star for prefix matching.
func ftsQuery(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		quoted := `"` + strings.ReplaceAll(w, `"`, `""`) + `"`
		if i == len(words)-1 {
			quoted += "*"
		}
		words[i] = quoted
	}
	return strings.Join(words, " ")
}

func scanResults(rows *sql.Rows, withRank bool) ([]SearchResult, error) {
	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var err error
		if withRank {
			err = rows.Scan(&r.Quote, &r.Author, &r.Source, &r.Relevance)
		} else {
			err = rows.Scan(&r.Quote, &r.Author, &r.Source)
		}
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
