// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/papertex/pkg/types"
)

const selectPapers = `SELECT id, title, authors, abstract, source_path, tex_path, converted_at, conversion_status FROM papers`

// Get returns the paper with the given ID.
func (s *Store) Get(ctx context.Context, id string) (types.Paper, error) {
	rows, err := s.db.QueryContext(ctx, selectPapers+` WHERE id = ?`, id)
	if err != nil {
		return types.Paper{}, fmt.Errorf("looking up paper: %w", err)
	}
	papers, err := scanPapers(rows)
	if err != nil {
		return types.Paper{}, err
	}
	if len(papers) == 0 {
		return types.Paper{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return papers[0], nil
}

// List returns catalogued papers, most recently converted first. A limit
// of zero uses the store default; a negative limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]types.Paper, error) {
	return s.query(ctx, "", limit)
}

// Search returns papers whose title, authors or abstract contain every
// whitespace-separated term of query, case-insensitively.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is empty")
	}
	return s.query(ctx, query, limit)
}

func (s *Store) query(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectPapers + ` WHERE 1=1`)

	for _, term := range strings.Fields(query) {
		qb.WriteString(` AND (title LIKE ? ESCAPE '\' OR authors LIKE ? ESCAPE '\' OR abstract LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(term) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	qb.WriteString(` ORDER BY converted_at DESC, id`)

	if limit == 0 {
		limit = s.maxResults
	}
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	return scanPapers(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so terms match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanPapers(rows *sql.Rows) ([]types.Paper, error) {
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var (
			p           types.Paper
			convertedAt string
			status      string
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Authors, &p.Abstract,
			&p.SourcePath, &p.TexPath, &convertedAt, &status,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if convertedAt != "" {
			if t, err := time.Parse(time.RFC3339Nano, convertedAt); err == nil {
				p.ConvertedAt = t
			}
		}
		p.ConversionStatus = types.ConversionStatus(status)
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
