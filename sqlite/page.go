package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/askweb"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ askweb.PageService = (*PageService)(nil)

// PageService implements askweb.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// CreatePage records an ingested page. Re-ingesting a URL replaces its
// previous record in place, keeping the original row ID.
func (s *PageService) CreatePage(ctx context.Context, page *askweb.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, content_hash, head_bytes, body_bytes, chunks, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content_hash = excluded.content_hash,
			head_bytes = excluded.head_bytes,
			body_bytes = excluded.body_bytes,
			chunks = excluded.chunks,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.Title, page.ContentHash, page.HeadBytes, page.BodyBytes,
		page.Chunks, page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPages retrieves pages matching the filter, most recently fetched
// first.
func (s *PageService) FindPages(ctx context.Context, filter askweb.PageFilter) ([]*askweb.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content_hash, head_bytes, body_bytes, chunks, fetched_at FROM pages WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*askweb.Page
	for rows.Next() {
		var page askweb.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Title, &page.ContentHash,
			&page.HeadBytes, &page.BodyBytes, &page.Chunks, &fetchedAt); err != nil {
			return nil, err
		}

		var parseErr error
		page.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
