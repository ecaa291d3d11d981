package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsplit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsplit.IndexService = (*IndexService)(nil)

// IndexService implements docsplit.IndexService using SQLite.
type IndexService struct {
	db  *DB
	now func() time.Time
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db, now: time.Now}
}

// HashContent computes the xxHash of content as a hex string.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// RecordEntry creates the entry, or replaces the one already recorded for
// the same category and file path. The stored ID survives replacement.
func (s *IndexService) RecordEntry(ctx context.Context, entry *docsplit.IndexEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.Content != "" {
		entry.ContentHash = HashContent(entry.Content)
	}
	entry.RecordedAt = s.now().UTC().Truncate(time.Second)

	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO index_entries (id, category, ordinal, title, article_id, href, file_path, status, content_hash, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (category, file_path) DO UPDATE SET
			ordinal = excluded.ordinal,
			title = excluded.title,
			article_id = excluded.article_id,
			href = excluded.href,
			status = excluded.status,
			content_hash = CASE WHEN excluded.content_hash = '' THEN index_entries.content_hash ELSE excluded.content_hash END,
			recorded_at = excluded.recorded_at
		RETURNING id
	`, uuid.New().String(), entry.Category, entry.Ordinal, entry.Title, entry.ArticleID, entry.Href,
		entry.FilePath, string(entry.Status), entry.ContentHash, entry.RecordedAt.Format(time.RFC3339)).Scan(&id)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// FindEntries retrieves entries matching the filter.
func (s *IndexService) FindEntries(ctx context.Context, filter docsplit.IndexFilter) ([]*docsplit.IndexEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, category, ordinal, title, article_id, href, file_path, status, content_hash, recorded_at FROM index_entries WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY category ASC, ordinal ASC, file_path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docsplit.IndexEntry
	for rows.Next() {
		var e docsplit.IndexEntry
		var status, recordedAt string

		if err := rows.Scan(&e.ID, &e.Category, &e.Ordinal, &e.Title, &e.ArticleID, &e.Href,
			&e.FilePath, &status, &e.ContentHash, &recordedAt); err != nil {
			return nil, err
		}

		e.Status = docsplit.EntryStatus(status)
		if e.RecordedAt, err = parseRFC3339(recordedAt, "recorded_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
