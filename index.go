package docsplit

import (
	"context"
	"time"
)

// EntryStatus describes what happened to a record during a run.
type EntryStatus string

// EntryStatus constants.
const (
	StatusMaterialized EntryStatus = "materialized"
	StatusExisting     EntryStatus = "existing"
	StatusFailed       EntryStatus = "failed"
)

// IndexEntry is the run index row for one record of one category.
type IndexEntry struct {
	ID          string      `json:"id"`
	Category    string      `json:"category"`
	Ordinal     int         `json:"ordinal"`
	Title       string      `json:"title"`
	ArticleID   string      `json:"articleId"`
	Href        string      `json:"href"`
	FilePath    string      `json:"filePath"`
	Status      EntryStatus `json:"status"`
	ContentHash string      `json:"contentHash"`
	RecordedAt  time.Time   `json:"recordedAt"`

	// Content is the written artifact. Services hash it and do not store it.
	Content string `json:"-"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Category == "" {
		return Errorf(EINVALID, "index entry category required")
	}
	if e.FilePath == "" {
		return Errorf(EINVALID, "index entry file path required")
	}
	switch e.Status {
	case StatusMaterialized, StatusExisting, StatusFailed:
	default:
		return Errorf(EINVALID, "invalid index entry status %q", e.Status)
	}
	return nil
}

// IndexService records the outcome of every processed record so a run can
// be inspected afterwards.
type IndexService interface {
	// RecordEntry creates or replaces the entry for the entry's category
	// and file path.
	RecordEntry(ctx context.Context, entry *IndexEntry) error

	// FindEntries retrieves entries matching the filter, ordered by
	// category and ordinal.
	FindEntries(ctx context.Context, filter IndexFilter) ([]*IndexEntry, error)
}

// IndexFilter represents a filter for FindEntries.
type IndexFilter struct {
	Category *string      `json:"category"`
	Status   *EntryStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
