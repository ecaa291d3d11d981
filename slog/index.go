package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsplit"
)

// Ensure LoggingIndexService implements docsplit.IndexService.
var _ docsplit.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with debug logging.
type LoggingIndexService struct {
	next   docsplit.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next docsplit.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// RecordEntry delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) RecordEntry(ctx context.Context, entry *docsplit.IndexEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("index record",
			"category", entry.Category,
			"file", entry.FilePath,
			"status", entry.Status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) FindEntries(ctx context.Context, filter docsplit.IndexFilter) (entries []*docsplit.IndexEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("index query",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}
