package mock

import (
	"context"

	"github.com/fwojciec/docsplit"
)

var _ docsplit.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of docsplit.IndexService.
type IndexService struct {
	RecordEntryFn func(ctx context.Context, entry *docsplit.IndexEntry) error
	FindEntriesFn func(ctx context.Context, filter docsplit.IndexFilter) ([]*docsplit.IndexEntry, error)
}

func (s *IndexService) RecordEntry(ctx context.Context, entry *docsplit.IndexEntry) error {
	return s.RecordEntryFn(ctx, entry)
}

func (s *IndexService) FindEntries(ctx context.Context, filter docsplit.IndexFilter) ([]*docsplit.IndexEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
