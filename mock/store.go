package mock

import (
	"context"

	"github.com/fwojciec/docsplit"
)

var _ docsplit.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of docsplit.OutputStore.
type OutputStore struct {
	ExistsFn    func(ctx context.Context, category, name string) (bool, error)
	WriteFileFn func(ctx context.Context, category, name, content string) error
}

func (s *OutputStore) Exists(ctx context.Context, category, name string) (bool, error) {
	return s.ExistsFn(ctx, category, name)
}

func (s *OutputStore) WriteFile(ctx context.Context, category, name, content string) error {
	return s.WriteFileFn(ctx, category, name, content)
}
