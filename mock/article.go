package mock

import (
	"context"

	"github.com/fwojciec/docsplit"
)

var _ docsplit.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of docsplit.ArticleService.
type ArticleService struct {
	FindArticleByIDFn func(ctx context.Context, id string) (*docsplit.Article, error)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*docsplit.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}
