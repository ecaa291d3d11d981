// Package slog provides log/slog decorators for docsplit services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsplit"
)

// Ensure LoggingArticleService implements docsplit.ArticleService.
var _ docsplit.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with debug logging.
type LoggingArticleService struct {
	next   docsplit.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next docsplit.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// FindArticleByID delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (article *docsplit.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"id", id,
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs, "title", article.Title, "bytes", len(article.Body))
		}
		if err != nil {
			attrs = append(attrs, "code", docsplit.ErrorCode(err), "err", err)
		}
		s.logger.Info("article fetch", attrs...)
	}(time.Now())
	return s.next.FindArticleByID(ctx, id)
}
