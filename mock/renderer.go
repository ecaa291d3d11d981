package mock

import "github.com/fwojciec/docsplit"

var _ docsplit.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docsplit.Renderer.
type Renderer struct {
	RenderArticleFn  func(page *docsplit.ArticlePage) (string, error)
	RenderCategoryFn func(page *docsplit.CategoryPage) (string, error)
}

func (r *Renderer) RenderArticle(page *docsplit.ArticlePage) (string, error) {
	return r.RenderArticleFn(page)
}

func (r *Renderer) RenderCategory(page *docsplit.CategoryPage) (string, error) {
	return r.RenderCategoryFn(page)
}
