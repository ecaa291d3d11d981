package htmltemplate_test

import (
	"testing"

	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/htmltemplate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *htmltemplate.Renderer {
	t.Helper()
	r, err := htmltemplate.NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRenderer_RenderArticle(t *testing.T) {
	t.Parallel()

	t.Run("renders title, fields and body", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)

		got, err := r.RenderArticle(&docsplit.ArticlePage{
			Title:    "Node Table",
			Category: "NODE",
			Fields: []docsplit.PageField{
				{Label: "Category", Value: "NODE"},
				{Label: "Article ID", Value: "101"},
				{Label: "URL", Value: "https://example.com/a/101", Href: "https://example.com/a/101"},
			},
			Body: `<h2>Request</h2><pre>GET /db/node</pre>`,
		})

		require.NoError(t, err)
		assert.Contains(t, got, "<!DOCTYPE html>")
		assert.Contains(t, got, "<title>Node Table - NODE</title>")
		assert.Contains(t, got, "<h1>Node Table</h1>")
		assert.Contains(t, got, `<span class="label">Article ID:</span> 101</div>`)
		assert.Contains(t, got, `<a href="https://example.com/a/101" target="_blank">https://example.com/a/101</a>`)
		assert.Contains(t, got, `<h2>Request</h2><pre>GET /db/node</pre>`)
	})

	t.Run("falls back to placeholder body", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)

		got, err := r.RenderArticle(&docsplit.ArticlePage{Title: "Empty", Category: "X"})

		require.NoError(t, err)
		assert.Contains(t, got, htmltemplate.ContentUnavailable)
	})

	t.Run("escapes title but not body", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t)

		got, err := r.RenderArticle(&docsplit.ArticlePage{
			Title:    "A <b> & C",
			Category: "X",
			Body:     "<b>bold</b>",
		})

		require.NoError(t, err)
		assert.Contains(t, got, "<h1>A &lt;b&gt; &amp; C</h1>")
		assert.Contains(t, got, "<b>bold</b>")
	})
}

func TestRenderer_RenderCategory(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)

	got, err := r.RenderCategory(&docsplit.CategoryPage{
		Category: "ACCOUNTS",
		Total:    2,
		Elements: []string{"<p>intro</p>", "<table><tr><td>1</td></tr></table>"},
	})

	require.NoError(t, err)
	assert.Contains(t, got, "<title>ACCOUNTS - All APIs</title>")
	assert.Contains(t, got, "<h1>ACCOUNTS</h1>")
	assert.Contains(t, got, "<p>Total APIs: 2</p>")
	assert.Contains(t, got, "<p>intro</p>\n<table><tr><td>1</td></tr></table>\n")
}
