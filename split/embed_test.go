package split_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/fs"
	"github.com/fwojciec/docsplit/goquery"
	dochtml "github.com/fwojciec/docsplit/html"
	"github.com/fwojciec/docsplit/htmltemplate"
	"github.com/fwojciec/docsplit/mock"
	"github.com/fwojciec/docsplit/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Split a Local Document
// Every table row of a category becomes a page embedding that row.

func newEmbedder(t *testing.T, base string) *split.Embedder {
	t.Helper()
	renderer, err := htmltemplate.NewRenderer()
	require.NoError(t, err)
	return &split.Embedder{
		Segmenter: dochtml.NewSegmenter(),
		Links:     goquery.NewTableExtractor(),
		Elements:  goquery.NewElementExtractor("h2"),
		Store:     fs.NewStore(base),
		Renderer:  renderer,
	}
}

func TestEmbedder_Run_WritesOnePagePerRow(t *testing.T) {
	t.Parallel()

	// Given an ACCOUNTS category with a header row and two data rows
	base := t.TempDir()

	// When I split the document
	result, err := newEmbedder(t, base).Run(context.Background(), accountsDocument, nil)

	// Then exactly two pages, the summary and the aggregate page are written
	require.NoError(t, err)
	assert.Equal(t, []string{"001_Login_POST.html", "002_Logout.html", "_ALL_ACCOUNTS.html", "_summary.txt"},
		listFiles(t, filepath.Join(base, "ACCOUNTS")))
	assert.Equal(t, &split.Result{Categories: 1, Saved: 2}, result)

	// And the summary lists both rows with ordinals 1 and 2
	assert.Equal(t, `Category: ACCOUNTS
Total APIs: 2

API List:
1. Login (POST)
   Endpoint: /auth/login
   URL: https://support.example.com/hc/en-us/articles/111-Login

2. Logout
   Endpoint: /auth/logout
   URL: https://support.example.com/hc/en-us/articles/222-Logout

`, readFile(t, base, "ACCOUNTS", "_summary.txt"))

	// And each page shows the row metadata and embeds the row
	page := readFile(t, base, "ACCOUNTS", "002_Logout.html")
	assert.Contains(t, page, `<span class="label">Endpoint:</span> /auth/logout`)
	assert.Contains(t, page, `<span class="label">No:</span> 2`)
	assert.Contains(t, page, `<span class="label">Original URL:</span> https://support.example.com/hc/en-us/articles/222-Logout`)
	assert.Contains(t, page, "<tr>")
	assert.NotContains(t, page, "/auth/login")

	// And the aggregate page holds the whole section
	aggregate := readFile(t, base, "ACCOUNTS", "_ALL_ACCOUNTS.html")
	assert.Contains(t, aggregate, "<p>Total APIs: 2</p>")
	assert.Contains(t, aggregate, "/auth/login")
	assert.Contains(t, aggregate, "/auth/logout")
	assert.Contains(t, aggregate, "Changelog")

	// And INTRODUCTION is never materialized
	assert.NoDirExists(t, filepath.Join(base, "INTRODUCTION"))
}

func TestEmbedder_Run_KeepsExistingPages(t *testing.T) {
	t.Parallel()

	// Given a page edited after a previous run
	base := t.TempDir()
	_, err := newEmbedder(t, base).Run(context.Background(), accountsDocument, nil)
	require.NoError(t, err)
	edited := filepath.Join(base, "ACCOUNTS", "001_Login_POST.html")
	require.NoError(t, os.WriteFile(edited, []byte("edited"), 0644))

	// When I split again
	var existing []string
	result, err := newEmbedder(t, base).Run(context.Background(), accountsDocument, func(e split.Event) {
		if e.Type == split.EventExisting {
			existing = append(existing, e.Filename)
		}
	})

	// Then the page is not overwritten
	require.NoError(t, err)
	assert.Equal(t, "edited", readFile(t, edited))
	assert.Equal(t, []string{"001_Login_POST.html", "002_Logout.html"}, existing)
	assert.Equal(t, 2, result.Existing)

	// And existing rows still appear in the summary
	assert.Contains(t, readFile(t, base, "ACCOUNTS", "_summary.txt"), "Total APIs: 2\n")
}

func TestEmbedder_Run_OrdinalsCloseGapsFromDroppedRows(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	doc := `<h2 id="node">NODE</h2>
<table>
<tr><th>No.</th><th>Endpoint</th><th>Details</th></tr>
<tr><td>1</td><td>/node</td><td><a href="/hc/en-us/articles/1">Node Table</a></td></tr>
<tr><td>2</td><td>/node/bulk</td><td>No link yet</td></tr>
<tr><td>3</td><td>/node/short</td></tr>
<tr><td>4</td><td>/node/query</td><td><a href="/hc/en-us/articles/4">Node Query</a></td></tr>
</table>`

	_, err := newEmbedder(t, base).Run(context.Background(), doc, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"001_Node_Table.html", "002_Node_Query.html", "_ALL_NODE.html", "_summary.txt"},
		listFiles(t, filepath.Join(base, "NODE")))
}

func TestEmbedder_Run_RecordsIndexEntries(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	e := newEmbedder(t, base)

	var statuses []docsplit.EntryStatus
	e.Index = &mock.IndexService{
		RecordEntryFn: func(ctx context.Context, entry *docsplit.IndexEntry) error {
			statuses = append(statuses, entry.Status)
			return nil
		},
	}

	_, err := e.Run(context.Background(), accountsDocument, nil)
	require.NoError(t, err)
	_, err = e.Run(context.Background(), accountsDocument, nil)
	require.NoError(t, err)

	assert.Equal(t, []docsplit.EntryStatus{
		docsplit.StatusMaterialized, docsplit.StatusMaterialized,
		docsplit.StatusExisting, docsplit.StatusExisting,
	}, statuses)
}

func TestEmbedder_Run_WritesMarkdownCompanion(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	e := newEmbedder(t, base)
	var converted []string
	e.Converter = &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			converted = append(converted, html)
			return "| row |", nil
		},
	}

	_, err := e.Run(context.Background(), accountsDocument, nil)

	require.NoError(t, err)
	require.Len(t, converted, 2)
	assert.Contains(t, converted[0], "<table>")
	assert.Contains(t, readFile(t, base, "ACCOUNTS", "001_Login_POST.md"), "title: Login (POST)\n")
}

func TestEmbedder_Run_SkipsCategoryWithBlankName(t *testing.T) {
	t.Parallel()

	// Given a blank heading before a valid category
	base := t.TempDir()
	doc := `<h2 id="blank"> </h2>
<table>
<tr><th>No.</th><th>Endpoint</th><th>Details</th></tr>
<tr><td>1</td><td>/x</td><td><a href="/hc/en-us/articles/9">X</a></td></tr>
</table>
<h2 id="node">NODE</h2>
<table>
<tr><th>No.</th><th>Endpoint</th><th>Details</th></tr>
<tr><td>1</td><td>/node</td><td><a href="/hc/en-us/articles/1">Node Table</a></td></tr>
</table>`

	var skipped []string
	// When I split the document
	result, err := newEmbedder(t, base).Run(context.Background(), doc, func(e split.Event) {
		if e.Type == split.EventCategorySkipped {
			skipped = append(skipped, e.Category)
		}
	})

	// Then the blank category is reported and left out
	require.NoError(t, err)
	assert.Equal(t, []string{""}, skipped)
	assert.Equal(t, 1, result.SkippedCategories)

	// And the following category is still written
	assert.Equal(t, 1, result.Categories)
	assert.Equal(t, []string{"001_Node_Table.html", "_ALL_NODE.html", "_summary.txt"},
		listFiles(t, filepath.Join(base, "NODE")))
}

func TestEmbedder_Run_SkipsCategoryEscapingOutputDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	base := filepath.Join(root, "api_docs")
	doc := `<h2 id="up">..</h2>
<table>
<tr><th>No.</th><th>Endpoint</th><th>Details</th></tr>
<tr><td>1</td><td>/x</td><td><a href="/hc/en-us/articles/9">Escaped</a></td></tr>
</table>`

	result, err := newEmbedder(t, base).Run(context.Background(), doc, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SkippedCategories)
	assert.NoFileExists(t, filepath.Join(root, "001_Escaped.html"))
	assert.NoFileExists(t, filepath.Join(root, "_summary.txt"))
}

func TestEmbedder_Run_ElementExtractionErrorStopsAggregate(t *testing.T) {
	t.Parallel()

	// Given an element extractor that fails
	base := t.TempDir()
	e := newEmbedder(t, base)
	e.Elements = &mock.ElementExtractor{
		ExtractElementsFn: func(section string) ([]string, error) {
			return nil, docsplit.Errorf(docsplit.EINTERNAL, "failed to render element")
		},
	}

	// When I split the document
	_, err := e.Run(context.Background(), accountsDocument, nil)

	// Then the run fails without an aggregate page
	require.Error(t, err)
	assert.Equal(t, docsplit.EINTERNAL, docsplit.ErrorCode(err))
	assert.NoFileExists(t, filepath.Join(base, "ACCOUNTS", "_ALL_ACCOUNTS.html"))

	// And the row pages and summary written before it remain
	assert.FileExists(t, filepath.Join(base, "ACCOUNTS", "001_Login_POST.html"))
	assert.FileExists(t, filepath.Join(base, "ACCOUNTS", "_summary.txt"))
}

func TestEmbedder_Run_RenderErrorIsReturned(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	e := newEmbedder(t, base)
	renderErr := errors.New("template failed")
	var rendered []string
	e.Renderer = &mock.Renderer{
		RenderArticleFn: func(page *docsplit.ArticlePage) (string, error) {
			rendered = append(rendered, page.Title)
			return "", renderErr
		},
		RenderCategoryFn: func(page *docsplit.CategoryPage) (string, error) {
			t.Fatal("aggregate rendered after a failed row")
			return "", nil
		},
	}

	_, err := e.Run(context.Background(), accountsDocument, nil)

	require.ErrorIs(t, err, renderErr)
	assert.Equal(t, []string{"Login (POST)"}, rendered)
	assert.NoFileExists(t, filepath.Join(base, "ACCOUNTS", "001_Login_POST.html"))
}

func TestEmbedder_Run_PassesRowsToRenderer(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	e := newEmbedder(t, base)
	e.Links = &mock.LinkExtractor{
		ExtractLinksFn: func(section string) ([]docsplit.Link, error) {
			return []docsplit.Link{{
				Href:     "/hc/en-us/articles/7",
				Title:    "Node Table",
				Label:    "1",
				Endpoint: "/node",
				Fragment: "<tr><td>row</td></tr>",
			}}, nil
		},
	}
	var pages []*docsplit.ArticlePage
	var aggregate *docsplit.CategoryPage
	e.Renderer = &mock.Renderer{
		RenderArticleFn: func(page *docsplit.ArticlePage) (string, error) {
			pages = append(pages, page)
			return "page", nil
		},
		RenderCategoryFn: func(page *docsplit.CategoryPage) (string, error) {
			aggregate = page
			return "aggregate", nil
		},
	}

	_, err := e.Run(context.Background(), accountsDocument, nil)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, []docsplit.PageField{
		{Label: "Category", Value: "ACCOUNTS"},
		{Label: "Endpoint", Value: "/node"},
		{Label: "No", Value: "1"},
		{Label: "Original URL", Value: "/hc/en-us/articles/7"},
	}, pages[0].Fields)
	assert.Equal(t, "<tr><td>row</td></tr>", pages[0].Body)
	require.NotNil(t, aggregate)
	assert.Equal(t, 1, aggregate.Total)
	assert.Equal(t, "aggregate", readFile(t, base, "ACCOUNTS", "_ALL_ACCOUNTS.html"))
}
