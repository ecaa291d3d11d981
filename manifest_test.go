package docsplit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docsplit"
	"github.com/stretchr/testify/assert"
)

func TestFormatManifest(t *testing.T) {
	t.Parallel()

	t.Run("formats remote manifest with placeholders", func(t *testing.T) {
		t.Parallel()

		m := &docsplit.Manifest{
			Category: "NODE",
			Source:   docsplit.SourceRemote,
			Entries: []docsplit.ManifestEntry{
				{
					Ordinal:   1,
					Title:     "Node Table",
					ArticleID: "101",
					SectionID: "900",
					URL:       "https://support.example.com/hc/en-us/articles/101",
					UpdatedAt: "2024-05-01T00:00:00Z",
				},
				{
					Ordinal:   2,
					Title:     "Element Table",
					ArticleID: "102",
					URL:       "https://support.example.com/hc/en-us/articles/102",
				},
			},
		}

		want := `Category: NODE
Total APIs: 2

API List:
1. Node Table
   Article ID: 101
   Section ID: 900
   URL: https://support.example.com/hc/en-us/articles/101
   Updated: 2024-05-01T00:00:00Z

2. Element Table
   Article ID: 102
   Section ID: N/A
   URL: https://support.example.com/hc/en-us/articles/102
   Updated: N/A

`
		assert.Equal(t, want, docsplit.FormatManifest(m))
	})

	t.Run("formats local manifest", func(t *testing.T) {
		t.Parallel()

		m := &docsplit.Manifest{
			Category: "ACCOUNTS",
			Source:   docsplit.SourceLocal,
			Entries: []docsplit.ManifestEntry{
				{Ordinal: 1, Title: "Login", Endpoint: "/auth/login", URL: "https://example.com/a/1"},
			},
		}

		want := `Category: ACCOUNTS
Total APIs: 1

API List:
1. Login
   Endpoint: /auth/login
   URL: https://example.com/a/1

`
		assert.Equal(t, want, docsplit.FormatManifest(m))
	})

	t.Run("formats empty manifest", func(t *testing.T) {
		t.Parallel()

		m := &docsplit.Manifest{Category: "EMPTY", Source: docsplit.SourceRemote}

		assert.Equal(t, "Category: EMPTY\nTotal APIs: 0\n\nAPI List:\n", docsplit.FormatManifest(m))
	})
}

func TestFormatErrorReport(t *testing.T) {
	t.Parallel()

	r := &docsplit.Record{Ordinal: 3, Title: "Load Cases", ArticleID: "555"}

	got := docsplit.FormatErrorReport(r, errors.New("request timed out"))

	assert.Equal(t, "Title: Load Cases\nArticle ID: 555\nError: request timed out\n", got)
}

func TestFormatErrorReport_ApplicationError(t *testing.T) {
	t.Parallel()

	r := &docsplit.Record{Ordinal: 3, Title: "Load Cases", ArticleID: "555"}
	err := fmt.Errorf("find article: %w", docsplit.Errorf(docsplit.EUNAVAILABLE, "HTTP 503 for /articles/555.json"))

	got := docsplit.FormatErrorReport(r, err)

	assert.Equal(t, "Title: Load Cases\nArticle ID: 555\nError: HTTP 503 for /articles/555.json\n", got)
	assert.NotContains(t, got, "code=")
}

func TestOrNA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", docsplit.OrNA(""))
	assert.Equal(t, "value", docsplit.OrNA("value"))
}

func TestIndexEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete entry", func(t *testing.T) {
		t.Parallel()

		e := &docsplit.IndexEntry{Category: "NODE", FilePath: "NODE/001_A.html", Status: docsplit.StatusExisting}

		assert.NoError(t, e.Validate())
	})

	t.Run("requires category", func(t *testing.T) {
		t.Parallel()

		e := &docsplit.IndexEntry{FilePath: "x", Status: docsplit.StatusFailed}

		assert.Equal(t, docsplit.EINVALID, docsplit.ErrorCode(e.Validate()))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		e := &docsplit.IndexEntry{Category: "NODE", FilePath: "x", Status: "done"}

		assert.Equal(t, docsplit.EINVALID, docsplit.ErrorCode(e.Validate()))
	})
}
