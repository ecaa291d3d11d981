package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsplit"
	"github.com/yosssi/gohtml"
)

// Compile-time interface verification.
var (
	_ docsplit.LinkExtractor = (*AnchorExtractor)(nil)
	_ docsplit.LinkExtractor = (*TableExtractor)(nil)
)

// AnchorExtractor finds every anchor that has both an href and text.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// ExtractLinks implements docsplit.LinkExtractor.
func (e *AnchorExtractor) ExtractLinks(section string) ([]docsplit.Link, error) {
	doc, err := parse(section)
	if err != nil {
		return nil, err
	}

	var links []docsplit.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if href == "" || title == "" {
			return
		}
		fragment, _ := goquery.OuterHtml(sel)
		links = append(links, docsplit.Link{
			Href:     href,
			Title:    title,
			Fragment: fragment,
		})
	})

	return links, nil
}

// TableExtractor finds links in the data rows of tables laid out as
// No. | Endpoint | Details, where the details cell links to the article.
type TableExtractor struct {
	pretty bool
}

// TableOption configures a TableExtractor.
type TableOption func(*TableExtractor)

// WithRawFragments keeps row markup exactly as it appears in the source
// instead of re-indenting it.
func WithRawFragments() TableOption {
	return func(e *TableExtractor) {
		e.pretty = false
	}
}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor(opts ...TableOption) *TableExtractor {
	e := &TableExtractor{pretty: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// minTableCells is the number of cells a data row needs: ordinal label,
// endpoint name and linked title.
const minTableCells = 3

// ExtractLinks implements docsplit.LinkExtractor.
// The first row of every table is treated as a header. Rows with fewer than
// three cells, or without an anchor in the third cell, are dropped.
func (e *TableExtractor) ExtractLinks(section string) ([]docsplit.Link, error) {
	doc, err := parse(section)
	if err != nil {
		return nil, err
	}

	var links []docsplit.Link
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
			return row.Closest("table").IsSelection(table)
		})
		if rows.Length() <= 1 {
			return
		}

		rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
			cells := row.ChildrenFiltered("td")
			if cells.Length() < minTableCells {
				return
			}

			anchor := cells.Eq(2).Find("a").First()
			if anchor.Length() == 0 {
				return
			}

			href, _ := anchor.Attr("href")
			links = append(links, docsplit.Link{
				Href:     href,
				Title:    strings.TrimSpace(anchor.Text()),
				Label:    strings.TrimSpace(cells.Eq(0).Text()),
				Endpoint: strings.TrimSpace(cells.Eq(1).Text()),
				Fragment: e.fragment(row),
			})
		})
	})

	return links, nil
}

func (e *TableExtractor) fragment(row *goquery.Selection) string {
	markup, err := goquery.OuterHtml(row)
	if err != nil {
		return ""
	}
	if e.pretty {
		return gohtml.Format(markup)
	}
	return markup
}
