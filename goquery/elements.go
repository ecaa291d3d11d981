// Package goquery extracts article links and section markup from category
// sections using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsplit"
	"golang.org/x/net/html"
)

// Ensure ElementExtractor implements docsplit.ElementExtractor at compile time.
var _ docsplit.ElementExtractor = (*ElementExtractor)(nil)

// ElementExtractor returns the sibling elements that follow a category
// heading, stopping at the next heading of the same level.
type ElementExtractor struct {
	tag string
}

// NewElementExtractor creates a new ElementExtractor for sections that start
// with the given heading tag.
func NewElementExtractor(tag string) *ElementExtractor {
	if tag == "" {
		tag = docsplit.DefaultHeadingTag
	}
	return &ElementExtractor{tag: strings.ToLower(tag)}
}

// ExtractElements implements docsplit.ElementExtractor.
func (e *ElementExtractor) ExtractElements(section string) ([]string, error) {
	doc, err := parse(section)
	if err != nil {
		return nil, err
	}

	heading := doc.Find(e.tag).First()
	if heading.Length() == 0 {
		return nil, nil
	}

	var elements []string
	for sel := heading.Next(); sel.Length() > 0; sel = sel.Next() {
		if goquery.NodeName(sel) == e.tag {
			break
		}
		markup, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, docsplit.Errorf(docsplit.EINTERNAL, "failed to render element: %v", err)
		}
		elements = append(elements, markup)
	}

	return elements, nil
}

// parse parses a section of a larger document. Sections are cut at heading
// boundaries, so they may contain unbalanced tags; the HTML parser recovers
// the same way a browser would.
func parse(section string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(section))
	if err != nil {
		return nil, docsplit.Errorf(docsplit.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}
