// Package html segments a documentation page into categories using the
// golang.org/x/net/html tokenizer, so category spans are exact byte offsets
// into the original markup.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/docsplit"
	"golang.org/x/net/html"
)

// Ensure Segmenter implements docsplit.Segmenter at compile time.
var _ docsplit.Segmenter = (*Segmenter)(nil)

// Segmenter splits a document at every occurrence of a heading tag.
type Segmenter struct {
	tag string
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithHeadingTag sets the tag that marks categories.
// Defaults to docsplit.DefaultHeadingTag ("h2").
func WithHeadingTag(tag string) Option {
	return func(s *Segmenter) {
		s.tag = strings.ToLower(tag)
	}
}

// NewSegmenter creates a new Segmenter.
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{tag: docsplit.DefaultHeadingTag}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment implements docsplit.Segmenter.
func (s *Segmenter) Segment(document string) ([]docsplit.Category, error) {
	z := html.NewTokenizer(strings.NewReader(document))

	var categories []docsplit.Category
	var name strings.Builder
	inHeading := false
	pos := 0

	closeHeading := func(end int) {
		c := &categories[len(categories)-1]
		c.Name = strings.TrimSpace(name.String())
		c.ContentStart = end
		name.Reset()
		inHeading = false
	}

	for {
		tt := z.Next()
		start := pos
		pos += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, docsplit.Errorf(docsplit.EINVALID, "failed to tokenize HTML: %v", err)
			}
			if inHeading {
				closeHeading(len(document))
			}
			return finishSpans(categories, len(document)), nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tagName, hasAttr := z.TagName()
			if string(tagName) != s.tag {
				continue
			}
			// A heading start tag implicitly closes an unterminated heading.
			if inHeading {
				closeHeading(start)
			}
			categories = append(categories, docsplit.Category{
				ID:    headingID(z, hasAttr),
				Start: start,
			})
			inHeading = true
			if tt == html.SelfClosingTagToken {
				closeHeading(pos)
			}

		case html.EndTagToken:
			if !inHeading {
				continue
			}
			if tagName, _ := z.TagName(); string(tagName) == s.tag {
				closeHeading(pos)
			}

		case html.TextToken:
			if inHeading {
				name.Write(z.Text())
			}
		}
	}
}

// headingID returns the value of the current tag's id attribute.
func headingID(z *html.Tokenizer, hasAttr bool) string {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "id" {
			return string(val)
		}
	}
	return ""
}

// finishSpans closes every span at the start of the next one and the last
// at the end of the document.
func finishSpans(categories []docsplit.Category, length int) []docsplit.Category {
	for i := range categories {
		if i+1 < len(categories) {
			categories[i].End = categories[i+1].Start
		} else {
			categories[i].End = length
		}
	}
	return categories
}
