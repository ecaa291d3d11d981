package docsplit

import "strings"

// IntroductionCategory is the heading reserved for the document preamble.
// It is segmented like any other category but never materialized.
const IntroductionCategory = "INTRODUCTION"

// DefaultHeadingTag marks top-level categories in the source document.
const DefaultHeadingTag = "h2"

// Category is a top-level grouping of articles, delimited by a heading.
// Start and End are byte offsets into the source document; ContentStart is
// the offset just past the heading element.
type Category struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	ContentStart int    `json:"contentStart"`
}

// Skipped reports whether the category is the reserved preamble.
func (c *Category) Skipped() bool {
	return c.Name == IntroductionCategory
}

// Validate returns an error if the category name cannot name an output
// directory: it is blank, or one of its path elements is "." or "..".
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Errorf(EINVALID, "category name required")
	}
	for _, elem := range strings.FieldsFunc(c.Name, isPathSeparator) {
		if elem == "." || elem == ".." {
			return Errorf(EINVALID, "category %q: path traversal outside output directory", c.Name)
		}
	}
	return nil
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// Section returns the category's span of the document.
func (c *Category) Section(document string) string {
	return document[c.Start:c.End]
}

// Segmenter partitions a document into categories.
type Segmenter interface {
	// Segment returns one category per heading marker, in document order.
	// Spans are contiguous: each ends where the next begins, and the last
	// ends at the end of the document. A document without headings yields
	// an empty result and no error.
	Segment(document string) ([]Category, error)
}
