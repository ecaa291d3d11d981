package mock

import "github.com/fwojciec/docsplit"

var (
	_ docsplit.LinkExtractor    = (*LinkExtractor)(nil)
	_ docsplit.ElementExtractor = (*ElementExtractor)(nil)
)

// LinkExtractor is a mock implementation of docsplit.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(section string) ([]docsplit.Link, error)
}

func (e *LinkExtractor) ExtractLinks(section string) ([]docsplit.Link, error) {
	return e.ExtractLinksFn(section)
}

// ElementExtractor is a mock implementation of docsplit.ElementExtractor.
type ElementExtractor struct {
	ExtractElementsFn func(section string) ([]string, error)
}

func (e *ElementExtractor) ExtractElements(section string) ([]string, error) {
	return e.ExtractElementsFn(section)
}
