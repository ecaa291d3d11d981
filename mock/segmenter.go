package mock

import "github.com/fwojciec/docsplit"

var _ docsplit.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of docsplit.Segmenter.
type Segmenter struct {
	SegmentFn func(document string) ([]docsplit.Category, error)
}

func (s *Segmenter) Segment(document string) ([]docsplit.Category, error) {
	return s.SegmentFn(document)
}
