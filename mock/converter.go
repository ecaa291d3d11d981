package mock

import "github.com/fwojciec/docsplit"

var _ docsplit.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsplit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
