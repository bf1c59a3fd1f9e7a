package mock

import "github.com/fwojciec/askweb"

var _ askweb.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of askweb.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*askweb.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*askweb.ExtractResult, error) {
	return e.ExtractFn(html)
}
