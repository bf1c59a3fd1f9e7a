package mock

import (
	"context"

	"github.com/fwojciec/askweb"
)

var _ askweb.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is a mock implementation of askweb.VectorIndex.
type VectorIndex struct {
	AddFn   func(ctx context.Context, records []askweb.Record) error
	QueryFn func(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error)
}

func (i *VectorIndex) Add(ctx context.Context, records []askweb.Record) error {
	return i.AddFn(ctx, records)
}

func (i *VectorIndex) Query(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
	return i.QueryFn(ctx, embedding, topK)
}
