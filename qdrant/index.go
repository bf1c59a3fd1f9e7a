// Package qdrant provides a vector index backed by a Qdrant collection.
package qdrant

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/askweb"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Compile-time interface verification.
var _ askweb.VectorIndex = (*Index)(nil)

// Index stores records as points in a single Qdrant collection. The same
// collection is reused for the whole process lifetime. The collection is
// created lazily on the first write, sized to the first vector, because
// the embedding dimension is unknown until the embedding service returns.
type Index struct {
	client     *qdrant.Client
	collection string

	mu      sync.Mutex
	ensured bool
}

// NewIndex creates an Index over the named collection.
func NewIndex(client *qdrant.Client, collection string) *Index {
	return &Index{client: client, collection: collection}
}

// Add upserts records into the collection.
func (i *Index) Add(ctx context.Context, records []askweb.Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	if err := i.ensureCollection(ctx, uint64(len(records[0].Embedding))); err != nil {
		return err
	}

	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, rec := range records {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(rec.ID),
			Vectors: qdrant.NewVectors(rec.Embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"url":  rec.Metadata.URL,
				"head": rec.Metadata.Head,
				"body": rec.Metadata.Body,
			}),
		})
	}

	if _, err := i.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: i.collection,
		Points:         points,
	}); err != nil {
		return fmt.Errorf("upsert points: %w", err)
	}
	return nil
}

// Query returns the metadata of the topK points nearest to the embedding.
// A collection that does not exist yet behaves as an empty index.
func (i *Index) Query(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
	if topK <= 0 {
		return nil, askweb.Errorf(askweb.EINVALID, "topK must be positive")
	}

	limit := uint64(topK)
	points, err := i.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: i.collection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("query points: %w", err)
	}

	metas := make([]askweb.RecordMetadata, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		metas = append(metas, askweb.RecordMetadata{
			URL:  payload["url"].GetStringValue(),
			Head: payload["head"].GetStringValue(),
			Body: payload["body"].GetStringValue(),
		})
	}
	return metas, nil
}

// ensureCollection creates the collection if it does not exist.
func (i *Index) ensureCollection(ctx context.Context, dim uint64) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.ensured {
		return nil
	}

	exists, err := i.client.CollectionExists(ctx, i.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		i.ensured = true
		return nil
	}

	if err := i.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: i.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dim,
			Distance: qdrant.Distance_Cosine,
		}),
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	i.ensured = true
	return nil
}
