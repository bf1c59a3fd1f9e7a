package askweb

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

// RecordMetadata is the payload stored alongside each vector. Body is
// empty for a page's head record and holds one body chunk otherwise.
type RecordMetadata struct {
	URL  string `json:"url"`
	Head string `json:"head"`
	Body string `json:"body"`
}

// Record is one stored (id, vector, metadata) triple in the vector index.
type Record struct {
	ID        string         `json:"id"`
	Embedding []float32      `json:"embedding"`
	Metadata  RecordMetadata `json:"metadata"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if len(r.Embedding) == 0 {
		return Errorf(EINVALID, "record embedding required")
	}
	if r.Metadata.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// RecordID returns the index ID for one of a page's records. Ordinal 0 is
// the head record; body chunks count from 1. IDs are UUIDv5 values derived
// from the URL and ordinal, so they are unique per chunk (a page's chunks
// never overwrite each other) yet stable across runs (re-ingesting a page
// replaces its old records instead of accumulating duplicates).
func RecordID(url string, ordinal int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url+"#"+strconv.Itoa(ordinal))).String()
}

// Embedder converts text into a fixed-length float vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex stores embedded records and retrieves the nearest ones.
type VectorIndex interface {
	// Add upserts records into the index.
	Add(ctx context.Context, records []Record) error

	// Query returns the metadata of the topK records nearest to the
	// embedding, ranked by similarity. An empty index yields an empty
	// result, not an error.
	Query(ctx context.Context, embedding []float32, topK int) ([]RecordMetadata, error)
}

// Completer produces a chat completion for a single user prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
