// Package gemini provides embedding and completion services backed by
// the Gemini API.
package gemini

import (
	"context"

	"github.com/fwojciec/askweb"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the embedding model used when none is set.
const DefaultEmbeddingModel = "gemini-embedding-001"

// Ensure Embedder implements askweb.Embedder at compile time.
var _ askweb.Embedder = (*Embedder)(nil)

// Embedder implements askweb.Embedder using the Gemini embedding API.
// The design always requests exactly one input and reads exactly one
// output vector.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// Embed converts text into a fixed-length float vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, askweb.Errorf(askweb.EINVALID, "text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, askweb.Errorf(askweb.EINTERNAL, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}
