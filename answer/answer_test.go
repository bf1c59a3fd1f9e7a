package answer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/askweb"
	"github.com/fwojciec/askweb/answer"
	"github.com/fwojciec/askweb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Answer(t *testing.T) {
	t.Parallel()

	t.Run("builds a prompt with the retrieved text and source", func(t *testing.T) {
		t.Parallel()

		var prompt string
		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return []float32{0.1, 0.2}, nil
				},
			},
			Index: &mock.VectorIndex{
				QueryFn: func(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
					return []askweb.RecordMetadata{{
						URL:  "https://x/y",
						Body: "ChromaDB is a vector store",
					}}, nil
				},
			},
			Completer: &mock.Completer{
				CompleteFn: func(ctx context.Context, p string) (string, error) {
					prompt = p
					return "It is a vector store.", nil
				},
			},
		}

		got, err := p.Answer(context.Background(), "What is ChromaDB?")
		require.NoError(t, err)

		assert.Equal(t, "It is a vector store.", got)
		assert.Contains(t, prompt, "ChromaDB is a vector store")
		assert.Contains(t, prompt, "https://x/y")
		assert.Contains(t, prompt, "What is ChromaDB?")
	})

	t.Run("empty index yields not found, not an error crash", func(t *testing.T) {
		t.Parallel()

		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return []float32{0.1}, nil
				},
			},
			Index: &mock.VectorIndex{
				QueryFn: func(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
					return nil, nil
				},
			},
		}

		_, err := p.Answer(context.Background(), "anything?")
		require.Error(t, err)
		assert.Equal(t, askweb.ENOTFOUND, askweb.ErrorCode(err))
	})

	t.Run("rejects blank questions", func(t *testing.T) {
		t.Parallel()

		p := &answer.Pipeline{}

		_, err := p.Answer(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, askweb.EINVALID, askweb.ErrorCode(err))
	})

	t.Run("embedding failure stops the pipeline", func(t *testing.T) {
		t.Parallel()

		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("service down")
				},
			},
		}

		_, err := p.Answer(context.Background(), "anything?")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embed question")
	})

	t.Run("empty embedding stops the pipeline", func(t *testing.T) {
		t.Parallel()

		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return nil, nil
				},
			},
		}

		_, err := p.Answer(context.Background(), "anything?")
		require.Error(t, err)
		assert.Equal(t, askweb.EINTERNAL, askweb.ErrorCode(err))
	})

	t.Run("top-k defaults to one", func(t *testing.T) {
		t.Parallel()

		var gotTopK int
		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return []float32{0.1}, nil
				},
			},
			Index: &mock.VectorIndex{
				QueryFn: func(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
					gotTopK = topK
					return nil, nil
				},
			},
		}

		_, _ = p.Answer(context.Background(), "anything?")
		assert.Equal(t, 1, gotTopK)
	})

	t.Run("completion failure is reported", func(t *testing.T) {
		t.Parallel()

		p := &answer.Pipeline{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return []float32{0.1}, nil
				},
			},
			Index: &mock.VectorIndex{
				QueryFn: func(ctx context.Context, embedding []float32, topK int) ([]askweb.RecordMetadata, error) {
					return []askweb.RecordMetadata{{URL: "https://x", Body: "text"}}, nil
				},
			},
			Completer: &mock.Completer{
				CompleteFn: func(ctx context.Context, prompt string) (string, error) {
					return "", errors.New("model overloaded")
				},
			},
		}

		_, err := p.Answer(context.Background(), "anything?")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "completion")
	})
}

func TestBuildPrompt_drops_blank_values(t *testing.T) {
	t.Parallel()

	prompt := answer.BuildPrompt("q?", []askweb.RecordMetadata{
		{URL: "  ", Body: "kept text"},
		{URL: "https://x/a", Body: "\n"},
	})

	assert.Contains(t, prompt, "Context:\nkept text\n")
	assert.Contains(t, prompt, "Sources:\nhttps://x/a\n")
}
