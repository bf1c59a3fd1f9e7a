// Package answer provides the retrieval-and-answer pipeline. It embeds a
// question, looks up the nearest records in the vector index, and asks the
// completion service to answer from the retrieved text.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/askweb"
)

// DefaultTopK is the number of records retrieved per question.
const DefaultTopK = 1

// Pipeline answers natural language questions against the ingested site.
type Pipeline struct {
	Embedder  askweb.Embedder
	Index     askweb.VectorIndex
	Completer askweb.Completer

	// TopK is the number of nearest records retrieved per question.
	// Defaults to DefaultTopK.
	TopK int
}

// Answer answers a natural language question from the index.
// Returns ENOTFOUND if the index holds nothing relevant.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", askweb.Errorf(askweb.EINVALID, "question required")
	}

	embedding, err := p.Embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}
	if len(embedding) == 0 {
		return "", askweb.Errorf(askweb.EINTERNAL, "embedding service returned an empty vector")
	}

	topK := p.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	matches, err := p.Index.Query(ctx, embedding, topK)
	if err != nil {
		return "", fmt.Errorf("query index: %w", err)
	}
	if len(matches) == 0 {
		return "", askweb.Errorf(askweb.ENOTFOUND, "no relevant data found, ingest a site first")
	}

	answer, err := p.Completer.Complete(ctx, BuildPrompt(question, matches))
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return answer, nil
}

// BuildPrompt assembles the completion prompt from the question and the
// retrieved records. Blank bodies and URLs are dropped; the retrieved
// text and sources are embedded verbatim.
func BuildPrompt(question string, matches []askweb.RecordMetadata) string {
	var urls, bodies []string
	for _, m := range matches {
		if u := strings.TrimSpace(m.URL); u != "" {
			urls = append(urls, u)
		}
		if b := strings.TrimSpace(m.Body); b != "" {
			bodies = append(bodies, b)
		}
	}

	var sb strings.Builder
	sb.WriteString("Answer the question using only the context below.\n\n")
	sb.WriteString("Context:\n")
	sb.WriteString(strings.Join(bodies, "\n\n"))
	sb.WriteString("\n\nSources:\n")
	sb.WriteString(strings.Join(urls, "\n"))
	fmt.Fprintf(&sb, "\n\nQuestion: %s", question)
	return sb.String()
}
