package gemini

import (
	"context"

	"github.com/fwojciec/askweb"
	"google.golang.org/genai"
)

// DefaultCompletionModel is the chat model used when none is set.
const DefaultCompletionModel = "gemini-2.5-flash"

// Ensure Completer implements askweb.Completer at compile time.
var _ askweb.Completer = (*Completer)(nil)

// Completer implements askweb.Completer using Gemini chat completions.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects
// DefaultCompletionModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultCompletionModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends the prompt as a single user turn and returns the
// response text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", askweb.Errorf(askweb.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", askweb.Errorf(askweb.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about the content of a website. Answer based only on the context provided. If the answer is not in the context, say so.",
			}},
		},
		Temperature: &temp,
	}
}
