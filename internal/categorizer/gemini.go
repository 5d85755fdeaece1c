package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiFallback proposes a category for descriptions the keyword table
// left uncategorized. It is opt-in, applied after Categorize by the CLI
// layer, and only ever answers with a declared category name: anything else
// degrades to the default category.
type GeminiFallback struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiFallback creates a fallback backed by the given Gemini model.
func NewGeminiFallback(ctx context.Context, apiKey, model string) (*GeminiFallback, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiFallback{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

// Close releases the underlying client.
func (g *GeminiFallback) Close() error {
	return g.client.Close()
}

// Suggest asks the model to pick one of the declared categories for the
// description. The answer must be one of the candidates verbatim (matched
// case-insensitively); otherwise the default category is returned.
func (g *GeminiFallback) Suggest(ctx context.Context, description string, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following bank transaction description:
%s

Answer with exactly one of the following category names and nothing else:
%s`, description, strings.Join(categories, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	for _, c := range categories {
		if strings.EqualFold(answer, c) {
			return c, nil
		}
	}

	log.WithField("answer", answer).Debug("Gemini answered outside the declared categories")
	return "", fmt.Errorf("gemini answer %q is not a declared category", answer)
}
