package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// generator is the subset of *genai.Models used by the completer.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiCompleter implements Completer on top of the Gemini API.
type GeminiCompleter struct {
	models   generator
	defaults Params
}

var _ Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter creates a completer. It fails with ErrAPIKeyNotFound
// when cfg carries no API key.
func NewGeminiCompleter(ctx context.Context, cfg *Config) (*GeminiCompleter, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrAPIKeyNotFound
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiCompleter{
		models:   c.Models,
		defaults: cfg.Defaults.Merge(DefaultParams()),
	}, nil
}

// Complete sends the conversation and returns the reply text. System
// messages become the system instruction; assistant messages are sent with
// the model role.
func (g *GeminiCompleter) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}

	p := params.Merge(g.defaults)
	contents, system := toContents(messages)
	if len(contents) == 0 {
		return "", fmt.Errorf("%w: only system messages given", ErrNoMessages)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     p.Temperature,
		TopP:            p.TopP,
		MaxOutputTokens: p.MaxOutputTokens,
		StopSequences:   p.Stop,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.models.GenerateContent(ctx, p.Model, contents, cfg)
	if err != nil {
		return "", classifyError(err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	txt := strings.TrimSpace(resp.Text())
	if txt == "" {
		return "", ErrEmptyResponse
	}
	return txt, nil
}

func toContents(messages []Message) ([]*genai.Content, string) {
	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents, strings.Join(system, "\n")
}
