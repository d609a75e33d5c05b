package llm

import "context"

// Role of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Params tunes a completion call. Zero fields are filled from the
// completer's defaults, so a caller only sets what it wants to override.
type Params struct {
	Model           string   `yaml:"model" json:"model,omitempty"`
	Temperature     *float32 `yaml:"temperature" json:"temperature,omitempty"`
	MaxOutputTokens int32    `yaml:"max_output_tokens" json:"max_output_tokens,omitempty"`
	TopP            *float32 `yaml:"top_p" json:"top_p,omitempty"`
	Stop            []string `yaml:"stop" json:"stop,omitempty"`
}

// DefaultParams returns the parameters used when the caller sets nothing.
func DefaultParams() Params {
	return Params{
		Model:           DefaultModel,
		Temperature:     ptr(float32(0)),
		MaxOutputTokens: 1000,
		TopP:            ptr(float32(1)),
	}
}

// Merge returns p with every unset field taken from defaults.
func (p Params) Merge(defaults Params) Params {
	out := p
	if out.Model == "" {
		out.Model = defaults.Model
	}
	if out.Temperature == nil {
		out.Temperature = defaults.Temperature
	}
	if out.MaxOutputTokens == 0 {
		out.MaxOutputTokens = defaults.MaxOutputTokens
	}
	if out.TopP == nil {
		out.TopP = defaults.TopP
	}
	if out.Stop == nil {
		out.Stop = defaults.Stop
	}
	return out
}

// Completer produces the assistant reply for a conversation.
type Completer interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}

func ptr[T any](v T) *T {
	return &v
}
