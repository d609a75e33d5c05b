package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	reply    string
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.reply, genai.RoleModel),
		}},
	}, nil
}

func TestComplete_MergesDefaults(t *testing.T) {
	gen := &fakeGenerator{reply: "  42  "}
	c := &GeminiCompleter{models: gen, defaults: DefaultParams()}

	reply, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "earlier answer"},
		{Role: RoleUser, Content: "follow up"},
	}, Params{MaxOutputTokens: 50})
	require.NoError(t, err)

	assert.Equal(t, "42", reply)
	assert.Equal(t, DefaultModel, gen.model)
	require.Len(t, gen.contents, 3)
	assert.Equal(t, genai.RoleModel, gen.contents[1].Role)
	assert.Equal(t, int32(50), gen.config.MaxOutputTokens)
	require.NotNil(t, gen.config.Temperature)
	assert.Equal(t, float32(0), *gen.config.Temperature)
	require.NotNil(t, gen.config.TopP)
	assert.Equal(t, float32(1), *gen.config.TopP)
	require.NotNil(t, gen.config.SystemInstruction)
	assert.Equal(t, "be brief", gen.config.SystemInstruction.Parts[0].Text)
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		target error
	}{
		{"unauthorized", 401, ErrAuthentication},
		{"forbidden", 403, ErrAuthentication},
		{"rate limited", 429, ErrRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{err: genai.APIError{Code: tt.code, Message: "nope"}}
			c := &GeminiCompleter{models: gen, defaults: DefaultParams()}

			_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, Params{})
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("other errors are wrapped unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		c := &GeminiCompleter{models: &fakeGenerator{err: boom}, defaults: DefaultParams()}

		_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, Params{})
		assert.ErrorIs(t, err, boom)
		assert.False(t, IsAuthenticationError(err))
		assert.False(t, IsRateLimitError(err))
	})
}

func TestComplete_NoMessages(t *testing.T) {
	c := &GeminiCompleter{models: &fakeGenerator{}, defaults: DefaultParams()}

	_, err := c.Complete(context.Background(), nil, Params{})
	assert.ErrorIs(t, err, ErrNoMessages)

	_, err = c.Complete(context.Background(), []Message{{Role: RoleSystem, Content: "x"}}, Params{})
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestComplete_EmptyReply(t *testing.T) {
	c := &GeminiCompleter{models: &fakeGenerator{reply: "   "}, defaults: DefaultParams()}

	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, Params{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewGeminiCompleter_MissingKey(t *testing.T) {
	_, err := NewGeminiCompleter(context.Background(), DefaultConfig())
	assert.ErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestParamsMerge(t *testing.T) {
	temp := float32(0.7)
	p := Params{Model: "custom", Temperature: &temp}.Merge(DefaultParams())

	assert.Equal(t, "custom", p.Model)
	assert.Equal(t, float32(0.7), *p.Temperature)
	assert.Equal(t, int32(1000), p.MaxOutputTokens)
	assert.Equal(t, float32(1), *p.TopP)
}
