package llm

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a Completer backed by Gemini. A *Config must be
// supplied by the application, for example with fx.Supply(llm.NewConfigFromEnv()).
var FXModule = fx.Module("llm",
	fx.Provide(
		func(cfg *Config) (*GeminiCompleter, error) {
			return NewGeminiCompleter(context.Background(), cfg)
		},
		func(c *GeminiCompleter) Completer { return c },
	),
)
