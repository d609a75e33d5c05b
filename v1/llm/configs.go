package llm

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultModel is the chat model used when neither config nor params name one.
const DefaultModel = "gemini-2.5-flash"

// Config holds the credentials and default parameters of the completer.
type Config struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`

	// Defaults applied to every call before the caller's Params.
	Defaults Params `yaml:"defaults"`
}

// DefaultConfig returns a Config without credentials.
func DefaultConfig() *Config {
	return &Config{Defaults: DefaultParams()}
}

// WithAPIKey sets the API key.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithModel sets the default model.
func (c *Config) WithModel(model string) *Config {
	c.Defaults.Model = model
	return c
}

// NewConfigFromEnv loads an optional .env file and reads GEMINI_API_KEY,
// falling back to GOOGLE_API_KEY. LLM_MODEL overrides the default model.
func NewConfigFromEnv() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if m := os.Getenv("LLM_MODEL"); m != "" {
		cfg.Defaults.Model = m
	}
	return cfg
}
