package embedding

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported providers.
const (
	ProviderInference = "inference"
	ProviderGemini    = "gemini"
)

// Config selects and configures the embedding provider.
//
// EMBEDDING_ENDPOINT must point to the root of the OpenAI-compatible inference
// service (no /embeddings appended). The provider appends paths itself.
type Config struct {
	// Provider is "inference" (default) or "gemini".
	Provider string `yaml:"provider" env:"EMBEDDING_PROVIDER"`

	// Model is the embedding model name passed to the provider.
	Model string `yaml:"model" env:"EMBEDDING_MODEL"`

	// Dimension, if set, is requested from providers that support output
	// truncation and checked against every returned vector.
	Dimension int `yaml:"dimension" env:"EMBEDDING_DIMENSION"`

	// Inference endpoint and auth
	Endpoint     string `yaml:"endpoint" env:"EMBEDDING_ENDPOINT"`
	ServiceToken string `yaml:"service_token" env:"EMBEDDING_SERVICE_TOKEN"`
	HTTPTimeoutS int    `yaml:"http_timeout_seconds" env:"EMBEDDING_HTTP_TIMEOUT_SECONDS"`

	// APIKey authenticates against the Gemini API.
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
}

// NewConfig reads from environment variables, loading a .env file first if
// one exists.
func NewConfig() *Config {
	_ = godotenv.Load()

	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	dim := 0
	if v := os.Getenv("EMBEDDING_DIMENSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dim = n
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	provider := os.Getenv("EMBEDDING_PROVIDER")
	if provider == "" {
		provider = ProviderInference
	}

	return &Config{
		Provider:     provider,
		Model:        os.Getenv("EMBEDDING_MODEL"),
		Dimension:    dim,
		Endpoint:     os.Getenv("EMBEDDING_ENDPOINT"),
		ServiceToken: os.Getenv("EMBEDDING_SERVICE_TOKEN"),
		HTTPTimeoutS: timeout,
		APIKey:       apiKey,
	}
}

// Validate ensures required fields are present for the selected provider.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	if c.Dimension < 0 {
		return fmt.Errorf("embedding: EMBEDDING_DIMENSION must not be negative")
	}

	switch c.Provider {
	case ProviderInference, "":
		if c.Endpoint == "" {
			return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
		}
		if c.ServiceToken == "" {
			return fmt.Errorf("embedding: missing EMBEDDING_SERVICE_TOKEN")
		}
	case ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("embedding: missing GEMINI_API_KEY or GOOGLE_API_KEY")
		}
	default:
		return fmt.Errorf("embedding: unknown provider %q", c.Provider)
	}
	return nil
}
