// Package embedding computes dense text embeddings for the vector store.
//
// # Overview
//
// The package exposes the Embedder interface:
//
//	Embed(ctx, texts []string) ([][]float32, error)
//
// which returns one vector per input text, in input order. Func adapts a
// plain function to the interface, which is handy for tests and for plugging
// in custom models.
//
// Client is the configured implementation. It delegates to one of two
// providers selected by Config.Provider:
//
//   - "inference": an OpenAI-compatible service, called with
//     POST {EMBEDDING_ENDPOINT}/embeddings and a bearer service token.
//     All texts are sent in one request.
//   - "gemini": the Gemini API through google.golang.org/genai. All texts are
//     sent as separate contents of one EmbedContent call.
//
// When Config.Dimension is set, Client rejects vectors of any other length
// and the Gemini provider requests that output dimensionality.
//
// # Configuration
//
// NewConfig reads the environment, loading a .env file first if present:
//
//	EMBEDDING_PROVIDER               inference | gemini (default inference)
//	EMBEDDING_MODEL                  model name (required)
//	EMBEDDING_DIMENSION              expected vector length (optional)
//	EMBEDDING_ENDPOINT               inference base URL
//	EMBEDDING_SERVICE_TOKEN          inference bearer token
//	EMBEDDING_HTTP_TIMEOUT_SECONDS   default 30
//	GEMINI_API_KEY / GOOGLE_API_KEY  Gemini credentials
//
// # Errors
//
// Non-2xx answers from the inference service are returned as *StatusError so
// callers can inspect the status code with errors.As.
//
// # Fx
//
// FXModule provides *Config, *Client and Embedder, and closes the client on
// shutdown.
package embedding
