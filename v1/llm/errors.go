package llm

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var (
	// ErrAPIKeyNotFound is returned by NewGeminiCompleter when no API key is configured.
	ErrAPIKeyNotFound = errors.New("llm: API key not found")

	// ErrAuthentication wraps provider answers with status 401 or 403.
	ErrAuthentication = errors.New("llm: authentication failed")

	// ErrRateLimit wraps provider answers with status 429.
	ErrRateLimit = errors.New("llm: rate limit exceeded")

	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("llm: empty response")

	// ErrNoMessages is returned when the conversation has no user or assistant turn.
	ErrNoMessages = errors.New("llm: no messages")
)

// IsAuthenticationError reports whether err was caused by rejected credentials.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsRateLimitError reports whether err was caused by the provider throttling requests.
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

// classifyError maps provider status codes onto the package sentinels. The
// original error stays in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimit, err)
	default:
		return fmt.Errorf("llm: generate content: %w", err)
	}
}
