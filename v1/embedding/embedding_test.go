package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestInferenceProvider_Embed(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Model string   `json:"model"`
		Input []string `json:"input"`
	}

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		// answer out of order on purpose
		_, _ = w.Write([]byte(`{"data":[
			{"index":1,"embedding":[0.5,0.25]},
			{"index":0,"embedding":[1,0]}
		]}`))
	})

	client, err := NewClient(&Config{
		Provider:     ProviderInference,
		Model:        "test-model",
		Dimension:    2,
		Endpoint:     srv.URL + "/",
		ServiceToken: "secret",
	})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	assert.Equal(t, []string{"a", "b"}, gotBody.Input)
	assert.Equal(t, [][]float32{{1, 0}, {0.5, 0.25}}, vectors)
}

func TestInferenceProvider_StatusError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	})

	client, err := NewClient(&Config{Model: "m", Endpoint: srv.URL, ServiceToken: "t"})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"a"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "slow down")
}

func TestInferenceProvider_CountMismatch(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[1]}]}`))
	})

	client, err := NewClient(&Config{Model: "m", Endpoint: srv.URL, ServiceToken: "t"})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"a", "b"})
	assert.ErrorContains(t, err, "got 1 embeddings for 2 texts")
}

func TestClient_DimensionCheck(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"index":0,"embedding":[1,2,3]}]}`))
	})

	client, err := NewClient(&Config{Model: "m", Dimension: 2, Endpoint: srv.URL, ServiceToken: "t"})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"a"})
	assert.ErrorContains(t, err, "dimension 3, want 2")
}

func TestClient_EmptyInput(t *testing.T) {
	client, err := NewClient(&Config{Model: "m", Endpoint: "http://unused", ServiceToken: "t"})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
	assert.NoError(t, client.Close())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing model", Config{Endpoint: "x", ServiceToken: "t"}, "EMBEDDING_MODEL"},
		{"missing endpoint", Config{Model: "m", ServiceToken: "t"}, "EMBEDDING_ENDPOINT"},
		{"missing token", Config{Model: "m", Endpoint: "x"}, "EMBEDDING_SERVICE_TOKEN"},
		{"gemini without key", Config{Provider: ProviderGemini, Model: "m"}, "GEMINI_API_KEY"},
		{"unknown provider", Config{Provider: "nope", Model: "m"}, "unknown provider"},
		{"negative dimension", Config{Model: "m", Dimension: -1, Endpoint: "x", ServiceToken: "t"}, "negative"},
		{"ok", Config{Model: "m", Endpoint: "x", ServiceToken: "t"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "")
	t.Setenv("EMBEDDING_MODEL", "text-embedding-004")
	t.Setenv("EMBEDDING_DIMENSION", "768")
	t.Setenv("EMBEDDING_HTTP_TIMEOUT_SECONDS", "bogus")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg := NewConfig()
	assert.Equal(t, ProviderInference, cfg.Provider)
	assert.Equal(t, "text-embedding-004", cfg.Model)
	assert.Equal(t, 768, cfg.Dimension)
	assert.Equal(t, 30, cfg.HTTPTimeoutS)
	assert.Equal(t, "g-key", cfg.APIKey)
}

func TestFunc(t *testing.T) {
	var e Embedder = Func(func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, s := range texts {
			out[i] = []float32{float32(len(s))}
		}
		return out, nil
	})

	vectors, err := e.Embed(context.Background(), []string{"ab", "abcd"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2}, {4}}, vectors)
}
