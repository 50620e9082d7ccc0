package completion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"herbwise/config"
	"herbwise/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Assistant = config.AssistantConfig{
		Endpoint:        server.URL,
		Model:           "gemini-1.5-pro",
		APIKey:          "test-key",
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}

	return NewGeminiClient(cfg).(*GeminiClient)
}

func TestGeminiClient_Complete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-1.5-pro:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Turmeric helps with inflammation."}]}}]}`))
	})

	text, err := client.Complete(context.Background(), "turmeric?")
	require.NoError(t, err)
	assert.Equal(t, "Turmeric helps with inflammation.", text)
}

func TestGeminiClient_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, service.ErrRateLimited)
}

func TestGeminiClient_QuotaExceeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"You exceeded your current quota","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, service.ErrQuotaExceeded)
}

func TestGeminiClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, service.ErrUnavailable)
}

func TestGeminiClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, service.ErrMalformedResponse)
}

func TestGeminiClient_NetworkError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Assistant = config.AssistantConfig{
		Endpoint: "http://127.0.0.1:1",
		Model:    "gemini-1.5-pro",
	}
	client := NewGeminiClient(cfg).(*GeminiClient)

	_, err := client.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, service.ErrNetwork)
}
