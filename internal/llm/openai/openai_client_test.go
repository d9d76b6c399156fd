package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewdesk/internal/config"
	"interviewdesk/internal/llm"
	"interviewdesk/internal/llm/openai"
)

const completionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "message": {"role": "assistant", "content": "| 类型 |\n| 大纲对应 |", "refusal": null},
    "logprobs": null,
    "finish_reason": "stop"
  }],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionJSON))
	}))
	defer server.Close()

	c := openai.NewClient(&config.ProviderConfig{
		APIKey:       "test-key",
		DefaultModel: "gpt-4o-mini",
		BaseURL:      server.URL,
	})

	out, err := c.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "| 类型 |\n| 大纲对应 |", out.Text)
	assert.Equal(t, "gpt-4o-mini", out.Model)
	assert.Equal(t, "openai", out.Provider)
}

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit","code":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	c := openai.NewClient(&config.ProviderConfig{APIKey: "k", BaseURL: server.URL})

	_, err := c.Complete(context.Background(), "prompt")

	var rlErr *llm.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, 7*time.Second, rlErr.RetryAfter)
	assert.Equal(t, 429, llm.StatusCode(err))
}

func TestClient_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	c := openai.NewClient(&config.ProviderConfig{APIKey: "k", BaseURL: server.URL})

	_, err := c.Complete(context.Background(), "prompt")

	var se *llm.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 400, se.StatusCode)
	assert.False(t, se.Temporary())
}
