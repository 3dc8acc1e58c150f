package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Start with the morning run.  "}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	text, err := client.Complete(context.Background(), "What first?")
	assert.NoError(t, err)
	assert.Equal(t, "Start with the morning run.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Complete(context.Background(), "What first?")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Complete(context.Background(), "What first?")
	assert.Error(t, err)
}

func TestCompleteWithoutKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	assert.False(t, client.Enabled())

	_, err := client.Complete(context.Background(), "What first?")
	assert.Error(t, err)
	assert.Zero(t, calls, "a client without credentials must not call out")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultTimeout, client.client.Timeout)
	assert.True(t, client.Enabled())
}

func TestCompleteBreakerOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := client.Complete(context.Background(), "What first?")
		assert.Error(t, err)
	}
	assert.Equal(t, breakerFailureThreshold, calls)

	_, err := client.Complete(context.Background(), "What first?")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, breakerFailureThreshold, calls, "an open breaker must not call out")
}

func TestCompleteBreakerRecovers(t *testing.T) {
	healthy := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Back online."}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
	client.breaker.cooldown = 0

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := client.Complete(context.Background(), "What first?")
		assert.Error(t, err)
	}

	healthy = true
	text, err := client.Complete(context.Background(), "What first?")
	assert.NoError(t, err)
	assert.Equal(t, "Back online.", text)
}
