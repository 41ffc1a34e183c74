package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (CompletionClientInterface, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-api-key")
	cfg.BaseURL = server.URL + "/v1"
	cfg.HTTPClient = &http.Client{Timeout: time.Second}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}, server
}

func TestCreateDailyPlanCompletionWireContract(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	var authHeader string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"scheduleId\": \"abc\"}"}}]}`))
	}))

	resp, err := client.CreateDailyPlanCompletion(context.Background(), "distribute these places")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-api-key", authHeader)
	assert.Equal(t, "gpt-4o", captured.Model)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "distribute these places", captured.Messages[0].Content)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)

	require.Len(t, resp.Choices, 1)
	assert.Equal(t, `{"scheduleId": "abc"}`, resp.Choices[0].Message.Content)
}

func TestCreateDailyPlanCompletionServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream unavailable"}}`))
	}))

	_, err := client.CreateDailyPlanCompletion(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrCompletionService)
}

func TestCreateDailyPlanCompletionTimeout(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))

	_, err := client.CreateDailyPlanCompletion(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrCompletionService)
}
