package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClientInterface performs a single chat-completion exchange with
// the remote model. Implementations do not retry; the returned envelope is
// the provider's response as decoded by the client library.
type CompletionClientInterface interface {
	CreateDailyPlanCompletion(ctx context.Context, prompt string) (openai.ChatCompletionResponse, error)
}

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds a client with a per-call timeout on the underlying
// HTTP client, so a stalled connection resolves to an error instead of
// hanging the request.
func NewOpenAIClient(apiKey string, timeout time.Duration) CompletionClientInterface {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAIClient) CreateDailyPlanCompletion(ctx context.Context, prompt string) (openai.ChatCompletionResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return openai.ChatCompletionResponse{}, fmt.Errorf("%w: %v", ErrCompletionService, err)
	}
	return resp, nil
}
