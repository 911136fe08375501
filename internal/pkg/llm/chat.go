package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient talks to an OpenAI-compatible chat endpoint. It drives the
// teach-it-back kid persona and its evaluator.
type ChatClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewChatClient(apiKey string, model string, baseURL string) *ChatClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &ChatClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// GenerateJSON requests a JSON-object response for evaluator calls.
func (c *ChatClient) GenerateJSON(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    messages,
			Temperature: 0.3,
			TopP:        0.95,
			MaxTokens:   2048,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return text, nil
}

// GenerateChatResponse generates a plain text reply for the kid persona (no
// JSON formatting).
func (c *ChatClient) GenerateChatResponse(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    messages,
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   2048,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return text, nil
}
