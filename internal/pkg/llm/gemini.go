package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient generates structured lesson content (sections, quizzes,
// sandboxes) in JSON mode.
type GeminiClient struct {
	Model  string
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		Model:  model,
		client: client,
	}, nil
}

// GenerateJSON sends the prompt and returns the model's JSON text. Callers
// still strip code fences defensively before unmarshalling.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.4),
			TopP:             genai.Ptr[float32](0.95),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return text, nil
}
