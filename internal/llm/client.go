// Package llm provides the text-generation gateway used by the analysis pipeline.
package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over the text-generation provider.
type Client interface {
	// Generate issues one synchronous text-generation call with a caller-chosen
	// output bound. A reply that carries no textual content returns the empty
	// string, not an error; callers substitute their own placeholder for it.
	Generate(ctx context.Context, prompt string, maxOutputTokens int32) (string, error)
	// GenerateJSON is Generate with the provider's JSON response mode enabled.
	// Markdown code fences around the payload are stripped.
	GenerateJSON(ctx context.Context, prompt string, maxOutputTokens int32) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client. A missing API key is a
// configuration error, raised here before any request is made.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ConfigurationError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate issues one text-generation call. Transport failures and non-success
// upstream statuses both surface as a single GenerationError kind; the gateway
// never retries.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, maxOutputTokens int32) (string, error) {
	model := c.model(maxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "generation request failed", Cause: err}
	}

	return extractTextFromResponse(resp), nil
}

// GenerateJSON issues one text-generation call with JSON response mode enabled.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, maxOutputTokens int32) (string, error) {
	model := c.model(maxOutputTokens)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "generation request failed", Cause: err}
	}

	return CleanJSONBlock(extractTextFromResponse(resp)), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) model(maxOutputTokens int32) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	if maxOutputTokens > 0 {
		model.SetMaxOutputTokens(maxOutputTokens)
	}
	return model
}

// extractTextFromResponse extracts the first textual content of a Gemini
// response. An empty result is the expected degenerate case when the model
// returns no text parts.
func extractTextFromResponse(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	return strings.Join(parts, "")
}
