package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fakenews-detector/internal/config"
	"fakenews-detector/internal/logger"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiClient handles communication with the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *logrus.Logger
}

// GeminiOption customises the underlying genai client
type GeminiOption func(*genai.ClientConfig)

// WithGeminiBaseURL points the client at a different API host
func WithGeminiBaseURL(baseURL string) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = baseURL
	}
}

// WithGeminiHTTPClient replaces the HTTP client used for API calls
func WithGeminiHTTPClient(httpClient *http.Client) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPClient = httpClient
	}
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(ctx context.Context, cfg *config.Config, opts ...GeminiOption) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger.Log,
	}, nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.model
}

// GenerateText makes a single generateContent call and returns the response text
func (c *GeminiClient) GenerateText(ctx context.Context, agentName, prompt string) (string, error) {
	start := time.Now()
	correlationID := logger.CorrelationIDFromContext(ctx)

	c.logger.WithFields(map[string]interface{}{
		"agent":          agentName,
		"correlation_id": correlationID,
		"model":          c.model,
		"prompt_length":  len(prompt),
	}).Info("Making Gemini API call")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini returned no candidates (blocked: %s)", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini returned no candidates")
	}

	responseText := resp.Text()

	fields := map[string]interface{}{
		"agent":           agentName,
		"correlation_id":  correlationID,
		"duration_ms":     time.Since(start).Milliseconds(),
		"response_length": len(responseText),
	}
	if resp.UsageMetadata != nil {
		fields["input_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["output_tokens"] = resp.UsageMetadata.CandidatesTokenCount
	}
	c.logger.WithFields(fields).Info("Gemini API response received")

	return responseText, nil
}
