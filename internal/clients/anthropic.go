package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fakenews-detector/internal/config"
	"fakenews-detector/internal/logger"

	"github.com/sirupsen/logrus"
)

// AnthropicClient handles communication with the Anthropic API
type AnthropicClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// AnthropicRequest represents a request to the Anthropic API
type AnthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []AnthropicMessage `json:"messages"`
}

// AnthropicMessage represents a message in the conversation
type AnthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnthropicResponse represents a response from the Anthropic API
type AnthropicResponse struct {
	ID      string             `json:"id"`
	Type    string             `json:"type"`
	Role    string             `json:"role"`
	Content []AnthropicContent `json:"content"`
	Model   string             `json:"model"`
	Usage   AnthropicUsage     `json:"usage"`
}

// AnthropicContent represents content in the response
type AnthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AnthropicUsage represents token usage information
type AnthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// AnthropicError represents an error response from the API
type AnthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *AnthropicError) Error() string {
	return fmt.Sprintf("anthropic API error (%s): %s", e.Type, e.Message)
}

// anthropicErrorEnvelope is the body shape of non-200 responses
type anthropicErrorEnvelope struct {
	Type  string         `json:"type"`
	Error AnthropicError `json:"error"`
}

// NewAnthropicClient creates a new Anthropic API client
func NewAnthropicClient(cfg *config.Config) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     cfg.AnthropicAPIKey,
		model:      cfg.ClaudeModel,
		baseURL:    "https://api.anthropic.com/v1/messages",
		httpClient: &http.Client{},
		logger:     logger.Log,
	}
}

// Model returns the configured model name
func (c *AnthropicClient) Model() string {
	return c.model
}

// GenerateText makes a single Messages API request
func (c *AnthropicClient) GenerateText(ctx context.Context, agentName, prompt string) (string, error) {
	start := time.Now()
	correlationID := logger.CorrelationIDFromContext(ctx)

	c.logger.WithFields(map[string]interface{}{
		"agent":          agentName,
		"correlation_id": correlationID,
		"model":          c.model,
		"prompt_length":  len(prompt),
	}).Info("Making Anthropic API call")

	requestBody, err := json.Marshal(c.buildAnthropicRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := c.prepareHTTPRequest(ctx, requestBody)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer response.Body.Close()

	responseText, anthropicResp, err := c.parseAnthropicResponse(response)
	if err != nil {
		return "", err
	}

	c.logger.WithFields(map[string]interface{}{
		"agent":           agentName,
		"correlation_id":  correlationID,
		"duration_ms":     time.Since(start).Milliseconds(),
		"response_length": len(responseText),
		"input_tokens":    anthropicResp.Usage.InputTokens,
		"output_tokens":   anthropicResp.Usage.OutputTokens,
	}).Info("Anthropic API response received")

	return responseText, nil
}

// buildAnthropicRequest constructs the request payload for the Anthropic API
func (c *AnthropicClient) buildAnthropicRequest(prompt string) AnthropicRequest {
	return AnthropicRequest{
		Model:       c.model,
		MaxTokens:   2000,
		Temperature: 0.1,
		Messages: []AnthropicMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}
}

// prepareHTTPRequest creates and configures the HTTP request
func (c *AnthropicClient) prepareHTTPRequest(ctx context.Context, requestBody []byte) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	return httpReq, nil
}

// parseAnthropicResponse extracts the text blocks of a response
func (c *AnthropicClient) parseAnthropicResponse(response *http.Response) (string, *AnthropicResponse, error) {
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		var envelope anthropicErrorEnvelope
		if json.Unmarshal(responseBody, &envelope) == nil && envelope.Error.Message != "" {
			return "", nil, fmt.Errorf("API error (status %d): %w", response.StatusCode, &envelope.Error)
		}
		return "", nil, fmt.Errorf("unknown API error (status %d)", response.StatusCode)
	}

	var anthropicResp AnthropicResponse
	if err := json.Unmarshal(responseBody, &anthropicResp); err != nil {
		return "", nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(anthropicResp.Content) == 0 {
		return "", nil, fmt.Errorf("empty response content")
	}

	var text strings.Builder
	for _, block := range anthropicResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return text.String(), &anthropicResp, nil
}
