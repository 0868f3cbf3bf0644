package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fakenews-detector/internal/models"
)

// DefaultAnalyzeErrorMessage is used when a failed response carries no usable error field
const DefaultAnalyzeErrorMessage = "Failed to analyze news"

// RequestError is returned when the backend answers with a non-2xx status
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// ConnectivityError is returned when the backend could not be reached at all
type ConnectivityError struct {
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Cause)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// IsConnectivityError reports whether err came from a transport failure
func IsConnectivityError(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}

// AnalysisClient talks to the analysis backend over HTTP
type AnalysisClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAnalysisClient creates a client for the backend rooted at baseURL, e.g. http://localhost:3001/api
func NewAnalysisClient(baseURL string) *AnalysisClient {
	return &AnalysisClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the backend root this client targets
func (c *AnalysisClient) BaseURL() string {
	return c.baseURL
}

// Analyze submits text for analysis. The result of a 2xx response is returned as decoded.
func (c *AnalysisClient) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	body, err := json.Marshal(models.AnalyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Cause: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRequestError(resp.StatusCode, responseBody)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}

	return &result, nil
}

// Health calls the backend liveness endpoint
func (c *AnalysisClient) Health(ctx context.Context) (*models.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Cause: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newRequestError(resp.StatusCode, responseBody)
	}

	var health models.HealthResponse
	if err := json.Unmarshal(responseBody, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	return &health, nil
}

func newRequestError(statusCode int, body []byte) *RequestError {
	message := DefaultAnalyzeErrorMessage

	var errResp models.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		message = errResp.Error
	}

	return &RequestError{StatusCode: statusCode, Message: message}
}
