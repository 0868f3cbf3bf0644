package agents

import (
	"context"
	"strings"
	"time"

	"fakenews-detector/internal/logger"

	"github.com/sirupsen/logrus"
)

// BaseAgent provides common functionality for all AI agents
type BaseAgent struct {
	name   string
	logger *logrus.Logger
}

// NewBaseAgent creates a new base agent
func NewBaseAgent(name string) *BaseAgent {
	return &BaseAgent{
		name:   name,
		logger: logger.Log,
	}
}

// Name returns the agent's name
func (b *BaseAgent) Name() string {
	return b.name
}

// LogStart logs the beginning of agent processing
func (b *BaseAgent) LogStart(ctx context.Context, content string) {
	b.logger.WithFields(map[string]interface{}{
		"agent":          b.name,
		"correlation_id": logger.CorrelationIDFromContext(ctx),
		"content_length": len(content),
		"word_count":     len(strings.Fields(content)),
	}).Info("Agent processing started")
}

// LogSuccess logs successful completion of agent processing
func (b *BaseAgent) LogSuccess(ctx context.Context, verdict *Verdict, duration time.Duration) {
	b.logger.WithFields(map[string]interface{}{
		"agent":          b.name,
		"correlation_id": logger.CorrelationIDFromContext(ctx),
		"duration_ms":    duration.Milliseconds(),
		"source":         verdict.Source.String(),
		"is_fake":        verdict.Result.IsFake,
		"confidence":     float64(verdict.Result.Confidence),
		"score":          float64(verdict.Result.Score),
		"reasons_count":  len(verdict.Result.Reasons),
	}).Info("Agent processing completed successfully")
}

// LogFallback logs a model response that could not be decoded
func (b *BaseAgent) LogFallback(ctx context.Context, rawResponse string) {
	b.logger.WithFields(map[string]interface{}{
		"agent":          b.name,
		"correlation_id": logger.CorrelationIDFromContext(ctx),
		"raw_response":   b.TruncateForLog(rawResponse, 500),
		"raw_length":     len(rawResponse),
	}).Warn("Failed to parse model response, using fallback verdict")
}

// LogError logs agent processing errors
func (b *BaseAgent) LogError(ctx context.Context, err error, duration time.Duration) {
	logger.LogErrorWithStackAndCorrelation(err, logger.CorrelationIDFromContext(ctx), map[string]interface{}{
		"agent":       b.name,
		"duration_ms": duration.Milliseconds(),
		"operation":   "agent_processing",
	})
}

// ValidateContent rejects content that is empty after trimming whitespace
func (b *BaseAgent) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewInvalidInputError(TextRequiredMessage)
	}
	return nil
}

// TruncateForLog truncates text for logging to avoid overly long log messages
func (b *BaseAgent) TruncateForLog(text string, maxLength int) string {
	return logger.Truncate(text, maxLength)
}
