package services

import (
	"context"
	"strings"
	"time"

	"fakenews-detector/internal/agents"
	"fakenews-detector/internal/config"
	"fakenews-detector/internal/logger"
	"fakenews-detector/internal/models"
)

// AnalysisServiceInterface defines the interface for analysis service operations
type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, text string, correlationID string) (*models.AnalysisResult, error)
}

// AnalysisService validates requests and runs the detector agent
type AnalysisService struct {
	config *config.Config
	agent  agents.Agent
}

// NewAnalysisService creates the service. agent may be nil when no upstream
// credential is configured; every analysis then fails as misconfigured.
func NewAnalysisService(cfg *config.Config, agent agents.Agent) *AnalysisService {
	return &AnalysisService{
		config: cfg,
		agent:  agent,
	}
}

// Analyze checks the text, then the configuration, then makes one upstream call.
// Neither validation failure reaches the model.
func (s *AnalysisService) Analyze(ctx context.Context, text string, correlationID string) (*models.AnalysisResult, error) {
	log := logger.WithCorrelationID(correlationID)
	ctx = logger.ContextWithCorrelationID(ctx, correlationID)
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		log.Warn("Analysis rejected: text is empty")
		return nil, agents.NewInvalidInputError(agents.TextRequiredMessage)
	}

	if !s.config.UpstreamConfigured() || s.agent == nil {
		err := agents.NewMisconfiguredError(s.config.KeyEnvName(), s.config.ProviderName())
		logger.LogErrorWithStackAndCorrelation(err, correlationID, map[string]interface{}{
			"operation": "analyze_news",
			"provider":  s.config.Provider,
			"setting":   err.Setting,
		})
		return nil, err
	}

	verdict, err := s.agent.Process(ctx, text)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"source":      verdict.Source.String(),
		"is_fake":     verdict.Result.IsFake,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Analysis completed")

	result := verdict.Result
	return &result, nil
}
