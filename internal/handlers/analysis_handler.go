package handlers

import (
	"errors"
	"net/http"

	"fakenews-detector/internal/agents"
	"fakenews-detector/internal/logger"
	"fakenews-detector/internal/models"
	"fakenews-detector/internal/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeFailedMessage is the generic error reported when the upstream call fails
const AnalyzeFailedMessage = "Failed to analyze news"

type AnalysisHandler struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisHandler(analysisService services.AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	correlationID := getCorrelationID(c)

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithFields(map[string]interface{}{
			"correlation_id": correlationID,
			"client_ip":      c.ClientIP(),
			"error":          err.Error(),
		}).Warn("Invalid analyze request body")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: agents.TextRequiredMessage})
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"correlation_id": correlationID,
		"client_ip":      c.ClientIP(),
		"text_length":    len(req.Text),
	}).Info("Analysis request received")

	result, err := h.analysisService.Analyze(c.Request.Context(), req.Text, correlationID)
	if err != nil {
		status, body := errorResponse(err)

		logger.LogErrorWithStackAndCorrelation(err, correlationID, map[string]interface{}{
			"status_code": status,
			"operation":   "analyze_news",
		})

		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health handles GET /api/health
func (h *AnalysisHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}

// errorResponse maps a service error onto its HTTP status and body
func errorResponse(err error) (int, models.ErrorResponse) {
	var (
		invalidErr       *agents.InvalidInputError
		misconfiguredErr *agents.MisconfiguredError
		upstreamErr      *agents.UpstreamError
	)

	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, models.ErrorResponse{Error: invalidErr.Message}
	case errors.As(err, &misconfiguredErr):
		return http.StatusInternalServerError, models.ErrorResponse{Error: misconfiguredErr.Message}
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   AnalyzeFailedMessage,
			Message: upstreamErr.Detail(),
		}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   AnalyzeFailedMessage,
			Message: err.Error(),
		}
	}
}
