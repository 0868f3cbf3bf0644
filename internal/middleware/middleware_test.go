package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fakenews-detector/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name                 string
		headerValue          string
		expectHeaderInResp   bool
		expectNewIDGenerated bool
	}{
		{
			name:               "with existing correlation ID",
			headerValue:        "existing-correlation-id-123",
			expectHeaderInResp: false,
		},
		{
			name:                 "without correlation ID header",
			headerValue:          "",
			expectHeaderInResp:   true,
			expectNewIDGenerated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromRequest string

			router := gin.New()
			router.Use(RequestIDMiddleware())
			router.GET("/test", func(c *gin.Context) {
				fromGin = c.GetString(CorrelationIDKey)
				fromRequest = logger.CorrelationIDFromContext(c.Request.Context())
				c.JSON(http.StatusOK, gin.H{"message": "test"})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set("X-Correlation-ID", tt.headerValue)
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, fromGin, fromRequest)

			if tt.headerValue != "" {
				assert.Equal(t, tt.headerValue, fromGin)
				assert.Empty(t, recorder.Header().Get("X-Correlation-ID"))
			}

			if tt.expectNewIDGenerated {
				responseID := recorder.Header().Get("X-Correlation-ID")
				require.NotEmpty(t, responseID)
				assert.Equal(t, responseID, fromGin)
				_, err := uuid.Parse(responseID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		requestOrigin  string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "allowed origin",
			allowedOrigins: []string{"http://localhost:5173"},
			requestOrigin:  "http://localhost:5173",
			method:         http.MethodGet,
			expectedOrigin: "http://localhost:5173",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "disallowed origin",
			allowedOrigins: []string{"http://localhost:5173"},
			requestOrigin:  "http://evil.example",
			method:         http.MethodGet,
			expectedOrigin: "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wildcard echoes origin",
			allowedOrigins: []string{"*"},
			requestOrigin:  "http://anything.example",
			method:         http.MethodGet,
			expectedOrigin: "http://anything.example",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wildcard without origin header",
			allowedOrigins: []string{"*"},
			requestOrigin:  "",
			method:         http.MethodGet,
			expectedOrigin: "*",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "preflight",
			allowedOrigins: []string{"*"},
			requestOrigin:  "http://localhost:5173",
			method:         http.MethodOptions,
			expectedOrigin: "http://localhost:5173",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware(tt.allowedOrigins))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.requestOrigin != "" {
				req.Header.Set("Origin", tt.requestOrigin)
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "POST")
			assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	original := logger.Log.Out
	logger.Log.SetOutput(&buf)
	defer logger.Log.SetOutput(original)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.POST("/api/analyze", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	req.Header.Set("X-Correlation-ID", "log-test-id")
	req.Header.Set("User-Agent", "detector-test")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTTP request processed", entry["msg"])
	assert.Equal(t, "log-test-id", entry["correlation_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/analyze", entry["path"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	assert.Equal(t, "detector-test", entry["user_agent"])
}

func TestLoggingMiddleware_ServerErrorsAreWarnings(t *testing.T) {
	var buf bytes.Buffer
	original := logger.Log.Out
	logger.Log.SetOutput(&buf)
	defer logger.Log.SetOutput(original)

	router := gin.New()
	router.Use(LoggingMiddleware())
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, logrus.WarnLevel.String(), entry["level"])
	assert.Equal(t, "HTTP request failed", entry["msg"])
}
