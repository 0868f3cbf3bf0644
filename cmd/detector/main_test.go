package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fakenews-detector/internal/clients"
	"fakenews-detector/internal/models"
	"fakenews-detector/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, received *[]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/health":
			_, _ = w.Write([]byte(`{"status":"ok","message":"Server is running"}`))
		case "/api/analyze":
			var req models.AnalyzeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			*received = append(*received, req.Text)
			if strings.TrimSpace(req.Text) == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Text is required"}`))
				return
			}
			_, _ = w.Write([]byte(`{"isFake":false,"confidence":88,"score":10,"reasons":["Named sources"],"summary":"Looks legitimate."}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_Args(t *testing.T) {
	var received []string
	server := newBackend(t, &received)

	out, err := execute(t, nil, "--api-url", server.URL+"/api/", "analyze", "Mayor", "opens", "bridge")

	require.NoError(t, err)
	assert.Equal(t, []string{"Mayor opens bridge"}, received)
	assert.Contains(t, out, ui.CredibleHeading)
	assert.Contains(t, out, "Confidence Level: 88.0%")
	assert.Contains(t, out, "Fake News Score:  10/100")
	assert.Contains(t, out, "1. Named sources")
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	var received []string
	server := newBackend(t, &received)

	_, err := execute(t, strings.NewReader("Headline from a pipe\n"), "--api-url", server.URL+"/api", "analyze")

	require.NoError(t, err)
	assert.Equal(t, []string{"Headline from a pipe\n"}, received)
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	var received []string
	server := newBackend(t, &received)

	out, err := execute(t, nil, "--api-url", server.URL+"/api", "analyze", "--json", "Mayor opens bridge")

	require.NoError(t, err)
	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.IsFake)
	assert.Equal(t, models.Percent(88), result.Confidence)
	assert.Equal(t, "Looks legitimate.", result.Summary)
}

func TestAnalyzeCommand_ServerError(t *testing.T) {
	var received []string
	server := newBackend(t, &received)

	_, err := execute(t, strings.NewReader("   "), "--api-url", server.URL+"/api", "analyze")

	require.Error(t, err)
	assert.Equal(t, "Text is required", err.Error())
}

func TestAnalyzeCommand_BackendDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := execute(t, nil, "--api-url", url+"/api", "analyze", "anything")

	require.Error(t, err)
	assert.Equal(t, ui.BackendUnavailableMessage, err.Error())
}

func TestHealthCommand(t *testing.T) {
	var received []string
	server := newBackend(t, &received)

	out, err := execute(t, nil, "--api-url", server.URL+"/api", "health")

	require.NoError(t, err)
	assert.Equal(t, "ok: Server is running ("+server.URL+"/api)\n", out)
}

func TestInteractiveAnalyzer_AppliesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := clients.NewAnalysisClient(server.URL + "/api")
	analyzer := interactiveAnalyzer(client, 50*time.Millisecond)

	start := time.Now()
	result, err := analyzer.Analyze(context.Background(), "slow headline")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, ui.BackendUnavailableMessage, ui.ErrorMessage(err))
}

func TestInteractiveAnalyzer_NoTimeout(t *testing.T) {
	client := clients.NewAnalysisClient("http://localhost:3001/api")

	assert.Same(t, client, interactiveAnalyzer(client, 0))
}
