package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AnalysisResult is the verdict returned for one analyzed text
type AnalysisResult struct {
	IsFake     bool     `json:"isFake"`
	Confidence Percent  `json:"confidence"`
	Score      Percent  `json:"score"`
	Reasons    []string `json:"reasons"`
	Summary    string   `json:"summary,omitempty"`
}

// Normalize clamps both percentages into [0,100] and replaces a nil reasons
// list with an empty one so it encodes as [].
func (r *AnalysisResult) Normalize() {
	r.Confidence = r.Confidence.Clamp()
	r.Score = r.Score.Clamp()
	if r.Reasons == nil {
		r.Reasons = []string{}
	}
}

// AnalyzeRequest is the body accepted by POST /api/analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Plain decimal only; ParseFloat alone would also take "NaN", "Inf" and hex floats.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Percent is a 0-100 value. Models occasionally quote numbers or append a
// percent sign, so both "85" and "85%" decode to 85.
type Percent float64

// UnmarshalJSON accepts a JSON number, a numeric string or null
func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		if !decimalPattern.MatchString(s) {
			return fmt.Errorf("percent %q is not numeric", s)
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("percent %q is not numeric", s)
		}
		return p.set(value)
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("percent must be a number: %w", err)
	}
	return p.set(value)
}

func (p *Percent) set(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("percent must be finite, got %v", value)
	}
	*p = Percent(value)
	return nil
}

// Clamp limits the value to [0,100]
func (p Percent) Clamp() Percent {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Fraction returns the value as 0.0-1.0 for progress meters
func (p Percent) Fraction() float64 {
	return float64(p.Clamp()) / 100
}
