package agents

import (
	"encoding/json"
	"regexp"
	"strings"

	"fakenews-detector/internal/models"
)

// Greedy: first '{' through last '}' so nested objects and surrounding prose are tolerated.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Fallback verdict values
const (
	FallbackConfidence = 70
	FallbackScore      = 50
	FallbackSummary    = "AI analysis completed with moderate confidence. Please verify independently."
)

// FallbackReasons are shown when the model response could not be decoded
var FallbackReasons = []string{
	"Analysis completed but response format was unexpected",
	"Manual review recommended",
	"Check sources independently",
	"Verify claims with trusted fact-checkers",
}

// ParseModelResponse turns raw model output into a verdict. It never fails:
// anything that does not decode yields the fallback verdict.
func ParseModelResponse(raw string) Verdict {
	candidate := jsonObjectPattern.FindString(raw)
	if candidate == "" {
		return Verdict{Result: FallbackResult(raw), Source: SourceFallback}
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return Verdict{Result: FallbackResult(raw), Source: SourceFallback}
	}

	result.Normalize()
	return Verdict{Result: result, Source: SourceParsed}
}

// FallbackResult builds the default verdict. isFake is a keyword guess over the raw text.
func FallbackResult(raw string) models.AnalysisResult {
	lower := strings.ToLower(raw)
	reasons := make([]string, len(FallbackReasons))
	copy(reasons, FallbackReasons)

	return models.AnalysisResult{
		IsFake:     strings.Contains(lower, "fake") || strings.Contains(lower, "misinformation"),
		Confidence: FallbackConfidence,
		Score:      FallbackScore,
		Reasons:    reasons,
		Summary:    FallbackSummary,
	}
}
