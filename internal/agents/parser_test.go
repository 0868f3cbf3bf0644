package agents

import (
	"testing"

	"fakenews-detector/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseModelResponse_Parsed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.AnalysisResult
	}{
		{
			name: "bare json",
			raw:  `{"isFake":true,"confidence":92,"score":85,"reasons":["Sensational headline","No sources"],"summary":"Likely fabricated."}`,
			expected: models.AnalysisResult{
				IsFake:     true,
				Confidence: 92,
				Score:      85,
				Reasons:    []string{"Sensational headline", "No sources"},
				Summary:    "Likely fabricated.",
			},
		},
		{
			name: "prose around json",
			raw:  `Here you go: {"isFake":false,"confidence":88,"score":10,"reasons":["r1"],"summary":"s"}`,
			expected: models.AnalysisResult{
				IsFake:     false,
				Confidence: 88,
				Score:      10,
				Reasons:    []string{"r1"},
				Summary:    "s",
			},
		},
		{
			name: "markdown code fence",
			raw:  "```json\n{\n  \"isFake\": false,\n  \"confidence\": 75,\n  \"score\": 20,\n  \"reasons\": [\"Cites a named agency\"],\n  \"summary\": \"Reads like a press release.\"\n}\n```",
			expected: models.AnalysisResult{
				Confidence: 75,
				Score:      20,
				Reasons:    []string{"Cites a named agency"},
				Summary:    "Reads like a press release.",
			},
		},
		{
			name: "missing fields default",
			raw:  `{"isFake":true}`,
			expected: models.AnalysisResult{
				IsFake:  true,
				Reasons: []string{},
			},
		},
		{
			name: "numeric strings",
			raw:  `{"isFake":true,"confidence":"90%","score":"80","reasons":[]}`,
			expected: models.AnalysisResult{
				IsFake:     true,
				Confidence: 90,
				Score:      80,
				Reasons:    []string{},
			},
		},
		{
			name: "out of range values are clamped",
			raw:  `{"isFake":true,"confidence":250,"score":-5,"reasons":["r"]}`,
			expected: models.AnalysisResult{
				IsFake:     true,
				Confidence: 100,
				Score:      0,
				Reasons:    []string{"r"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ParseModelResponse(tt.raw)

			assert.Equal(t, SourceParsed, verdict.Source)
			assert.False(t, verdict.IsFallback())
			assert.Equal(t, tt.expected, verdict.Result)
		})
	}
}

func TestParseModelResponse_Fallback(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectedIsFake bool
	}{
		{name: "misinformation keyword", raw: "This seems like misinformation.", expectedIsFake: true},
		{name: "fake keyword any case", raw: "Probably FAKE, honestly", expectedIsFake: true},
		{name: "no keywords", raw: "I cannot determine this.", expectedIsFake: false},
		{name: "empty response", raw: "", expectedIsFake: false},
		{name: "broken json", raw: `{"isFake": true, "confidence": }`, expectedIsFake: true},
		{name: "wrong field type", raw: `{"isFake":"maybe","confidence":50}`, expectedIsFake: true},
		{name: "non numeric percent", raw: `{"verdict":"credible","confidence":"high"}`, expectedIsFake: false},
		{name: "only an opening brace", raw: "result: { incomplete", expectedIsFake: false},
		{name: "nan confidence", raw: `{"isFake":true,"confidence":"NaN","score":10,"reasons":["r"]}`, expectedIsFake: true},
		{name: "infinite score", raw: `{"isFake":false,"confidence":80,"score":"Inf","reasons":["r"]}`, expectedIsFake: true},
		{name: "negative infinity", raw: `{"confidence":"-Infinity","score":10}`, expectedIsFake: false},
		{name: "hex float", raw: `{"confidence":"0x1p6","score":10}`, expectedIsFake: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ParseModelResponse(tt.raw)

			assert.Equal(t, SourceFallback, verdict.Source)
			assert.True(t, verdict.IsFallback())
			assert.Equal(t, tt.expectedIsFake, verdict.Result.IsFake)
			assert.Equal(t, models.Percent(70), verdict.Result.Confidence)
			assert.Equal(t, models.Percent(50), verdict.Result.Score)
			assert.Len(t, verdict.Result.Reasons, 4)
			assert.Equal(t, FallbackSummary, verdict.Result.Summary)
		})
	}
}

func TestFallbackResult_ReasonsAreCopied(t *testing.T) {
	result := FallbackResult("anything")
	result.Reasons[0] = "changed"

	assert.Equal(t, "Analysis completed but response format was unexpected", FallbackReasons[0])
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "parsed", SourceParsed.String())
	assert.Equal(t, "fallback", SourceFallback.String())
	assert.Equal(t, "unknown", Source(42).String())
}
