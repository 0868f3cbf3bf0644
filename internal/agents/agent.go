package agents

import (
	"context"

	"fakenews-detector/internal/models"
)

// Agent defines the interface that all AI agents must implement
type Agent interface {
	// Process analyzes the given content and returns a verdict
	Process(ctx context.Context, content string) (Verdict, error)

	// Name returns the agent's name for logging and identification
	Name() string
}

// Source tells where a verdict came from
type Source int

const (
	// SourceParsed means the model response contained a decodable result
	SourceParsed Source = iota
	// SourceFallback means the response could not be decoded and the default verdict was used
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceParsed:
		return "parsed"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Verdict is the output of one analysis
type Verdict struct {
	Result models.AnalysisResult
	Source Source
}

// IsFallback reports whether the result is the heuristic default
func (v Verdict) IsFallback() bool {
	return v.Source == SourceFallback
}
