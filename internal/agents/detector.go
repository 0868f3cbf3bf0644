package agents

import (
	"context"
	"time"

	"fakenews-detector/internal/clients"
)

// DetectorAgentName identifies the detector in logs and upstream calls
const DetectorAgentName = "fake-news-detector"

// DetectorAgent asks a language model whether a text looks like fake news
type DetectorAgent struct {
	*BaseAgent
	generator clients.TextGenerator
}

// NewDetectorAgent creates a new detector agent backed by generator
func NewDetectorAgent(generator clients.TextGenerator) *DetectorAgent {
	return &DetectorAgent{
		BaseAgent: NewBaseAgent(DetectorAgentName),
		generator: generator,
	}
}

// Process makes one upstream call and parses the reply. A reply that cannot be
// decoded is not an error; it produces a fallback verdict.
func (d *DetectorAgent) Process(ctx context.Context, content string) (Verdict, error) {
	start := time.Now()

	d.LogStart(ctx, content)

	if err := d.ValidateContent(content); err != nil {
		d.LogError(ctx, err, time.Since(start))
		return Verdict{}, err
	}

	raw, err := d.generator.GenerateText(ctx, d.Name(), BuildDetectionPrompt(content))
	if err != nil {
		upstreamErr := NewUpstreamError(d.Name(), err)
		d.LogError(ctx, upstreamErr, time.Since(start))
		return Verdict{}, upstreamErr
	}

	verdict := ParseModelResponse(raw)
	if verdict.IsFallback() {
		d.LogFallback(ctx, raw)
	}

	d.LogSuccess(ctx, &verdict, time.Since(start))

	return verdict, nil
}
