package ui

import (
	"fmt"
	"strings"

	"fakenews-detector/internal/models"

	"github.com/charmbracelet/glamour"
)

// Verdict headings
const (
	FakeHeading     = "Likely Fake News"
	CredibleHeading = "Appears Credible"
	Disclaimer      = "Note: This analysis is AI generated. Always verify important information with multiple trusted sources."
)

// VerdictHeading returns the banner text for a verdict
func VerdictHeading(isFake bool) string {
	if isFake {
		return FakeHeading
	}
	return CredibleHeading
}

// FormatConfidence renders confidence with one decimal, e.g. "88.0%"
func FormatConfidence(p models.Percent) string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// FormatScore renders the fake news score out of 100, e.g. "10/100"
func FormatScore(p models.Percent) string {
	return fmt.Sprintf("%.0f/100", float64(p))
}

// FormatResult renders a result as plain text for non-interactive output
func FormatResult(result *models.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(VerdictHeading(result.IsFake) + "\n\n")
	sb.WriteString(fmt.Sprintf("Confidence Level: %s\n", FormatConfidence(result.Confidence)))
	sb.WriteString(fmt.Sprintf("Fake News Score:  %s\n", FormatScore(result.Score)))

	if len(result.Reasons) > 0 {
		sb.WriteString("\nAnalysis Details\n")
		for i, reason := range result.Reasons {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, reason))
		}
	}

	if result.Summary != "" {
		sb.WriteString("\nAI Summary\n")
		sb.WriteString("  " + result.Summary + "\n")
	}

	sb.WriteString("\n" + Disclaimer + "\n")
	return sb.String()
}

// newMarkdownRenderer builds the summary renderer. A nil renderer means plain text.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// renderMarkdown renders text with r, falling back to the raw text
func renderMarkdown(r *glamour.TermRenderer, text string) string {
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
