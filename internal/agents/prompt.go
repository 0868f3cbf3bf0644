package agents

import "fmt"

// BuildDetectionPrompt returns the fixed fact-checking instructions with the text embedded
// verbatim. The same input always yields the same prompt.
func BuildDetectionPrompt(text string) string {
	return fmt.Sprintf(`You are an expert fact-checker and fake news detector. Analyze the following text and determine if it appears to be fake news, misinformation, or credible information.

Text to analyze:
"%s"

Please provide your analysis in the following JSON format (respond ONLY with valid JSON, no additional text):
{
  "isFake": boolean (true if likely fake news, false if appears credible),
  "confidence": number (0-100, how confident you are in your assessment),
  "score": number (0-100, where 0 is completely credible and 100 is definitely fake),
  "reasons": [
    "reason 1 for your assessment",
    "reason 2 for your assessment",
    "reason 3 for your assessment",
    "reason 4 for your assessment"
  ],
  "summary": "A brief 1-2 sentence summary of why this is or isn't fake news"
}

Base your analysis on:
1. Use of sensationalist or clickbait language
2. Verifiable facts vs unsubstantiated claims
3. Source credibility indicators
4. Emotional manipulation tactics
5. Logical consistency and coherence
6. Grammar and writing quality
7. Balance and objectivity vs bias`, text)
}
