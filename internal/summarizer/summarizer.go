package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// maxSummaryTokens bounds the decoded summary length. The minimum length is
// carried in the prompt since the API exposes no lower bound.
const maxSummaryTokens = 100

const summaryPrompt = `Summarize the following transcript excerpt in one short paragraph of at least 30 words. Return only the summary text, no preamble.

Excerpt:
---
%s
---`

// Summarize sends one transcript window to Gemini with deterministic
// decoding and returns the summary text. Rotates API keys on 429 / quota
// errors; any other failure surfaces immediately.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0),
			MaxOutputTokens: maxSummaryTokens,
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
