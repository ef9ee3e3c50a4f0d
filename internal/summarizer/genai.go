package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// callGemini sends a prompt to the Gemini API and returns the response
// text with its token usage. Rotates to the next API key on quota
// errors before surfacing them for retry.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, UsageRecord, error) {
	key, keyIndex := s.currentAPIKey()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", UsageRecord{}, fmt.Errorf("create Gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		if isQuotaError(err) {
			s.logger.Warn(ctx, "Key %d/%d rate limited, rotating", keyIndex+1, len(s.apiKeys))
			s.rotateKey()
		}
		return "", UsageRecord{}, fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", UsageRecord{}, fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", UsageRecord{}, fmt.Errorf("empty response from Gemini")
	}

	var rec UsageRecord
	if result.UsageMetadata != nil {
		rec.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		rec.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}

	return text.String(), rec, nil
}

func (s *implSummarizer) currentAPIKey() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
