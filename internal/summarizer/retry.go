package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// generateWithRetry runs one model call, retrying transient failures up
// to maxRetries attempts with doubling delay between attempts. The
// usage of the successful call is added to usage.
func (s *implSummarizer) generateWithRetry(ctx context.Context, prompt string, usage *Usage) (string, error) {
	var lastErr error
	delay := s.baseDelay

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		text, rec, err := s.generate(ctx, prompt)
		if err == nil {
			usage.Add(rec)
			return text, nil
		}

		if !isTransient(err) {
			return "", err
		}
		lastErr = err

		if attempt == s.maxRetries {
			break
		}

		s.logger.Warn(ctx, "API call failed (attempt %d/%d), retrying in %s: %v", attempt, s.maxRetries, delay, err)
		if err := s.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}

	return "", fmt.Errorf("giving up after %d attempts: %w", s.maxRetries, lastErr)
}

// isTransient reports whether err looks like a recoverable API or
// network failure worth retrying.
func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"429",
		"500",
		"502",
		"503",
		"quota",
		"resource_exhausted",
		"unavailable",
		"deadline exceeded",
		"connection reset",
		"timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
