package summarizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rob137/summarise-youtube-video/internal/config"
	"github.com/rob137/summarise-youtube-video/internal/logger"
)

// generateFunc performs one model call. Swapped out in tests.
type generateFunc func(ctx context.Context, prompt string) (string, UsageRecord, error)

type implSummarizer struct {
	apiKeys    []string
	model      string
	maxRetries int
	baseDelay  time.Duration
	logger     logger.Logger

	// mu guards currentKey; one Summarizer serves all watch-mode goroutines.
	mu         sync.Mutex
	currentKey int

	generate generateFunc
	sleep    func(ctx context.Context, d time.Duration) error
}

// New creates a Summarizer that rotates through the supplied Gemini API
// keys and retries transient failures with exponential backoff.
func New(cfg config.GeminiConfig, log logger.Logger) (Summarizer, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API key configured (set GEMINI_API_KEY or pass --api-key)")
	}

	s := &implSummarizer{
		apiKeys:    cfg.APIKeys,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay(),
		logger:     log,
	}
	s.generate = s.callGemini
	s.sleep = sleepContext

	return s, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
