package processor

import (
	"io"
	"os"

	"github.com/rob137/summarise-youtube-video/internal/config"
	"github.com/rob137/summarise-youtube-video/internal/logger"
	"github.com/rob137/summarise-youtube-video/internal/summarizer"
	"github.com/rob137/summarise-youtube-video/internal/transcript"
)

// Options control per-run behavior set from CLI flags.
type Options struct {
	// TranscriptOnly skips the summarizer; the plain transcript is
	// printed to stdout and the transcript document is written.
	TranscriptOnly bool
	// Docx additionally exports the document as .docx.
	Docx bool
}

type implProcessor struct {
	cfg        *config.Config
	fetcher    transcript.Fetcher
	summarizer summarizer.Summarizer
	logger     logger.Logger
	opts       Options
	stdout     io.Writer
}

// New creates a new Processor instance
func New(cfg *config.Config, fetcher transcript.Fetcher, summ summarizer.Summarizer, log logger.Logger, opts Options) Processor {
	return &implProcessor{
		cfg:        cfg,
		fetcher:    fetcher,
		summarizer: summ,
		logger:     log,
		opts:       opts,
		stdout:     os.Stdout,
	}
}
