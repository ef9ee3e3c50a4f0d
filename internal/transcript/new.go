package transcript

import (
	"sync"

	"github.com/rob137/summarise-youtube-video/internal/logger"
	"github.com/rob137/summarise-youtube-video/pkg/executor"
)

type implFetcher struct {
	binary    string
	languages []string
	tempDir   string
	executor  executor.Executor
	logger    logger.Logger

	checkOnce sync.Once
	checkErr  error
}

// New creates a Fetcher that shells out to yt-dlp for caption downloads.
// Languages are tried in preference order.
func New(binary string, languages []string, tempDir string, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		binary:    binary,
		languages: languages,
		tempDir:   tempDir,
		executor:  exec,
		logger:    log,
	}
}
