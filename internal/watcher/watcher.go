package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rob137/summarise-youtube-video/internal/logger"
)

type implWatcher struct {
	inboxDir  string
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start monitors the inbox for new .txt/.url files. Each file holds one
// video URL per run; the file is renamed to .done after processing so
// it is not picked up again.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for URL files (max concurrent: %d)", w.inboxDir, cap(w.semaphore))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight videos to finish...")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create || !isURLFile(event.Name) {
				continue
			}

			w.logger.Info(ctx, "New URL file: %s", event.Name)

			// Small delay so the file is fully written
			time.Sleep(200 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handleFile(ctx, path); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) handleFile(ctx context.Context, path string) error {
	url, err := readURLFile(path)
	if err != nil {
		return err
	}

	if err := w.handler(ctx, url); err != nil {
		return err
	}

	done := path + ".done"
	if err := os.Rename(path, done); err != nil {
		w.logger.Warn(ctx, "Could not mark %s as done: %v", path, err)
	}
	return nil
}

// readURLFile returns the first non-empty, non-comment line of the file.
func readURLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read URL file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}

	return "", fmt.Errorf("%s contains no URL", path)
}

func isURLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".url":
		return true
	}
	return false
}
