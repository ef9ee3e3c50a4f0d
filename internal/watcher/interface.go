package watcher

import "context"

// Watcher monitors the inbox directory for dropped URL files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one URL read from a dropped file.
type EventHandler func(ctx context.Context, url string) error
