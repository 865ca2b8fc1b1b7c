package watcher

import "context"

// Watcher monitors the inbox directory for new recordings.
type Watcher interface {
	// Start blocks until ctx is done, handing new files to the handler one at a time.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one settled file.
type EventHandler func(ctx context.Context, filePath string) error
