package watcher

import "context"

// Watcher feeds new transcript and media files in the input folder to a
// handler.
type Watcher interface {
	// Start blocks until ctx is done, then waits for running handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one source file. Errors are logged, not fatal.
type EventHandler func(ctx context.Context, filePath string) error
