package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/recap/internal/logger"
)

// Options configures a Watcher.
type Options struct {
	InputDir      string
	MaxConcurrent int
	// Settle is how long to wait after a create event before handling the
	// file, so writers can finish. Zero means 500ms.
	Settle time.Duration
	// ScanExisting hands files already in InputDir to the handler on Start.
	ScanExisting bool
}

func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(opts.InputDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", opts.InputDir, err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Settle <= 0 {
		opts.Settle = 500 * time.Millisecond
	}

	return &implWatcher{
		opts:     opts,
		handler:  handler,
		logger:   log,
		fs:       fw,
		slots:    make(chan struct{}, opts.MaxConcurrent),
		inFlight: make(map[string]bool),
	}, nil
}
