package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/transcriber"
)

type implWatcher struct {
	opts    Options
	handler EventHandler
	logger  logger.Logger
	fs      *fsnotify.Watcher
	slots   chan struct{}
	wg      sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.opts.InputDir)
	defer w.wg.Wait()

	if w.opts.ScanExisting {
		if err := w.scan(ctx); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !accepts(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "New source detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name, w.opts.Settle); err != nil {
				return err
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.fs.Close()
}

// scan dispatches sources left in the input folder from an earlier run.
func (w *implWatcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.opts.InputDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.opts.InputDir, err)
	}
	for _, e := range entries {
		path := filepath.Join(w.opts.InputDir, e.Name())
		if e.IsDir() || !accepts(path) {
			continue
		}
		w.logger.Info(ctx, "Pending source found: %s", path)
		if err := w.dispatch(ctx, path, 0); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs the handler for path once a slot is free. A path already
// being handled is skipped. It only fails when ctx ends while waiting.
func (w *implWatcher) dispatch(ctx context.Context, path string, settle time.Duration) error {
	w.mu.Lock()
	if w.inFlight[path] {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = true
	w.mu.Unlock()

	if settle > 0 {
		select {
		case <-time.After(settle):
		case <-ctx.Done():
			w.release(path)
			return ctx.Err()
		}
	}

	select {
	case w.slots <- struct{}{}:
	case <-ctx.Done():
		w.release(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.slots }()
		defer w.release(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

// accepts reports whether path is something the pipeline can summarize.
// ".url" sidecars are picked up by the handler alongside their source.
func accepts(path string) bool {
	return transcriber.IsTranscriptFile(path) || transcriber.IsMediaFile(path)
}
