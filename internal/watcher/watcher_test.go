package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/recap/internal/logger"
)

func TestAccepts(t *testing.T) {
	tests := map[string]bool{
		"talk.json":   true,
		"talk.SRT":    true,
		"lecture.mp4": true,
		"podcast.mp3": true,
		"talk.url":    false,
		"notes.txt":   false,
		"noext":       false,
	}
	for path, want := range tests {
		assert.Equal(t, want, accepts(path), path)
	}
}

func TestWatcherDispatchesNewFiles(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var seen []string
	handled := make(chan struct{}, 4)
	handler := func(_ context.Context, path string) error {
		mu.Lock()
		seen = append(seen, filepath.Base(path))
		mu.Unlock()
		handled <- struct{}{}
		return nil
	}

	w, err := New(Options{InputDir: dir, MaxConcurrent: 1, Settle: time.Millisecond}, handler, logger.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	for _, name := range []string{"a.json", "a.url", "b.srt", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0644))
	}

	for i := 0; i < 2; i++ {
		select {
		case <-handled:
		case <-time.After(5 * time.Second):
			t.Fatal("handler not called")
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	sort.Strings(seen)
	assert.Equal(t, []string{"a.json", "b.srt"}, seen)
}

func TestWatcherScansExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"old.json", "old.url", "clip.mp4"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	var mu sync.Mutex
	var seen []string
	handler := func(_ context.Context, path string) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, filepath.Base(path))
		return nil
	}

	w, err := New(Options{InputDir: dir, MaxConcurrent: 2, ScanExisting: true}, handler, logger.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	sort.Strings(seen)
	assert.Equal(t, []string{"clip.mp4", "old.json"}, seen)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Options{InputDir: filepath.Join(t.TempDir(), "missing")}, nil, logger.NewNop())
	assert.Error(t, err)
}

func TestWatcherShutdownDuringSettle(t *testing.T) {
	dir := t.TempDir()
	called := make(chan struct{}, 1)
	handler := func(context.Context, string) error {
		called <- struct{}{}
		return nil
	}

	w, err := New(Options{InputDir: dir, Settle: time.Hour}, handler, logger.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "slow.json"), []byte("[]"), 0644))
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop while waiting for a file to settle")
	}
	assert.Empty(t, called)
}
