package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclass/internal/pubsub"
)

func TestWatcher_PublishesOnConfigWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reload: true\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	require.NoError(t, os.WriteFile(path, []byte("auto_reload: false\n"), 0o600))

	select {
	case event := <-ch:
		assert.Equal(t, path, event.Payload.Path)
		assert.Equal(t, pubsub.UpdatedEvent, event.Type)
	case <-time.After(3 * time.Second):
		require.Fail(t, "timeout waiting for config change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reload: true\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))

	select {
	case event := <-ch:
		require.Fail(t, "expected no event for unrelated file", "got %v", event.Payload)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	// A burst of writes inside the debounce window
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		require.Fail(t, "timeout waiting for debounced event")
	}

	// No further event should arrive for the same burst
	select {
	case event := <-ch:
		require.Fail(t, "expected burst collapsed into one event", "got %v", event.Payload)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/tmp/config.yaml")
	assert.Equal(t, "/tmp/config.yaml", cfg.Path)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w, err := New(Config{Path: "/nonexistent-vclass-dir/config.yaml", DebounceDur: time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	assert.Error(t, w.Start(), "expected error watching missing directory")
}
