package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pawgate/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSavedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan preferences.Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(settings preferences.Settings) { changes <- settings })
	}()

	updated := preferences.DefaultSettings()
	updated.Hotkey = "alt+f9"
	require.NoError(t, SaveSettings(path, updated))

	select {
	case got := <-changes:
		assert.Equal(t, "alt+f9", got.Hotkey)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, settingsFileName)
	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan preferences.Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(settings preferences.Settings) { changes <- settings })
	}()

	require.NoError(t, SaveSettings(filepath.Join(dir, "other.yaml"), preferences.DefaultSettings()))

	select {
	case got := <-changes:
		t.Fatalf("unexpected change %+v", got)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, watcher.Close())
	assert.NoError(t, <-done)
}
