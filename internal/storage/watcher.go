package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pawgate/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports settings written to the settings file by anyone,
// including this process.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher watches the directory holding path. Watching the directory
// rather than the file survives atomic replacement.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		watcher: fsWatcher,
		logger:  logger.Named("settings-watcher"),
	}, nil
}

// Run calls onChange with freshly read settings after every write to the
// settings file. It returns when ctx is done or the watcher is closed.
func (watcher *Watcher) Run(ctx context.Context, onChange func(preferences.Settings)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != watcher.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settings, err := readSettings(watcher.path)
			if err != nil {
				watcher.logger.Warn("reload settings", zap.Error(err))
				continue
			}
			watcher.logger.Debug("settings file changed", zap.String("path", watcher.path))
			onChange(settings)
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return nil
			}
			watcher.logger.Warn("settings watcher error", zap.Error(err))
		}
	}
}

// Close stops watching.
func (watcher *Watcher) Close() error {
	return watcher.watcher.Close()
}
