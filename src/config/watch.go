package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path every time the file is written and passes
// the new config to onChange. Configs that fail to load are logged and
// skipped. Watch blocks until ctx is done.
//
// Usage:
//
//	go config.Watch(ctx, "exprtree.yaml", func(c *config.Config) {
//		current.Store(c)
//	})
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, editors often replace the file instead of
	// writing to it
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			slog.Debug("config file changed", "path", path, "op", event.Op.String())
			config, err := LoadConfig(path)
			if err != nil {
				slog.Warn("failed to reload config, keeping the previous one", "path", path, "error", err)
				continue
			}
			onChange(config)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", "path", path, "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
