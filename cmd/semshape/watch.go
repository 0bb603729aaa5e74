package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events editors emit per save.
const debounceWindow = 250 * time.Millisecond

// watchAndValidate runs validate once, then re-runs it whenever the shapes
// file or a data file changes, until interrupted. The final validation
// outcome decides the exit code.
func watchAndValidate(ctx context.Context, shapesPath string, dataFiles []string, logger *slog.Logger, validate func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch directories rather than files: editors replace files on save,
	// which drops file-level watches.
	dirs := make(map[string]struct{})
	watched := make(map[string]struct{})
	for _, path := range append([]string{shapesPath}, dataFiles...) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lastErr := validate()
	if lastErr != nil && !errors.Is(lastErr, errViolations) {
		return lastErr
	}

	logger.Info("Watching for changes", slog.Int("files", len(watched)))

	var debounce *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-signalCtx.Done():
			logger.Info("Stopping watch")
			return lastErr

		case event, ok := <-watcher.Events:
			if !ok {
				return lastErr
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			logger.Debug("File changed", slog.String("file", abs))
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
			} else {
				debounce.Reset(debounceWindow)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			lastErr = validate()
			if lastErr != nil && !errors.Is(lastErr, errViolations) {
				logger.Error("Validation failed", slog.String("error", lastErr.Error()))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return lastErr
			}
			logger.Warn("Watch error", slog.String("error", err.Error()))
		}
	}
}
