// Package watch re-runs a callback whenever a markup file changes
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events editors emit on save
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the current file content. Returned errors are logged and
// do not stop the watch.
type Handler func(content string) error

// Watcher follows a single file
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
}

// New creates a watcher for path. A debounce of zero uses DefaultDebounce.
func New(path string, debounce time.Duration, handler Handler) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		handler:  handler,
	}
}

// Run calls the handler once with the current content, then again after
// every change, until ctx is cancelled. The parent directory is watched so
// that editors replacing the file by rename are followed.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.GetLogger("watch")

	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot watch %s", w.path)
	} else if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot watch %s", w.path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}
	defer func() { _ = fsw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", dir)
	}

	logger.Info().Str("path", w.path).Msg("Watching for changes")
	w.emit()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Str("path", w.path).Msg("Watch stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				logger.Debug().Str("op", event.Op.String()).Msg("Ignoring event")
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.emit()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}

func (w *Watcher) emit() {
	logger := logging.GetLogger("watch")

	data, err := os.ReadFile(w.path)
	if err != nil {
		logger.Warn().Err(err).Str("path", w.path).Msg("Failed to read watched file")
		return
	}

	done := logging.LogOperationStart(logger, "watch.render")
	defer done()

	if err := w.handler(string(data)); err != nil {
		logger.Warn().Err(err).Str("path", w.path).Msg("Render failed")
	}
}
