// Package watch reruns a callback when spec files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change before
// firing. Editors often write a file several times in quick succession.
const DefaultDebounce = 200 * time.Millisecond

// Options configures Watch.
type Options struct {
	// Debounce is the quiet period before onChange runs. Default DefaultDebounce.
	Debounce time.Duration

	// Logger receives watcher errors. Default slog.Default().
	Logger *slog.Logger
}

// Watch calls onChange with the sorted set of changed paths whenever any of
// paths is written or recreated. The parent directories are watched so files
// replaced by rename are still seen.
//
// onChange runs on the calling goroutine; changes arriving meanwhile are
// batched into the next call. Watch blocks until ctx is done and then
// returns nil.
func Watch(ctx context.Context, paths []string, opts Options, onChange func(ctx context.Context, changed []string)) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		targets[abs] = true
	}
	for dir := range dirsOf(targets) {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	pending := make(map[string]bool)
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !targets[name] {
				continue
			}
			logger.Debug("spec changed", "file", name, "op", event.Op.String())
			pending[name] = true
			if timer == nil {
				timer = time.AfterFunc(opts.Debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(opts.Debounce)
			}

		case <-fire:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			slices.Sort(changed)
			clear(pending)
			onChange(ctx, changed)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func dirsOf(files map[string]bool) map[string]bool {
	dirs := make(map[string]bool)
	for f := range files {
		dirs[filepath.Dir(f)] = true
	}
	return dirs
}
