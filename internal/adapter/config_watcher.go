package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "flatconf.dev/pkg/flatconf/internal/model"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// ConfigWatcher streams change notifications for a config file.
type ConfigWatcher interface {
	// Watch emits path after every settled change until ctx is cancelled, then
	// closes both channels.
	Watch(ctx context.Context, path m.Path) (<-chan m.Path, <-chan error, error)
}

// FSNotifyConfigWatcher implements ConfigWatcher with fsnotify. It watches the
// parent directory so editors that save by renaming a temp file are seen.
type FSNotifyConfigWatcher struct {
	debounce time.Duration
}

// NewFSNotifyConfigWatcher constructs a watcher. A zero debounce uses
// DefaultDebounce.
func NewFSNotifyConfigWatcher(debounce time.Duration) *FSNotifyConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FSNotifyConfigWatcher{debounce: debounce}
}

// Watch starts watching path.
func (w *FSNotifyConfigWatcher) Watch(ctx context.Context, path m.Path) (<-chan m.Path, <-chan error, error) {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("watch config dir: %w", err)
	}

	slog.Debug("Watching config", "path", target)

	changes := make(chan m.Path, 1)
	errs := make(chan error, 1)

	go w.loop(ctx, watcher, target, path, changes, errs)

	return changes, errs, nil
}

func (w *FSNotifyConfigWatcher) loop(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	target string,
	path m.Path,
	changes chan<- m.Path,
	errs chan<- error,
) {
	defer close(changes)
	defer close(errs)
	defer func() { _ = watcher.Close() }()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Config watcher stopped", "path", target)
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only the parent directory is watched, so the base name identifies the file.
			if filepath.Base(event.Name) != filepath.Base(target) {
				continue
			}

			// Write and Create cover in-place saves and rename-replace saves.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("Config file changed", "path", target, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}

				timer.Reset(w.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			select {
			case changes <- path:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Error("Config watcher error", "path", target, "error", err)

			select {
			case errs <- err:
			default:
			}
		}
	}
}
