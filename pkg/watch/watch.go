// Package watch reloads a configuration when its file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	// DefaultDebounce is used when no debounce delay is configured
	DefaultDebounce = 250 * time.Millisecond

	// reloadChannelBuffer is the size of the reload result channel
	reloadChannelBuffer = 16
)

// Reloader loads a configuration file. config.Store implements it.
type Reloader interface {
	LoadFile(path string) error
}

// Reload reports the outcome of one reload
type Reload struct {
	Path string
	At   time.Time
	Err  error
}

// Watcher reloads a file after writes to it settle
type Watcher struct {
	path     string
	debounce time.Duration
	reloader Reloader
	watcher  *fsnotify.Watcher
	logger   zerolog.Logger
	reloads  chan Reload
}

// New creates a watcher for path. The containing directory is watched so
// that editors replacing the file by rename are noticed.
func New(path string, debounce time.Duration, reloader Reloader) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to resolve %s", path)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", filepath.Dir(abs)).
			WithDetail("path", abs)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		reloader: reloader,
		watcher:  fsw,
		logger:   logging.GetLogger("watch").With().Str("path", abs).Logger(),
		reloads:  make(chan Reload, reloadChannelBuffer),
	}, nil
}

// Reloads returns the channel of reload results. It is closed when Run
// returns.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Run processes file events until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.reloads)
	defer func() { _ = w.watcher.Close() }()

	w.logger.Info().Dur("debounce", w.debounce).Msg("Watching configuration")

	// nil while no change is pending
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("Configuration change detected")
			settle = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("Watcher error")

		case <-settle:
			settle = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	err := w.reloader.LoadFile(w.path)
	if err != nil {
		w.logger.Warn().Err(err).Msg("Reload failed")
	} else {
		w.logger.Info().Msg("Configuration reloaded")
	}

	select {
	case w.reloads <- Reload{Path: w.path, At: time.Now(), Err: err}:
	default:
		w.logger.Warn().Msg("Reload result dropped, channel full")
	}
}
