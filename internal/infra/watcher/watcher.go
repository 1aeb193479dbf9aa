// Package watcher re-reads a slider config whenever it changes on disk.
package watcher

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

type Watcher struct {
	loader   ports.SliderLoader
	debounce time.Duration
	log      *slog.Logger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

func New(loader ports.SliderLoader, opts ...Option) *Watcher {
	w := &Watcher{
		loader:   loader,
		debounce: DefaultDebounce,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.ConfigWatcher = (*Watcher)(nil)

// Watch watches the directory holding path, so that editors replacing the
// file through a rename are still seen. Only events for path itself trigger
// a reload. The returned channel is closed once ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan ports.Reload, error) {
	const op = "watcher.watch"

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: abs, Err: err}
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: abs, Err: err}
	}

	out := make(chan ports.Reload)
	go w.loop(ctx, fw, abs, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, out chan<- ports.Reload) {
	defer close(out)
	defer fw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !relevant(ev.Op) {
				continue
			}
			w.log.Debug("watcher.event", "path", path, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher.error", "path", path, "err", err)

		case <-fire:
			fire = nil
			r := w.reload(path)
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Watcher) reload(path string) ports.Reload {
	cfg, err := w.loader.LoadSlider(path)
	if err != nil {
		w.log.Warn("watcher.reload.failed", "path", path, "err", err)
		return ports.Reload{Path: path, Err: err}
	}
	w.log.Info("watcher.reloaded", "path", path, "intervals", len(cfg.Intervals))
	return ports.Reload{Path: path, Config: cfg}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
