// Package watch reloads a DCL document whenever its file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/debug"
	"go.uber.org/zap"
)

const DefaultDebounce = 100 * time.Millisecond

// LoadFunc receives every load of the watched file, or the error that
// prevented it.
type LoadFunc func(*dcl.Document, error)

type Watcher struct {
	path     string
	onLoad   LoadFunc
	debounce time.Duration
	docOpts  []dcl.Option
	log      *zap.Logger
}

type Option func(*Watcher)

// Debounce sets how long the file must stay quiet before it is reloaded.
func Debounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// WithDocumentOptions is passed to every [dcl.Load].
func WithDocumentOptions(opts ...dcl.Option) Option {
	return func(w *Watcher) { w.docOpts = append(w.docOpts, opts...) }
}

func New(path string, onLoad LoadFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		onLoad:   onLoad,
		debounce: DefaultDebounce,
		log:      debug.Logger(),
	}
	for _, f := range opts {
		f(w)
	}
	w.log = w.log.Named("watch")
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Run loads the file once, then again after each burst of changes, until
// ctx is done.  The directory is watched rather than the file so that
// atomic replacement is seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.load()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if debug.Watch() {
				w.log.Debug("event", zap.String("op", ev.Op.String()), zap.String("path", ev.Name))
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			w.load()
		}
	}
}

func (w *Watcher) load() {
	d, err := dcl.Load(w.path, w.docOpts...)
	if err != nil {
		w.log.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.log.Info("loaded", zap.String("path", w.path), zap.Int("lines", d.Tree().Lines))
	}
	w.onLoad(d, err)
}
