package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"PrologFront/internal/frontend"
	"PrologFront/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// Handler receives every analysis of the watched file. err is set when the
// file could not be read.
type Handler func(result *frontend.Result, err error)

// Watcher re-analyzes one source file whenever it changes.
type Watcher struct {
	path    string
	handler Handler
	w       *fsnotify.Watcher
	logger  *logger.Logger
}

// New watches path. The parent directory is watched so that editors which
// replace the file on save are still followed.
func New(path string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, handler: handler, w: w, logger: logger.Get("watch")}, nil
}

// Run analyzes the file once, then again after each write or create event,
// until ctx is cancelled. The watcher is closed when Run returns.
func (wt *Watcher) Run(ctx context.Context) error {
	defer wt.w.Close()

	wt.analyze()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != wt.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			wt.logger.Debug("%s changed (%s)", ev.Name, ev.Op)
			wt.analyze()
		case err, ok := <-wt.w.Errors:
			if !ok {
				return nil
			}
			wt.logger.Error("watch error: %v", err)
		}
	}
}

func (wt *Watcher) analyze() {
	result, err := frontend.AnalyzeFile(wt.path)
	if err != nil {
		wt.logger.Error("Failed to analyze %s: %v", wt.path, err)
	}
	wt.handler(result, err)
}
