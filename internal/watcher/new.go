package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

const (
	defaultDebounce  = 500 * time.Millisecond
	defaultQueueSize = 16
)

type Options struct {
	Dir     string
	Handler EventHandler
	// Accept filters paths; nil accepts everything.
	Accept func(path string) bool
	// Debounce is how long a file must stay unchanged before it is handled.
	Debounce time.Duration
	Logger   logger.Logger
}

type implWatcher struct {
	dir      string
	handler  EventHandler
	accept   func(string) bool
	debounce time.Duration
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	queue    chan string
	pending  *pendingSet
}

// New creates a Watcher over opts.Dir. Files are handled sequentially.
func New(opts Options) (Watcher, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("watcher: handler is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	w := &implWatcher{
		dir:      opts.Dir,
		handler:  opts.Handler,
		accept:   opts.Accept,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		watcher:  watcher,
		queue:    make(chan string, defaultQueueSize),
		pending:  newPendingSet(),
	}
	if w.accept == nil {
		w.accept = func(string) bool { return true }
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}
	if w.logger == nil {
		w.logger = logger.Nop()
	}
	return w, nil
}
