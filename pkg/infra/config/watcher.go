package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/kart-io/logger"
)

// ChangeHandler is a callback function invoked when configuration changes.
// It receives the refreshed snapshot.
type ChangeHandler func(snap *Snapshot) error

// Watcher refreshes a Source when its configuration file changes and
// fans the new snapshot out to subscribers.
type Watcher struct {
	source   *Source
	handlers map[string]ChangeHandler
	mu       sync.RWMutex
	watching bool
}

// NewWatcher creates a new configuration watcher.
// The source's viper instance should already be bound to a configuration file.
func NewWatcher(src *Source) *Watcher {
	return &Watcher{
		source:   src,
		handlers: make(map[string]ChangeHandler),
	}
}

// Subscribe registers a change handler with the given identifier.
// If a handler with the same ID already exists, it will be replaced.
func (w *Watcher) Subscribe(id string, handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[id] = handler
	logger.Debugw("Config watcher: subscribed handler", "id", id)
}

// Unsubscribe removes a change handler by its identifier.
func (w *Watcher) Unsubscribe(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.handlers[id]; exists {
		delete(w.handlers, id)
		logger.Debugw("Config watcher: unsubscribed handler", "id", id)
	}
}

// Start begins watching the configuration file for changes.
// Calling it more than once has no additional effect.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return
	}
	w.watching = true
	w.mu.Unlock()

	v := w.source.Viper()
	v.OnConfigChange(func(e fsnotify.Event) {
		if !w.IsWatching() {
			return
		}
		logger.Infow("Config file changed", "file", e.Name, "op", e.Op.String())
		if err := ExpandEnv(v); err != nil {
			logger.Warnw("Config watcher: failed to expand environment references", "file", e.Name, "error", err)
		}
		w.Notify()
	})
	v.WatchConfig()

	logger.Info("Config watcher: started watching for configuration changes")
}

// Notify refreshes the source and calls every handler with the new
// snapshot. Handler errors are logged and do not stop other handlers.
func (w *Watcher) Notify() *Snapshot {
	snap := w.source.Refresh()

	w.mu.RLock()
	handlers := make(map[string]ChangeHandler, len(w.handlers))
	for id, handler := range w.handlers {
		handlers[id] = handler
	}
	w.mu.RUnlock()

	for id, handler := range handlers {
		if err := handler(snap); err != nil {
			logger.Errorw("Config watcher: handler failed", "id", id, "version", snap.Version(), "error", err)
		}
	}
	return snap
}

// Stop stops delivering notifications. viper cannot stop its file
// watcher, so later file events are ignored instead.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watching {
		return
	}
	w.watching = false
	logger.Info("Config watcher: stopped")
}

// IsWatching returns whether the watcher is currently active.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.watching
}

// HandlerCount returns the number of registered handlers.
func (w *Watcher) HandlerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.handlers)
}
