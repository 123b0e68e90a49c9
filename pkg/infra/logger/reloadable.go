package logger

import (
	"fmt"
	"sync"

	"github.com/kart-io/logger"

	configpkg "github.com/VitamPoc/VitamCommon/pkg/infra/config"
	logopts "github.com/VitamPoc/VitamCommon/pkg/options/logger"
)

// ReloadableLogger keeps the global logger in step with configuration
// changes. Only the level, format, development and caller/stacktrace
// switches are reloadable; outputs need a restart.
type ReloadableLogger struct {
	opts *logopts.Options
	mu   sync.RWMutex
}

// NewReloadableLogger creates a new reloadable logger manager.
func NewReloadableLogger(opts *logopts.Options) *ReloadableLogger {
	return &ReloadableLogger{opts: opts}
}

// OnConfigChange implements config.Reloadable.
// The new options are validated and applied; on failure the current
// logger is left in place.
func (rl *ReloadableLogger) OnConfigChange(snap *configpkg.Snapshot) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	next := rl.opts.Clone()
	next.Level = snap.GetString(logopts.KeyLevel, next.Level)
	next.Format = snap.GetString(logopts.KeyFormat, next.Format)
	next.Development = snap.GetBool(logopts.KeyDevelopment, next.Development)
	next.DisableCaller = snap.GetBool(logopts.KeyDisableCaller, next.DisableCaller)
	next.DisableStacktrace = snap.GetBool(logopts.KeyDisableStacktrace, next.DisableStacktrace)

	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid logger configuration: %w", err)
	}
	if err := next.Init(); err != nil {
		return fmt.Errorf("failed to apply logger config: %w", err)
	}
	rl.opts = next

	logger.Infof("Logger configuration reloaded: level=%s, format=%s, development=%v",
		next.Level, next.Format, next.Development)
	return nil
}

// GetOptions returns a copy of the current logger options.
func (rl *ReloadableLogger) GetOptions() *logopts.Options {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.opts.Clone()
}

// RegisterWithWatcher registers this reloadable logger with a configuration watcher.
func (rl *ReloadableLogger) RegisterWithWatcher(watcher *configpkg.Watcher, handlerID string, seed *configpkg.Snapshot) {
	subscriber := configpkg.NewReloadableSubscriber(rl, logopts.Keys...).Seed(seed)
	watcher.Subscribe(handlerID, subscriber.Handler())
}
