package config

import "fmt"

// Reloadable defines the interface for components that can handle configuration changes.
// Implementations should validate the new snapshot and apply changes atomically.
type Reloadable interface {
	OnConfigChange(snap *Snapshot) error
}

// ReloadableSubscriber wraps a Reloadable component and only notifies it
// when one of its keys changed.
type ReloadableSubscriber struct {
	component Reloadable
	keys      []string
	last      *Snapshot
}

// NewReloadableSubscriber creates a subscriber for component watching keys.
// With no keys, any change notifies the component.
func NewReloadableSubscriber(component Reloadable, keys ...string) *ReloadableSubscriber {
	return &ReloadableSubscriber{
		component: component,
		keys:      keys,
	}
}

// Handler returns a ChangeHandler that can be registered with the Watcher.
// The first call only records the snapshot when it matches the one the
// component was built from.
func (rs *ReloadableSubscriber) Handler() ChangeHandler {
	return func(snap *Snapshot) error {
		if rs.last != nil && !snap.Changed(rs.last, rs.keys...) {
			rs.last = snap
			return nil
		}
		if err := rs.component.OnConfigChange(snap); err != nil {
			return fmt.Errorf("component rejected config change: %w", err)
		}
		rs.last = snap
		return nil
	}
}

// Seed records the snapshot the component currently reflects, so that
// the first notification is filtered against it.
func (rs *ReloadableSubscriber) Seed(snap *Snapshot) *ReloadableSubscriber {
	rs.last = snap
	return rs
}
