// Package config provides the key-value configuration source and its hot
// reload plumbing.
//
// A Source wraps a viper instance and hands out immutable Snapshots.
// Refresh re-reads viper and returns a new Snapshot; earlier snapshots are
// never modified, so a component may keep using the one it was built with.
//
//	v := viper.New()
//	v.SetConfigFile("configs/guidctl.yaml")
//	_ = v.ReadInConfig()
//
//	src := config.NewSource(v)
//	mac := machineid.Resolve(machineid.WithConfig(src.Snapshot()))
//
//	watcher := config.NewWatcher(src)
//	watcher.Subscribe("generator", config.NewReloadableSubscriber(holder, machineid.ConfigKey).Handler())
//	watcher.Start()
//
// Typed getters follow the usual property conventions: a present but
// empty boolean reads as true, and "yes"/"no" and "1"/"0" are accepted
// alongside "true"/"false". Values that do not parse fall back to the
// caller's default and are logged.
package config
