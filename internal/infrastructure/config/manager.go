package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrRequiresRestart is returned by TryReload when a changed key can only take
// effect after a restart. Reloadable keys in the same change are still applied.
var ErrRequiresRestart = errors.New("configuration change requires restart")

// ReloadFunc is called after a successful reload with the previous and new config.
type ReloadFunc func(old, updated *Config)

// ConfigManager owns the live configuration and reloads it from disk.
type ConfigManager struct {
	mu       sync.RWMutex
	path     string
	current  *Config
	settings map[string]any
	onReload []ReloadFunc
	logger   *slog.Logger
}

// NewConfigManager creates a manager seeded with the configuration loaded at startup.
func NewConfigManager(path string, initial *Config, logger *slog.Logger) *ConfigManager {
	m := &ConfigManager{
		path:    path,
		current: initial,
		logger:  logger,
	}

	settings, err := readSettings(path)
	if err != nil {
		logger.Debug("config file not readable, starting with empty snapshot", "path", path, "error", err)
		settings = map[string]any{}
	}
	m.settings = settings

	return m
}

// Current returns the live configuration.
func (m *ConfigManager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// OnReload registers a callback invoked after each applied reload.
func (m *ConfigManager) OnReload(fn ReloadFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReload = append(m.onReload, fn)
}

// TryReload re-reads the config file and applies the reloadable keys that changed.
func (m *ConfigManager) TryReload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings, err := readSettings(m.path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	changed := changedKeys(m.settings, settings)
	if len(changed) == 0 {
		m.logger.Debug("configuration unchanged", "path", m.path)
		return nil
	}

	loaded, err := Load(m.path)
	if err != nil {
		return err
	}

	var static []string
	for _, key := range changed {
		if IsReloadable(key) {
			continue
		}
		static = append(static, key)
		m.logger.Warn("configuration change requires restart",
			"key", key,
			"reason", getRestartReason(key),
		)
	}

	old := m.current
	updated := *old
	updated.Logging.Level = loaded.Logging.Level

	m.current = &updated
	m.settings = settings

	for _, fn := range m.onReload {
		fn(old, &updated)
	}

	m.logger.Info("configuration reloaded",
		"changed_keys", changed,
		"restart_required", len(static) > 0,
	)

	if len(static) > 0 {
		return ErrRequiresRestart
	}
	return nil
}

// Watch reloads the configuration whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are handled.
func (m *ConfigManager) Watch(ctx context.Context) error {
	if _, err := os.Stat(m.path); err != nil {
		m.logger.Info("config file not found, hot reload disabled", "path", m.path)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	target := filepath.Clean(m.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	m.logger.Info("watching config file for changes", "path", target)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := m.TryReload(); err != nil && !errors.Is(err, ErrRequiresRestart) {
					m.logger.Error("config reload failed", "error", err, "path", target)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Error("config watcher error", "error", err)
			}
		}
	}()

	return nil
}

// readSettings returns the file's settings flattened to dotted keys.
func readSettings(path string) (map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	settings := make(map[string]any)
	for _, key := range v.AllKeys() {
		settings[key] = v.Get(key)
	}
	return settings, nil
}

// changedKeys returns the sorted keys whose values differ between two snapshots.
func changedKeys(before, after map[string]any) []string {
	var changed []string
	for key, value := range after {
		if prev, ok := before[key]; !ok || !reflect.DeepEqual(prev, value) {
			changed = append(changed, key)
		}
	}
	for key := range before {
		if _, ok := after[key]; !ok {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}
