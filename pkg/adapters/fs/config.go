package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// VaultConfig is the optional per-vault configuration stored at
// <root>/<system dir>/config.yaml.
type VaultConfig struct {
	// ReadOnly makes every write operation fail with core.ErrReadOnly.
	ReadOnly bool `yaml:"read_only"`

	// DebounceMS is the watcher debounce window in milliseconds.
	// Zero means the default (50ms).
	DebounceMS int `yaml:"debounce_ms"`

	// Ignore lists doublestar glob patterns of note ids the watcher
	// should not report.
	Ignore []string `yaml:"ignore"`
}

// Debounce returns the configured debounce window.
func (c VaultConfig) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// LoadVaultConfig reads the vault config file. A missing file yields the
// zero config; a malformed one is an error.
func (s *Store) LoadVaultConfig() (VaultConfig, error) {
	path := filepath.Join(s.Path, s.config.SystemDir, "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return VaultConfig{}, nil
		}
		return VaultConfig{}, fmt.Errorf("failed to read vault config: %w", err)
	}

	var cfg VaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return VaultConfig{}, fmt.Errorf("failed to parse vault config: %w", err)
	}
	return cfg, nil
}
