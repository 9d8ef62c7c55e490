package platform

import (
	"log/slog"

	"github.com/aretw0/mulch/pkg/core"
)

// options holds the internal configuration for the mulch service.
type options struct {
	vault  core.Vault
	logger *slog.Logger
	config map[string]interface{}
}

// Option defines a functional option for configuring mulch.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		vault:  nil,
		logger: nil,
		config: make(map[string]interface{}),
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the service and adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithVault allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter is skipped.
func WithVault(v core.Vault) Option {
	return func(o *options) {
		o.vault = v
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".mulch").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithReadOnly enables read-only mode: write operations return
// core.ErrReadOnly and initialization skips directory creation.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
