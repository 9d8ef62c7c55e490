package mulch

import (
	"log/slog"

	"github.com/aretw0/mulch/internal/platform"
	"github.com/aretw0/mulch/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring mulch.
type Option = platform.Option

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithVault allows injecting a custom storage adapter.
func WithVault(v core.Vault) Option {
	return platform.WithVault(v)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".mulch").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithWatcherErrorHandler registers a callback for runtime watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new mulch Service over the vault at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a vault explicitly without wrapping it in a service.
func Init(path string, opts ...Option) (core.Vault, error) {
	return platform.Init(path, opts...)
}
