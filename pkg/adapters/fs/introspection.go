package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path      string `json:"path"`
	SystemDir string `json:"system_dir"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Path:      s.Path,
		SystemDir: s.config.SystemDir,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-vault"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
