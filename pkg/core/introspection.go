package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	ReadOnly  bool   `json:"read_only"`
	VaultType string `json:"vault_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vaultType := "unknown"
	if s.vault != nil {
		vaultType = "vault"
		if comp, ok := s.vault.(introspection.Component); ok {
			vaultType = comp.ComponentType()
		}
	}

	return ServiceState{
		ReadOnly:  s.readOnly,
		VaultType: vaultType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
