// Package selection resolves persisted backend configs from boot input.
package selection

import "joyadapter-go/types"

// FromButtons returns the first config whose activation bindings are all
// held. Configs without bindings never match. No match yields the zero
// config (BackendUnspecified).
func FromButtons(s *types.InputState, configs []types.BackendConfig) types.BackendConfig {
	if s == nil {
		return types.BackendConfig{}
	}
	for _, c := range configs {
		if s.AllPressed(c.Activation) {
			return c
		}
	}
	return types.BackendConfig{}
}

// FromID returns the first config for id. When configs has no entry for id
// the result is a bare config carrying id with no default mode.
func FromID(id types.BackendID, configs []types.BackendConfig) types.BackendConfig {
	for _, c := range configs {
		if c.BackendID == id {
			return c
		}
	}
	return types.BackendConfig{BackendID: id}
}
