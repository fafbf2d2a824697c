package comms

import (
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/types"
	"joyadapter-go/x/mathx"
)

// ApplyDefaultMode sets cfg.GameModeConfigs[bc.DefaultModeConfig-1] on every
// backend in order and returns how many received it. An unset or
// out-of-range index applies nothing.
func ApplyDefaultMode(bc types.BackendConfig, cfg *types.Config, backends []backend.Backend) int {
	i, ok := mathx.Index1(bc.DefaultModeConfig, len(cfg.GameModeConfigs))
	if !ok {
		return 0
	}
	mode := cfg.GameModeConfigs[i]
	for _, b := range backends {
		b.SetMode(mode)
	}
	return len(backends)
}
