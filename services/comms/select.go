package comms

import (
	"joyadapter-go/services/comms/selection"
	"joyadapter-go/types"
	"joyadapter-go/x/mathx"
)

// SelectBackendConfig resolves the backend config in order of precedence:
// the selector's button-hold match, then cfg.DefaultBackendConfig, then the
// GameCube entry of cfg.BackendConfigs. The result never carries
// BackendUnspecified.
func SelectBackendConfig(sel BackendConfigSelector, inputs *types.InputState, cfg *types.Config) types.BackendConfig {
	bc := sel(inputs, cfg)

	if bc.BackendID == types.BackendUnspecified {
		if i, ok := mathx.Index1(cfg.DefaultBackendConfig, len(cfg.BackendConfigs)); ok {
			bc = cfg.BackendConfigs[i]
		}
	}

	if bc.BackendID == types.BackendUnspecified {
		bc = selection.FromID(types.BackendGameCube, cfg.BackendConfigs)
	}
	return bc
}
