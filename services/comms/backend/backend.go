// Package backend defines the console communication handler contract shared
// by every protocol implementation.
package backend

import "joyadapter-go/types"

// Backend emulates one console's controller protocol. A Backend is owned by
// exactly one holder at a time and must be closed before it is replaced.
type Backend interface {
	ID() types.BackendID
	PollingRate() uint32
	DataPin() int

	// SetMode applies a gameplay mode. Backends start with no mode.
	SetMode(mode types.GameModeConfig)
	Mode() (types.GameModeConfig, bool)

	// ScanInputs polls every input source into the shared InputState.
	ScanInputs()

	// Close releases hardware claims. A second Close returns errcode.Closed.
	Close() error
}

// Describe summarises b for the retained comms/state payload.
func Describe(b Backend, modeIndex uint8) types.BackendInfo {
	return types.BackendInfo{
		ID:          b.ID().String(),
		PollingRate: b.PollingRate(),
		DataPin:     b.DataPin(),
		Mode:        modeIndex,
	}
}
