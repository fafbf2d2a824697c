package comms

import (
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/comms/gamecube"
	"joyadapter-go/services/comms/n64"
	"joyadapter-go/types"
)

// InitPrimaryBackend is the stock PrimaryInitializer. N64 gets a fixed 60 Hz
// polling rate; every other id, including unspecified or unknown ones,
// falls back to GameCube, whose polling rate is 0 when rt1 is held at boot
// and 125 otherwise.
func InitPrimaryBackend(slot *Slot, id types.BackendID, env Env) error {
	switch id {
	case types.BackendN64:
		return slot.Replace(func() (backend.Backend, error) {
			b, err := n64.New(env.Pins, env.Inputs, env.Sources, n64.PollingRate, env.Pinout.JoybusData)
			if err != nil {
				return nil, err
			}
			return b, nil
		})
	default:
		rate := gamecube.DefaultPollingRate
		if env.Inputs != nil && env.Inputs.RT1() {
			rate = 0
		}
		return slot.Replace(func() (backend.Backend, error) {
			b, err := gamecube.New(env.Pins, env.Inputs, env.Sources, rate, env.Pinout.JoybusData)
			if err != nil {
				return nil, err
			}
			return b, nil
		})
	}
}

// InitSecondaryBackendsNone is the stock SecondaryInitializer: no extra
// backends.
func InitSecondaryBackendsNone([]backend.Backend, backend.Backend, types.BackendID, Env) int {
	return 0
}
