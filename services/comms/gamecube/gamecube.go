// Package gamecube implements the GameCube controller backend.
package gamecube

import (
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/comms/joybus"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
)

const (
	// DefaultPollingRate is the assumed console poll rate in Hz. Zero turns
	// off poll-delay compensation (respond as soon as polled).
	DefaultPollingRate uint32 = 125

	owner = "gamecube"
)

var _ backend.Backend = (*Backend)(nil)

type Backend struct {
	*joybus.Port
}

// New claims dataPin (when reg is non-nil) and returns a GameCube backend
// reading from inputs and sources.
func New(reg *pins.Registry, inputs *types.InputState, sources []input.Source, pollingRate uint32, dataPin int) (*Backend, error) {
	p, err := joybus.Open(joybus.Options{
		Owner:       owner,
		Pins:        reg,
		DataPin:     dataPin,
		Inputs:      inputs,
		Sources:     sources,
		PollingRate: pollingRate,
	})
	if err != nil {
		return nil, err
	}
	return &Backend{Port: p}, nil
}

func (*Backend) ID() types.BackendID { return types.BackendGameCube }

// Report builds the 8-byte status response from the shared InputState.
//
//	0: 0 0 0 Start Y X B A
//	1: 1 L R Z Up Down Right Left
//	2..7: stick X/Y, C-stick X/Y, L/R analog
func (b *Backend) Report() [8]byte {
	s := b.Inputs()
	var r [8]byte
	r[0] = bits(s, types.BtnA, types.BtnB, types.BtnX, types.BtnY, types.BtnStart)
	r[1] = 0x80 | bits(s, types.BtnLeft, types.BtnRight, types.BtnDown, types.BtnUp, types.BtnZ, types.BtnR, types.BtnL)
	r[2], r[3] = s.LeftX, s.LeftY
	r[4], r[5] = s.RightX, s.RightY
	r[6], r[7] = s.LTrigger, s.RTrigger
	if s.Pressed(types.BtnL) && r[6] == 0 {
		r[6] = 140
	}
	if s.Pressed(types.BtnR) && r[7] == 0 {
		r[7] = 140
	}
	return r
}

// bits packs buttons into a byte, first argument at bit 0.
func bits(s *types.InputState, bs ...types.Button) byte {
	var v byte
	for i, b := range bs {
		if s.Pressed(b) {
			v |= 1 << i
		}
	}
	return v
}
