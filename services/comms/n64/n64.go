// Package n64 implements the N64 controller backend.
package n64

import (
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/comms/joybus"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
)

// PollingRate is the fixed N64 console poll rate in Hz.
const PollingRate uint32 = 60

const owner = "n64"

var _ backend.Backend = (*Backend)(nil)

type Backend struct {
	*joybus.Port
}

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

func (*Backend) ID() types.BackendID { return types.BackendN64 }

// Report builds the 4-byte status response.
//
//	0: A B Z Start Up Down Left Right (MSB first)
//	1: 0 0 L R C-Up C-Down C-Left C-Right
//	2, 3: signed stick X/Y
func (b *Backend) Report() [4]byte {
	s := b.Inputs()
	var r [4]byte
	r[0] = msb(s, types.BtnA, types.BtnB, types.BtnZ, types.BtnStart, types.BtnUp, types.BtnDown, types.BtnLeft, types.BtnRight)
	r[1] = msb(s, "", "", types.BtnL, types.BtnR, types.BtnCUp, types.BtnCDown, types.BtnCLeft, types.BtnCRight)
	r[2] = byte(int8(int(s.LeftX) - 128))
	r[3] = byte(int8(int(s.LeftY) - 128))
	return r
}

// msb packs up to eight buttons, first argument at bit 7. Empty names are
// always zero.
func msb(s *types.InputState, bs ...types.Button) byte {
	var v byte
	for i, b := range bs {
		if b != "" && s.Pressed(b) {
			v |= 0x80 >> i
		}
	}
	return v
}
