package input

import (
	"joyadapter-go/types"

	"tinygo.org/x/drivers"
)

// NunchukAddress is the fixed I²C address of Wii extension controllers.
const NunchukAddress = 0x52

// Nunchuk polls a Wii Nunchuk on an I²C bus. The stick drives the left
// analog axes; C and Z map to BtnNunchukC / BtnNunchukZ.
type Nunchuk struct {
	bus   drivers.I2C
	addr  uint16
	ready bool
	buf   [6]byte
}

func NewNunchuk(bus drivers.I2C) *Nunchuk {
	return &Nunchuk{bus: bus, addr: NunchukAddress}
}

// begin runs the unencrypted init sequence. Safe to repeat; the controller
// may be plugged in after boot.
func (n *Nunchuk) begin() bool {
	if err := n.bus.Tx(n.addr, []byte{0xF0, 0x55}, nil); err != nil {
		return false
	}
	if err := n.bus.Tx(n.addr, []byte{0xFB, 0x00}, nil); err != nil {
		return false
	}
	n.ready = true
	return true
}

func (n *Nunchuk) UpdateInputs(s *types.InputState) {
	if !n.ready && !n.begin() {
		s.NunchukConnected = false
		return
	}
	if err := n.bus.Tx(n.addr, []byte{0x00}, n.buf[:]); err != nil {
		n.ready = false
		s.NunchukConnected = false
		return
	}
	s.NunchukConnected = true
	s.LeftX = n.buf[0]
	s.LeftY = n.buf[1]
	// Button bits are active-low: bit0 = Z, bit1 = C.
	s.Set(types.BtnNunchukZ, n.buf[5]&0x01 == 0)
	s.Set(types.BtnNunchukC, n.buf[5]&0x02 == 0)
}
