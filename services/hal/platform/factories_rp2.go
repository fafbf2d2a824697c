//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"joyadapter-go/services/hal/pins"

	"tinygo.org/x/drivers"
)

// DefaultI2CFactory configures i2c0 and i2c1 on board-default pins. The
// extension port runs at 400 kHz.
func DefaultI2CFactory() pins.I2CBusFactory {
	f := &rp2I2CFactory{buses: make(map[string]drivers.I2C)}

	b0 := machine.I2C0
	_ = b0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	f.buses["i2c0"] = b0

	b1 := machine.I2C1
	_ = b1.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C1_SDA_PIN,
		SCL:       machine.I2C1_SCL_PIN,
	})
	f.buses["i2c1"] = b1

	return f
}

type rp2I2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *rp2I2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultPinFactory maps logical numbers directly to machine.Pin(n).
func DefaultPinFactory() pins.PinFactory { return rp2PinFactory{} }

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (pins.GPIOPin, bool) {
	// RP2 user GPIOs are GP0..GP28.
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) Number() int { return r.n }

func (r *rp2Pin) ConfigureInput(pull pins.Pull) error {
	mode := machine.PinInput
	switch pull {
	case pins.PullUp:
		mode = machine.PinInputPullup
	case pins.PullDown:
		mode = machine.PinInputPulldown
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
