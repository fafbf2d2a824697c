package input

import (
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/types"
)

// GPIOButtons reads one button per GPIO.
type GPIOButtons struct {
	owner string
	reg   *pins.Registry
	keys  []gpioKey
}

type gpioKey struct {
	button     types.Button
	pin        pins.GPIOPin
	activeHigh bool
}

// NewGPIOButtons claims every pin in bindings for owner and configures it as
// an input (pull-up for active-low wiring, pull-down otherwise). On error all
// pins claimed so far are released.
func NewGPIOButtons(reg *pins.Registry, owner string, bindings []types.ButtonPin) (*GPIOButtons, error) {
	g := &GPIOButtons{owner: owner, reg: reg}
	for _, b := range bindings {
		p, err := reg.Claim(owner, b.Pin)
		if err != nil {
			g.Close()
			return nil, err
		}
		pull := pins.PullUp
		if b.ActiveHigh {
			pull = pins.PullDown
		}
		if err := p.ConfigureInput(pull); err != nil {
			reg.Release(owner, b.Pin)
			g.Close()
			return nil, err
		}
		g.keys = append(g.keys, gpioKey{button: b.Button, pin: p, activeHigh: b.ActiveHigh})
	}
	return g, nil
}

func (g *GPIOButtons) UpdateInputs(s *types.InputState) {
	for _, k := range g.keys {
		lvl := k.pin.Get()
		s.Set(k.button, lvl == k.activeHigh)
	}
}

// Close releases all claimed pins.
func (g *GPIOButtons) Close() {
	for _, k := range g.keys {
		g.reg.Release(g.owner, k.pin.Number())
	}
	g.keys = nil
}
