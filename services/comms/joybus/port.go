// Package joybus holds the state shared by the GameCube and N64 backends:
// the claimed data line, the shared input wiring and the applied mode.
// Bit-level timing lives in the PIO program and is not modelled here.
package joybus

import (
	"joyadapter-go/errcode"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
)

// Options configures a Port.
type Options struct {
	Owner       string         // claim owner name, e.g. "gamecube"
	Pins        *pins.Registry // nil => the data line is not claimed
	DataPin     int
	Inputs      *types.InputState
	Sources     []input.Source
	PollingRate uint32
}

type Port struct {
	owner   string
	reg     *pins.Registry
	line    pins.GPIOPin
	dataPin int

	inputs  *types.InputState
	sources []input.Source
	rate    uint32

	mode    types.GameModeConfig
	hasMode bool
	closed  bool
}

// Open claims the data line and idles it high (joybus is open-drain with an
// external pull-up).
func Open(o Options) (*Port, error) {
	p := &Port{
		owner:   o.Owner,
		reg:     o.Pins,
		dataPin: o.DataPin,
		inputs:  o.Inputs,
		sources: o.Sources,
		rate:    o.PollingRate,
	}
	if p.inputs == nil {
		p.inputs = types.NewInputState()
	}
	if o.Pins == nil {
		return p, nil
	}
	line, err := o.Pins.Claim(o.Owner, o.DataPin)
	if err != nil {
		return nil, err
	}
	if err := line.ConfigureOutput(true); err != nil {
		o.Pins.Release(o.Owner, o.DataPin)
		return nil, err
	}
	p.line = line
	return p, nil
}

func (p *Port) PollingRate() uint32 { return p.rate }
func (p *Port) DataPin() int        { return p.dataPin }

// Inputs is the InputState shared with the caller.
func (p *Port) Inputs() *types.InputState { return p.inputs }

func (p *Port) SetMode(m types.GameModeConfig) {
	p.mode = m
	p.hasMode = true
}

func (p *Port) Mode() (types.GameModeConfig, bool) { return p.mode, p.hasMode }

func (p *Port) ScanInputs() {
	for _, s := range p.sources {
		if s != nil {
			s.UpdateInputs(p.inputs)
		}
	}
}

// Close releases the data line.
func (p *Port) Close() error {
	if p.closed {
		return errcode.Closed
	}
	p.closed = true
	if p.line != nil {
		p.reg.Release(p.owner, p.dataPin)
		p.line = nil
	}
	return nil
}

func (p *Port) Closed() bool { return p.closed }
