// Package boot wires the adapter together at power-on: it waits for the
// persisted config on the bus, claims the input pins, samples the buttons
// held at boot and builds the communication backends.
package boot

import (
	"context"

	"joyadapter-go/bus"
	"joyadapter-go/errcode"
	"joyadapter-go/services/comms"
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/config"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
	"joyadapter-go/x/logx"
	"joyadapter-go/x/timex"
)

// StateTopic carries the retained types.CommsState.
var StateTopic = bus.T("comms", "state")

type Options struct {
	Pinout types.Pinout
	Pins   pins.PinFactory
	I2C    pins.I2CBusFactory // nil => no extension port
	Hooks  comms.Hooks
	Conn   *bus.Connection
	Log    *logx.Logger
}

type Adapter struct {
	opts    Options
	reg     *pins.Registry
	buttons *input.GPIOButtons
	sources []input.Source
	inputs  *types.InputState
	cfg     types.Config
	set     comms.Set
}

// Start blocks until a config is retained on config.Topic (or ctx ends),
// then builds the backends. The returned Adapter owns every claimed pin.
func Start(ctx context.Context, o Options) (*Adapter, error) {
	cfg, err := awaitConfig(ctx, o.Conn)
	if err != nil {
		return nil, err
	}

	a := &Adapter{opts: o, reg: pins.NewRegistry(o.Pins), cfg: cfg}
	a.set.Log = o.Log

	a.buttons, err = input.NewGPIOButtons(a.reg, "buttons", o.Pinout.Buttons)
	if err != nil {
		return nil, err
	}
	a.sources = append(a.sources, a.buttons)
	if o.Pinout.ExtensionI2C != "" && o.I2C != nil {
		if i2c, ok := o.I2C.ByID(o.Pinout.ExtensionI2C); ok {
			a.sources = append(a.sources, input.NewNunchuk(i2c))
		} else {
			o.Log.Printf("extension bus %s unavailable", o.Pinout.ExtensionI2C)
		}
	}

	if _, err := a.Reinitialize(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Reinitialize re-samples the boot buttons and rebuilds the backends.
func (a *Adapter) Reinitialize() (int, error) {
	a.inputs = input.Sample(a.sources)
	n, err := a.set.Initialize(comms.Env{
		Inputs:  a.inputs,
		Sources: a.sources,
		Config:  &a.cfg,
		Pinout:  a.opts.Pinout,
		Pins:    a.reg,
	}, a.opts.Hooks)
	a.publishState()
	return n, err
}

// Poll runs one scan of every backend's input sources.
func (a *Adapter) Poll() {
	for _, b := range a.set.Backends() {
		b.ScanInputs()
	}
}

func (a *Adapter) Backends() []backend.Backend { return a.set.Backends() }
func (a *Adapter) Inputs() *types.InputState   { return a.inputs }
func (a *Adapter) Pins() *pins.Registry        { return a.reg }

// Close releases the backends and the input pins.
func (a *Adapter) Close() {
	a.set.Close()
	if a.buttons != nil {
		a.buttons.Close()
	}
	a.publishState()
}

func (a *Adapter) publishState() {
	if a.opts.Conn == nil {
		return
	}
	st := a.set.State()
	st.TS = timex.NowMs()
	a.opts.Conn.Publish(a.opts.Conn.NewMessage(StateTopic, st, true))
}

func awaitConfig(ctx context.Context, conn *bus.Connection) (types.Config, error) {
	if conn == nil {
		return types.Config{}, errcode.Wrap(errcode.InvalidConfig, "boot.Start", "no bus connection")
	}
	sub := conn.Subscribe(config.Topic)
	defer conn.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return types.Config{}, &errcode.E{C: errcode.Timeout, Op: "boot.Start", Msg: "waiting for config", Err: ctx.Err()}
		case m := <-sub.Channel():
			if cfg, ok := m.Payload.(types.Config); ok {
				return cfg, nil
			}
		}
	}
}
