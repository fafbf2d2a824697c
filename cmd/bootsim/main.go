//go:build !(rp2040 || rp2350)

// Command bootsim runs the adapter boot sequence on the host against fake
// pins, with the buttons named in BOOTSIM_HELD held down, and prints the
// resulting backend graph.
//
//	BOOTSIM_HELD="c_left rt1" go run ./cmd/bootsim
package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/shlex"

	"joyadapter-go/bus"
	"joyadapter-go/errcode"
	"joyadapter-go/services/boot"
	"joyadapter-go/services/comms"
	"joyadapter-go/services/config"
	"joyadapter-go/services/hal/platform"
	"joyadapter-go/types"
	"joyadapter-go/x/fmtx"
	"joyadapter-go/x/logx"
)

type simConfig struct {
	Device  string        `env:"BOOTSIM_DEVICE"  envDefault:"pico"`
	Board   string        `env:"BOOTSIM_BOARD"   envDefault:"pico_adapter"`
	Held    string        `env:"BOOTSIM_HELD"`
	Reinit  bool          `env:"BOOTSIM_REINIT"`
	Timeout time.Duration `env:"BOOTSIM_TIMEOUT" envDefault:"1s"`
}

func main() {
	var cfg simConfig
	if err := env.Parse(&cfg); err != nil {
		fmtx.Fprintf(os.Stderr, "bootsim: parse env: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmtx.Fprintf(os.Stderr, "bootsim: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg simConfig, w io.Writer) error {
	pinout, ok := platform.Pinout(cfg.Board)
	if !ok {
		return errcode.Wrap(errcode.UnknownDevice, "bootsim", "unknown board "+cfg.Board)
	}
	names, err := shlex.Split(cfg.Held)
	if err != nil {
		return &errcode.E{C: errcode.InvalidConfig, Op: "bootsim", Msg: "BOOTSIM_HELD", Err: err}
	}

	f := platform.NewHostPinFactory()
	held, err := holdButtons(f, pinout, names)
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, config.CtxDeviceKey, cfg.Device)
	b := bus.NewBus(4)
	conn := b.NewConnection("bootsim")
	config.NewService().Start(ctx, conn)

	bootCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	a, err := boot.Start(bootCtx, boot.Options{
		Pinout: pinout,
		Pins:   f,
		I2C:    platform.DefaultI2CFactory(),
		Hooks:  comms.DefaultHooks(),
		Conn:   conn,
		Log:    logx.New("comms").WithWriter(w),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	sub := conn.Subscribe(boot.StateTopic)
	defer conn.Unsubscribe(sub)
	printState(w, <-sub.Channel())

	if !cfg.Reinit {
		return nil
	}
	for _, p := range held {
		p.Float()
	}
	if _, err := a.Reinitialize(); err != nil {
		return err
	}
	fmtx.Fprintf(w, "-- reinitialised with no buttons held\n")
	printState(w, <-sub.Channel())
	return nil
}

// holdButtons drives the pins wired to names to their pressed level.
func holdButtons(f *platform.HostPinFactory, pinout types.Pinout, names []string) ([]*platform.FakePin, error) {
	var held []*platform.FakePin
	for _, name := range names {
		bp, ok := findButton(pinout, types.Button(name))
		if !ok {
			return nil, errcode.Wrap(errcode.UnknownPin, "bootsim", "button not wired: "+name)
		}
		p, ok := f.Get(bp.Pin)
		if !ok {
			return nil, errcode.Wrap(errcode.UnknownPin, "bootsim", "no pin for "+name)
		}
		p.Drive(bp.ActiveHigh)
		held = append(held, p)
	}
	return held, nil
}

func findButton(pinout types.Pinout, b types.Button) (types.ButtonPin, bool) {
	for _, bp := range pinout.Buttons {
		if bp.Button == b {
			return bp, true
		}
	}
	return types.ButtonPin{}, false
}

func printState(w io.Writer, m *bus.Message) {
	st, _ := m.Payload.(types.CommsState)
	fmtx.Fprintf(w, "state %s (%s)\n", st.Level, st.Status)
	for i, b := range st.Backends {
		fmtx.Fprintf(w, "backend[%d] id=%s rate=%d data_pin=%d mode=%d\n", i, b.ID, b.PollingRate, b.DataPin, b.Mode)
	}
}
