package boot

import (
	"context"
	"testing"
	"time"

	"joyadapter-go/bus"
	"joyadapter-go/errcode"
	"joyadapter-go/services/comms"
	"joyadapter-go/services/config"
	"joyadapter-go/services/hal/platform"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
)

func startWith(t *testing.T, f *platform.HostPinFactory, pinout types.Pinout, i2c map[string]*platform.HostI2C) (*Adapter, *bus.Connection) {
	t.Helper()
	b := bus.NewBus(8)
	conn := b.NewConnection("test")
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "pico")
	config.NewService().Start(ctx, conn)

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	opts := Options{Pinout: pinout, Pins: f, Hooks: comms.DefaultHooks(), Conn: conn}
	if i2c != nil {
		opts.I2C = platform.NewHostI2CFactory(i2c)
	}
	a, err := Start(ctx, opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(a.Close)
	return a, conn
}

func TestStartUsesDefaultBackendConfig(t *testing.T) {
	f := platform.NewHostPinFactory()
	a, conn := startWith(t, f, platform.Boards["pico_adapter"], nil)

	bs := a.Backends()
	if len(bs) != 1 || bs[0].ID() != types.BackendGameCube || bs[0].PollingRate() != 125 {
		t.Fatalf("backends = %+v", bs)
	}
	// Embedded pico config: default_backend_config=1 -> gamecube, mode 1 (melee).
	if m, ok := bs[0].Mode(); !ok || m.Name != "melee" {
		t.Fatalf("mode = %+v,%v", m, ok)
	}

	sub := conn.Subscribe(StateTopic)
	select {
	case m := <-sub.Channel():
		st := m.Payload.(types.CommsState)
		if st.Level != "ready" || st.Backends[0].ID != "gamecube" || st.Backends[0].Mode != 1 {
			t.Fatalf("state = %+v", st)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("no retained comms/state")
	}
}

func TestHeldButtonsSelectN64AndRT1IsSampled(t *testing.T) {
	f := platform.NewHostPinFactory()
	pinout := platform.Boards["pico_adapter"]
	for _, bp := range pinout.Buttons {
		if bp.Button == types.BtnCLeft || bp.Button == types.BtnRT1 {
			p, _ := f.Get(bp.Pin)
			p.Drive(false)
		}
	}
	a, _ := startWith(t, f, pinout, nil)

	if !a.Inputs().RT1() || !a.Inputs().Pressed(types.BtnCLeft) {
		t.Fatal("boot sample missed held buttons")
	}
	p := a.Backends()[0]
	if p.ID() != types.BackendN64 || p.PollingRate() != 60 {
		t.Fatalf("primary = %v @ %d", p.ID(), p.PollingRate())
	}
	if m, ok := p.Mode(); !ok || m.Name != "ultimate" {
		t.Fatalf("mode = %+v,%v", m, ok)
	}
}

func TestReinitializeAfterRelease(t *testing.T) {
	f := platform.NewHostPinFactory()
	pinout := platform.Boards["pico_adapter"]
	var rt1 *platform.FakePin
	for _, bp := range pinout.Buttons {
		if bp.Button == types.BtnRT1 {
			rt1, _ = f.Get(bp.Pin)
		}
	}
	rt1.Drive(false)
	a, _ := startWith(t, f, pinout, nil)
	if a.Backends()[0].PollingRate() != 0 {
		t.Fatal("rt1 held: gamecube should poll at 0")
	}

	rt1.Float()
	n, err := a.Reinitialize()
	if err != nil || n != 1 {
		t.Fatalf("Reinitialize = %d, %v", n, err)
	}
	if a.Backends()[0].PollingRate() != 125 {
		t.Fatal("rt1 released: gamecube should poll at 125")
	}
	// buttons + joybus data line
	if got := a.Pins().Claimed(); got != len(pinout.Buttons)+1 {
		t.Fatalf("claimed pins = %d", got)
	}
}

func TestNunchukSourceWiredFromPinout(t *testing.T) {
	f := platform.NewHostPinFactory()
	i2c := map[string]*platform.HostI2C{
		"i2c0": {Devices: map[uint16][]byte{input.NunchukAddress: {10, 20, 0, 0, 0, 0b11}}},
	}
	a, _ := startWith(t, f, platform.Boards["pico_nunchuk"], i2c)
	if !a.Inputs().NunchukConnected || a.Inputs().LeftX != 10 {
		t.Fatalf("nunchuk not sampled: %+v", a.Inputs())
	}
}

func TestStartTimesOutWithoutConfig(t *testing.T) {
	conn := bus.NewBus(4).NewConnection("test")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := Start(ctx, Options{Pins: platform.NewHostPinFactory(), Hooks: comms.DefaultHooks(), Conn: conn})
	if errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err = %v, want timeout", err)
	}
}

func TestStartFailsOnMissingHook(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test")
	conn.Publish(conn.NewMessage(config.Topic, types.Config{}, true))

	f := platform.NewHostPinFactory()
	h := comms.DefaultHooks()
	h.SelectBackendConfig = nil
	_, err := Start(context.Background(), Options{Pinout: platform.Boards["pico_adapter"], Pins: f, Hooks: h, Conn: conn})
	if errcode.Of(err) != errcode.MissingHook {
		t.Fatalf("err = %v, want missing_hook", err)
	}
	sub := conn.Subscribe(StateTopic)
	m := <-sub.Channel()
	if st := m.Payload.(types.CommsState); st.Level != "error" {
		t.Fatalf("state = %+v", st)
	}
}
