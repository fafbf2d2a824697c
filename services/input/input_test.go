package input

import (
	"errors"
	"testing"

	"joyadapter-go/errcode"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/hal/platform"
	"joyadapter-go/types"
)

func TestGPIOButtonsActiveLow(t *testing.T) {
	f := platform.NewHostPinFactory()
	reg := pins.NewRegistry(f)
	g, err := NewGPIOButtons(reg, "buttons", []types.ButtonPin{
		{Button: types.BtnRT1, Pin: 8},
		{Button: types.BtnA, Pin: 14},
	})
	if err != nil {
		t.Fatalf("NewGPIOButtons: %v", err)
	}
	p8, _ := f.Get(8)
	p8.Drive(false) // held

	s := Sample([]Source{g})
	if !s.RT1() {
		t.Fatal("rt1 should read pressed when driven low")
	}
	if s.Pressed(types.BtnA) {
		t.Fatal("a idles high through the pull-up and must read released")
	}

	g.Close()
	if reg.Claimed() != 0 {
		t.Fatalf("Close left %d pins claimed", reg.Claimed())
	}
}

func TestGPIOButtonsActiveHigh(t *testing.T) {
	f := platform.NewHostPinFactory()
	g, err := NewGPIOButtons(pins.NewRegistry(f), "buttons", []types.ButtonPin{
		{Button: types.BtnStart, Pin: 0, ActiveHigh: true},
	})
	if err != nil {
		t.Fatalf("NewGPIOButtons: %v", err)
	}
	s := Sample([]Source{g})
	if s.Pressed(types.BtnStart) {
		t.Fatal("pull-down input should read released")
	}
	p0, _ := f.Get(0)
	p0.Drive(true)
	g.UpdateInputs(s)
	if !s.Pressed(types.BtnStart) {
		t.Fatal("active-high press not observed")
	}
}

func TestGPIOButtonsReleasesOnConflict(t *testing.T) {
	reg := pins.NewRegistry(platform.NewHostPinFactory())
	if _, err := reg.Claim("joybus", 28); err != nil {
		t.Fatal(err)
	}
	_, err := NewGPIOButtons(reg, "buttons", []types.ButtonPin{
		{Button: types.BtnA, Pin: 14},
		{Button: types.BtnB, Pin: 28},
	})
	if !errors.Is(err, errcode.PinInUse) {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if o, ok := reg.Owner(14); ok {
		t.Fatalf("pin 14 still held by %q after failed construction", o)
	}
}

func TestNunchukReadsStickAndButtons(t *testing.T) {
	bus := &platform.HostI2C{Devices: map[uint16][]byte{
		NunchukAddress: {200, 30, 0, 0, 0, 0b10}, // Z held, C released
	}}
	n := NewNunchuk(bus)

	s := Sample([]Source{n})
	if !s.NunchukConnected {
		t.Fatal("nunchuk not reported connected")
	}
	if s.LeftX != 200 || s.LeftY != 30 {
		t.Fatalf("stick = %d,%d", s.LeftX, s.LeftY)
	}
	if !s.Pressed(types.BtnNunchukZ) || s.Pressed(types.BtnNunchukC) {
		t.Fatal("button bits decoded wrongly")
	}
	if len(bus.Writes) != 3 {
		t.Fatalf("expected 2 init writes + 1 read pointer, got %d", len(bus.Writes))
	}
}

func TestNunchukAbsentLeavesNeutral(t *testing.T) {
	n := NewNunchuk(&platform.HostI2C{})
	s := Sample([]Source{n, nil})
	if s.NunchukConnected || s.LeftX != 128 || s.LeftY != 128 {
		t.Fatalf("absent nunchuk changed state: %+v", s)
	}
}
