package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"joyadapter-go/errcode"
)

func simulate(t *testing.T, cfg simConfig) string {
	t.Helper()
	if cfg.Device == "" {
		cfg.Device = "pico"
	}
	if cfg.Board == "" {
		cfg.Board = "pico_adapter"
	}
	cfg.Timeout = time.Second
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRunDefault(t *testing.T) {
	out := simulate(t, simConfig{})
	for _, want := range []string{
		"[comms] selected backend=gamecube default_mode=1",
		"state ready (initialised)",
		"backend[0] id=gamecube rate=125 data_pin=28 mode=1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRunHeldQuotedList(t *testing.T) {
	out := simulate(t, simConfig{Held: `'c_left' "rt1"`})
	if !strings.Contains(out, "backend[0] id=n64 rate=60 data_pin=28 mode=3") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunReinitAfterRelease(t *testing.T) {
	out := simulate(t, simConfig{Held: "rt1", Reinit: true})
	first := strings.Index(out, "backend[0] id=gamecube rate=0 ")
	second := strings.Index(out, "backend[0] id=gamecube rate=125 ")
	if first < 0 || second < first {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunRejectsUnwiredButton(t *testing.T) {
	err := run(context.Background(), simConfig{Device: "pico", Board: "pico_adapter", Held: "nunchuk_c", Timeout: time.Second}, &bytes.Buffer{})
	if errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("err = %v", err)
	}
}

func TestRunUnknownBoard(t *testing.T) {
	err := run(context.Background(), simConfig{Board: "nope"}, &bytes.Buffer{})
	if errcode.Of(err) != errcode.UnknownDevice {
		t.Fatalf("err = %v", err)
	}
}
