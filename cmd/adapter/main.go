//go:build rp2040 || rp2350

package main

import (
	"context"
	"runtime"
	"time"

	"joyadapter-go/bus"
	"joyadapter-go/services/boot"
	"joyadapter-go/services/comms"
	"joyadapter-go/services/config"
	"joyadapter-go/services/hal/platform"
	"joyadapter-go/services/heartbeat"
	"joyadapter-go/x/fmtx"
	"joyadapter-go/x/logx"
)

const (
	deviceID      = "pico"
	configTimeout = 2 * time.Second
)

func main() {
	// Allow the console to settle before we print.
	time.Sleep(500 * time.Millisecond)
	fmtx.DefaultOutput = platform.Console()
	log := logx.New("main")

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)
	b := bus.NewBus(4)
	conn := b.NewConnection("adapter")

	log.Printf("board=%s", platform.SelectedBoard)
	config.NewService().Start(ctx, conn)

	bootCtx, cancel := context.WithTimeout(ctx, configTimeout)
	a, err := boot.Start(bootCtx, boot.Options{
		Pinout: platform.SelectedPinout(),
		Pins:   platform.DefaultPinFactory(),
		I2C:    platform.DefaultI2CFactory(),
		Hooks:  comms.DefaultHooks(),
		Conn:   conn,
		Log:    logx.New("comms"),
	})
	cancel()
	if err != nil {
		// Nothing to drive; keep reporting so the fault is visible on the console.
		for {
			log.Printf("boot failed: %v", err)
			time.Sleep(time.Second)
		}
	}

	if err := heartbeat.New(a).Start(ctx, conn); err != nil {
		log.Printf("heartbeat: %v", err)
	}

	tick := time.NewTicker(10 * time.Second)
	defer tick.Stop()
	for range tick.C {
		printMem()
	}
}

// printMem prints a compact snapshot of TinyGo runtime memory stats.
func printMem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	println(
		"[mem]",
		"alloc:", uint32(ms.Alloc),
		"heapInuse:", uint32(ms.HeapInuse),
		"mallocs:", uint32(ms.Mallocs),
		"frees:", uint32(ms.Frees),
	)
}
