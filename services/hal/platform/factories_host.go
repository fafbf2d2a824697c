//go:build !(rp2040 || rp2350)

package platform

import (
	"sync"

	"joyadapter-go/services/hal/pins"

	"tinygo.org/x/drivers"
)

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side tests and the
// simulator. Reads are served from Devices[addr]; an absent address fails
// with ErrNoDevice, like a NACK on real hardware.
type HostI2C struct {
	mu      sync.Mutex
	Devices map[uint16][]byte
	Writes  [][]byte
}

var _ drivers.I2C = (*HostI2C)(nil)

type nackError struct{}

func (nackError) Error() string { return "i2c: nack" }

// ErrNoDevice is returned for transactions to an address with no device.
var ErrNoDevice error = nackError{}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	data, ok := h.Devices[addr]
	if !ok {
		return ErrNoDevice
	}
	if len(w) > 0 {
		h.Writes = append(h.Writes, append([]byte(nil), w...))
	}
	copy(r, data)
	return nil
}

type hostI2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *hostI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultI2CFactory creates inert host I²C buses "i2c0" and "i2c1".
func DefaultI2CFactory() pins.I2CBusFactory {
	return NewHostI2CFactory(map[string]*HostI2C{
		"i2c0": {},
		"i2c1": {},
	})
}

// NewHostI2CFactory exposes the given buses by id.
func NewHostI2CFactory(buses map[string]*HostI2C) pins.I2CBusFactory {
	f := &hostI2CFactory{buses: map[string]drivers.I2C{}}
	for id, b := range buses {
		f.buses[id] = b
	}
	return f
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements pins.GPIOPin. An input idles at its pull level until a
// test drives it with Drive (e.g. to simulate a held button).
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    pins.Pull

	driven bool
	ext    bool
}

func (p *FakePin) ConfigureInput(pull pins.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	switch pull {
	case pins.PullUp:
		p.level = true
	case pins.PullDown:
		p.level = false
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// Drive forces the external level seen on an input pin, overriding the pull.
func (p *FakePin) Drive(level bool) {
	p.mu.Lock()
	p.driven, p.ext = true, level
	p.mu.Unlock()
}

// Float stops driving the pin; it returns to its pull level.
func (p *FakePin) Float() {
	p.mu.Lock()
	p.driven = false
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.driven && !p.modeOut {
		return p.ext
	}
	return p.level
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports the configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// HostPinFactory returns stable *FakePin instances per number in [0, Max].
type HostPinFactory struct {
	mu   sync.Mutex
	Max  int
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (pins.GPIOPin, bool) {
	p, ok := f.Get(n)
	if !ok {
		return nil, false
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests, creating it on first use.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n < 0 || n > f.Max {
		return nil, false
	}
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// DefaultPinFactory provides a host GPIO factory shaped like an RP2040
// (GP0..GP28).
func DefaultPinFactory() pins.PinFactory { return NewHostPinFactory() }

func NewHostPinFactory() *HostPinFactory {
	return &HostPinFactory{Max: 28, pins: make(map[int]*FakePin)}
}
