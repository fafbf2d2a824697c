// Package pins hands out exclusive GPIO claims. A claimed pin stays owned
// until its owner releases it; a second claim fails with errcode.PinInUse.
package pins

import (
	"sync"

	"joyadapter-go/errcode"

	"tinygo.org/x/drivers"
)

// ---- GPIO ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- I²C ----

type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// ---- Claims ----

type Registry struct {
	mu     sync.Mutex
	pins   PinFactory
	owners map[int]string
}

func NewRegistry(f PinFactory) *Registry {
	return &Registry{pins: f, owners: map[int]string{}}
}

// Claim reserves pin n for owner.
func (r *Registry) Claim(owner string, n int) (GPIOPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, taken := r.owners[n]; taken {
		return nil, &errcode.E{C: errcode.PinInUse, Op: "pins.Claim", Msg: "held by " + cur}
	}
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	r.owners[n] = owner
	return p, nil
}

// Release frees pin n if owner holds it. Releasing someone else's pin, or a
// pin that is not claimed, is ignored.
func (r *Registry) Release(owner string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owners[n] == owner {
		delete(r.owners, n)
	}
}

// Owner reports who holds pin n.
func (r *Registry) Owner(n int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[n]
	return o, ok
}

// Claimed returns the number of pins currently held.
func (r *Registry) Claimed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.owners)
}
