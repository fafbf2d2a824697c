// Package comms turns the persisted configuration and the boot-time button
// state into the set of console communication backends for this session.
//
// Initialize runs once at boot (and again on an explicit reinitialisation)
// before the poll loop starts. It is not safe for concurrent use.
package comms

import (
	"joyadapter-go/errcode"
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/hal/pins"
	"joyadapter-go/services/input"
	"joyadapter-go/types"
	"joyadapter-go/x/logx"
	"joyadapter-go/x/mathx"
)

// MaxBackends bounds the primary plus any secondaries.
const MaxBackends = 4

// Env is what the factories wire backends to.
type Env struct {
	Inputs  *types.InputState
	Sources []input.Source
	Config  *types.Config
	Pinout  types.Pinout
	Pins    *pins.Registry // nil => backends do not claim the data pin
}

// Set owns the backends built by Initialize.
type Set struct {
	Log *logx.Logger // nil => silent

	primary  Slot
	backends [MaxBackends]backend.Backend
	n        int
	selected types.BackendConfig
}

// Initialize validates hooks, resolves the backend config, builds the
// primary and any secondaries, and applies the config's default mode to all
// of them. It returns the number of backends; 0 means nothing was built and
// err says why. Backends from a previous call are closed first.
func (s *Set) Initialize(env Env, h Hooks) (int, error) {
	if err := h.validate(); err != nil {
		s.Log.Printf("init failed: %v", err)
		s.Close()
		return 0, err
	}
	if env.Config == nil {
		s.Close()
		return 0, errcode.Wrap(errcode.InvalidConfig, "comms.Initialize", "config not loaded")
	}

	bc := SelectBackendConfig(h.SelectBackendConfig, env.Inputs, env.Config)
	s.Log.Printf("selected backend=%s default_mode=%d", bc.BackendID, bc.DefaultModeConfig)

	s.closeSecondaries()
	s.n = 0

	s.primary.Log = s.Log
	if err := h.InitPrimary(&s.primary, bc.BackendID, env); err != nil {
		s.Log.Printf("primary init failed: %v", err)
		s.Close()
		return 0, err
	}
	primary := s.primary.Get()
	if primary == nil {
		s.Close()
		return 0, errcode.Wrap(errcode.UnknownBackend, "comms.Initialize", "primary initializer built nothing")
	}
	s.backends[0] = primary
	n := 1

	if h.InitSecondary != nil {
		k := mathx.Clamp(h.InitSecondary(s.backends[1:], primary, bc.BackendID, env), 0, MaxBackends-1)
		// Count only what the hook actually wrote, packed after the primary.
		for _, b := range s.backends[1 : 1+k] {
			if b != nil {
				s.backends[n] = b
				n++
			}
		}
		if n-1 < k {
			s.Log.Printf("secondary initializer reported %d backends, wrote %d", k, n-1)
		}
	}
	for i := n; i < MaxBackends; i++ {
		s.backends[i] = nil
	}
	s.n = n
	s.selected = bc

	applied := ApplyDefaultMode(bc, env.Config, s.backends[:n])
	s.Log.Printf("backends=%d primary=%s rate=%d mode_applied=%d", n, primary.ID(), primary.PollingRate(), applied)
	return n, nil
}

// Backends returns the live backends, primary first.
func (s *Set) Backends() []backend.Backend { return s.backends[:s.n] }

// Primary returns the primary backend or nil.
func (s *Set) Primary() backend.Backend { return s.primary.Get() }

// Selected returns the backend config resolved by the last Initialize.
func (s *Set) Selected() types.BackendConfig { return s.selected }

// State summarises the live backends for the retained comms/state message.
func (s *Set) State() types.CommsState {
	if s.n == 0 {
		return types.CommsState{Level: "error", Status: "no_backends"}
	}
	st := types.CommsState{Level: "ready", Status: "initialised"}
	mode := s.selected.DefaultModeConfig
	for _, b := range s.Backends() {
		m := uint8(0)
		if _, ok := b.Mode(); ok {
			m = mode
		}
		st.Backends = append(st.Backends, backend.Describe(b, m))
	}
	return st
}

// Close releases every backend.
func (s *Set) Close() {
	s.closeSecondaries()
	if b := s.primary.Take(); b != nil {
		s.closeBackend(b)
	}
	s.backends = [MaxBackends]backend.Backend{}
	s.n = 0
	s.selected = types.BackendConfig{}
}

func (s *Set) closeSecondaries() {
	for i := 1; i < s.n; i++ {
		if b := s.backends[i]; b != nil {
			s.closeBackend(b)
		}
		s.backends[i] = nil
	}
}

func (s *Set) closeBackend(b backend.Backend) {
	if err := b.Close(); err != nil {
		s.Log.Printf("close %s: %v", b.ID(), err)
	}
}
