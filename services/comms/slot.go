package comms

import (
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/x/logx"
)

// Slot exclusively owns the primary backend.
type Slot struct {
	Log *logx.Logger // nil => close errors are dropped

	b backend.Backend
}

// Get returns the held backend, or nil when the slot is empty.
func (s *Slot) Get() backend.Backend { return s.b }

// Take removes and returns the held backend, leaving the slot empty.
func (s *Slot) Take() backend.Backend {
	b := s.b
	s.b = nil
	return b
}

// Replace closes the held backend, then builds and stores a new one. The old
// instance is always closed before build runs, so both are never live at
// once. If build fails the slot is left empty.
func (s *Slot) Replace(build func() (backend.Backend, error)) error {
	if old := s.Take(); old != nil {
		if err := old.Close(); err != nil {
			s.Log.Printf("close %s: %v", old.ID(), err)
		}
	}
	b, err := build()
	if err != nil {
		return err
	}
	s.b = b
	return nil
}
