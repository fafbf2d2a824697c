// Package input holds the input sources polled into a types.InputState.
package input

import "joyadapter-go/types"

// Source fills in the controls it owns. Sources must not clear controls
// owned by other sources.
type Source interface {
	UpdateInputs(s *types.InputState)
}

// Sample takes a boot-time snapshot: a fresh neutral state updated once by
// every source in order. Nil sources are skipped.
func Sample(sources []Source) *types.InputState {
	s := types.NewInputState()
	for _, src := range sources {
		if src != nil {
			src.UpdateInputs(s)
		}
	}
	return s
}
