package comms

import (
	"joyadapter-go/errcode"
	"joyadapter-go/services/comms/backend"
	"joyadapter-go/services/comms/selection"
	"joyadapter-go/types"
)

// BackendConfigSelector picks a backend config from the boot button state.
// Returning a config with BackendUnspecified means "no match".
type BackendConfigSelector func(inputs *types.InputState, cfg *types.Config) types.BackendConfig

// USBBackendGetter is an alternate selection source for USB-capable builds.
// Reserved: Initialize does not consult it.
type USBBackendGetter func(inputs *types.InputState, cfg *types.Config) (types.BackendConfig, bool)

// ConsoleDetector reports which console is attached. Reserved: it must be
// supplied but Initialize does not consult it.
type ConsoleDetector func() types.ConsoleType

// PrimaryInitializer builds the mandatory backend for id into slot.
type PrimaryInitializer func(slot *Slot, id types.BackendID, env Env) error

// SecondaryInitializer writes extra backends into out (which excludes the
// primary's position) and returns how many it wrote.
type SecondaryInitializer func(out []backend.Backend, primary backend.Backend, id types.BackendID, env Env) int

// Hooks are the caller-supplied capabilities. A nil field is an absent hook.
// SelectBackendConfig, DetectConsole and InitPrimary are required.
type Hooks struct {
	SelectBackendConfig BackendConfigSelector
	USBBackendConfig    USBBackendGetter
	DetectConsole       ConsoleDetector
	InitSecondary       SecondaryInitializer
	InitPrimary         PrimaryInitializer
}

// DefaultHooks returns the stock hook set: button-hold selection, no USB
// selection, an undetermined console, the GameCube/N64 primary factory and
// no secondaries.
func DefaultHooks() Hooks {
	return Hooks{
		SelectBackendConfig: DefaultBackendConfigSelector,
		DetectConsole:       DefaultConsoleDetector,
		InitSecondary:       InitSecondaryBackendsNone,
		InitPrimary:         InitPrimaryBackend,
	}
}

// DefaultBackendConfigSelector matches held buttons against the activation
// bindings of cfg.BackendConfigs.
func DefaultBackendConfigSelector(inputs *types.InputState, cfg *types.Config) types.BackendConfig {
	return selection.FromButtons(inputs, cfg.BackendConfigs)
}

func DefaultConsoleDetector() types.ConsoleType { return types.ConsoleUnknown }

func (h Hooks) validate() error {
	const op = "comms.Initialize"
	switch {
	case h.SelectBackendConfig == nil:
		return errcode.Wrap(errcode.MissingHook, op, "backend config selector")
	case h.DetectConsole == nil:
		return errcode.Wrap(errcode.MissingHook, op, "console detector")
	case h.InitPrimary == nil:
		return errcode.Wrap(errcode.MissingHook, op, "primary initializer")
	}
	return nil
}
