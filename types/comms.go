package types

// ------------------------
// Communication backends
// ------------------------

// BackendID tags a console communication protocol. Values match the
// persisted configuration schema.
type BackendID uint8

const (
	BackendUnspecified BackendID = iota
	BackendXInput
	BackendDInput
	BackendGameCube
	BackendN64
	BackendNESClassic
	BackendSNESClassic
	BackendConfigurator
)

func (id BackendID) String() string {
	switch id {
	case BackendUnspecified:
		return "unspecified"
	case BackendXInput:
		return "xinput"
	case BackendDInput:
		return "dinput"
	case BackendGameCube:
		return "gamecube"
	case BackendN64:
		return "n64"
	case BackendNESClassic:
		return "nes_classic"
	case BackendSNESClassic:
		return "snes_classic"
	case BackendConfigurator:
		return "configurator"
	default:
		return "unknown"
	}
}

// BackendConfig is one persisted communication-protocol configuration.
// DefaultModeConfig is a 1-based index into Config.GameModeConfigs; 0 = unset.
type BackendConfig struct {
	BackendID         BackendID `json:"backend_id"`
	DefaultModeConfig uint8     `json:"default_mode_config"`
	// Buttons that must all be held at boot to select this config.
	Activation        []Button  `json:"activation_bindings,omitempty"`
}

// ModeID tags a gameplay mode implementation.
type ModeID uint8

const (
	ModeUnspecified ModeID = iota
	ModeMelee
	ModeProjectM
	ModeUltimate
	ModeFgc
	ModeRivalsOfAether
	ModeKeyboard
)

// GameModeConfig is a named bundle of input-mapping settings.
type GameModeConfig struct {
	ModeID     ModeID     `json:"mode_id"`
	Name       string     `json:"name,omitempty"`
	// SOCD pairs and other tuning knobs are opaque to backend init.
	SOCDPairs  []SOCDPair `json:"socd_pairs,omitempty"`
	// Buttons that switch to this mode at runtime.
	Activation []Button   `json:"activation_bindings,omitempty"`
}

type SOCDPair struct {
	A    Button `json:"button_dir1"`
	B    Button `json:"button_dir2"`
	Type string `json:"socd_type"` // "2ip", "2ip_no_reac", "neutral", "dir1_priority"
}

// Config is the persisted adapter configuration. DefaultBackendConfig is a
// 1-based index into BackendConfigs; 0 = unset.
type Config struct {
	BackendConfigs       []BackendConfig  `json:"communication_backend_configs"`
	GameModeConfigs      []GameModeConfig `json:"game_mode_configs"`
	DefaultBackendConfig uint8            `json:"default_backend_config"`
}

// ConsoleType is the result of the console-detection hook.
type ConsoleType uint8

const (
	ConsoleUnknown ConsoleType = iota
	ConsoleNone
	ConsoleGameCube
	ConsoleN64
	ConsoleSwitch
	ConsolePC
)

// ------------------------
// Retained comms state (bus: comms/state)
// ------------------------

type BackendInfo struct {
	ID          string `json:"id"`
	PollingRate uint32 `json:"polling_rate"`
	DataPin     int    `json:"data_pin"`
	Mode        uint8  `json:"mode"` // 1-based index of the applied mode; 0 = none
}

type CommsState struct {
	Level    string        `json:"level"` // "ready", "error"
	Status   string        `json:"status"`
	TS       int64         `json:"ts_ms"`
	Backends []BackendInfo `json:"backends,omitempty"`
}
