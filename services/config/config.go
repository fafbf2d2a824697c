// Package config loads the persisted adapter configuration and publishes it
// retained on the bus.
package config

import (
	"bytes"
	"context"
	"encoding/json"

	"joyadapter-go/bus"
	"joyadapter-go/errcode"
	"joyadapter-go/types"
	"joyadapter-go/x/fmtx"
	"joyadapter-go/x/logx"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	configTopic  = "comms"
	CtxDeviceKey = "device" // context key used for device ID
)

// Topic is where the loaded types.Config is retained.
var Topic = bus.T(configPrefix, configTopic)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Load decodes and validates the embedded config for device.
func Load(device string) (types.Config, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.Config{}, &errcode.E{C: errcode.UnknownDevice, Op: "config.Load", Msg: device}
	}
	return Decode(raw)
}

// Decode parses raw JSON into a validated Config. Unknown fields are rejected
// so typos in persisted configs surface at boot.
func Decode(raw []byte) (types.Config, error) {
	var cfg types.Config
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return types.Config{}, &errcode.E{C: errcode.InvalidConfig, Op: "config.Decode", Err: err, Msg: err.Error()}
	}
	if err := Validate(&cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks every 1-based index in cfg. Zero (unset) is always valid.
// Unknown backend ids are accepted: backend init falls back to GameCube.
func Validate(cfg *types.Config) error {
	if int(cfg.DefaultBackendConfig) > len(cfg.BackendConfigs) {
		return &errcode.E{
			C:   errcode.InvalidIndex,
			Op:  "config.Validate",
			Msg: fmtx.Sprintf("default_backend_config %d > %d entries", cfg.DefaultBackendConfig, len(cfg.BackendConfigs)),
		}
	}
	for i, bc := range cfg.BackendConfigs {
		if int(bc.DefaultModeConfig) > len(cfg.GameModeConfigs) {
			return &errcode.E{
				C:   errcode.InvalidIndex,
				Op:  "config.Validate",
				Msg: fmtx.Sprintf("communication_backend_configs[%d].default_mode_config %d > %d modes", i, bc.DefaultModeConfig, len(cfg.GameModeConfigs)),
			}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type Service struct {
	Name string
	Log  *logx.Logger
}

func NewService() *Service {
	return &Service{Name: serviceName, Log: logx.New(serviceName)}
}

// publishConfig loads the config for the device in ctx and publishes it
// retained on Topic.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errcode.Wrap(errcode.UnknownDevice, "config.publish", "missing device ID in context")
	}
	cfg, err := Load(device)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(Topic, cfg, true))
	return nil
}

// Start publishes the config in a goroutine. Failures are logged; the
// retained topic stays empty.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			s.Log.Printf("publish failed: %v", err)
		}
	}()
}
