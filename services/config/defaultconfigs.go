package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON for that device's persisted adapter configuration
// -----------------------------------------------------------------------------

// Backend ids: 3 = gamecube, 4 = n64. Mode ids: 1 = melee, 2 = project_m,
// 3 = ultimate.
const cfgPico = `{
  "communication_backend_configs": [
    {"backend_id": 3, "default_mode_config": 1},
    {"backend_id": 4, "default_mode_config": 3, "activation_bindings": ["c_left"]},
    {"backend_id": 3, "default_mode_config": 2, "activation_bindings": ["mod_x", "a"]}
  ],
  "game_mode_configs": [
    {"mode_id": 1, "name": "melee",
     "socd_pairs": [{"button_dir1": "left", "button_dir2": "right", "socd_type": "2ip_no_reac"}]},
    {"mode_id": 2, "name": "project_m"},
    {"mode_id": 3, "name": "ultimate",
     "socd_pairs": [{"button_dir1": "left", "button_dir2": "right", "socd_type": "2ip"}]}
  ],
  "default_backend_config": 1
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
}
