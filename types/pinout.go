package types

// Pinout is the static GPIO assignment of an adapter board. Values are plain
// GPIO numbers; -1 means "not wired".
type Pinout struct {
	JoybusData   int         `json:"joybus_data"`
	// Nunchuk / extension port I2C controller id ("i2c0", "i2c1", "" = none).
	ExtensionI2C string      `json:"extension_i2c,omitempty"`
	// Boot-time buttons read directly from GPIO.
	Buttons      []ButtonPin `json:"buttons,omitempty"`
}

// ButtonPin maps a GPIO to a logical button. Buttons are wired active-low
// with pull-ups unless ActiveHigh is set.
type ButtonPin struct {
	Button     Button `json:"button"`
	Pin        int    `json:"pin"`
	ActiveHigh bool   `json:"active_high,omitempty"`
}
