package platform

import "joyadapter-go/types"

// Boards lists the known adapter wirings. Buttons are active-low with
// pull-ups; the joybus data line needs an external 1k pull-up to 3V3.
var Boards = map[string]types.Pinout{
	"pico_adapter": {
		JoybusData: 28,
		Buttons: []types.ButtonPin{
			{Button: types.BtnL, Pin: 5},
			{Button: types.BtnLeft, Pin: 4},
			{Button: types.BtnDown, Pin: 3},
			{Button: types.BtnRight, Pin: 2},
			{Button: types.BtnModX, Pin: 6},
			{Button: types.BtnModY, Pin: 7},
			{Button: types.BtnStart, Pin: 0},
			{Button: types.BtnCLeft, Pin: 13},
			{Button: types.BtnCUp, Pin: 12},
			{Button: types.BtnCDown, Pin: 15},
			{Button: types.BtnA, Pin: 14},
			{Button: types.BtnCRight, Pin: 16},
			{Button: types.BtnB, Pin: 26},
			{Button: types.BtnX, Pin: 21},
			{Button: types.BtnZ, Pin: 19},
			{Button: types.BtnUp, Pin: 17},
			{Button: types.BtnR, Pin: 27},
			{Button: types.BtnY, Pin: 20},
			{Button: types.BtnLS, Pin: 18},
			{Button: types.BtnMS, Pin: 22},
			{Button: types.BtnRT1, Pin: 8},
		},
	},
	"pico_nunchuk": {
		JoybusData:   28,
		ExtensionI2C: "i2c0",
		Buttons: []types.ButtonPin{
			{Button: types.BtnA, Pin: 14},
			{Button: types.BtnB, Pin: 26},
			{Button: types.BtnStart, Pin: 0},
			{Button: types.BtnRT1, Pin: 8},
		},
	},
}

// Pinout returns the wiring for board name.
func Pinout(name string) (types.Pinout, bool) {
	p, ok := Boards[name]
	return p, ok
}

// SelectedPinout is the wiring chosen at build time (see selected_*.go).
func SelectedPinout() types.Pinout {
	p, _ := Pinout(SelectedBoard)
	return p
}
