//go:build !board_pico_nunchuk

package platform

const SelectedBoard = "pico_adapter"
