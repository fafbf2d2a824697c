//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Console returns the boot log writer: UART0 on the board-default pins at
// 115200 8N1.
func Console() io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	_ = u.SetFormat(8, 1, uartx.ParityNone)
	return u
}
