//go:build !(rp2040 || rp2350)

package platform

import (
	"io"
	"os"
)

// Console returns the boot log writer (stdout on host builds).
func Console() io.Writer { return os.Stdout }
