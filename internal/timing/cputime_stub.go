//go:build !unix

package timing

import (
	"errors"
	"time"
)

// ErrCPUTimeNotSupported is returned when process CPU time is not available on this platform.
var ErrCPUTimeNotSupported = errors.New("timing: CPU time requires a unix platform")

// CPUTime returns an error on non-unix platforms.
func CPUTime() (time.Duration, error) {
	return 0, ErrCPUTimeNotSupported
}
