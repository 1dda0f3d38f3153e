//go:build unix

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUTime returns user plus system CPU time consumed by this process.
//
// The difference between two readings around a single-threaded run is the
// CPU the run itself used, which excludes time the process spent
// descheduled. Comparing it with wall time shows how noisy a host was.
func CPUTime() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
