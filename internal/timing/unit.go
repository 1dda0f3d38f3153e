package timing

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownUnit is returned by ParseUnit for unrecognised names.
var ErrUnknownUnit = errors.New("timing: unknown unit")

// Unit is the granularity elapsed time is reported in.
type Unit time.Duration

const (
	Nanoseconds  = Unit(time.Nanosecond)
	Microseconds = Unit(time.Microsecond)
	Milliseconds = Unit(time.Millisecond)
	Seconds      = Unit(time.Second)
)

// DefaultUnit is milliseconds.
const DefaultUnit = Milliseconds

// Count returns d as a whole number of units, truncated toward zero.
func (u Unit) Count(d time.Duration) int64 {
	return int64(d / time.Duration(u))
}

// Suffix is the label printed after a count, e.g. "msecs".
func (u Unit) Suffix() string {
	switch u {
	case Nanoseconds:
		return "nsecs"
	case Microseconds:
		return "usecs"
	case Milliseconds:
		return "msecs"
	case Seconds:
		return "secs"
	default:
		return time.Duration(u).String()
	}
}

// String returns the short name accepted by ParseUnit.
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	default:
		return time.Duration(u).String()
	}
}

// ParseUnit maps ns, us, ms or s to a Unit. The empty string selects
// DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "":
		return DefaultUnit, nil
	case "ns":
		return Nanoseconds, nil
	case "us", "µs":
		return Microseconds, nil
	case "ms":
		return Milliseconds, nil
	case "s":
		return Seconds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}
