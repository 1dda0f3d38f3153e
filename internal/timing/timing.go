// Package timing measures wall-clock duration of a single synchronous action.
//
// A measurement reads a monotonic clock, runs the action once to
// completion on the calling goroutine, and reads the clock again. Nothing
// is repeated, warmed up or averaged. Errors returned by the action are
// handed back unchanged and panics are not recovered.
//
// Two clock sources are available:
//   - StdClock: time.Now with its monotonic reading
//   - NanoClock: runtime.nanotime, skipping time.Time construction
package timing

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownClock is returned by ParseClock for unrecognised names.
var ErrUnknownClock = errors.New("timing: unknown clock")

// Clock is a monotonic time source.
type Clock interface {
	// Now returns a monotonic reading in nanoseconds. Only differences
	// between readings of the same Clock are meaningful.
	Now() int64
}

// Timer measures actions against a Clock.
type Timer struct {
	clock Clock
}

// NewTimer creates a Timer reading from c. A nil c selects StdClock.
func NewTimer(c Clock) *Timer {
	if c == nil {
		c = StdClock{}
	}
	return &Timer{clock: c}
}

// Measure runs action once and returns how long it took.
func (t *Timer) Measure(action func()) time.Duration {
	start := t.clock.Now()
	action()
	return elapsed(start, t.clock.Now())
}

// MeasureErr runs action once and returns how long it took together with
// the action's own error, untouched.
func (t *Timer) MeasureErr(action func() error) (time.Duration, error) {
	start := t.clock.Now()
	err := action()
	return elapsed(start, t.clock.Now()), err
}

// Clock returns the timer's clock source.
func (t *Timer) Clock() Clock {
	return t.clock
}

var defaultTimer = NewTimer(StdClock{})

// Measure times action with the standard clock.
func Measure(action func()) time.Duration {
	return defaultTimer.Measure(action)
}

// MeasureErr times action with the standard clock.
func MeasureErr(action func() error) (time.Duration, error) {
	return defaultTimer.MeasureErr(action)
}

// MeasureValue times an action that produces a result, using the standard
// clock.
func MeasureValue[T any](action func() (T, error)) (T, time.Duration, error) {
	return MeasureValueOn(defaultTimer, action)
}

// MeasureValueOn times an action that produces a result on t.
func MeasureValueOn[T any](t *Timer, action func() (T, error)) (T, time.Duration, error) {
	var v T
	d, err := t.MeasureErr(func() error {
		var err error
		v, err = action()
		return err
	})
	return v, d, err
}

// ParseClock maps "std" or "nanotime" to a Clock.
func ParseClock(name string) (Clock, error) {
	switch name {
	case "", "std":
		return StdClock{}, nil
	case "nanotime":
		return NanoClock{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}
}

func elapsed(start, end int64) time.Duration {
	// Durations are never negative, whatever the Clock does.
	if end < start {
		return 0
	}
	return time.Duration(end - start)
}
