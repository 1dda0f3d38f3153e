package timing

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// epoch anchors StdClock readings. time.Since uses the monotonic part of
// both readings, so wall clock steps do not leak into measurements.
var epoch = time.Now()

// StdClock reads time.Now.
type StdClock struct{}

// Now returns nanoseconds since package initialisation.
func (StdClock) Now() int64 {
	return int64(time.Since(epoch))
}

// String implements fmt.Stringer.
func (StdClock) String() string { return "std" }

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// NanoClock reads runtime.nanotime directly.
//
// Typical cost per reading:
//   - StdClock.Now(): ~20-40ns
//   - NanoClock.Now(): ~10-15ns
type NanoClock struct{}

// Now returns runtime.nanotime.
func (NanoClock) Now() int64 {
	return nanotime()
}

// String implements fmt.Stringer.
func (NanoClock) String() string { return "nanotime" }
