// Package counter provides accumulating counter implementations for
// comparing dispatch strategies.
//
// This package offers three ways to reach the same arithmetic:
//   - Dynamic: only reachable through the Counter interface (itab lookup
//     and indirect call on every Tick)
//   - Static: generic wrapper bound to one concrete type at compile time
//   - Accumulator: the concrete type itself, called directly
//
// All three add the same values the same way; only the call path differs.
package counter

// Counter accumulates unsigned 64-bit increments.
//
// Implementations are not safe for concurrent use. A counter is owned by
// exactly one goroutine for the duration of a benchmark run.
type Counter interface {
	// Tick adds n to the accumulated value.
	// Overflow wraps modulo 2^64.
	Tick(n uint64)

	// Value returns the accumulated value.
	Value() uint64
}

// Resetter is implemented by counters that can be reused without
// reallocation.
type Resetter interface {
	Reset()
}
