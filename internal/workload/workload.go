// Package workload drives counters through the triangular tick loop.
//
// For an outer index i in [0, iterations) and an inner index j in [0, i),
// the driver calls Tick(j). The number of calls grows as
// iterations*(iterations-1)/2, so dispatch overhead dominates the loop
// body and becomes measurable.
//
// There is one driver per dispatch strategy. The loops are identical; they
// are written out separately so each call site keeps its own static type.
package workload

import "github.com/randomizedcoder/dispatch-benchmarks/internal/counter"

// DefaultIterations is the outer loop bound used when none is configured.
const DefaultIterations = 100_000

// Run drives c through its interface.
//
// Kept out of line so the compiler cannot see the concrete type behind c
// and devirtualize the Tick call.
//
//go:noinline
func Run(c counter.Counter, iterations uint64) {
	for i := uint64(0); i < iterations; i++ {
		for j := uint64(0); j < i; j++ {
			c.Tick(j)
		}
	}
}

// RunStatic drives a generic Static counter. Tick resolves at compile time.
func RunStatic[C any, P counter.Impl[C]](s *counter.Static[C, P], iterations uint64) {
	for i := uint64(0); i < iterations; i++ {
		for j := uint64(0); j < i; j++ {
			s.Tick(j)
		}
	}
}

// RunDirect drives the concrete Accumulator with no wrapper at all.
func RunDirect(a *counter.Accumulator, iterations uint64) {
	for i := uint64(0); i < iterations; i++ {
		for j := uint64(0); j < i; j++ {
			a.Tick(j)
		}
	}
}

// Calls returns the number of Tick calls one run performs:
// iterations*(iterations-1)/2, wrapping modulo 2^64.
func Calls(iterations uint64) uint64 {
	if iterations < 2 {
		return 0
	}
	a, b := iterations, iterations-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	return a * b
}

// Expected returns the value a zeroed counter holds after one run.
//
// Each outer step i adds 0+1+...+(i-1) = i(i-1)/2, and summing that over
// [0, iterations) gives n(n-1)(n-2)/6. The factors are divided before
// multiplying so the result is exact modulo 2^64, matching the counter's
// own wraparound.
func Expected(iterations uint64) uint64 {
	if iterations < 3 {
		return 0
	}
	f := [3]uint64{iterations, iterations - 1, iterations - 2}
	for k := range f {
		if f[k]%2 == 0 {
			f[k] /= 2
			break
		}
	}
	for k := range f {
		if f[k]%3 == 0 {
			f[k] /= 3
			break
		}
	}
	return f[0] * f[1] * f[2]
}
