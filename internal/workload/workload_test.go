package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/counter"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/workload"
)

// recorder keeps every Tick argument in order.
type recorder struct {
	args  []uint64
	value uint64
}

func (r *recorder) Tick(n uint64) {
	r.args = append(r.args, n)
	r.value += n
}

func (r *recorder) Value() uint64 {
	return r.value
}

func TestRun_TickSequence(t *testing.T) {
	r := &recorder{}
	workload.Run(r, 5)

	assert.Equal(t, []uint64{0, 0, 1, 0, 1, 2, 0, 1, 2, 3}, r.args)
	assert.Equal(t, uint64(10), r.Value())
	assert.Equal(t, uint64(len(r.args)), workload.Calls(5))
}

func TestRun_NoCalls(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		r := &recorder{}
		workload.Run(r, n)

		assert.Empty(t, r.args, "iterations=%d", n)
		assert.Zero(t, r.Value(), "iterations=%d", n)
		assert.Zero(t, workload.Calls(n), "iterations=%d", n)
		assert.Zero(t, workload.Expected(n), "iterations=%d", n)
	}
}

func TestCalls(t *testing.T) {
	testCases := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 10},
		{100_000, 4_999_950_000},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, workload.Calls(tc.n), "Calls(%d)", tc.n)
	}
}

func TestExpected_MatchesRecorder(t *testing.T) {
	for n := uint64(0); n < 120; n++ {
		r := &recorder{}
		workload.Run(r, n)
		require.Equal(t, r.Value(), workload.Expected(n), "iterations=%d", n)
		require.Equal(t, uint64(len(r.args)), workload.Calls(n), "iterations=%d", n)
	}
}

// Dispatch strategy must not change the arithmetic.
func TestDrivers_Agree(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 5, 17, 64, 500, 2000} {
		dyn := counter.NewDynamic()
		workload.Run(dyn, n)

		static := counter.NewStatic()
		workload.RunStatic(static, n)

		direct := counter.NewAccumulator()
		workload.RunDirect(direct, n)

		assert.Equal(t, dyn.Value(), static.Value(), "dynamic vs static, iterations=%d", n)
		assert.Equal(t, dyn.Value(), direct.Value(), "dynamic vs direct, iterations=%d", n)
		assert.Equal(t, workload.Expected(n), dyn.Value(), "closed form, iterations=%d", n)
	}
}

// The driver neither constructs nor resets: a second run accumulates on top.
func TestRun_DoesNotOwnCounter(t *testing.T) {
	c := counter.NewStatic()
	workload.RunStatic(c, 5)
	workload.RunStatic(c, 5)

	assert.Equal(t, uint64(20), c.Value())
}
