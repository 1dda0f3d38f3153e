package workload_test

import (
	"testing"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/counter"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/workload"
)

// Small outer bound so one op is ~50k Tick calls
const benchIterations = 320

var sinkValue uint64

func BenchmarkWorkload_Direct(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := counter.NewAccumulator()
		workload.RunDirect(c, benchIterations)
		sinkValue = c.Value()
	}
}

func BenchmarkWorkload_Static(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := counter.NewStatic()
		workload.RunStatic(c, benchIterations)
		sinkValue = c.Value()
	}
}

func BenchmarkWorkload_Dynamic(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := counter.NewDynamic()
		workload.Run(c, benchIterations)
		sinkValue = c.Value()
	}
}
