package linspace_test

import (
	"testing"

	"github.com/katalvlaran/numspace/linspace"
)

// benchmarkIterate drains a freshly built sequence of n values per
// iteration, measuring the per-value interpolation cost.
func benchmarkIterate(b *testing.B, n int) {
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		seq := linspace.LinSpace(0.0, 1.0, n)
		for v, ok := seq.Next(); ok; v, ok = seq.Next() {
			sink += v
		}
	}
	_ = sink
}

// BenchmarkLinSpace_Iterate1K drains 1 000 values per iteration.
func BenchmarkLinSpace_Iterate1K(b *testing.B) {
	benchmarkIterate(b, 1_000)
}

// BenchmarkLinSpace_Iterate1M drains 1 000 000 values per iteration.
func BenchmarkLinSpace_Iterate1M(b *testing.B) {
	benchmarkIterate(b, 1_000_000)
}

// BenchmarkLinSpace_Collect1K measures the single-allocation Collect path.
func BenchmarkLinSpace_Collect1K(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linspace.LinSpace(0.0, 1.0, 1_000).Collect()
	}
}
