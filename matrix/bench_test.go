// Package matrix_test provides benchmarks for the column kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/titrate/matrix"
)

// benchCols are the sample counts to benchmark (rows fixed at 4 species).
var benchCols = []int{2000, 20000}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkNormalizeColumnsL1(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchCols {
		b.Run(fmt.Sprintf("cols=%d", n), func(b *testing.B) {
			A := mustDense(b, 4, n)
			fillDenseRand(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, _, err := matrix.NormalizeColumnsL1(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkWeightedColumnSums(b *testing.B) {
	b.ReportAllocs()
	w := []float64{0, 1, 2, 3}
	for _, n := range benchCols {
		b.Run(fmt.Sprintf("cols=%d", n), func(b *testing.B) {
			A := mustDense(b, 4, n)
			fillDenseRand(b, A, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.WeightedColumnSums(A, w)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
