// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
)

func benchTriplets(n, perRow int) *core.TripletList[float64] {
	l := core.NewTripletList[float64](n, n, n*perRow)
	step := n / perRow
	for r := 0; r < n; r++ {
		for k := 0; k < perRow; k++ {
			l.Append(r, k*step, 1)
		}
	}
	return l
}

func BenchmarkCSR_Build(b *testing.B) {
	l := benchTriplets(2048, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.NewCSRFromTriplets[float64](l); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCSR_Traverse(b *testing.B) {
	m, _ := matrix.NewCSRFromTriplets[float64](benchTriplets(2048, 16))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := 0.0
		for _, v := range core.All[core.Index, float64](m) {
			s += v
		}
		_ = s
	}
}

func BenchmarkDense_Find(b *testing.B) {
	d, _ := matrix.NewDense[float64](512, 512)
	d.Fill(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Find(core.Index{Row: i % 512, Col: (i * 7) % 512})
	}
}
