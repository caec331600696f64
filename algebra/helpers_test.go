// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/vector"
	"github.com/stretchr/testify/require"
)

// csr builds a matrix from a {index: value} literal.
func csr(t *testing.T, rows, cols int, entries map[core.Index]int) *matrix.CSR[int] {
	t.Helper()
	l := core.NewTripletList[int](rows, cols, len(entries))
	for ix, v := range entries {
		l.Append(ix.Row, ix.Col, v)
	}
	l.Sort()
	m, err := matrix.NewCSRFromTriplets[int](l)
	require.NoError(t, err)
	return m
}

// vec builds a sparse vector from a {index: value} literal.
func vec(t *testing.T, n int, entries map[int]int) *vector.Sparse[int] {
	t.Helper()
	v, err := vector.NewSparse[int](n)
	require.NoError(t, err)
	for i, x := range entries {
		require.NoError(t, v.Insert(i, x))
	}
	return v
}

// asMap flattens any range into a map for order-free comparison.
func asMap[K comparable, T any](r core.Range[K, T]) map[K]T {
	out := map[K]T{}
	for k, v := range core.All(r) {
		out[k] = v
	}
	return out
}

// randomCSR returns a deterministic random rows×cols matrix with values in [1,9].
func randomCSR(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *matrix.CSR[int] {
	t.Helper()
	l := core.NewTripletList[int](rows, cols, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				l.Append(r, c, 1+rng.Intn(9))
			}
		}
	}
	m, err := matrix.NewCSRFromTriplets[int](l)
	require.NoError(t, err)
	return m
}

func randomVec(t *testing.T, rng *rand.Rand, n int, density float64) *vector.Sparse[int] {
	t.Helper()
	v, err := vector.NewSparse[int](n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		if rng.Float64() < density {
			require.NoError(t, v.Insert(i, 1+rng.Intn(9)))
		}
	}
	return v
}
