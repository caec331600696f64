// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/stretchr/testify/require"
)

func TestValidateTriplets(t *testing.T) {
	t.Parallel()

	build := func(items ...core.Triplet[int]) *core.TripletList[int] {
		l := core.NewTripletList[int](3, 3, len(items))
		l.Items = append(l.Items, items...)
		return l
	}

	tests := []struct {
		name    string
		list    *core.TripletList[int]
		wantErr error
	}{
		{"empty", build(), nil},
		{"sorted", build(core.Triplet[int]{0, 1, 1}, core.Triplet[int]{1, 0, 2}, core.Triplet[int]{2, 2, 3}), nil},
		{"unsorted rows", build(core.Triplet[int]{1, 0, 1}, core.Triplet[int]{0, 2, 2}), core.ErrMalformedInput},
		{"unsorted cols", build(core.Triplet[int]{1, 2, 1}, core.Triplet[int]{1, 0, 2}), core.ErrMalformedInput},
		{"duplicate", build(core.Triplet[int]{1, 1, 1}, core.Triplet[int]{1, 1, 2}), core.ErrMalformedInput},
		{"out of shape", build(core.Triplet[int]{3, 0, 1}), core.ErrMalformedInput},
		{"negative", build(core.Triplet[int]{0, -1, 1}), core.ErrMalformedInput},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := core.ValidateTriplets[int](tc.list)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateTriplets_DeclaredNNZ(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[float64](2, 2, 1)
	l.Append(0, 0, 1)
	l.Declared = 2
	require.ErrorIs(t, core.ValidateTriplets[float64](l), core.ErrMalformedInput)

	l.Declared = 1
	require.NoError(t, core.ValidateTriplets[float64](l))
}

func TestTripletList_SortDedup(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[int](2, 2, 4)
	l.Append(1, 1, 4)
	l.Append(0, 1, 1)
	l.Append(1, 1, 5)
	l.Append(0, 0, 7)
	l.Sort()
	l.Dedup(func(a, b int) int { return a + b })

	require.Equal(t, []core.Triplet[int]{{0, 0, 7}, {0, 1, 1}, {1, 1, 9}}, l.Items)
	require.Equal(t, 3, l.NNZ())
	require.NoError(t, core.ValidateTriplets[int](l))
}
