// SPDX-License-Identifier: MIT

package op_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/grb/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonoidIdentity checks op(identity, x) == x == op(x, identity).
func TestMonoidIdentity(t *testing.T) {
	t.Parallel()

	samples := []int{-7, -1, 0, 1, 42, math.MaxInt32}
	monoids := map[string]op.Monoid[int]{
		"plus":  op.PlusMonoid[int](),
		"times": op.TimesMonoid[int](),
		"min":   op.MinMonoid[int](),
		"max":   op.MaxMonoid[int](),
	}
	for name, m := range monoids {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, x := range samples {
				assert.Equal(t, x, m.Op(m.Identity, x))
				assert.Equal(t, x, m.Op(x, m.Identity))
			}
		})
	}

	for _, x := range []bool{false, true} {
		assert.Equal(t, x, op.LOrMonoid().Op(false, x))
		assert.Equal(t, x, op.LAndMonoid().Op(true, x))
		assert.Equal(t, x, op.LXorMonoid().Op(false, x))
	}
}

func TestMinMaxIdentityPerType(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsInf(op.MinMonoid[float64]().Identity, 1))
	require.True(t, math.IsInf(op.MaxMonoid[float64]().Identity, -1))
	require.True(t, math.IsInf(float64(op.MinMonoid[float32]().Identity), 1))
	require.Equal(t, int8(math.MaxInt8), op.MinMonoid[int8]().Identity)
	require.Equal(t, int8(math.MinInt8), op.MaxMonoid[int8]().Identity)
	require.Equal(t, int64(math.MaxInt64), op.MinMonoid[int64]().Identity)
	require.Equal(t, uint16(math.MaxUint16), op.MinMonoid[uint16]().Identity)
	require.Equal(t, uint32(0), op.MaxMonoid[uint32]().Identity)

	type weight float64
	require.True(t, math.IsInf(float64(op.MinMonoid[weight]().Identity), 1))
}

func TestMonoidFold(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, op.PlusMonoid[int]().Fold(1, 2, 3, 4))
	require.Equal(t, 24, op.TimesMonoid[int]().Fold(1, 2, 3, 4))
	require.Equal(t, 0, op.PlusMonoid[int]().Fold())
	require.Equal(t, 1.5, op.MinMonoid[float64]().Fold(3, 1.5, 2))
}

func TestSemirings(t *testing.T) {
	t.Parallel()

	pt := op.PlusTimes[int]()
	require.Equal(t, 6, pt.Combine(2, 3))
	require.Equal(t, 5, pt.Reduce.Op(2, 3))

	mp := op.MinPlus[float64]()
	require.Equal(t, 5.0, mp.Combine(2, 3))
	require.Equal(t, 2.0, mp.Reduce.Op(2, 3))

	require.True(t, op.LOrLAnd().Combine(true, true))
	require.False(t, op.LOrLAnd().Combine(true, false))

	pp := op.PlusPair[int, string, bool]()
	require.Equal(t, 1, pp.Combine("x", false))

	ms := op.MinSecond[bool, int]()
	require.Equal(t, 7, ms.Combine(true, 7))

	require.True(t, op.AnyPair[int, int]().Combine(0, 0))
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	assert.True(t, op.Truthy(true))
	assert.False(t, op.Truthy(false))
	assert.True(t, op.Truthy(3))
	assert.False(t, op.Truthy(0))
	assert.False(t, op.Truthy(0.0))
	assert.True(t, op.Truthy(-0.5))
	assert.True(t, op.Truthy("anything"))
	assert.True(t, op.Truthy(""), "strings select by presence")

	type weight float64
	type flag bool
	assert.False(t, op.Truthy(weight(0)))
	assert.True(t, op.Truthy(weight(2.5)))
	assert.False(t, op.Truthy(flag(false)))
	assert.True(t, op.Truthy(flag(true)))

	x := 0
	assert.False(t, op.Truthy((*int)(nil)))
	assert.True(t, op.Truthy(&x), "non-nil pointer to zero still selects")
	assert.False(t, op.Truthy([]int(nil)))
	assert.False(t, op.Truthy(map[int]int(nil)))
	assert.True(t, op.Truthy(struct{}{}))
}
