// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.False(t, cfg.symmetric)
	require.Equal(t, DefaultValue, cfg.valueFn(nil))
}

func TestBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithValueFn(ConstantValueFn(3)),
		WithValueFn(ConstantValueFn(7)),
		WithSymmetric(),
		nil,
	)
	require.Equal(t, 7.0, cfg.valueFn(nil))
	require.True(t, cfg.symmetric)
}

func TestBuilderConfig_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	require.Same(t, r, c.rng)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithValueFn(nil) })
	require.Panics(t, func() { UniformValueFn(2, 1) })
	require.Panics(t, func() { IntValueFn(2, 1) })
	require.Panics(t, func() { NormalValueFn(0, -1) })
}

func TestValueFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	u := UniformValueFn(2, 5)
	n := IntValueFn(-1, 1)
	for i := 0; i < 200; i++ {
		v := u(rng)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
		k := n(rng)
		require.Contains(t, []float64{-1, 0, 1}, k)
	}
	require.Equal(t, 2.0, u(nil))
	require.Equal(t, -1.0, n(nil))
	require.Equal(t, 4.5, NormalValueFn(4.5, 1)(nil))
}
