// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewCSR[int](2, 3)
	b, _ := matrix.NewCSR[float64](3, 4)
	sq, _ := matrix.NewDense[bool](3, 3)

	require.NoError(t, matrix.ValidateShape(0, 0))
	require.ErrorIs(t, matrix.ValidateShape(1, -1), core.ErrInvalidArgument)

	require.NoError(t, matrix.ValidateMulShape[int, float64](a, b))
	require.ErrorIs(t, matrix.ValidateMulShape[float64, int](b, a), core.ErrInvalidArgument)

	require.ErrorIs(t, matrix.ValidateSameShape[core.Index, int, float64](a, b), core.ErrInvalidArgument)
	require.NoError(t, matrix.ValidateSameShape[core.Index, int, int](a, a))

	require.NoError(t, matrix.ValidateSquare[bool](sq))
	require.ErrorIs(t, matrix.ValidateSquare[int](a), core.ErrInvalidArgument)

	var nilRange core.MatrixRange[int]
	require.ErrorIs(t, matrix.ValidateNotNil(nilRange), core.ErrNilRange)
}
