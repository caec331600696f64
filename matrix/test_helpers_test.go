// SPDX-License-Identifier: MIT

package matrix_test

import "math"

func posInf() float64 { return math.Inf(1) }
