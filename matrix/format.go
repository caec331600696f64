// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/grb/core"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "{"
	_fmtClose = "}"
	_fmtSep   = ", "
)

// formatRange renders "<kind>[r×c, nnz=k]{(i,j):v, ...}" in iteration order.
// Diagnostics only; the layout is not a stable format.
func formatRange[T any](kind string, r core.MatrixRange[T]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%v, nnz=%d]%s", kind, core.ShapeOf(r), core.Size(r), _fmtOpen)
	first := true
	for ix, v := range core.All(r) {
		if !first {
			b.WriteString(_fmtSep)
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", ix, v)
	}
	b.WriteString(_fmtClose)
	return b.String()
}
