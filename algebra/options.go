// SPDX-License-Identifier: MIT
// Package algebra - output masks.
//
// Purpose:
//   - Option[K] configures the output mask of a kernel producing keys K.
//   - Options are resolved once per call; the mask is looked up through the mask
//     range's own Find.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
)

// Option configures a kernel whose output is keyed by K.
type Option[K comparable] func(*Options[K])

// Options is the resolved configuration.
type Options[K comparable] struct {
	lookup     func(K) bool
	dims       func() (int, int)
	complement bool
}

// WithMask restricts output keys to those stored in mask with a truthy value
// (op.Truthy).
func WithMask[K comparable, M any](mask core.Range[K, M]) Option[K] {
	return func(o *Options[K]) {
		o.lookup = func(k K) bool {
			v, ok := core.Lookup(mask, k)
			return ok && op.Truthy(v)
		}
		o.dims = mask.Extent().Dims
	}
}

// WithStructuralMask restricts output keys to those stored in mask, whatever
// their values.
func WithStructuralMask[K comparable, M any](mask core.Range[K, M]) Option[K] {
	return func(o *Options[K]) {
		o.lookup = func(k K) bool { return core.Contains(mask, k) }
		o.dims = mask.Extent().Dims
	}
}

// WithComplementMask inverts the mask selection. Without a mask it has no effect.
func WithComplementMask[K comparable]() Option[K] {
	return func(o *Options[K]) { o.complement = true }
}

// gatherOptions resolves opts and checks the mask against the output extent.
func gatherOptions[K comparable](out core.Extent[K], opts []Option[K]) (Options[K], error) {
	var o Options[K]
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.lookup != nil {
		mr, mc := o.dims()
		or, oc := out.Dims()
		if mr != or || mc != oc {
			return o, fmt.Errorf("mask %dx%d vs output %dx%d: %w", mr, mc, or, oc, core.ErrInvalidArgument)
		}
	}
	return o, nil
}

// selects reports whether output key k may be written.
func (o *Options[K]) selects(k K) bool {
	if o.lookup == nil {
		return true
	}
	return o.lookup(k) != o.complement
}
