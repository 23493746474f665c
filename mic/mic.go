// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mic implements the minimum-image convention: folding a raw
// displacement vector into the periodic image that minimises its norm.
package mic

import (
	"math"

	"github.com/yfyh2013/yaff/internal/vec3"
	"github.com/yfyh2013/yaff/lattice"
)

// Apply folds d in place into its minimum image under lat. For each
// active lattice direction 0..NVec-1 (in that fixed order), the
// fractional coordinate of d along the matching reciprocal vector is
// rounded to the nearest integer and that many lattice vectors are
// subtracted. For non-orthogonal cells this sequential per-axis rounding
// is not guaranteed to find the globally shortest image; that is the
// defined contract, not a bug, and callers are expected to supply cells
// with a sufficient aspect ratio.
func Apply(d *[3]float64, lat *lattice.Lattice) {
	for k := 0; k < lat.NVec; k++ {
		g := lattice.Row3(lat.GVecs, k)
		frac := vec3.Dot(*d, g)
		n := math.Round(frac)
		if n == 0 {
			continue
		}
		r := lattice.Row3(lat.RVecs, k)
		vec3.AddInto(d, -n, r)
	}
}
