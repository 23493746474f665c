// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 collects the small fixed-size 3-vector operations shared by
// the mic and iclist packages. Every internal coordinate kernel
// indexes exactly three components, so plain [3]float64 arrays are used
// instead of the general gosl/la.Vector slice type; Dot and Cross delegate
// to gosl/utl's fixed-3-vector helpers (the same ones fem/e_beam.go uses
// for its local beam frame), which already take the []float64 view this
// package converts to at the call boundary.
package vec3

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Dot returns a·b.
func Dot(a, b [3]float64) float64 {
	return utl.Dot3d(a[:], b[:])
}

// Norm returns ‖a‖.
func Norm(a [3]float64) float64 {
	return math.Sqrt(Dot(a, a))
}

// Sub returns a-b.
func Sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Cross returns a×b.
func Cross(a, b [3]float64) [3]float64 {
	var c [3]float64
	utl.Cross3d(c[:], a[:], b[:])
	return c
}

// Scale returns s*a.
func Scale(s float64, a [3]float64) [3]float64 {
	return [3]float64{s * a[0], s * a[1], s * a[2]}
}

// AddInto adds s*a into the components of dst.
func AddInto(dst *[3]float64, s float64, a [3]float64) {
	dst[0] += s * a[0]
	dst[1] += s * a[1]
	dst[2] += s * a[2]
}
