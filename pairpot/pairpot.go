// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairpot implements the pair-potential engine: energy and
// gradient evaluation over a per-center neighbor list, with exclusion
// scaling and a hard distance cutoff, dispatching to a named kernel
// registry of pairwise potentials.
package pairpot

import (
	"github.com/cpmech/gosl/chk"
)

// PairFunc evaluates one unordered pair's potential at distance d, given
// the 0-based indices of the two atoms. When grad is true it must also
// return g = (1/d) dE/dd, the derivative-over-distance used to project
// the scalar force back onto the Cartesian displacement; when grad is
// false g is undefined and must not be read by the caller.
type PairFunc func(data interface{}, i, j int, d float64, grad bool) (e, g float64)

// ScalingRow is one entry of a center atom's exclusion list: Other is
// scaled down (commonly to 0, for excluded 1-2/1-3 pairs, or a fraction
// for 1-4 pairs) by Scale. Rows for one center must be sorted ascending
// by Other, mirroring the yaff scaling cursor contract.
type ScalingRow struct {
	Other int
	Scale float64
}

// NeighborRow is one entry of a center atom's neighbor list. R0, R1, R2
// are the lattice image indices yaff's cell lists use to tell a genuine
// direct 0,0,0 neighbor from a periodic image of the same atom; only a
// 0,0,0 image is eligible for exclusion scaling, any other image is
// always scaled by 0.5 to avoid double-counting across the two centers
// that see it.
type NeighborRow struct {
	Other int
	R0    int
	R1    int
	R2    int
	Disp  [3]float64
	D     float64
}

// Descriptor binds a kernel to the constant parameter data it closes
// over, plus the cutoff beyond which neighbors are ignored entirely.
type Descriptor struct {
	Name   string
	Data   interface{}
	Fn     PairFunc
	Cutoff float64
	ready  bool
}

// NewDescriptor returns a descriptor bound to fn and data, not yet ready.
func NewDescriptor(name string, fn PairFunc, data interface{}) *Descriptor {
	return &Descriptor{Name: name, Data: data, Fn: fn}
}

// SetCutoff installs the cutoff distance and marks the descriptor ready
// for Scan. A cutoff of 0 or less is a caller bug.
func (d *Descriptor) SetCutoff(cutoff float64) error {
	if cutoff <= 0 {
		return chk.Err("pairpot: %q: cutoff must be positive, got %g", d.Name, cutoff)
	}
	d.Cutoff = cutoff
	d.ready = true
	return nil
}

// GetCutoff returns the installed cutoff.
func (d *Descriptor) GetCutoff() float64 { return d.Cutoff }

// Ready reports whether SetCutoff has been called.
func (d *Descriptor) Ready() bool { return d.ready }

// getScaling implements the scaling-cursor lookup: scaling is sorted
// ascending by Other, and counter tracks how far the previous call for
// this center already advanced. other==center (a home-image neighbor row
// referencing the center atom itself) always scales to 0; Scan does not
// call this for periodic images, which it scales by 0.5.
func getScaling(scaling []ScalingRow, center, other int, counter *int) float64 {
	if other == center {
		return 0.0
	}
	for *counter < len(scaling) && scaling[*counter].Other < other {
		*counter++
	}
	if *counter < len(scaling) && scaling[*counter].Other == other {
		return scaling[*counter].Scale
	}
	return 1.0
}

// Scan evaluates the descriptor's kernel over every neighbor of center
// within cutoff, returning the total pairwise energy. When grad is
// non-nil it accumulates the force contribution onto grad (a flat 3N
// slice) for both center and each neighbor, equal and opposite, exactly
// as dlist.Back does for bonded terms.
func Scan(center int, neighbors []NeighborRow, scaling []ScalingRow, d *Descriptor, grad []float64) (float64, error) {
	if !d.ready {
		return 0, chk.Err("pairpot: %q: Scan called before SetCutoff", d.Name)
	}
	energy := 0.0
	counter := 0
	for i := range neighbors {
		n := &neighbors[i]
		if n.D >= d.Cutoff {
			continue
		}
		var scale float64
		if n.R0 == 0 && n.R1 == 0 && n.R2 == 0 {
			scale = getScaling(scaling, center, n.Other, &counter)
		} else {
			scale = 0.5
		}
		if scale == 0.0 {
			continue
		}
		e, g := d.Fn(d.Data, center, n.Other, n.D, grad != nil)
		energy += scale * e
		if grad != nil {
			g *= scale
			oc, oo := 3*center, 3*n.Other
			for c := 0; c < 3; c++ {
				grad[oc+c] += n.Disp[c] * g
				grad[oo+c] -= n.Disp[c] * g
			}
		}
	}
	return energy, nil
}
