// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package virial accumulates the atomic virial tensor W_ab = sum_k r_a
// F_b from the pairwise and bonded force contributions the pair-potential
// and displacement engines already compute, for use by an external
// pressure or stress estimator. It is a thin bookkeeping layer, not a
// continuum stress measure: it works in the plain Cartesian basis the
// rest of this module uses, not the Mandel/Voigt basis of a
// finite-element stress tensor.
package virial

import "github.com/cpmech/gosl/la"

// Tensor is a 3x3 accumulator, row-major as the rest of this module's
// small dense matrices.
type Tensor struct {
	W [][]float64
}

// New allocates a zeroed virial tensor.
func New() *Tensor {
	return &Tensor{W: la.MatAlloc(3, 3)}
}

// Reset zeroes the tensor in place, for reuse across steps without
// reallocating.
func (t *Tensor) Reset() {
	la.MatFill(t.W, 0)
}

// AddPair folds in one pairwise contribution: disp is the displacement
// r_i - r_j between the two atoms that saw force g (the same
// scale*derivative-over-distance value pairpot.Scan computes), and is
// accumulated onto both the i-on-j and j-on-i legs so the resulting
// tensor is symmetric by construction.
func (t *Tensor) AddPair(disp [3]float64, g float64) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			t.W[a][b] += disp[a] * disp[b] * g
		}
	}
}

// AddBond folds in one bonded-term contribution: disp is a dlist row's
// displacement vector and grad its accumulated gradient (row.Grad),
// after iclist.Back has distributed the energy term's scalar derivative
// onto it.
func (t *Tensor) AddBond(disp, grad [3]float64) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			t.W[a][b] += disp[a] * grad[b]
		}
	}
}

// Symmetrize folds the tensor onto its symmetric part in place,
// (W + W^T)/2. AddPair already produces a symmetric accumulation; this
// is needed only after AddBond calls, whose disp⊗grad outer product is
// not symmetric term-by-term.
func (t *Tensor) Symmetrize() {
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			avg := 0.5 * (t.W[a][b] + t.W[b][a])
			t.W[a][b] = avg
			t.W[b][a] = avg
		}
	}
}

// Trace returns W_aa summed, proportional to the scalar pressure
// contribution in an isotropic system.
func (t *Tensor) Trace() float64 {
	return t.W[0][0] + t.W[1][1] + t.W[2][2]
}
