// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice holds the periodic cell description shared by the
// minimum-image helper and the displacement engine.
package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Lattice describes zero to three periodic directions. RVecs holds the
// real-space lattice vectors (row i is vector i), GVecs the matching
// reciprocal vectors, such that GVecs·RVecsᵀ = I over the spanned
// subspace. Both are allocated as row-major 3×3 matrices regardless of
// NVec; only the first NVec rows are meaningful.
type Lattice struct {
	RVecs [][]float64 // [3][3] real-space lattice vectors
	GVecs [][]float64 // [3][3] reciprocal lattice vectors
	NVec  int         // number of active periodic directions, 0..3
}

// New allocates an aperiodic (NVec=0) lattice.
func New() *Lattice {
	return &Lattice{
		RVecs: la.MatAlloc(3, 3),
		GVecs: la.MatAlloc(3, 3),
	}
}

// NewFrom builds a Lattice from nvec row-major real-space vectors and
// their matching reciprocal vectors. Rows beyond nvec are left zeroed.
func NewFrom(rvecs, gvecs [][]float64, nvec int) *Lattice {
	l := New()
	for i := 0; i < nvec; i++ {
		copy(l.RVecs[i], rvecs[i])
		copy(l.GVecs[i], gvecs[i])
	}
	l.NVec = nvec
	return l
}

// NewPeriodic builds a Lattice from nvec row-major real-space vectors,
// computing the matching reciprocal vectors itself rather than trusting
// the caller to supply them.
func NewPeriodic(rvecs [][]float64, nvec int) (*Lattice, error) {
	gvecs, err := Reciprocal(rvecs, nvec)
	if err != nil {
		return nil, err
	}
	return NewFrom(rvecs, gvecs, nvec), nil
}

// Reciprocal computes the nvec reciprocal vectors G_k spanning the same
// subspace as rvecs[0:nvec], satisfying G_k·rvecs[i] = δ_ki for i,k <
// nvec (no component outside that span, which is what mic.Apply needs).
// G_k is written as a linear combination of the real vectors, with the
// combination coefficients taken from the inverse Gram matrix
// (rvecs[i]·rvecs[j]); for nvec==3 this reduces to the usual
// (RVecsᵀ)⁻¹ reciprocal-vector construction.
func Reciprocal(rvecs [][]float64, nvec int) ([][]float64, error) {
	gvecs := la.MatAlloc(3, 3)
	if nvec == 0 {
		return gvecs, nil
	}
	gram := la.MatAlloc(nvec, nvec)
	for i := 0; i < nvec; i++ {
		for j := 0; j < nvec; j++ {
			gram[i][j] = rvecs[i][0]*rvecs[j][0] + rvecs[i][1]*rvecs[j][1] + rvecs[i][2]*rvecs[j][2]
		}
	}
	invGram := la.MatAlloc(nvec, nvec)
	if _, err := la.MatInv(invGram, gram, 1e-12); err != nil {
		return nil, chk.Err("lattice: cannot invert Gram matrix of the %d periodic lattice vectors: %v", nvec, err)
	}
	for k := 0; k < nvec; k++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for j := 0; j < nvec; j++ {
				sum += invGram[k][j] * rvecs[j][c]
			}
			gvecs[k][c] = sum
		}
	}
	return gvecs, nil
}

// Row3 returns row i of m as a fixed-size 3-vector.
func Row3(m [][]float64, i int) [3]float64 {
	return [3]float64{m[i][0], m[i][1], m[i][2]}
}
