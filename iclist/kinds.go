// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iclist implements the internal-coordinate engine: scalar
// geometric measures (bond length, bend, dihedral, out-of-plane angles)
// derived from one to three dlist rows, and the closed-form Jacobians
// that back-propagate a scalar gradient onto those rows.
package iclist

// Kind identifies the geometric measure an internal-coordinate row
// computes. The set is closed at 8 entries, in the exact order of the
// original ic_forward_fns/ic_back_fns dispatch tables; unknown values are
// a caller bug, not a runtime failure the engine recovers from.
type Kind int

const (
	Bond Kind = iota
	BendCos
	BendAngle
	DihedCos
	DihedAngle
	BondAlt // intentionally identical to Bond in both dispatch tables
	OopCos
	OopAngle
	numKinds
)

// Row is one internal-coordinate record: up to three dlist row indices
// (I0, I1, I2), up to three orientation signs, the scalar value computed
// by Forward, and the scalar gradient ∂E/∂Value an external energy-term
// evaluator writes between Forward and Back.
type Row struct {
	Kind                   Kind
	I0, I1, I2             int
	Sign0, Sign1, Sign2    float64
	Value                  float64
	Grad                   float64
}
