// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iclist

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/yfyh2013/yaff/dlist"
	"github.com/yfyh2013/yaff/internal/vec3"
)

type backwardFn func(ic *Row, d *dlist.Table, value, grad float64)

// backwardKernels mirrors yaff/pes/iclist.c's ic_back_fns table exactly,
// including the BOND_ALT entry duplicating Bond.
var backwardKernels = [numKinds]backwardFn{
	Bond:       backBond,
	BendCos:    backBendCos,
	BendAngle:  backBendAngle,
	DihedCos:   backDihedCos,
	DihedAngle: backDihedAngle,
	BondAlt:    backBond,
	OopCos:     backOopCos,
	OopAngle:   backOopAngle,
}

// Back distributes every row's scalar Grad onto the dlist rows it
// references, using the row's Value as computed by the preceding Forward
// call.
func Back(d *dlist.Table, t []Row) {
	for i := range t {
		k := t[i].Kind
		if k < 0 || k >= numKinds {
			chk.Panic("iclist: row %d has unrecognised kind %d", i, k)
		}
		backwardKernels[k](&t[i], d, t[i].Value, t[i].Grad)
	}
}

// backBond is undefined at value=0: callers must not configure
// zero-length bonds (spec precondition, not checked here).
func backBond(ic *Row, d *dlist.Table, value, grad float64) {
	row := &d.Rows[ic.I0]
	x := grad / value
	vec3.AddInto(&row.Grad, x, row.Disp)
}

func backBendCos(ic *Row, d *dlist.Table, value, grad float64) {
	row0, row1 := &d.Rows[ic.I0], &d.Rows[ic.I1]
	d0, d1 := vec3.Norm(row0.Disp), vec3.Norm(row1.Disp)
	e0 := vec3.Scale(1/d0, row0.Disp)
	e1 := vec3.Scale(1/d1, row1.Disp)

	fac := ic.Sign0 * ic.Sign1
	grad *= fac
	value *= fac

	fac0 := grad / d0
	vec3.AddInto(&row0.Grad, fac0, vec3.Sub(e1, vec3.Scale(value, e0)))

	fac1 := grad / d1
	vec3.AddInto(&row1.Grad, fac1, vec3.Sub(e0, vec3.Scale(value, e1)))
}

// backBendAngle reduces to backBendCos via value=cos(angle),
// grad=-grad/sin(angle); when sin(angle)=0 the substituted scalar is
// taken as 0, suppressing the otherwise-singular division (spec.md
// §4.3, angle-variant back-propagation).
func backBendAngle(ic *Row, d *dlist.Table, value, grad float64) {
	s := math.Sin(value)
	scaled := 0.0
	if s != 0.0 {
		scaled = -grad / s
	}
	backBendCos(ic, d, math.Cos(value), scaled)
}

func backDihedCos(ic *Row, d *dlist.Table, value, grad float64) {
	row0, row1, row2 := &d.Rows[ic.I0], &d.Rows[ic.I1], &d.Rows[ic.I2]
	delta0, delta1, delta2 := row0.Disp, row1.Disp, row2.Disp

	n1 := vec3.Norm(delta1)
	n1sq := n1 * n1
	dot0 := vec3.Dot(delta0, delta1)
	dot2 := vec3.Dot(delta1, delta2)

	a := vec3.Sub(delta0, vec3.Scale(dot0/n1sq, delta1))
	b := vec3.Sub(delta2, vec3.Scale(dot2/n1sq, delta1))
	na, nb := vec3.Norm(a), vec3.Norm(b)

	fac := ic.Sign0 * ic.Sign2
	value *= fac
	grad *= fac

	var dcosDa, dcosDb [3]float64
	for i := 0; i < 3; i++ {
		dcosDa[i] = (b[i]/nb - value*a[i]/na) / na
		dcosDb[i] = (a[i]/na - value*b[i]/nb) / nb
	}

	// da/ddelta0 is the projector orthogonal to delta1 (3x3, row-major).
	var daDdelta0 [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			kron := 0.0
			if i == j {
				kron = 1.0
			}
			daDdelta0[3*i+j] = kron - delta1[i]*delta1[j]/n1sq
		}
	}

	jacRow := func(dot float64, v, delta1 [3]float64) (m [9]float64) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				term := 2 * dot / (n1sq * n1sq) * delta1[i] * delta1[j]
				if i == j {
					term -= dot / n1sq
				}
				m[3*i+j] = term - v[i]*delta1[j]/n1sq
			}
		}
		return
	}
	daDdelta1 := jacRow(dot0, delta0, delta1)
	dbDdelta1 := jacRow(dot2, delta2, delta1)

	contract := func(dc [3]float64, jac [9]float64) [3]float64 {
		return [3]float64{
			dc[0]*jac[0] + dc[1]*jac[3] + dc[2]*jac[6],
			dc[0]*jac[1] + dc[1]*jac[4] + dc[2]*jac[7],
			dc[0]*jac[2] + dc[1]*jac[5] + dc[2]*jac[8],
		}
	}

	g0 := contract(dcosDa, daDdelta0)
	vec3.AddInto(&row0.Grad, grad, g0)

	g1a := contract(dcosDa, daDdelta1)
	g1b := contract(dcosDb, dbDdelta1)
	vec3.AddInto(&row1.Grad, grad, g1a)
	vec3.AddInto(&row1.Grad, grad, g1b)

	// ∂b/∂delta2 equals ∂a/∂delta0 by symmetry.
	g2 := contract(dcosDb, daDdelta0)
	vec3.AddInto(&row2.Grad, grad, g2)
}

// backDihedAngle reduces to backDihedCos, same transform as backBendAngle.
func backDihedAngle(ic *Row, d *dlist.Table, value, grad float64) {
	s := math.Sin(value)
	scaled := 0.0
	if s != 0.0 {
		scaled = -grad / s
	}
	backDihedCos(ic, d, math.Cos(value), scaled)
}

// backOopCos follows the closed-form derivatives of cos(phi)=sqrt(1-f^2)
// exactly as derived (and checked against a symbolic CAS) in the
// original source. It divides by value (the OOP cosine); value=0 is a
// genuine singularity the original leaves unguarded, and so does this
// port — callers must not configure an out-of-plane angle of 90 degrees
// (delta2 perpendicular to the plane of delta0 and delta1).
func backOopCos(ic *Row, d *dlist.Table, value, grad float64) {
	row0, row1, row2 := &d.Rows[ic.I0], &d.Rows[ic.I1], &d.Rows[ic.I2]
	delta0, delta1, delta2 := row0.Disp, row1.Disp, row2.Disp

	n := vec3.Cross(delta0, delta1)
	nSq := vec3.Dot(n, n)
	d2Sq := vec3.Dot(delta2, delta2)
	nDotD2 := vec3.Dot(n, delta2)
	fac := nDotD2 / d2Sq / nSq
	scale := -fac / value * grad

	d1CrossD2 := vec3.Cross(delta1, delta2)
	d2CrossD0 := vec3.Cross(delta2, delta0)
	d0CrossD1 := n

	term0 := vec3.Sub(d1CrossD2, vec3.Scale(nDotD2/nSq, vec3.Cross(delta1, n)))
	term1 := vec3.Sub(d2CrossD0, vec3.Scale(nDotD2/nSq, vec3.Cross(n, delta0)))
	term2 := vec3.Sub(d0CrossD1, vec3.Scale(nDotD2/d2Sq, delta2))

	vec3.AddInto(&row0.Grad, scale, term0)
	vec3.AddInto(&row1.Grad, scale, term1)
	vec3.AddInto(&row2.Grad, scale, term2)
}

// backOopAngle reduces to backOopCos, same transform as backBendAngle.
func backOopAngle(ic *Row, d *dlist.Table, value, grad float64) {
	s := math.Sin(value)
	scaled := 0.0
	if s != 0.0 {
		scaled = -grad / s
	}
	backOopCos(ic, d, math.Cos(value), scaled)
}
