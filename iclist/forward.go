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

type forwardFn func(ic *Row, d *dlist.Table) float64

// forwardKernels mirrors yaff/pes/iclist.c's ic_forward_fns table exactly,
// including the BOND_ALT entry duplicating Bond.
var forwardKernels = [numKinds]forwardFn{
	Bond:       forwardBond,
	BendCos:    forwardBendCos,
	BendAngle:  forwardBendAngle,
	DihedCos:   forwardDihedCos,
	DihedAngle: forwardDihedAngle,
	BondAlt:    forwardBond,
	OopCos:     forwardOopCos,
	OopAngle:   forwardOopAngle,
}

// Forward refreshes every row's Value from the current state of d and
// zeroes its Grad accumulator.
func Forward(d *dlist.Table, t []Row) {
	for i := range t {
		k := t[i].Kind
		if k < 0 || k >= numKinds {
			chk.Panic("iclist: row %d has unrecognised kind %d", i, k)
		}
		t[i].Value = forwardKernels[k](&t[i], d)
		t[i].Grad = 0.0
	}
}

func forwardBond(ic *Row, d *dlist.Table) float64 {
	return vec3.Norm(d.DispVec(ic.I0))
}

func forwardBendCos(ic *Row, d *dlist.Table) float64 {
	d0, d1 := d.DispVec(ic.I0), d.DispVec(ic.I1)
	n0, n1 := vec3.Norm(d0), vec3.Norm(d1)
	if n0 == 0 || n1 == 0 {
		return 0.0
	}
	return ic.Sign0 * ic.Sign1 * vec3.Dot(d0, d1) / n0 / n1
}

func forwardBendAngle(ic *Row, d *dlist.Table) float64 {
	return math.Acos(forwardBendCos(ic, d))
}

// dihedralPlaneVecs projects delta0 and delta2 onto the plane orthogonal
// to delta1, returning the two in-plane vectors a, b used by
// forwardDihedCos (backDihedCos builds the same a, b inline).
func dihedralPlaneVecs(d *dlist.Table, ic *Row) (a, b [3]float64) {
	d0, d1, d2 := d.DispVec(ic.I0), d.DispVec(ic.I1), d.DispVec(ic.I2)
	n1sq := vec3.Dot(d1, d1)
	t0 := vec3.Dot(d0, d1) / n1sq
	t2 := vec3.Dot(d1, d2) / n1sq
	a = vec3.Sub(d0, vec3.Scale(t0, d1))
	b = vec3.Sub(d2, vec3.Scale(t2, d1))
	return
}

func forwardDihedCos(ic *Row, d *dlist.Table) float64 {
	a, b := dihedralPlaneVecs(d, ic)
	na, nb := vec3.Norm(a), vec3.Norm(b)
	return ic.Sign0 * ic.Sign2 * vec3.Dot(a, b) / na / nb
}

func forwardDihedAngle(ic *Row, d *dlist.Table) float64 {
	return math.Acos(clamp(forwardDihedCos(ic, d)))
}

func forwardOopCos(ic *Row, d *dlist.Table) float64 {
	d0, d1, d2 := d.DispVec(ic.I0), d.DispVec(ic.I1), d.DispVec(ic.I2)
	n := vec3.Cross(d0, d1)
	nSq := vec3.Dot(n, n)
	d2Sq := vec3.Dot(d2, d2)
	nDotD2 := vec3.Dot(n, d2)
	return math.Sqrt(1.0 - nDotD2*nDotD2/d2Sq/nSq)
}

func forwardOopAngle(ic *Row, d *dlist.Table) float64 {
	return math.Acos(clamp(forwardOopCos(ic, d)))
}

// clamp guards acos against round-off pushing its argument just outside
// [-1,1].
func clamp(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
