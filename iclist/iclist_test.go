// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iclist

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/rnd"

	"github.com/yfyh2013/yaff/dlist"
	"github.com/yfyh2013/yaff/lattice"
)

// valueAt rebuilds the displacement table at a perturbed coordinate vector
// and returns row k's forward value, for use as the scalar function passed
// to num.DerivCentral.
func valueAt(pos []float64, pairs [][2]int, rows []Row, k int) func(x float64, args ...interface{}) float64 {
	return func(x float64, args ...interface{}) float64 {
		c := int(args[0].(float64))
		p := make([]float64, len(pos))
		copy(p, pos)
		p[c] = x
		lat := lattice.New()
		d := dlist.NewTable(pairs)
		dlist.Forward(p, lat, d)
		t := make([]Row, len(rows))
		copy(t, rows)
		Forward(d, t)
		return t[k].Value
	}
}

func Test_iclist01(tst *testing.T) {

	chk.PrintTitle("iclist01: right-angle bend gives BEND_COS=0, BEND_ANGLE=pi/2")

	pos := []float64{0, 0, 0, 1, 0, 0, 1, 1, 0}
	pairs := [][2]int{{1, 0}, {1, 2}}
	lat := lattice.New()
	d := dlist.NewTable(pairs)
	dlist.Forward(pos, lat, d)

	rows := []Row{{Kind: BendCos, I0: 0, I1: 1, Sign0: 1, Sign1: 1}}
	Forward(d, rows)
	chk.Scalar(tst, "cos(theta)", 1e-14, rows[0].Value, 0)

	rowsAngle := []Row{{Kind: BendAngle, I0: 0, I1: 1, Sign0: 1, Sign1: 1}}
	Forward(d, rowsAngle)
	chk.Scalar(tst, "theta", 1e-14, rowsAngle[0].Value, math.Pi/2)
}

func Test_iclist02(tst *testing.T) {

	chk.PrintTitle("iclist02: planar four-atom chain gives DIHED_ANGLE=0")

	pos := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		2, 1, 0,
	}
	pairs := [][2]int{{1, 0}, {2, 1}, {3, 2}}
	lat := lattice.New()
	d := dlist.NewTable(pairs)
	dlist.Forward(pos, lat, d)

	rows := []Row{{Kind: DihedAngle, I0: 0, I1: 1, I2: 2, Sign0: 1, Sign2: 1}}
	Forward(d, rows)
	chk.Scalar(tst, "phi", 1e-13, rows[0].Value, 0)
}

// Test_iclist03 checks analytic back-propagation against a central finite
// difference of the forward value, over every row kind, by perturbing every
// Cartesian coordinate feeding the row.
func Test_iclist03(tst *testing.T) {

	chk.PrintTitle("iclist03: analytic gradient matches numerical gradient for every kind")

	rnd.Init(0)

	cases := []struct {
		label string
		pos   []float64
		pairs [][2]int
		row   Row
	}{
		{
			"bond", randPos(2), [][2]int{{0, 1}},
			Row{Kind: Bond, I0: 0},
		},
		{
			"bend_cos", randPos(3), [][2]int{{1, 0}, {1, 2}},
			Row{Kind: BendCos, I0: 0, I1: 1, Sign0: 1, Sign1: 1},
		},
		{
			"bend_angle", randPos(3), [][2]int{{1, 0}, {1, 2}},
			Row{Kind: BendAngle, I0: 0, I1: 1, Sign0: 1, Sign1: 1},
		},
		{
			"dihed_cos", randPos(4), [][2]int{{1, 0}, {2, 1}, {3, 2}},
			Row{Kind: DihedCos, I0: 0, I1: 1, I2: 2, Sign0: 1, Sign2: 1},
		},
		{
			"dihed_angle", randPos(4), [][2]int{{1, 0}, {2, 1}, {3, 2}},
			Row{Kind: DihedAngle, I0: 0, I1: 1, I2: 2, Sign0: 1, Sign2: 1},
		},
		{
			"oop_cos", randPos(4), [][2]int{{0, 3}, {1, 3}, {2, 3}},
			Row{Kind: OopCos, I0: 0, I1: 1, I2: 2},
		},
		{
			"oop_angle", randPos(4), [][2]int{{0, 3}, {1, 3}, {2, 3}},
			Row{Kind: OopAngle, I0: 0, I1: 1, I2: 2},
		},
		{
			"bond_alt", randPos(2), [][2]int{{0, 1}},
			Row{Kind: BondAlt, I0: 0},
		},
	}

	for _, c := range cases {
		lat := lattice.New()
		d := dlist.NewTable(c.pairs)
		dlist.Forward(c.pos, lat, d)
		rows := []Row{c.row}
		Forward(d, rows)
		rows[0].Grad = 1.0
		Back(d, rows)

		atomGrad := make([]float64, len(c.pos))
		dlist.Back(d, atomGrad)

		for comp := 0; comp < len(c.pos); comp++ {
			num_, _ := num.DerivCentral(valueAt(c.pos, c.pairs, []Row{c.row}, 0), c.pos[comp], 1e-6, float64(comp))
			chk.AnaNum(tst, c.label, 1e-6, atomGrad[comp], num_, false)
		}
	}
}

func randPos(natoms int) []float64 {
	pos := make([]float64, 3*natoms)
	for i := range pos {
		pos[i] = rnd.Float64(-2, 2)
	}
	return pos
}

func Test_iclist04(tst *testing.T) {

	chk.PrintTitle("iclist04: Forward zeroes Grad even when it carries leftover state")

	pos := []float64{0, 0, 0, 1.3, 0, 0}
	lat := lattice.New()
	d := dlist.NewTable([][2]int{{0, 1}})
	dlist.Forward(pos, lat, d)

	rows := []Row{{Kind: Bond, I0: 0, Grad: 42}}
	Forward(d, rows)
	chk.Scalar(tst, "grad zeroed", 0, rows[0].Grad, 0)
	chk.Scalar(tst, "value", 1e-15, rows[0].Value, 1.3)
}

func Test_iclist05(tst *testing.T) {

	chk.PrintTitle("iclist05: BOND_ALT is numerically identical to BOND")

	pos := []float64{0, 0, 0, 0.7, 0.3, -0.2}
	lat := lattice.New()
	d := dlist.NewTable([][2]int{{0, 1}})

	dlist.Forward(pos, lat, d)
	bond := []Row{{Kind: Bond, I0: 0}}
	alt := []Row{{Kind: BondAlt, I0: 0}}
	Forward(d, bond)
	Forward(d, alt)
	chk.Scalar(tst, "bond == bond_alt", 1e-15, bond[0].Value, alt[0].Value)
}
