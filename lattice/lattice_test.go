// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lattice01(tst *testing.T) {

	chk.PrintTitle("lattice01: Reciprocal of a cubic cell is its elementwise inverse")

	rvecs := [][]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	gvecs, err := Reciprocal(rvecs, 3)
	if err != nil {
		tst.Errorf("Reciprocal failed: %v", err)
		return
	}
	chk.Vector(tst, "g0", 1e-15, gvecs[0], []float64{0.1, 0, 0})
	chk.Vector(tst, "g1", 1e-15, gvecs[1], []float64{0, 0.1, 0})
	chk.Vector(tst, "g2", 1e-15, gvecs[2], []float64{0, 0, 0.1})
}

func Test_lattice02(tst *testing.T) {

	chk.PrintTitle("lattice02: NewPeriodic gives every periodic axis a non-degenerate reciprocal vector (regression: gvecs must not be left zero)")

	lat, err := NewPeriodic([][]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}, 3)
	if err != nil {
		tst.Errorf("NewPeriodic failed: %v", err)
		return
	}
	d := [3]float64{12, -7, 23}
	for k := 0; k < lat.NVec; k++ {
		g := Row3(lat.GVecs, k)
		frac := d[0]*g[0] + d[1]*g[1] + d[2]*g[2]
		if frac == 0 {
			tst.Errorf("axis %d: gvecs row is degenerate, periodicity would be ignored", k)
		}
	}
}

func Test_lattice03(tst *testing.T) {

	chk.PrintTitle("lattice03: Reciprocal handles a single periodic direction (nvec=1)")

	rvecs := [][]float64{{2, 0, 0}}
	gvecs, err := Reciprocal(rvecs, 1)
	if err != nil {
		tst.Errorf("Reciprocal failed: %v", err)
		return
	}
	chk.Vector(tst, "g0", 1e-15, gvecs[0], []float64{0.5, 0, 0})
}
