// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package virial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

func Test_virial01(tst *testing.T) {

	chk.PrintTitle("virial01: AddPair alone is already symmetric")

	t := New()
	t.AddPair([3]float64{1.0, 2.0, -0.5}, 0.7)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			chk.Scalar(tst, "W symmetric", 1e-15, t.W[a][b], t.W[b][a])
		}
	}
}

func Test_virial02(tst *testing.T) {

	chk.PrintTitle("virial02: Symmetrize makes a random AddBond accumulation symmetric")

	rnd.Init(0)
	t := New()
	for k := 0; k < 5; k++ {
		disp := [3]float64{rnd.Float64(-1, 1), rnd.Float64(-1, 1), rnd.Float64(-1, 1)}
		grad := [3]float64{rnd.Float64(-1, 1), rnd.Float64(-1, 1), rnd.Float64(-1, 1)}
		t.AddBond(disp, grad)
	}
	t.Symmetrize()
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			chk.Scalar(tst, "W symmetric after fold", 1e-14, t.W[a][b], t.W[b][a])
		}
	}
}

func Test_virial03(tst *testing.T) {

	chk.PrintTitle("virial03: Reset zeroes a previously accumulated tensor")

	t := New()
	t.AddPair([3]float64{1, 1, 1}, 1)
	t.Reset()
	chk.Scalar(tst, "trace after reset", 0, t.Trace(), 0)
}
