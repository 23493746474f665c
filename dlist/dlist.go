// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlist implements the displacement table: the row-oriented store
// of pair displacement vectors that the internal-coordinate engine reads
// and back-propagates onto, and that ultimately scatters onto the
// per-atom Cartesian gradient.
package dlist

import (
	"github.com/yfyh2013/yaff/lattice"
	"github.com/yfyh2013/yaff/mic"
)

// Row holds one unordered-pair displacement and its gradient accumulator.
// Disp and Grad are named vector fields rather than a type-punned block of
// six doubles (per the port's design notes): IC kernels read Disp by name
// (through DispVec or the row itself) instead of relying on struct layout.
type Row struct {
	I, J int       // endpoint atom indices
	Disp [3]float64 // pos[I] - pos[J], folded to the minimum image
	Grad [3]float64 // accumulator for ∂E/∂Disp
}

// Table is the full set of displacement rows for one topology.
type Table struct {
	Rows []Row
}

// NewTable allocates a table of n rows, each referencing atom pair (i,j).
func NewTable(pairs [][2]int) *Table {
	rows := make([]Row, len(pairs))
	for k, p := range pairs {
		rows[k].I = p[0]
		rows[k].J = p[1]
	}
	return &Table{Rows: rows}
}

// Forward recomputes every row's displacement from pos (a flat 3N slice,
// pos[3*i+c] is coordinate c of atom i) and, when lat.NVec > 0, folds it
// to the minimum image. Gradient accumulators are zeroed.
func Forward(pos []float64, lat *lattice.Lattice, t *Table) {
	for k := range t.Rows {
		row := &t.Rows[k]
		oi, oj := 3*row.I, 3*row.J
		row.Disp = [3]float64{
			pos[oi] - pos[oj],
			pos[oi+1] - pos[oj+1],
			pos[oi+2] - pos[oj+2],
		}
		if lat.NVec > 0 {
			mic.Apply(&row.Disp, lat)
		}
		row.Grad = [3]float64{}
	}
}

// Back scatters every row's gradient onto the per-atom Cartesian gradient
// (a flat 3N slice), with equal and opposite contributions on the two
// endpoint atoms.
func Back(t *Table, atomGrad []float64) {
	for k := range t.Rows {
		row := &t.Rows[k]
		oi, oj := 3*row.I, 3*row.J
		for c := 0; c < 3; c++ {
			atomGrad[oi+c] += row.Grad[c]
			atomGrad[oj+c] -= row.Grad[c]
		}
	}
}

// DispVec returns row i's displacement as a value, for callers (e.g. the
// IC engine) that need a read-only view without touching Table directly.
func (t *Table) DispVec(i int) [3]float64 { return t.Rows[i].Disp }
