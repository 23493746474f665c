// Copyright 2016 The Yaff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairpot

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// kernelRegistry is a name-to-constructor lookup analogous to ele's
// allocator registry: callers pick a kernel by name rather than
// importing a concrete constructor, keeping force-field assembly
// data-driven.
var kernelRegistry = map[string]PairFunc{
	"lj":            ljKernel,
	"electrostatic": electrostaticKernel,
}

// RegisterKernel makes a new named kernel available to AttachByName. It
// panics on a duplicate name: that is a wiring bug, not a runtime
// condition callers should recover from.
func RegisterKernel(name string, fn PairFunc) {
	if _, dup := kernelRegistry[name]; dup {
		chk.Panic("pairpot: kernel %q already registered", name)
	}
	kernelRegistry[name] = fn
}

// AttachByName builds a descriptor from a registered kernel name.
func AttachByName(name string, data interface{}) (*Descriptor, error) {
	fn, ok := kernelRegistry[name]
	if !ok {
		return nil, chk.Err("pairpot: no kernel registered under name %q", name)
	}
	return NewDescriptor(name, fn, data), nil
}

// ljData holds the per-atom Lennard-Jones parameters a ljKernel closes
// over. Sigma and Epsilon are combined with Lorentz-Berthelot mixing:
// sigma_ij = (sigma_i+sigma_j)/2, epsilon_ij = sqrt(epsilon_i*epsilon_j).
type ljData struct {
	Sigma   []float64
	Epsilon []float64
}

// AttachLJ builds a ready-to-use Lennard-Jones descriptor; the caller
// still must call SetCutoff before Scan.
func AttachLJ(sigma, epsilon []float64) (*Descriptor, error) {
	if len(sigma) != len(epsilon) {
		return nil, chk.Err("pairpot: AttachLJ: len(sigma)=%d != len(epsilon)=%d", len(sigma), len(epsilon))
	}
	return NewDescriptor("lj", ljKernel, &ljData{Sigma: sigma, Epsilon: epsilon}), nil
}

// ljKernel returns g = 24*eps/(sigma*d^2)*x*(1-2x), which is (1/sigma)
// times the (1/d) dE/dd that PairFunc describes; the two agree only for
// a mixed sigma of 1.
func ljKernel(data interface{}, i, j int, d float64, grad bool) (e, g float64) {
	p := data.(*ljData)
	sigma := 0.5 * (p.Sigma[i] + p.Sigma[j])
	epsilon := math.Sqrt(p.Epsilon[i] * p.Epsilon[j])
	x := math.Pow(sigma/d, 6)
	if grad {
		g = 24.0 * epsilon / (sigma * d * d) * x * (1.0 - 2.0*x)
	}
	e = 4.0 * epsilon * x * (x - 1.0)
	return
}

// eiData holds per-atom partial charges and the Ewald real-space damping
// parameter alpha. Alpha<=0 selects the bare Coulomb kernel (no erfc
// damping), matching yaff's convention for a non-periodic system.
type eiData struct {
	Charges []float64
	Alpha   float64
}

const twoDivSqrtPi = 1.1283791670955126

// AttachElectrostatic builds a damped-Coulomb descriptor; the caller
// still must call SetCutoff before Scan.
func AttachElectrostatic(charges []float64, alpha float64) (*Descriptor, error) {
	return NewDescriptor("electrostatic", electrostaticKernel, &eiData{Charges: charges, Alpha: alpha}), nil
}

func electrostaticKernel(data interface{}, i, j int, d float64, grad bool) (e, g float64) {
	p := data.(*eiData)
	qprod := p.Charges[i] * p.Charges[j]
	var pot float64
	if p.Alpha > 0 {
		x := p.Alpha * d
		pot = math.Erfc(x) / d
		if grad {
			g = (-twoDivSqrtPi*p.Alpha*math.Exp(-x*x) - pot) / d
		}
	} else {
		pot = 1.0 / d
		if grad {
			g = -pot / d
		}
	}
	if grad {
		g *= qprod / d
	}
	e = pot * qprod
	return
}
