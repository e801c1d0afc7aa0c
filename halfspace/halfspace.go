// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package halfspace implements the FFT-based elastic response of a linearly
// elastic half-space: diagonal spectral operators mapping surface pressure
// to surface normal displacement, in a periodic and a free (zero-padded)
// variant. The implementation follows Stanley & Kato J. Tribol. 119(3),
// 481-485 (1997)
package halfspace

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/mishramlan/gocontact/grid"
)

// Operator is an elastic half-space response operator. Both directions of
// the map act on fields living on the computational grid: the physical grid
// itself for the periodic variant, its doubled companion for the free one.
// The spectral weights are fixed at construction, but every application
// overwrites the operator's internal transform buffers: an operator can be
// reused by solves that run one after another, not by concurrent ones.
//
// Sign conventions: compressive pressure is negative and drives the surface
// displacement negative (into the half-space)
type Operator interface {
	ApplyForward(u, p la.Vector) // u ← displacement due to pressure p
	ApplyInverse(p, u la.Vector) // p ← pressure reproducing displacement u
	Grid() *grid.Grid            // physical grid
	CompGrid() *grid.Grid        // computational grid
	IsPeriodic() bool            // periodic boundary conditions?
	Kind() string                // operator kind; e.g. "periodic"
}

// allocators holds all available operator kinds
var allocators = make(map[string]func(g *grid.Grid, emod float64) (Operator, error))

// New returns an elastic operator of the given kind
//
//	Input:
//	 kind   -- operator kind: "periodic" or "free"
//	 nx, ny -- number of pixels of the physical grid
//	 lx, ly -- physical extents
//	 emod   -- contact modulus E*
func New(kind string, nx, ny int, lx, ly, emod float64) (Operator, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot find elastic operator kind named %q", kind)
	}
	if emod <= 0 {
		return nil, chk.Err("contact modulus must be positive; E*=%g is invalid", emod)
	}
	g, err := grid.New(nx, ny, lx, ly)
	if err != nil {
		return nil, err
	}
	return alloc(g, emod)
}

// ContactModulus computes the contact modulus E* of two elastic bodies:
//
//	1/E* = (1-ν1²)/E1 + (1-ν2²)/E2
//
// A rigid counter-body is modelled by letting E2 → ∞ (pass E2 ≤ 0)
func ContactModulus(e1, nu1, e2, nu2 float64) float64 {
	c := (1.0 - nu1*nu1) / e1
	if e2 > 0 {
		c += (1.0 - nu2*nu2) / e2
	}
	return 1.0 / c
}
