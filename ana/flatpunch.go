// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// FlatPunch computes the frictionless solution for a rigid circular flat
// punch indenting an elastic half-space. The pressure diverges like
// 1/√(a²-r²) towards the punch edge; the load-indentation relation is
// linear
type FlatPunch struct {
	A    float64 // punch radius
	Emod float64 // contact modulus E*
}

// Init initialises the solution parameters
func (o *FlatPunch) Init(prms dbf.Params) {

	// default values
	o.A = 1.0
	o.Emod = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "Emod":
			o.Emod = p.V
		}
	}
}

// TotalForce returns the total normal load at indentation δ
func (o FlatPunch) TotalForce(δ float64) float64 {
	return 2.0 * o.Emod * o.A * δ
}

// Stiffness returns the (constant) normal contact stiffness dF/dδ = 2 E* a
func (o FlatPunch) Stiffness() float64 {
	return 2.0 * o.Emod * o.A
}

// Pressure returns the compressive pressure magnitude at radial distance r
// from the punch centre
func (o FlatPunch) Pressure(r, δ float64) float64 {
	if r >= o.A {
		return 0
	}
	return o.TotalForce(δ) / (2.0 * math.Pi * o.A * math.Sqrt(o.A*o.A-r*r))
}
