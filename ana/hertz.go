// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical contact solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// HertzSphere computes the frictionless Hertzian solution for a rigid
// sphere (paraboloid approximation) indenting an elastic half-space
//
//	        ↓ F
//	      _____
//	     /  R  \          a  = √(R δ)
//	─────┤     ├─────     p0 = 2 E* a / (π R)
//	  ▔▔▔▔▔▔▔▔▔▔▔▔▔       F  = (4/3) E* √R δ^(3/2)
type HertzSphere struct {
	R    float64 // sphere radius
	Emod float64 // contact modulus E*
}

// Init initialises the solution parameters
func (o *HertzSphere) Init(prms dbf.Params) {

	// default values
	o.R = 1.0
	o.Emod = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "R":
			o.R = p.V
		case "Emod":
			o.Emod = p.V
		}
	}
}

// ContactRadius returns the contact radius for an indentation depth δ
func (o HertzSphere) ContactRadius(δ float64) float64 {
	return math.Sqrt(o.R * δ)
}

// MaxPressure returns the peak compressive pressure magnitude p0
func (o HertzSphere) MaxPressure(δ float64) float64 {
	return 2.0 * o.Emod * math.Sqrt(δ/o.R) / math.Pi
}

// TotalForce returns the total normal load carried at indentation δ
func (o HertzSphere) TotalForce(δ float64) float64 {
	return 4.0 / 3.0 * o.Emod * math.Sqrt(o.R) * math.Pow(δ, 1.5)
}

// Indentation returns the indentation depth carrying a total load F
func (o HertzSphere) Indentation(F float64) float64 {
	return math.Pow(3.0*F/(4.0*o.Emod*math.Sqrt(o.R)), 2.0/3.0)
}

// Stiffness returns the incremental normal contact stiffness dF/dδ = 2 E* a
func (o HertzSphere) Stiffness(δ float64) float64 {
	return 2.0 * o.Emod * o.ContactRadius(δ)
}

// Pressure returns the compressive pressure magnitude at radial distance r
// from the contact centre: p0 √(1 - r²/a²) inside, zero outside
func (o HertzSphere) Pressure(r, δ float64) float64 {
	a := o.ContactRadius(δ)
	if r >= a {
		return 0
	}
	return o.MaxPressure(δ) * math.Sqrt(1.0-r*r/(a*a))
}
