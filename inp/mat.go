// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mishramlan/gocontact/halfspace"
)

// Material holds the elastic constants of the contacting pair and the
// optional hardness cap. Either the pair (E1,nu1,E2,nu2) or the contact
// modulus Emod directly may be given; a rigid counter-body is modelled by
// omitting E2
type Material struct {
	E1       float64 `json:"e1"`       // Young's modulus of the half-space
	Nu1      float64 `json:"nu1"`      // Poisson's coefficient of the half-space
	E2       float64 `json:"e2"`       // Young's modulus of the counter-body; ≤ 0 means rigid
	Nu2      float64 `json:"nu2"`      // Poisson's coefficient of the counter-body
	Emod     float64 `json:"emod"`     // contact modulus E*; wins over the pair if positive
	Hardness float64 `json:"hardness"` // plastic pressure cap; ≤ 0 means purely elastic
}

// Init initialises the material from a parameter set
func (o *Material) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E1":
			o.E1 = p.V
		case "nu1":
			o.Nu1 = p.V
		case "E2":
			o.E2 = p.V
		case "nu2":
			o.Nu2 = p.V
		case "Emod":
			o.Emod = p.V
		case "H":
			o.Hardness = p.V
		default:
			return chk.Err("material parameter named %q is unknown", p.N)
		}
	}
	return o.Validate()
}

// Validate checks the elastic constants
func (o *Material) Validate() error {
	if o.Emod > 0 {
		return nil
	}
	if o.E1 <= 0 {
		return chk.Err("material needs either Emod > 0 or E1 > 0; got Emod=%g E1=%g", o.Emod, o.E1)
	}
	if o.Nu1 < 0 || o.Nu1 >= 0.5 {
		return chk.Err("nu1 must be within [0, 0.5); %g is invalid", o.Nu1)
	}
	if o.E2 > 0 && (o.Nu2 < 0 || o.Nu2 >= 0.5) {
		return chk.Err("nu2 must be within [0, 0.5); %g is invalid", o.Nu2)
	}
	return nil
}

// Contact returns the contact modulus E*
func (o *Material) Contact() float64 {
	if o.Emod > 0 {
		return o.Emod
	}
	return halfspace.ContactModulus(o.E1, o.Nu1, o.E2, o.Nu2)
}

// GetPrms gets (an example) of parameters
func (o *Material) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E1", V: 100.0},
		&dbf.P{N: "nu1", V: 0.3},
		&dbf.P{N: "E2", V: 200.0},
		&dbf.P{N: "nu2", V: 0.25},
	}
}
