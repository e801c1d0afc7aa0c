// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/mishramlan/gocontact/contact"
	"github.com/mishramlan/gocontact/halfspace"
)

// GridData holds the grid geometry
type GridData struct {
	Nx int     `json:"nx"` // number of pixels along x
	Ny int     `json:"ny"` // number of pixels along y
	Lx float64 `json:"lx"` // physical extent along x
	Ly float64 `json:"ly"` // physical extent along y
}

// ControlData selects the control mode of the solve
type ControlData struct {
	Mode  string  `json:"mode"`  // "offset" or "force"
	Value float64 `json:"value"` // indentation depth or total load
}

// SolverData holds solver tolerances and limits
type SolverData struct {
	Pentol  float64 `json:"pentol"`  // penetration tolerance; 0 means heuristic
	Prestol float64 `json:"prestol"` // pressure tolerance
	Maxiter int     `json:"maxiter"` // iteration cap
	ShowRes bool    `json:"showres"` // show residuals
}

// PostProcess sets default values
func (o *SolverData) PostProcess() {
	if o.Prestol == 0 {
		o.Prestol = 1e-5
	}
	if o.Maxiter == 0 {
		o.Maxiter = 100000
	}
}

// Simulation holds all data for a contact simulation
type Simulation struct {
	Desc    string      `json:"desc"`     // description of simulation
	Oper    string      `json:"operator"` // elastic operator kind: "periodic" or "free"
	Grid    GridData    `json:"grid"`     // grid geometry
	Control ControlData `json:"control"`  // control mode
	Mat     Material    `json:"material"` // contacting pair
	Solver  SolverData  `json:"solver"`   // tolerances and limits
}

// ReadSim reads a simulation file, sets default values and validates
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.Solver.PostProcess()
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// Validate checks the simulation data
func (o *Simulation) Validate() error {
	if o.Grid.Nx < 2 || o.Grid.Ny < 2 {
		return chk.Err("grid needs at least 2 pixels per direction; nx=%d ny=%d is invalid", o.Grid.Nx, o.Grid.Ny)
	}
	if o.Grid.Lx <= 0 || o.Grid.Ly <= 0 {
		return chk.Err("physical extents must be positive; lx=%g ly=%g is invalid", o.Grid.Lx, o.Grid.Ly)
	}
	switch o.Oper {
	case "periodic", "free":
	default:
		return chk.Err("operator kind must be \"periodic\" or \"free\"; %q is invalid", o.Oper)
	}
	switch o.Control.Mode {
	case "offset", "force":
	default:
		return chk.Err("control mode must be \"offset\" or \"force\"; %q is invalid", o.Control.Mode)
	}
	return o.Mat.Validate()
}

// MakeOperator allocates the elastic operator described by this simulation
func (o *Simulation) MakeOperator() (halfspace.Operator, error) {
	return halfspace.New(o.Oper, o.Grid.Nx, o.Grid.Ny, o.Grid.Lx, o.Grid.Ly, o.Mat.Contact())
}

// MakeParams builds the solver parameters described by this simulation
func (o *Simulation) MakeParams() (par contact.Params) {
	switch o.Control.Mode {
	case "force":
		par.Control = contact.Load
		par.Force = o.Control.Value
	default:
		par.Control = contact.Offset
		par.Offset = o.Control.Value
	}
	if o.Mat.Hardness > 0 {
		par.Hardness = la.Vector{o.Mat.Hardness}
	}
	par.Pentol = o.Solver.Pentol
	par.Prestol = o.Solver.Prestol
	par.Maxiter = o.Solver.Maxiter
	par.ShowRes = o.Solver.ShowRes
	return
}
