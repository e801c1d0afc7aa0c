// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// step kinds reported per iteration
const (
	StepReset = "reset" // steepest-descent restart: the active set changed
	StepCG    = "cg"    // regular conjugate-gradient step
)

// Metrics holds the per-iteration convergence probes handed to the
// progress callback. Callbacks must not mutate solver state; the pressure
// snapshot they receive alongside is a copy
type Metrics struct {
	It       int     // iteration number (1-based)
	Area     int     // number of pixels in contact
	FracArea float64 // contact area fraction of the physical region
	RmsPen   float64 // root-mean-square penetration over the contact set
	MaxPen   float64 // maximum penetration over the contact set
	MaxPres  float64 // maximum pressure-bound violation before projection
	PadPres  float64 // maximum absolute pad pressure (free operator only)
	Pentol   float64 // penetration tolerance in use
	Prestol  float64 // pressure tolerance in use
	StepKind string  // StepReset or StepCG
}

// Callback observes the solver once per iteration. p is a snapshot of the
// physical-region pressure. Returning stop=true terminates the solve at
// the next probe point with Converged=false
type Callback func(it int, p la.Vector, m *Metrics) (stop bool)

// Results holds the output of one solve
type Results struct {
	Displacement la.Vector // displacement on the computational grid
	Pressure     la.Vector // pressure on the physical grid
	OffsetEff    float64   // effective rigid-body offset (input value under
	//                        offset control; the load-constraint multiplier
	//                        under force control)
	Converged bool // all stopping criteria held simultaneously
	Niter     int  // number of iterations run
	Nfeval    int  // number of elastic operator applications

	// final probes
	RmsPen  float64
	MaxPen  float64
	MaxPres float64
	PadPres float64
}

// header prints the residual-table header
func (m *Metrics) header() {
	io.Pf("\n%6s%7s%10s%23s%23s%23s\n", "it", "kind", "area", "rms_pen", "max_pen", "max_pres")
}

// print prints one residual-table row
func (m *Metrics) print() {
	io.Pf("%6d%7s%10d%23.15e%23.15e%23.15e\n", m.It, m.StepKind, m.Area, m.RmsPen, m.MaxPen, m.MaxPres)
}
