// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package contact implements the frictionless normal contact problem
// between a rigid counter-body with a given height profile and a linearly
// elastic half-space. The equilibrium pressure and displacement are found
// with the constrained conjugate-gradient method of Polonsky and Keer,
// Wear 231, 206 (1999): the conjugate direction is rebuilt from steepest
// descent whenever the active contact set changes
package contact

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/mishramlan/gocontact/halfspace"
)

// Control selects how the rigid-body gauge freedom is broken: by a
// prescribed indentation depth or by a prescribed total normal load
type Control int

const (
	Offset Control = iota + 1 // displacement controlled
	Load                      // load controlled
)

// Params holds the solver input parameters. Exactly one control value must
// be prescribed: Offset with control==Offset, or Force with control==Load
type Params struct {
	Control  Control
	Offset   float64   // indentation depth (Control == Offset)
	Force    float64   // total normal load, positive compressive (Control == Load)
	Hardness la.Vector // nil: purely elastic; len 1: uniform cap; len Nx*Ny: per-pixel cap
	Disp0    la.Vector // optional initial displacement on the computational grid
	Pentol   float64   // penetration tolerance; 0 means use the heuristic
	Prestol  float64   // pressure tolerance; 0 means 1e-5
	Maxiter  int       // iteration cap; 0 means 100000
	ShowRes  bool      // print the per-iteration residual table
	Callback Callback  // optional per-iteration observer
}

// Solver holds all data for one contact solve. The elastic operator and
// the height field are shared read-only; pressure, displacement and masks
// are owned exclusively by this instance for the duration of Run
type Solver struct {

	// input
	op  halfspace.Operator
	h   la.Vector // heights on the physical grid
	par Params

	// derived
	nphys   int       // number of physical pixels
	ncomp   int       // number of computational pixels
	physIdx []int     // computational index of each physical pixel
	padIdx  []int     // computational indices of the pad region
	hard    la.Vector // hardness on the computational grid; +Inf where uncapped
	plastic bool
	pentol  float64
	prestol float64
	maxiter int

	// state
	u, p, t, r la.Vector // computational grid
	g          la.Vector // gap on the physical grid
	c          la.Vector // contact mask (0/1) on the computational grid
	tensile    []bool
	flowing    []bool
	nc         []bool // new-contact mask on the physical grid
	snap       la.Vector
}

// NewSolver allocates a solver and validates the configuration. All
// configuration errors are reported here, before any iteration runs
func NewSolver(op halfspace.Operator, h la.Vector, par Params) (o *Solver, err error) {

	// control inputs
	switch par.Control {
	case Offset:
		if par.Force != 0 {
			return nil, confErr("conflicting control inputs: offset control with a nonzero external force (%g)", par.Force)
		}
	case Load:
		if par.Offset != 0 {
			return nil, confErr("conflicting control inputs: load control with a nonzero offset (%g)", par.Offset)
		}
		if par.Force <= 0 || math.IsInf(par.Force, 0) || math.IsNaN(par.Force) {
			return nil, confErr("external force must be positive and finite; F=%g is invalid", par.Force)
		}
	default:
		return nil, confErr("exactly one control mode is required: contact.Offset or contact.Load")
	}

	// geometry
	gp, gc := op.Grid(), op.CompGrid()
	o = new(Solver)
	o.op = op
	o.par = par
	o.nphys = gp.Size()
	o.ncomp = gc.Size()
	if len(h) != o.nphys {
		return nil, confErr("height field has %d pixels but the operator's physical grid has %d", len(h), o.nphys)
	}
	o.h = h
	o.physIdx = make([]int, o.nphys)
	inPhys := make([]bool, o.ncomp)
	for i := 0; i < gp.Nx; i++ {
		for j := 0; j < gp.Ny; j++ {
			kk := i*gc.Ny + j
			o.physIdx[gp.Idx(i, j)] = kk
			inPhys[kk] = true
		}
	}
	for kk, in := range inPhys {
		if !in {
			o.padIdx = append(o.padIdx, kk)
		}
	}

	// hardness
	o.hard = la.NewVector(o.ncomp)
	o.hard.Fill(math.Inf(1))
	if par.Hardness != nil {
		o.plastic = true
		switch len(par.Hardness) {
		case 1:
			if par.Hardness[0] < 0 {
				return nil, confErr("hardness must be non-negative; H=%g is invalid", par.Hardness[0])
			}
			for _, kk := range o.physIdx {
				o.hard[kk] = par.Hardness[0]
			}
		case o.nphys:
			for k, kk := range o.physIdx {
				if par.Hardness[k] < 0 {
					return nil, confErr("hardness must be non-negative; H[%d]=%g is invalid", k, par.Hardness[k])
				}
				o.hard[kk] = par.Hardness[k]
			}
		default:
			return nil, confErr("hardness field needs 1 or %d pixels; got %d", o.nphys, len(par.Hardness))
		}
	}

	// initial displacement
	if par.Disp0 != nil && len(par.Disp0) != o.ncomp {
		return nil, confErr("disp0 needs %d pixels (computational grid); got %d", o.ncomp, len(par.Disp0))
	}

	// tolerances
	o.pentol = par.Pentol
	if o.pentol < 0 {
		return nil, confErr("penetration tolerance must be non-negative; pentol=%g is invalid", par.Pentol)
	}
	if o.pentol == 0 {
		o.pentol = heuristicPentol(h, gp.Nx, gp.Ny, par.Offset)
	}
	o.prestol = par.Prestol
	if o.prestol == 0 {
		o.prestol = 1e-5
	}
	if o.prestol < 0 {
		return nil, confErr("pressure tolerance must be non-negative; prestol=%g is invalid", par.Prestol)
	}
	o.maxiter = par.Maxiter
	if o.maxiter == 0 {
		o.maxiter = 100000
	}

	// buffers
	o.u = la.NewVector(o.ncomp)
	o.p = la.NewVector(o.ncomp)
	o.t = la.NewVector(o.ncomp)
	o.r = la.NewVector(o.ncomp)
	o.g = la.NewVector(o.nphys)
	o.c = la.NewVector(o.ncomp)
	o.tensile = make([]bool, o.ncomp)
	o.flowing = make([]bool, o.ncomp)
	o.nc = make([]bool, o.nphys)
	if par.Callback != nil {
		o.snap = la.NewVector(o.nphys)
	}
	return
}

// heuristicPentol estimates a penetration tolerance from the height field.
// The numbers in a contact problem vary greatly with the unit system, so
// an absolute default would be meaningless
func heuristicPentol(h la.Vector, nx, ny int, offset float64) float64 {
	mean, ms := 0.0, 0.0
	for _, v := range h {
		mean += v
	}
	mean /= float64(len(h))
	for _, v := range h {
		ms += (v - mean) * (v - mean)
	}
	rms := math.Sqrt(ms / float64(len(h)))
	tol := rms / (10.0 * 0.5 * float64(nx+ny))
	if tol == 0 {
		// flat profile: a punch; scale with the indentation instead
		tol = (offset + mean) / 1000.0
	}
	if tol == 0 {
		tol = 1e-3
	}
	return tol
}

// Run drives the constrained conjugate-gradient iteration to equilibrium.
// Non-convergence within Maxiter is not an error: the best-effort fields
// are returned with Converged=false. A non-finite gradient norm aborts
// with a BreakdownError
func (o *Solver) Run() (res *Results, err error) {

	gp := o.op.Grid()
	res = new(Results)

	// initial displacement: start from zero or disp0, then clip so that no
	// pixel penetrates on entry
	if o.par.Disp0 != nil {
		copy(o.u, o.par.Disp0)
	} else {
		o.u.Fill(0)
	}
	offset := 0.0
	if o.par.Control == Offset {
		offset = o.par.Offset
	}
	for k, kk := range o.physIdx {
		if lim := o.h[k] - offset; o.u[kk] > lim {
			o.u[kk] = lim
		}
	}

	// initial pressure
	if o.par.Control == Load {
		o.p.Fill(0)
		p0 := -o.par.Force / (gp.Lx * gp.Ly)
		for _, kk := range o.physIdx {
			o.p[kk] = p0
		}
	} else {
		o.op.ApplyInverse(o.p, o.u)
		res.Nfeval++
		for _, kk := range o.padIdx {
			o.p[kk] = 0
		}
		if o.op.IsPeriodic() {
			o.pinPressureGauge(offset)
		}
	}

	// iteration
	prevCG := false
	Gold := 1.0
	var m Metrics
	m.Pentol = o.pentol
	m.Prestol = o.prestol
	if o.par.ShowRes {
		m.header()
	}

	for it := 1; it <= o.maxiter; it++ {
		res.Niter = it

		// reset the live contact set: pixels feeling compressive stress
		// below the hardness cap
		A := UpdateContact(o.c, o.p, o.hard)

		// gap and gradient norm over the contact set. Under load control
		// the offset is the Lagrange multiplier of the load constraint:
		// the mean gap over the live set, recomputed every iteration
		if o.par.Control == Load {
			offset = 0
			if A > 0 {
				sum := 0.0
				for k, kk := range o.physIdx {
					sum += o.c[kk] * (o.h[k] - o.u[kk])
				}
				offset = sum / float64(A)
			}
		}
		Gap(o.g, o.u, o.h, offset, o.physIdx)
		G := 0.0
		for k, kk := range o.physIdx {
			G += o.c[kk] * o.g[k] * o.g[k]
		}

		// search direction: conjugate step if the active set survived the
		// previous iteration, steepest descent otherwise
		if prevCG && Gold > 0 {
			β := G / Gold
			for k, kk := range o.physIdx {
				o.t[kk] = o.c[kk] * (o.g[k] + β*o.t[kk])
			}
			m.StepKind = StepCG
		} else {
			for k, kk := range o.physIdx {
				o.t[kk] = o.c[kk] * o.g[k]
			}
			m.StepKind = StepReset
		}

		// elastic image of the search direction
		o.op.ApplyForward(o.r, o.t)
		res.Nfeval++

		// step length from the restricted line search. The curvature
		// x = Σ r·t is positive for any direction outside the operator's
		// null space; a non-positive value forces a restart
		τ := 0.0
		if A > 0 {
			x := 0.0
			num := 0.0
			for k, kk := range o.physIdx {
				x += o.c[kk] * o.r[kk] * o.t[kk]
				num += o.c[kk] * o.g[k] * o.t[kk]
			}
			if x > 0 {
				τ = num / x
			} else {
				G = 0
			}
		}

		// tentative pressure update
		for kk := 0; kk < o.ncomp; kk++ {
			o.p[kk] += τ * o.c[kk] * o.t[kk]
		}

		// bound violations before projection
		m.MaxPres = ClassifyViolations(o.tensile, o.flowing, o.p, o.hard, o.plastic)

		// pixels that must be forced back into contact: released or
		// flowing, yet penetrating
		nnc := 0
		for k, kk := range o.physIdx {
			o.nc[k] = (o.tensile[kk] || o.flowing[kk]) && o.g[k] < 0
			if o.nc[k] {
				nnc++
			}
		}

		// kinematic projection
		for kk := 0; kk < o.ncomp; kk++ {
			if o.tensile[kk] {
				o.p[kk] = 0
			} else if o.flowing[kk] {
				o.p[kk] = -o.hard[kk]
			}
		}
		if nnc > 0 {
			for k, kk := range o.physIdx {
				if o.nc[k] {
					o.p[kk] += τ * o.g[k]
				}
			}
			prevCG = false
		} else {
			prevCG = true
		}

		// load projection
		loadOK := true
		if o.par.Control == Load {
			psum := 0.0
			for _, kk := range o.physIdx {
				psum -= o.p[kk]
			}
			psum *= gp.Apx
			loadOK = math.Abs(psum-o.par.Force) < o.prestol
			if psum != 0 {
				scale := o.par.Force / psum
				for _, kk := range o.physIdx {
					o.p[kk] *= scale
				}
			} else {
				p0 := -o.par.Force / (gp.Lx * gp.Ly)
				for _, kk := range o.physIdx {
					o.p[kk] = p0
				}
			}
		}

		// displacement update
		o.op.ApplyForward(o.u, o.p)
		res.Nfeval++

		// convergence probes
		if A > 0 {
			m.RmsPen = math.Sqrt(G / float64(A))
		} else {
			m.RmsPen = math.Sqrt(G)
		}
		m.MaxPen = 0
		for k, kk := range o.physIdx {
			if pen := o.c[kk] * (offset - o.h[k] + o.u[kk]); pen > m.MaxPen {
				m.MaxPen = pen
			}
		}
		m.PadPres = 0
		for _, kk := range o.padIdx {
			if ap := math.Abs(o.p[kk]); ap > m.PadPres {
				m.PadPres = ap
			}
		}
		m.It = it
		m.Area = A
		m.FracArea = float64(A) / float64(o.nphys)
		converged := loadOK && m.RmsPen < o.pentol && m.MaxPen < o.pentol &&
			m.MaxPres < o.prestol && m.PadPres < o.prestol

		Gold = G

		if o.par.ShowRes {
			m.print()
		}
		stop := false
		if o.par.Callback != nil {
			for k, kk := range o.physIdx {
				o.snap[k] = o.p[kk]
			}
			mm := m
			stop = o.par.Callback(it, o.snap, &mm)
		}
		if math.IsNaN(G) || math.IsInf(G, 0) || math.IsNaN(m.RmsPen) {
			return nil, &BreakdownError{It: it, Msg: io.Sf("G=%g, rms_pen=%g", G, m.RmsPen)}
		}
		if converged {
			res.Converged = true
			break
		}
		if stop {
			break
		}
	}

	// results
	res.OffsetEff = offsetOut(o.par, offset)
	res.Displacement = o.u
	res.Pressure = la.NewVector(o.nphys)
	for k, kk := range o.physIdx {
		res.Pressure[k] = o.p[kk]
	}
	res.RmsPen = m.RmsPen
	res.MaxPen = m.MaxPen
	res.MaxPres = m.MaxPres
	res.PadPres = m.PadPres
	return
}

// pinPressureGauge restores the pressure mean lost by the periodic
// inverse: the gauge is chosen so that currently separated pixels carry no
// pressure on average. Without this, a warm start from a converged
// displacement would re-enter with the whole contact pressure shifted
func (o *Solver) pinPressureGauge(offset float64) {
	sum, n := 0.0, 0
	for k, kk := range o.physIdx {
		if o.h[k]-offset-o.u[kk] > 0 {
			sum += o.p[kk]
			n++
		}
	}
	if n == 0 {
		return
	}
	shift := sum / float64(n)
	for _, kk := range o.physIdx {
		o.p[kk] -= shift
	}
}

// offsetOut selects the offset reported in the results
func offsetOut(par Params, offset float64) float64 {
	if par.Control == Offset {
		return par.Offset
	}
	return offset
}
