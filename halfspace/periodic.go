// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfspace

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/mishramlan/gocontact/grid"
)

// Periodic implements the elastic half-space response with periodic
// boundary conditions (Boussinesq on a torus). The spectral weights are
//
//	W[m,n] = 2 / (E* √(qx² + qy²))    for (m,n) ≠ (0,0)
//	W[0,0] = 0
//
// The zero-wavevector term is dropped: a nonzero mean pressure would give
// an unbounded rigid displacement on a torus, so the mean displacement is
// pinned to zero and the solver's offset absorbs the gauge freedom
type Periodic struct {
	gphys *grid.Grid // physical == computational grid
	emod  float64    // contact modulus E*
	w     []float64  // spectral weights, one per transform index
	fft   *fft2d     // transform plan
	work  []complex128
}

// add operator to factory
func init() {
	allocators["periodic"] = func(g *grid.Grid, emod float64) (Operator, error) {
		o := new(Periodic)
		o.Init(g, emod)
		return o, nil
	}
}

// Init initialises the operator for a given physical grid
func (o *Periodic) Init(g *grid.Grid, emod float64) {
	o.gphys = g
	o.emod = emod
	o.w = make([]float64, g.Size())
	for m := 0; m < g.Nx; m++ {
		qx := g.WaveX(m)
		for n := 0; n < g.Ny; n++ {
			if g.IsDC(m, n) {
				continue
			}
			qy := g.WaveY(n)
			o.w[g.Idx(m, n)] = 2.0 / (emod * math.Sqrt(qx*qx+qy*qy))
		}
	}
	o.fft = newFFT2d(g.Nx, g.Ny)
	o.work = make([]complex128, g.Size())
}

// Grid returns the physical grid
func (o *Periodic) Grid() *grid.Grid { return o.gphys }

// CompGrid returns the computational grid (same as the physical one)
func (o *Periodic) CompGrid() *grid.Grid { return o.gphys }

// IsPeriodic returns true
func (o *Periodic) IsPeriodic() bool { return true }

// Kind returns the operator kind
func (o *Periodic) Kind() string { return "periodic" }

// ApplyForward computes the displacement u due to the pressure field p
func (o *Periodic) ApplyForward(u, p la.Vector) {
	n := o.gphys.Size()
	if len(u) != n || len(p) != n {
		chk.Panic("periodic operator needs %d-pixel fields; got len(u)=%d len(p)=%d", n, len(u), len(p))
	}
	for i := 0; i < n; i++ {
		o.work[i] = complex(p[i], 0)
	}
	o.fft.forward(o.work)
	for i := 0; i < n; i++ {
		o.work[i] *= complex(o.w[i], 0)
	}
	o.fft.inverse(o.work)
	for i := 0; i < n; i++ {
		u[i] = real(o.work[i])
	}
}

// ApplyInverse computes the pressure p reproducing the displacement u.
// The zero-wavevector weight is not invertible; the mean of the returned
// pressure is zero and must be pinned by the caller
func (o *Periodic) ApplyInverse(p, u la.Vector) {
	n := o.gphys.Size()
	if len(u) != n || len(p) != n {
		chk.Panic("periodic operator needs %d-pixel fields; got len(u)=%d len(p)=%d", n, len(u), len(p))
	}
	for i := 0; i < n; i++ {
		o.work[i] = complex(u[i], 0)
	}
	o.fft.forward(o.work)
	o.work[0] = 0 // the DC mean is chosen by the caller, not by inversion
	for i := 1; i < n; i++ {
		o.work[i] /= complex(o.w[i], 0)
	}
	o.fft.inverse(o.work)
	for i := 0; i < n; i++ {
		p[i] = real(o.work[i])
	}
}
