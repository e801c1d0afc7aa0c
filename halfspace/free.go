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

// Free implements the elastic half-space response with open ("free")
// boundaries. The physical grid is embedded into a computational grid with
// twice the pixels per direction; the extra area is the pad region which
// must carry zero pressure. The real-space kernel is the Boussinesq
// response of a uniform unit pressure over one pixel (Love's solution for
// a rectangular patch), sampled on the extended grid with folded
// coordinates and convolved through the FFT
type Free struct {
	gphys *grid.Grid // physical grid
	gcomp *grid.Grid // computational grid (doubled)
	emod  float64    // contact modulus E*
	kq    []float64  // Fourier transform of the kernel (real by symmetry)
	fft   *fft2d     // transform plan on the computational grid
	work  []complex128
}

// add operator to factory
func init() {
	allocators["free"] = func(g *grid.Grid, emod float64) (Operator, error) {
		if !g.Even() {
			return nil, chk.Err("free operator needs even pixel counts for padding; %dx%d is invalid", g.Nx, g.Ny)
		}
		o := new(Free)
		o.Init(g, emod)
		return o, nil
	}
}

// Init initialises the operator for a given physical grid
func (o *Free) Init(g *grid.Grid, emod float64) {
	o.gphys = g
	o.gcomp = g.Doubled()
	o.emod = emod
	nx, ny := o.gcomp.Nx, o.gcomp.Ny
	o.fft = newFFT2d(nx, ny)
	o.work = make([]complex128, o.gcomp.Size())

	// real-space kernel on the extended grid; coordinates fold so that
	// indices beyond the physical extent measure negative distances
	ker := make([]complex128, o.gcomp.Size())
	a, b := g.Dx/2.0, g.Dy/2.0
	for i := 0; i < nx; i++ {
		x := float64(i) * g.Dx
		if i > g.Nx {
			x = float64(i-nx) * g.Dx
		}
		for j := 0; j < ny; j++ {
			y := float64(j) * g.Dy
			if j > g.Ny {
				y = float64(j-ny) * g.Dy
			}
			ker[i*ny+j] = complex(boussinesq(x, y, a, b, emod), 0)
		}
	}
	o.fft.forward(ker)
	o.kq = make([]float64, o.gcomp.Size())
	for i, v := range ker {
		o.kq[i] = real(v)
	}
}

// boussinesq evaluates the surface displacement at (x,y) due to a uniform
// unit pressure acting over the rectangle [-a,a]×[-b,b], after Love; see
// Johnson, Contact Mechanics, eq. (3.25)
func boussinesq(x, y, a, b, emod float64) float64 {
	xp, xm := x+a, x-a
	yp, ym := y+b, y-b
	hpp := math.Hypot(xp, yp)
	hpm := math.Hypot(xp, ym)
	hmp := math.Hypot(xm, yp)
	hmm := math.Hypot(xm, ym)
	return (xp*math.Log((yp+hpp)/(ym+hpm)) +
		yp*math.Log((xp+hpp)/(xm+hmp)) +
		xm*math.Log((ym+hmm)/(yp+hmp)) +
		ym*math.Log((xm+hmm)/(xp+hpm))) / (math.Pi * emod)
}

// Grid returns the physical grid
func (o *Free) Grid() *grid.Grid { return o.gphys }

// CompGrid returns the computational (doubled) grid
func (o *Free) CompGrid() *grid.Grid { return o.gcomp }

// IsPeriodic returns false
func (o *Free) IsPeriodic() bool { return false }

// Kind returns the operator kind
func (o *Free) Kind() string { return "free" }

// ApplyForward computes the displacement u due to the pressure field p.
// Both fields live on the computational grid; the pressure must vanish on
// the pad region for the result to be meaningful on the physical part
func (o *Free) ApplyForward(u, p la.Vector) {
	n := o.gcomp.Size()
	if len(u) != n || len(p) != n {
		chk.Panic("free operator needs %d-pixel computational fields; got len(u)=%d len(p)=%d", n, len(u), len(p))
	}
	for i := 0; i < n; i++ {
		o.work[i] = complex(p[i], 0)
	}
	o.fft.forward(o.work)
	for i := 0; i < n; i++ {
		o.work[i] *= complex(o.kq[i], 0)
	}
	o.fft.inverse(o.work)
	for i := 0; i < n; i++ {
		u[i] = real(o.work[i])
	}
}

// ApplyInverse computes the pressure p reproducing the displacement u.
// Unlike the periodic operator the kernel keeps its zero-wavevector term,
// so the map is a true inverse of ApplyForward
func (o *Free) ApplyInverse(p, u la.Vector) {
	n := o.gcomp.Size()
	if len(u) != n || len(p) != n {
		chk.Panic("free operator needs %d-pixel computational fields; got len(u)=%d len(p)=%d", n, len(u), len(p))
	}
	for i := 0; i < n; i++ {
		o.work[i] = complex(u[i], 0)
	}
	o.fft.forward(o.work)
	for i := 0; i < n; i++ {
		o.work[i] /= complex(o.kq[i], 0)
	}
	o.fft.inverse(o.work)
	for i := 0; i < n; i++ {
		p[i] = real(o.work[i])
	}
}
