// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the uniform grid descriptor shared by the elastic
// operators and the contact solver: shape, physical extents, pixel geometry
// and the index ↔ wavevector bookkeeping of the spectral transforms
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Grid holds the data of a uniform rectangular grid with periodic index
// conventions. Fields on the grid are stored as flat row-major vectors of
// length Nx*Ny; entry (i,j) lives at index i*Ny+j
type Grid struct {

	// input
	Nx int     // number of pixels along x
	Ny int     // number of pixels along y
	Lx float64 // physical extent along x
	Ly float64 // physical extent along y

	// derived
	Dx  float64 // pixel size along x
	Dy  float64 // pixel size along y
	Apx float64 // pixel area = Lx*Ly/(Nx*Ny)
}

// New returns a new grid descriptor
//
//	Input:
//	 nx, ny -- number of pixels per direction; must be ≥ 2
//	 lx, ly -- physical extents; must be positive
func New(nx, ny int, lx, ly float64) (o *Grid, err error) {
	if nx < 2 || ny < 2 {
		return nil, chk.Err("grid needs at least 2 pixels per direction; nx=%d ny=%d is invalid", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, chk.Err("physical extents must be positive; lx=%g ly=%g is invalid", lx, ly)
	}
	o = new(Grid)
	o.Nx, o.Ny = nx, ny
	o.Lx, o.Ly = lx, ly
	o.Dx = lx / float64(nx)
	o.Dy = ly / float64(ny)
	o.Apx = o.Dx * o.Dy
	return
}

// Size returns the total number of pixels
func (o *Grid) Size() int {
	return o.Nx * o.Ny
}

// Idx returns the flat row-major index of pixel (i,j)
func (o *Grid) Idx(i, j int) int {
	return i*o.Ny + j
}

// X returns the physical x-coordinate of the centre of column i
func (o *Grid) X(i int) float64 {
	return (float64(i) + 0.5) * o.Dx
}

// Y returns the physical y-coordinate of the centre of row j
func (o *Grid) Y(j int) float64 {
	return (float64(j) + 0.5) * o.Dy
}

// WaveX returns the signed angular wavenumber qx of transform index m.
// The signed-frequency convention maps m ≤ Nx/2 to m and the remaining
// indices to m-Nx
func (o *Grid) WaveX(m int) float64 {
	if m > o.Nx/2 {
		m -= o.Nx
	}
	return 2.0 * math.Pi * float64(m) / o.Lx
}

// WaveY returns the signed angular wavenumber qy of transform index n
func (o *Grid) WaveY(n int) float64 {
	if n > o.Ny/2 {
		n -= o.Ny
	}
	return 2.0 * math.Pi * float64(n) / o.Ly
}

// IsDC tells whether transform index (m,n) is the zero-wavevector mode
func (o *Grid) IsDC(m, n int) bool {
	return m == 0 && n == 0
}

// IsNyquist tells whether transform index (m,n) sits on a Nyquist line
// (only even directions have one)
func (o *Grid) IsNyquist(m, n int) bool {
	return (o.Nx%2 == 0 && m == o.Nx/2) || (o.Ny%2 == 0 && n == o.Ny/2)
}

// Even tells whether both directions have an even number of pixels
func (o *Grid) Even() bool {
	return o.Nx%2 == 0 && o.Ny%2 == 0
}

// Doubled returns the companion grid with twice the pixels and extents per
// direction; the free elastic operator computes on this grid
func (o *Grid) Doubled() (d *Grid) {
	d, err := New(2*o.Nx, 2*o.Ny, 2.0*o.Lx, 2.0*o.Ly)
	if err != nil {
		chk.Panic("cannot double grid %dx%d: %v", o.Nx, o.Ny, err)
	}
	return
}

// SameShape tells whether another grid has identical shape and extents
func (o *Grid) SameShape(b *Grid) bool {
	return o.Nx == b.Nx && o.Ny == b.Ny && o.Lx == b.Lx && o.Ly == b.Ly
}
