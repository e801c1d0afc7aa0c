// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfspace

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// fft2d computes forward and inverse 2D discrete Fourier transforms of
// row-major complex grids by running 1D transforms over rows and columns.
// The forward transform is unnormalised; the inverse carries the 1/(nx*ny)
// factor so that inverse(forward(a)) == a
type fft2d struct {
	nx, ny int
	row    *fourier.CmplxFFT // length-ny plan for the rows
	col    *fourier.CmplxFFT // length-nx plan for the columns
	buf    []complex128      // column scratch
}

// newFFT2d returns a new transform plan for nx*ny grids
func newFFT2d(nx, ny int) (o *fft2d) {
	o = new(fft2d)
	o.nx, o.ny = nx, ny
	o.row = fourier.NewCmplxFFT(ny)
	o.col = fourier.NewCmplxFFT(nx)
	o.buf = make([]complex128, nx)
	return
}

// forward replaces a by its unnormalised 2D DFT
func (o *fft2d) forward(a []complex128) {
	for i := 0; i < o.nx; i++ {
		r := a[i*o.ny : (i+1)*o.ny]
		o.row.Coefficients(r, r)
	}
	for j := 0; j < o.ny; j++ {
		for i := 0; i < o.nx; i++ {
			o.buf[i] = a[i*o.ny+j]
		}
		o.col.Coefficients(o.buf, o.buf)
		for i := 0; i < o.nx; i++ {
			a[i*o.ny+j] = o.buf[i]
		}
	}
}

// inverse replaces a by its normalised inverse 2D DFT
func (o *fft2d) inverse(a []complex128) {
	for i := 0; i < o.nx; i++ {
		r := a[i*o.ny : (i+1)*o.ny]
		o.row.Sequence(r, r)
	}
	s := complex(1.0/float64(o.nx*o.ny), 0)
	for j := 0; j < o.ny; j++ {
		for i := 0; i < o.nx; i++ {
			o.buf[i] = a[i*o.ny+j]
		}
		o.col.Sequence(o.buf, o.buf)
		for i := 0; i < o.nx; i++ {
			a[i*o.ny+j] = o.buf[i] * s
		}
	}
}
