// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. descriptor and derived quantities")

	g, err := New(8, 4, 2.0, 1.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.IntAssert(g.Size(), 32)
	chk.Float64(tst, "Dx", 1e-15, g.Dx, 0.25)
	chk.Float64(tst, "Dy", 1e-15, g.Dy, 0.25)
	chk.Float64(tst, "Apx", 1e-15, g.Apx, 0.0625)
	chk.IntAssert(g.Idx(3, 2), 14)
	chk.Float64(tst, "X(0)", 1e-15, g.X(0), 0.125)
	chk.Float64(tst, "Y(3)", 1e-15, g.Y(3), 0.875)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. signed wavevectors, DC and Nyquist")

	g, err := New(8, 6, 2.0, 3.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// signed-frequency convention: m ≤ N/2 keeps m, the rest wraps to m-N
	chk.Float64(tst, "qx(0)", 1e-15, g.WaveX(0), 0)
	chk.Float64(tst, "qx(1)", 1e-14, g.WaveX(1), 2.0*math.Pi/2.0)
	chk.Float64(tst, "qx(4)", 1e-14, g.WaveX(4), 4.0*2.0*math.Pi/2.0)
	chk.Float64(tst, "qx(7)", 1e-14, g.WaveX(7), -2.0*math.Pi/2.0)
	chk.Float64(tst, "qy(5)", 1e-14, g.WaveY(5), -2.0*math.Pi/3.0)

	if !g.IsDC(0, 0) {
		tst.Errorf("(0,0) must be the DC mode\n")
		return
	}
	if g.IsDC(1, 0) {
		tst.Errorf("(1,0) must not be the DC mode\n")
		return
	}
	if !g.IsNyquist(4, 1) || !g.IsNyquist(1, 3) || g.IsNyquist(1, 1) {
		tst.Errorf("Nyquist bookkeeping is wrong\n")
		return
	}
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03. doubling and invalid input")

	g, err := New(16, 16, 1.0, 1.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	d := g.Doubled()
	chk.IntAssert(d.Nx, 32)
	chk.IntAssert(d.Ny, 32)
	chk.Float64(tst, "doubled Lx", 1e-15, d.Lx, 2.0)
	chk.Float64(tst, "doubled Dx", 1e-15, d.Dx, g.Dx)
	if !g.Even() {
		tst.Errorf("16x16 must be even\n")
		return
	}

	if _, err := New(1, 16, 1.0, 1.0); err == nil {
		tst.Errorf("nx=1 must be rejected\n")
		return
	}
	if _, err := New(16, 16, 0, 1.0); err == nil {
		tst.Errorf("lx=0 must be rejected\n")
		return
	}
}
