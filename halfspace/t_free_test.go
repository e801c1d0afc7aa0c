// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfspace

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/floats"
)

func Test_free01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("free01. padding geometry and odd-shape rejection")

	op, err := New("free", 16, 8, 1.0, 0.5, 4.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if op.IsPeriodic() {
		tst.Errorf("free operator must not be periodic\n")
		return
	}
	chk.IntAssert(op.Grid().Size(), 128)
	chk.IntAssert(op.CompGrid().Size(), 512)
	chk.IntAssert(op.CompGrid().Nx, 32)

	if _, err := New("free", 15, 8, 1.0, 0.5, 4.0); err == nil {
		tst.Errorf("odd nx must be rejected for the free operator\n")
		return
	}
}

func Test_free02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("free02. symmetry and exact round-trip")

	rnd.Init(7)
	op, err := New("free", 8, 8, 1.0, 1.0, 2.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	n := op.CompGrid().Size()
	p1 := randomField(n)
	p2 := randomField(n)

	u1 := la.NewVector(n)
	u2 := la.NewVector(n)
	op.ApplyForward(u1, p1)
	op.ApplyForward(u2, p2)
	chk.Float64(tst, "symmetry", 1e-11, floats.Dot(p1, u2), floats.Dot(p2, u1))

	// the free kernel keeps its DC term, so the inverse is exact even for
	// fields with a nonzero mean
	q := la.NewVector(n)
	op.ApplyInverse(q, u1)
	chk.Array(tst, "inverse(forward(p)) = p", 1e-10, q, p1)
}

func Test_free03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("free03. Boussinesq far field of a concentrated load")

	nx, ny := 64, 64
	lx, ly := 1.0, 1.0
	emod := 1.0
	op, err := New("free", nx, ny, lx, ly, emod)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	gc := op.CompGrid()
	n := gc.Size()

	// unit compressive pressure over the single pixel at the centre of
	// the physical region
	ic, jc := nx/2, ny/2
	p := la.NewVector(n)
	p[ic*gc.Ny+jc] = -1.0

	u := la.NewVector(n)
	op.ApplyForward(u, p)

	// far from the pixel, the response approaches the point-force
	// solution u = F/(π E* r) with F the pixel force
	dx := lx / float64(nx)
	force := -1.0 * dx * dx
	for _, dist := range []int{12, 16, 20} {
		r := float64(dist) * dx
		unum := u[(ic+dist)*gc.Ny+jc]
		uana := force / (math.Pi * emod * r)
		chk.Float64(tst, "far field", 0.02*math.Abs(uana), unum, uana)
	}

	// the response must be symmetric about the loaded pixel
	chk.Float64(tst, "symmetry x", 1e-12, u[(ic+9)*gc.Ny+jc], u[(ic-9)*gc.Ny+jc])
	chk.Float64(tst, "symmetry y", 1e-12, u[ic*gc.Ny+jc+9], u[ic*gc.Ny+jc-9])
}
