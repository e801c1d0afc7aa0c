// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfspace

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// randomField returns a pressure-like field with entries in [-1,1)
func randomField(n int) (p la.Vector) {
	p = la.NewVector(n)
	for i := 0; i < n; i++ {
		p[i] = rnd.Float64(-1, 1)
	}
	return
}

// zeroMean removes the mean of a field
func zeroMean(p la.Vector) {
	mean := floats.Sum(p) / float64(len(p))
	for i := range p {
		p[i] -= mean
	}
}

func Test_periodic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("periodic01. weights and DC null space")

	op, err := New("periodic", 16, 8, 2.0, 1.0, 25.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if !op.IsPeriodic() {
		tst.Errorf("operator must be periodic\n")
		return
	}
	chk.IntAssert(op.CompGrid().Size(), op.Grid().Size())

	// a uniform pressure has no displacement response: the DC term is
	// dropped to keep the torus problem well-posed
	n := op.Grid().Size()
	p := la.NewVector(n)
	p.Fill(-3.5)
	u := la.NewVector(n)
	op.ApplyForward(u, p)
	for i := 0; i < n; i++ {
		if math.Abs(u[i]) > 1e-12 {
			tst.Errorf("DC mode leaked into the displacement: u[%d]=%g\n", i, u[i])
			return
		}
	}
}

func Test_periodic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("periodic02. single-mode response")

	nx, ny := 32, 32
	lx, ly := 2.0, 2.0
	emod := 50.0
	op, err := New("periodic", nx, ny, lx, ly, emod)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// a pure cosine maps onto itself scaled by 2/(E* q)
	q := 2.0 * math.Pi / lx
	w := 2.0 / (emod * q)
	p := la.NewVector(nx * ny)
	for i := 0; i < nx; i++ {
		v := -math.Cos(q * float64(i) * lx / float64(nx))
		for j := 0; j < ny; j++ {
			p[i*ny+j] = v
		}
	}
	u := la.NewVector(nx * ny)
	op.ApplyForward(u, p)
	correct := la.NewVector(nx * ny)
	for i := range p {
		correct[i] = w * p[i]
	}
	chk.Array(tst, "u = W p (single mode)", 1e-12, u, correct)
}

func Test_periodic03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("periodic03. linearity and symmetry")

	rnd.Init(1234)
	op, err := New("periodic", 16, 16, 1.0, 1.0, 3.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	n := op.Grid().Size()
	p1 := randomField(n)
	p2 := randomField(n)
	α := 0.7

	// linearity
	u1 := la.NewVector(n)
	u2 := la.NewVector(n)
	u12 := la.NewVector(n)
	op.ApplyForward(u1, p1)
	op.ApplyForward(u2, p2)
	p12 := la.NewVector(n)
	for i := 0; i < n; i++ {
		p12[i] = α*p1[i] + p2[i]
	}
	op.ApplyForward(u12, p12)
	correct := la.NewVector(n)
	for i := 0; i < n; i++ {
		correct[i] = α*u1[i] + u2[i]
	}
	chk.Array(tst, "linearity", 1e-12, u12, correct)

	// symmetry under the grid inner product
	chk.Float64(tst, "symmetry", 1e-12, floats.Dot(p1, u2), floats.Dot(p2, u1))
}

func Test_periodic04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("periodic04. inverse round-trip for zero-mean fields")

	rnd.Init(4321)
	op, err := New("periodic", 32, 16, 1.5, 1.0, 10.0)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	n := op.Grid().Size()
	p := randomField(n)
	zeroMean(p)
	u := la.NewVector(n)
	q := la.NewVector(n)
	op.ApplyForward(u, p)
	op.ApplyInverse(q, u)
	chk.Array(tst, "inverse(forward(p)) = p", 1e-11, q, p)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. dispatch and rejection")

	if _, err := New("boussinesq", 8, 8, 1, 1, 1); err == nil {
		tst.Errorf("unknown kind must be rejected\n")
		return
	}
	if _, err := New("periodic", 8, 8, 1, 1, 0); err == nil {
		tst.Errorf("E*=0 must be rejected\n")
		return
	}
	if _, err := New("periodic", 8, 1, 1, 1, 1); err == nil {
		tst.Errorf("ny=1 must be rejected\n")
		return
	}
	chk.Float64(tst, "contact modulus, rigid body", 1e-12, ContactModulus(1.0, 0.5, 0, 0), 1.0/0.75)
	chk.Float64(tst, "contact modulus, equal pair", 1e-12, ContactModulus(2.0, 0, 2.0, 0), 1.0)
}
