// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"github.com/cpmech/gosl/la"

	"github.com/mishramlan/gocontact/grid"
)

// MakeSphere returns the height profile of a sphere of radius R touching
// the centre of the grid, in the small-slope (paraboloid) approximation:
//
//	h(x,y) = ((x-x0)² + (y-y0)²) / (2R)
//
// with (x0,y0) the grid centre. Heights are measured from the tip
func MakeSphere(g *grid.Grid, radius float64) (h la.Vector) {
	h = la.NewVector(g.Size())
	x0, y0 := g.Lx/2.0, g.Ly/2.0
	for i := 0; i < g.Nx; i++ {
		dx := g.X(i) - x0
		for j := 0; j < g.Ny; j++ {
			dy := g.Y(j) - y0
			h[g.Idx(i, j)] = (dx*dx + dy*dy) / (2.0 * radius)
		}
	}
	return
}

// MakeFlat returns the all-zero height profile of a rigid flat punch
// covering the whole physical region
func MakeFlat(g *grid.Grid) (h la.Vector) {
	return la.NewVector(g.Size())
}
