// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"github.com/cpmech/gosl/la"
)

// Kinematic sign conventions, used consistently across the package:
//
//	heights h ≥ 0, measured from the lowest point of the counter-body;
//	compressive pressure is negative;
//	displacement u is negative into the half-space under load;
//	gap g = h - offset - u, with g ≥ 0 separation and g < 0 penetration.

// Gap computes the gap on the physical region
//
//	Input:
//	 u       -- displacement on the computational grid
//	 h       -- heights on the physical grid
//	 offset  -- rigid-body indentation depth
//	 physIdx -- computational index of each physical pixel
//	Output:
//	 res -- gap on the physical grid
func Gap(res, u, h la.Vector, offset float64, physIdx []int) {
	for k, kk := range physIdx {
		res[k] = h[k] - offset - u[kk]
	}
}

// UpdateContact recomputes the live contact set: pixels carrying
// compressive pressure below the hardness cap. The mask is kept as a 0/1
// float vector so the hot loops stay branch-free
//
//	Output:
//	 c -- contact mask on the computational grid
//	 A -- number of pixels in contact
func UpdateContact(c, p, hard la.Vector) (A int) {
	for k := range c {
		c[k] = 0
		if p[k] < 0 && p[k] > -hard[k] {
			c[k] = 1
			A++
		}
	}
	return
}

// ClassifyViolations marks the pixels violating the pressure bounds before
// the kinematic projection: tensile pixels (p ≥ 0) and, for plastic
// solves, flowing pixels (p ≤ -hardness). It returns the largest bound
// violation, which must fall below prestol at convergence
func ClassifyViolations(tensile, flowing []bool, p, hard la.Vector, plastic bool) (maxPres float64) {
	for k := range p {
		tensile[k] = p[k] >= 0
		if tensile[k] && p[k] > maxPres {
			maxPres = p[k]
		}
	}
	if plastic {
		for k := range p {
			flowing[k] = p[k] <= -hard[k]
			if flowing[k] {
				if dev := -(p[k] + hard[k]); dev > maxPres {
					maxPres = dev
				}
			}
		}
	}
	return
}
