// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of prismatic beams. These are
// the classical closed-form results used to verify the assembly engine
package ana

import (
	"github.com/cpmech/gosl/la"
)

// FixedEndBeam computes fixed-end reactions of a both-ends-fixed prismatic
// Euler-Bernoulli beam of span L
type FixedEndBeam struct {
	L float64 // span
}

// PointReactions returns the support reactions of a transverse point load P
// applied at distance a from the first end
//
//   V1 = P b² (3a+b)/L³     M1 =  P a b²/L²
//   V2 = P a² (a+3b)/L³     M2 = -P a² b/L²
//
// Moments are positive counter-clockwise about the out-of-plane axis
func (o FixedEndBeam) PointReactions(P, a float64) (V1, M1, V2, M2 float64) {
	L := o.L
	b := L - a
	lll := L * L * L
	V1 = P * b * b * (3.0*a + b) / lll
	V2 = P * a * a * (a + 3.0*b) / lll
	M1 = P * a * b * b / (L * L)
	M2 = -P * a * a * b / (L * L)
	return
}

// UniformReactions returns the support reactions of a uniformly distributed
// transverse load w
func (o FixedEndBeam) UniformReactions(w float64) (V, M float64) {
	V = w * o.L / 2.0
	M = w * o.L * o.L / 12.0
	return
}

// FrameStiffness computes the 12x12 local stiffness matrix of a prismatic
// Euler-Bernoulli space frame member (no shear deformation), written out
// entry by entry from the classical displacement formulation. Used as an
// independent reference for the element library
func FrameStiffness(E, G, A, J, I22, I33, L float64) (k [][]float64) {
	l := L
	ll := l * l
	lll := ll * l
	EA := E * A
	GJ := G * J
	EI2 := E * I22
	EI3 := E * I33

	k = la.MatAlloc(12, 12)

	k[0][0], k[0][6] = EA/l, -EA/l
	k[6][0], k[6][6] = -EA/l, EA/l

	k[1][1], k[1][5], k[1][7], k[1][11] = 12.0*EI3/lll, 6.0*EI3/ll, -12.0*EI3/lll, 6.0*EI3/ll
	k[5][1], k[5][5], k[5][7], k[5][11] = 6.0*EI3/ll, 4.0*EI3/l, -6.0*EI3/ll, 2.0*EI3/l
	k[7][1], k[7][5], k[7][7], k[7][11] = -12.0*EI3/lll, -6.0*EI3/ll, 12.0*EI3/lll, -6.0*EI3/ll
	k[11][1], k[11][5], k[11][7], k[11][11] = 6.0*EI3/ll, 2.0*EI3/l, -6.0*EI3/ll, 4.0*EI3/l

	k[2][2], k[2][4], k[2][8], k[2][10] = 12.0*EI2/lll, -6.0*EI2/ll, -12.0*EI2/lll, -6.0*EI2/ll
	k[4][2], k[4][4], k[4][8], k[4][10] = -6.0*EI2/ll, 4.0*EI2/l, 6.0*EI2/ll, 2.0*EI2/l
	k[8][2], k[8][4], k[8][8], k[8][10] = -12.0*EI2/lll, 6.0*EI2/ll, 12.0*EI2/lll, 6.0*EI2/ll
	k[10][2], k[10][4], k[10][8], k[10][10] = -6.0*EI2/ll, 2.0*EI2/l, 6.0*EI2/ll, 4.0*EI2/l

	k[3][3], k[3][9] = GJ/l, -GJ/l
	k[9][3], k[9][9] = -GJ/l, GJ/l
	return
}

// PropCantileverStiffness returns the transverse tip stiffness of a
// propped member with the far-end moment released: 3EI/L³
func PropCantileverStiffness(E, I, L float64) float64 {
	return 3.0 * E * I / (L * L * L)
}
