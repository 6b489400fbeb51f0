// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the element-level matrices of a 3D prismatic frame
// member: local stiffness, orientation and rigid-offset transforms
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LocalStiffness computes the 12x12 stiffness matrix of a prismatic
// Timoshenko frame member in its local system
//
//   local DOF order: [ux1, uy1, uz1, rx1, ry1, rz1, ux2, uy2, uz2, rx2, ry2, rz2]
//
//   deflection along the local 2-axis bends about the 3-axis (I33, As2)
//   deflection along the local 3-axis bends about the 2-axis (I22, As3)
//
//  Input:
//   E, G  -- Young's and shear moduli
//   A, J  -- area and torsional constant
//   I22   -- inertia about local 2-axis
//   I33   -- inertia about local 3-axis
//   As2   -- effective shear area along 2-axis; non-positive => shear-rigid
//   As3   -- effective shear area along 3-axis; non-positive => shear-rigid
//   L     -- bending/axial length
//   Ltor  -- torsion length (may differ from L for members with rigid ends)
func LocalStiffness(E, G, A, J, I22, I33, As2, As3, L, Ltor float64) (k [][]float64) {

	// check
	if L < 1e-12 || Ltor < 1e-12 {
		chk.Panic("LocalStiffness: member length must be positive. L=%g, Ltor=%g", L, Ltor)
	}

	// shear deformation parameters
	ll := L * L
	ϕ2, ϕ3 := 0.0, 0.0
	if G > 0 && As2 > 0 {
		ϕ2 = 12.0 * E * I33 / (G * As2 * ll)
	}
	if G > 0 && As3 > 0 {
		ϕ3 = 12.0 * E * I22 / (G * As3 * ll)
	}

	// constants
	EA := E * A
	GJ := G * J
	c := E * I33 / ((1.0 + ϕ2) * ll * L)
	d := E * I22 / ((1.0 + ϕ3) * ll * L)

	// stiffness matrix in local system
	k = la.MatAlloc(12, 12)

	// axial
	k[0][0] = EA / L
	k[0][6] = -EA / L
	k[6][6] = EA / L

	// torsion
	k[3][3] = GJ / Ltor
	k[3][9] = -GJ / Ltor
	k[9][9] = GJ / Ltor

	// bending in the 1-2 plane
	k[1][1] = 12.0 * c
	k[1][5] = 6.0 * c * L
	k[1][7] = -12.0 * c
	k[1][11] = 6.0 * c * L
	k[5][5] = (4.0 + ϕ2) * c * ll
	k[5][7] = -6.0 * c * L
	k[5][11] = (2.0 - ϕ2) * c * ll
	k[7][7] = 12.0 * c
	k[7][11] = -6.0 * c * L
	k[11][11] = (4.0 + ϕ2) * c * ll

	// bending in the 1-3 plane
	k[2][2] = 12.0 * d
	k[2][4] = -6.0 * d * L
	k[2][8] = -12.0 * d
	k[2][10] = -6.0 * d * L
	k[4][4] = (4.0 + ϕ3) * d * ll
	k[4][8] = 6.0 * d * L
	k[4][10] = (2.0 - ϕ3) * d * ll
	k[8][8] = 12.0 * d
	k[8][10] = 6.0 * d * L
	k[10][10] = (4.0 + ϕ3) * d * ll

	// symmetry
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			k[j][i] = k[i][j]
		}
	}
	return
}
