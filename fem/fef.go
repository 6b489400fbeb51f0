// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/OpenCivil-Project/OpenCivil/ele"
	"github.com/OpenCivil-Project/OpenCivil/inp"
	"github.com/cpmech/gosl/la"
)

// DistFef computes the local fixed-end forces of a uniformly distributed load
// with local intensity components w = [wx, wy, wz] over the clear length L.
// The returned vector stores the negative of the classic fixed-end reactions;
// the assembler subtracts the transformed result from the load vector
func DistFef(w []float64, L float64) (fef []float64) {
	fef = make([]float64, 12)
	wx, wy, wz := w[0], w[1], w[2]
	ll := L * L

	// axial
	fef[0] = -wx * L / 2.0
	fef[6] = -wx * L / 2.0

	// transverse along local 2-axis
	fef[1] = -wy * L / 2.0
	fef[7] = -wy * L / 2.0
	fef[5] = -wy * ll / 12.0
	fef[11] = wy * ll / 12.0

	// transverse along local 3-axis
	fef[2] = -wz * L / 2.0
	fef[8] = -wz * L / 2.0
	fef[4] = wz * ll / 12.0
	fef[10] = -wz * ll / 12.0
	return
}

// PointFef computes the exact local fixed-end forces of a concentrated force
// applied at distance a from the near end of the clear span L. The member is
// treated as two sub-elements connected at the load point, using the same
// stiffness formulation as the global matrix; the shared-node 6x6 system is
// solved and the end reactions are recovered from the coupling blocks. This
// keeps the result consistent with the member's actual shear-deformable
// stiffness at the cost of one 6x6 solve
//
//   ploc -- [3] force components in the local frame
//
// A load landing on a span end (within 1e-9 of L relative) is lumped directly
// to the adjacent end. ok is false when the mid-node system is singular; the
// returned vector is then zero
func PointFef(mat *inp.Material, sec *inp.Section, L, a float64, ploc []float64) (fef []float64, ok bool) {
	fef = make([]float64, 12)
	if L < 1e-12 {
		return fef, true
	}
	b := L - a

	// load at a span end: the full force goes to the adjacent node
	tol := 1e-9 * L
	if a < tol {
		for k := 0; k < 3; k++ {
			fef[k] = -ploc[k]
		}
		return fef, true
	}
	if b < tol {
		for k := 0; k < 3; k++ {
			fef[6+k] = -ploc[k]
		}
		return fef, true
	}

	// sub-element stiffness matrices
	kl := ele.LocalStiffness(mat.E, mat.G, sec.A, sec.J, sec.I22, sec.I33, sec.As2, sec.As3, a, a)
	kr := ele.LocalStiffness(mat.E, mat.G, sec.A, sec.J, sec.I22, sec.I33, sec.As2, sec.As3, b, b)

	// shared-node system
	Kmid := la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			Kmid[i][j] = kl[6+i][6+j] + kr[i][j]
		}
	}
	Fmid := make([]float64, 6)
	for k := 0; k < 3; k++ {
		Fmid[k] = ploc[k]
	}

	// solve for mid-node displacements
	Kmidi := la.MatAlloc(6, 6)
	if err := la.MatInvG(Kmidi, Kmid, 1e-10); err != nil {
		return fef, false
	}
	Umid := make([]float64, 6)
	la.MatVecMul(Umid, 1, Kmidi, Fmid)

	// end reactions from the coupling blocks
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			fef[i] += kl[i][6+j] * Umid[j]
			fef[6+i] += kr[6+i][j] * Umid[j]
		}
	}
	return fef, true
}

// ProjFactor computes the horizontal-projection scale factor of a projected
// distributed load: the XY-plane distance between the end points divided by
// the total length. vertical is true when the member has no horizontal extent;
// the factor is then zero and the scaled load vanishes
func ProjFactor(p1, p2 []float64, Ltotal float64) (factor float64, vertical bool) {
	dx := p2[0] - p1[0]
	dy := p2[1] - p1[1]
	Lhor := math.Sqrt(dx*dx + dy*dy)
	if Lhor < 1e-9 {
		return 0, true
	}
	if Ltotal < 1e-9 {
		return 1, false
	}
	return Lhor / Ltotal, false
}
