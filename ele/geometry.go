// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// RotationMatrix computes the 3x3 global-to-local rotation of a frame member:
//
//   v_local = R * v_global
//
// The local 1-axis runs from p1 to p2. For non-vertical members the local
// 2-axis lies in the vertical plane through the member and points upwards;
// for vertical members it is aligned with the global X-axis. The roll angle β
// then rotates axes 2 and 3 about the 1-axis
//
//  Rows of R are the local unit vectors e1, e2, e3 in global components
func RotationMatrix(p1, p2 []float64, β float64) (R [][]float64) {

	// local 1-axis
	e1 := make([]float64, 3)
	L := 0.0
	for i := 0; i < 3; i++ {
		e1[i] = p2[i] - p1[i]
		L += e1[i] * e1[i]
	}
	L = math.Sqrt(L)
	if L < 1e-12 {
		chk.Panic("RotationMatrix: cannot orient zero-length member. p1=%v p2=%v", p1, p2)
	}
	for i := 0; i < 3; i++ {
		e1[i] /= L
	}

	// reference vector: global Z, or global X for vertical members
	tol := 1e-9
	ref := []float64{0, 0, 1}
	if math.Abs(e1[0]) < tol && math.Abs(e1[1]) < tol {
		ref = []float64{1, 0, 0}
	}

	// local 2-axis: component of ref orthogonal to e1
	e2 := make([]float64, 3)
	dot := ref[0]*e1[0] + ref[1]*e1[1] + ref[2]*e1[2]
	for i := 0; i < 3; i++ {
		e2[i] = ref[i] - dot*e1[i]
	}
	nrm := la.VecNorm(e2)
	for i := 0; i < 3; i++ {
		e2[i] /= nrm
	}

	// local 3-axis
	e3 := make([]float64, 3)
	utl.Cross3d(e3, e1, e2) // e3 := e1 cross e2

	// roll about the 1-axis
	cβ, sβ := math.Cos(β), math.Sin(β)
	R = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		R[0][i] = e1[i]
		R[1][i] = cβ*e2[i] + sβ*e3[i]
		R[2][i] = -sβ*e2[i] + cβ*e3[i]
	}
	return
}

// EccentricityMatrix computes the 12x12 kinematic transform of rigid insertion
// offsets. offI and offJ are the local-frame vectors from each true node to
// the corresponding analysis end of the member:
//
//   u_member = T * u_node        k_node = trans(T) * k_member * T
//
// Translations at the member end pick up the rigid-body contribution θ × r of
// the node rotation; rotations transfer unchanged
func EccentricityMatrix(offI, offJ []float64) (T [][]float64) {
	T = la.MatAlloc(12, 12)
	for i := 0; i < 12; i++ {
		T[i][i] = 1
	}
	setCoupling := func(row, col int, r []float64) {
		// -skew(r) so that u += θ × r
		T[row+0][col+1] = r[2]
		T[row+0][col+2] = -r[1]
		T[row+1][col+0] = -r[2]
		T[row+1][col+2] = r[0]
		T[row+2][col+0] = r[1]
		T[row+2][col+1] = -r[0]
	}
	setCoupling(0, 3, offI)
	setCoupling(6, 9, offJ)
	return
}
