// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// splitReleases partitions the 12 local DOFs into kept (ik) and released (ic)
// index sets from the concatenated end release flags
func splitReleases(relI, relJ []bool) (ik, ic []int) {
	for i := 0; i < 12; i++ {
		released := false
		if i < 6 {
			released = relI[i]
		} else {
			released = relJ[i-6]
		}
		if released {
			ic = append(ic, i)
		} else {
			ik = append(ik, i)
		}
	}
	return
}

// CondenseStiffness eliminates released end DOFs from a 12x12 local stiffness
// matrix via the Schur complement
//
//   K' = K_kk - K_kc * inv(K_cc) * K_ck
//
// The reduced matrix is scattered back into a zeroed 12x12 at the kept
// indices, and the diagonals of released rotational DOFs receive a small
// stabilizing penalty (pencoef * max|k|) to avoid exact singularity
// downstream. If no DOF is released the input is returned unchanged. On a
// singular K_cc ok is false and the original matrix is returned; the caller
// decides how to report the fallback
func CondenseStiffness(k [][]float64, relI, relJ []bool, pencoef float64) (kc [][]float64, ok bool) {

	// partition
	ik, ic := splitReleases(relI, relJ)
	nk, nc := len(ik), len(ic)
	if nc == 0 {
		return k, true
	}

	// sub-blocks
	Kkk := la.MatAlloc(nk, nk)
	Kkc := la.MatAlloc(nk, nc)
	Kck := la.MatAlloc(nc, nk)
	Kcc := la.MatAlloc(nc, nc)
	for i, I := range ik {
		for j, J := range ik {
			Kkk[i][j] = k[I][J]
		}
		for j, J := range ic {
			Kkc[i][j] = k[I][J]
		}
	}
	for i, I := range ic {
		for j, J := range ik {
			Kck[i][j] = k[I][J]
		}
		for j, J := range ic {
			Kcc[i][j] = k[I][J]
		}
	}

	// invert released block
	Kcci := la.MatAlloc(nc, nc)
	if err := la.MatInvG(Kcci, Kcc, 1e-10); err != nil {
		return k, false
	}

	// Schur complement
	aux := la.MatAlloc(nk, nc)
	red := la.MatAlloc(nk, nk)
	la.MatMul(aux, 1, Kkc, Kcci)
	la.MatMul(red, 1, aux, Kck)

	// scatter back
	kc = la.MatAlloc(12, 12)
	for i, I := range ik {
		for j, J := range ik {
			kc[I][J] = Kkk[i][j] - red[i][j]
		}
	}

	// stabilizing penalty on released rotational DOFs
	penalty := la.MatLargest(k, 1) * pencoef
	for _, I := range ic {
		if I%6 >= 3 {
			kc[I][I] += penalty
		}
	}
	return kc, true
}

// CondenseFef statically transfers fixed-end forces acting on released DOFs
// into the remaining fixed DOFs
//
//   F_k' = F_k - K_kc * inv(K_cc) * F_c
//
// Released entries are zeroed. Same fallback contract as CondenseStiffness
func CondenseFef(k [][]float64, fef []float64, relI, relJ []bool) (fc []float64, ok bool) {

	// partition
	ik, ic := splitReleases(relI, relJ)
	nk, nc := len(ik), len(ic)
	if nc == 0 {
		return fef, true
	}

	// sub-blocks and sub-vectors
	Kkc := la.MatAlloc(nk, nc)
	Kcc := la.MatAlloc(nc, nc)
	Fc := make([]float64, nc)
	for i, I := range ik {
		for j, J := range ic {
			Kkc[i][j] = k[I][J]
		}
	}
	for i, I := range ic {
		for j, J := range ic {
			Kcc[i][j] = k[I][J]
		}
		Fc[i] = fef[I]
	}

	// invert released block
	Kcci := la.MatAlloc(nc, nc)
	if err := la.MatInvG(Kcci, Kcc, 1e-10); err != nil {
		return fef, false
	}

	// correction
	aux := make([]float64, nc)
	corr := make([]float64, nk)
	la.MatVecMul(aux, 1, Kcci, Fc)
	la.MatVecMul(corr, 1, Kkc, aux)

	// scatter back
	fc = make([]float64, 12)
	for i, I := range ik {
		fc[I] = fef[I] - corr[i]
	}
	return fc, true
}
