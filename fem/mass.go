// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/OpenCivil-Project/OpenCivil/ele"
	"github.com/OpenCivil-Project/OpenCivil/inp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// MassAssembler builds the global lumped mass matrix of a frame model from a
// named mass source: element self-mass and/or mass converted from the net
// downward nodal force of gravity load patterns. Only translational diagonal
// DOFs receive mass; rotational inertia is not modeled
type MassAssembler struct {

	// input
	Model *inp.Model // model snapshot
	Rep   *Report    // structured diagnostics

	// results
	M *la.Triplet // global mass matrix (sparse lumped, 6n x 6n)
}

// NewMassAssembler returns a ready mass assembler
func NewMassAssembler(m *inp.Model) *MassAssembler {
	return &MassAssembler{Model: m, Rep: new(Report)}
}

// BuildMassMatrix builds M for the given mass source name. An unresolvable
// name yields a zero matrix and a diagnostic record
func (o *MassAssembler) BuildMassMatrix(sourceName string) *la.Triplet {

	// allocate accumulator
	m := o.Model
	o.M = new(la.Triplet)
	o.M.Init(m.Ndofs, m.Ndofs, 6*len(m.Elems)+3*len(m.Nodes)+1)

	// resolve source
	ms := m.FindMassSource(sourceName)
	if ms == nil {
		o.Rep.Add(UnknownMassSource, -1, io.Sf("mass source %q not found; using zero mass", sourceName))
		return o.M
	}
	if o.Rep.Verbose {
		io.Pf("MassAssembler: building M for source %q\n", ms.Name)
	}

	if ms.SelfMass {
		o.addSelfMass()
	}
	if ms.FromLoads {
		o.addNetLoadMass(ms.ActiveScales())
	}
	return o.M
}

// addSelfMass lumps each element's own mass evenly to the translational DOFs
// of its two end nodes: mass = A * (rho/g) * Ltotal
func (o *MassAssembler) addSelfMass() {
	g := o.Model.Data.Gravity
	for _, e := range o.Model.Elems {
		half := e.Sec.A * (e.Mat.Rho / g) * e.Ltotal / 2.0
		for _, n := range []int{e.I0, e.J0} {
			for k := 0; k < 3; k++ {
				o.M.Put(n*6+k, n*6+k, half)
			}
		}
	}
}

// addNetLoadMass accumulates the net nodal force of the active patterns and
// converts net downward vertical forces to mass.
//
// The conversion is deliberately one-sided: a node whose net vertical force is
// not below -1e-5 receives no mass from this path, even when a large upward
// force acts on it. This mirrors the established behavior of gravity-derived
// mass sources; it is preserved as specified, not corrected
func (o *MassAssembler) addNetLoadMass(scales map[string]float64) {
	m := o.Model
	g := m.Data.Gravity
	if len(scales) == 0 {
		return
	}

	// net nodal force accumulator
	F := make([]float64, m.Ndofs)
	for _, l := range m.Loads {
		scale, active := scales[l.Pattern]
		if !active {
			continue
		}
		switch l.Type {

		case inp.LoadNodal:
			idx, found := m.NodeId2Idx[l.NodeId]
			if !found {
				o.Rep.Skip()
				continue
			}
			for k := 0; k < 3 && k < len(l.F); k++ {
				F[idx*6+k] += l.F[k] * scale
			}

		case inp.LoadMemberDist:
			eidx, found := m.ElemId2Idx[l.ElemId]
			if !found {
				o.Rep.Skip()
				continue
			}
			e := m.Elems[eidx]
			wglob := make([]float64, 3)
			if l.Fcode == inp.FrameLocal {
				p1, p2 := m.AdjustedCoords(e)
				R := ele.RotationMatrix(p1, p2, e.Beta)
				la.MatTrVecMul(wglob, 1, R, l.W) // wglob := trans(R) * wloc
			} else {
				copy(wglob, l.W)
			}
			for _, n := range []int{e.I0, e.J0} {
				for k := 0; k < 3; k++ {
					F[n*6+k] += wglob[k] * e.Ltotal * scale / 2.0
				}
			}

		case inp.LoadMemberPoint:
			eidx, found := m.ElemId2Idx[l.ElemId]
			if !found {
				o.Rep.Skip()
				continue
			}
			e := m.Elems[eidx]
			vec := make([]float64, 3)
			switch {
			case l.Dcode == inp.DirGravity:
				vec[2] = -math.Abs(l.Force)
			case l.Dcode == inp.DirNone:
				o.Rep.Add(UnknownDirection, e.Id, io.Sf("unknown load direction %q; zero mass contribution", l.Dir))
				continue
			case l.Fcode == inp.FrameGlobal:
				vec[axisIndex(l.Dcode)] = l.Force
			default: // local axis
				vloc := make([]float64, 3)
				vloc[axisIndex(l.Dcode)] = l.Force
				p1, p2 := m.AdjustedCoords(e)
				R := ele.RotationMatrix(p1, p2, e.Beta)
				la.MatTrVecMul(vec, 1, R, vloc)
			}

			// linear interpolation between end nodes
			t := l.Dist
			if !l.IsRel {
				t /= e.Ltotal
			}
			ratios := []float64{1.0 - t, t}
			for j, n := range []int{e.I0, e.J0} {
				for k := 0; k < 3; k++ {
					F[n*6+k] += vec[k] * scale * ratios[j]
				}
			}
		}
	}

	// convert net downward forces to mass
	for i := 2; i < m.Ndofs; i += 6 {
		FzNet := F[i]
		if FzNet < -1e-5 {
			massVal := math.Abs(FzNet) / g
			o.M.Put(i-2, i-2, massVal)
			o.M.Put(i-1, i-1, massVal)
			o.M.Put(i, i, massVal)
		}
	}
}

// MassTotals sums the translational mass of a lumped mass matrix per global
// direction. The matrix is diagonal, so one sparse matrix-vector product with
// the ones vector recovers the diagonal without densifying
func MassTotals(M *la.Triplet, ndofs int) (mx, my, mz float64) {
	cc := M.ToMatrix(nil)
	u := make([]float64, ndofs)
	for i := range u {
		u[i] = 1
	}
	v := make([]float64, ndofs)
	la.SpMatVecMulAdd(v, 1, cc, u) // v += M * ones = diagonal of M
	for i := 0; i+2 < ndofs; i += 6 {
		mx += v[i]
		my += v[i+1]
		mz += v[i+2]
	}
	return
}

// axisIndex maps an axis direction code to the vector component index
func axisIndex(d inp.Direction) int {
	switch d {
	case inp.DirX:
		return 0
	case inp.DirY:
		return 1
	}
	return 2
}
