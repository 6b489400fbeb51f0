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
	"github.com/cpmech/gosl/utl"
)

// Assembler builds the global stiffness matrix K and load vector P of a frame
// model for one load case. It is a stateless transform over an immutable
// model snapshot: re-running for another case produces independent results.
// Failures never abort the run; degraded contributions are recorded in Rep
type Assembler struct {

	// input
	Model *inp.Model    // model snapshot
	Case  *inp.LoadCase // active load case
	Rep   *Report       // structured diagnostics
	Spy   *Spy          // optional debug sink; may be nil

	// results
	K *la.Triplet // global stiffness matrix (sparse, 6n x 6n)
	P []float64   // global load vector (dense, 6n)
}

// NewAssembler returns a ready assembler for one model and load case
func NewAssembler(m *inp.Model, lc *inp.LoadCase) *Assembler {
	return &Assembler{Model: m, Case: lc, Rep: new(Report)}
}

// AssembleSystem builds K and P
func (o *Assembler) AssembleSystem() (K *la.Triplet, P []float64) {

	// allocate accumulators
	m := o.Model
	o.K = new(la.Triplet)
	o.K.Init(m.Ndofs, m.Ndofs, 144*len(m.Elems)+1)

	// stiffness
	if o.Rep.Verbose {
		io.Pf("Assembler: building stiffness matrix\n")
	}
	o.buildStiffness()

	// nodal loads
	if o.Rep.Verbose {
		io.Pf("Assembler: processing nodal loads\n")
	}
	o.P = m.BuildLoadVector(o.Case)

	// member loads
	if o.Rep.Verbose {
		io.Pf("Assembler: processing member loads\n")
	}
	o.addMemberLoads()
	return o.K, o.P
}

// elemTransform computes the element transforms:
//
//   R       -- 3x3 global-to-local rotation from the adjusted end points
//   T       -- 12x12 total transform = T_ecc * T_rot
//   insI/J  -- [3] insertion offsets rotated into local axes (without the
//              rigid end lengths; the rigid-end load correction needs these)
func (o *Assembler) elemTransform(e *inp.Element) (R, T [][]float64, insI, insJ []float64) {

	// rotation from adjusted end points
	p1, p2 := o.Model.AdjustedCoords(e)
	R = ele.RotationMatrix(p1, p2, e.Beta)

	// block-diagonal rotation
	Trot := la.MatAlloc(12, 12)
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				Trot[3*k+i][3*k+j] = R[i][j]
			}
		}
	}

	// global offsets into local axes
	insI = make([]float64, 3)
	insJ = make([]float64, 3)
	la.MatVecMul(insI, 1, R, e.OffI)
	la.MatVecMul(insJ, 1, R, e.OffJ)

	// rigid end lengths act along the local 1-axis
	offI := []float64{insI[0] + e.Ri, insI[1], insI[2]}
	offJ := []float64{insJ[0] - e.Rj, insJ[1], insJ[2]}

	// total transform
	Tecc := ele.EccentricityMatrix(offI, offJ)
	T = la.MatAlloc(12, 12)
	la.MatMul(T, 1, Tecc, Trot)
	return
}

// localStiffness computes the element's local stiffness matrix; bending and
// axial terms use the clear length, torsion the total length
func (o *Assembler) localStiffness(e *inp.Element) [][]float64 {
	return ele.LocalStiffness(e.Mat.E, e.Mat.G, e.Sec.A, e.Sec.J, e.Sec.I22, e.Sec.I33,
		e.Sec.As2, e.Sec.As3, e.Lclear, e.Ltotal)
}

// buildStiffness loops elements and scatter-adds their transformed stiffness
func (o *Assembler) buildStiffness() {
	for _, e := range o.Model.Elems {

		// local stiffness, condensed for releases
		kloc := o.localStiffness(e)
		if e.HasRel {
			var ok bool
			kloc, ok = CondenseStiffness(kloc, e.RelI, e.RelJ, o.Model.Data.RelPenalty)
			if !ok {
				o.Rep.Add(SingularRelease, e.Id, io.Sf("element %d: unstable release configuration; keeping uncondensed stiffness", e.Id))
			}
		}

		// transform to global
		_, T, _, _ := o.elemTransform(e)
		o.Spy.Record(e.Id, kloc, T)
		kglob := la.MatAlloc(12, 12)
		la.MatTrMul3(kglob, 1, T, kloc, T) // kglob := trans(T) * kloc * T

		// scatter-add the four 6x6 blocks
		for r := 0; r < 12; r++ {
			I := o.dofIndex(e, r)
			for c := 0; c < 12; c++ {
				o.K.Put(I, o.dofIndex(e, c), kglob[r][c])
			}
		}
	}
}

// RigidModeResidual returns the largest force produced by unit rigid-body
// translations of the whole frame in X, Y and Z. The assembled stiffness of an
// unconstrained model maps these modes to zero; the residual measures the
// numerical quality of the assembly. Cost is one sparse matrix-vector product
// per direction
func RigidModeResidual(K *la.Triplet, ndofs int) (res float64) {
	cc := K.ToMatrix(nil)
	u := make([]float64, ndofs)
	v := make([]float64, ndofs)
	for dir := 0; dir < 3; dir++ {
		for i := range u {
			u[i] = 0
		}
		for i := dir; i < ndofs; i += 6 {
			u[i] = 1
		}
		for i := range v {
			v[i] = 0
		}
		la.SpMatVecMulAdd(v, 1, cc, u)
		for _, x := range v {
			if math.Abs(x) > res {
				res = math.Abs(x)
			}
		}
	}
	return
}

// dofIndex maps a local DOF index (0..11) to the global equation number
func (o *Assembler) dofIndex(e *inp.Element, local int) int {
	if local < 6 {
		return e.I0*6 + local
	}
	return e.J0*6 + local - 6
}

// addMemberLoads computes fixed-end forces for all active member loads,
// condenses them for releases, transforms to global coordinates and subtracts
// them from P (equivalent nodal load = negative of fixed-end reaction)
func (o *Assembler) addMemberLoads() {
	m := o.Model
	if o.Case == nil {
		return
	}
	scales := o.Case.ActiveScales()

	for _, l := range m.Loads {

		// filter
		if l.Type != inp.LoadMemberDist && l.Type != inp.LoadMemberPoint {
			continue
		}
		scale, active := scales[l.Pattern]
		if !active {
			continue
		}
		idx, found := m.ElemId2Idx[l.ElemId]
		if !found {
			o.Rep.Skip()
			continue
		}
		e := m.Elems[idx]

		// element transforms
		R, T, insI, insJ := o.elemTransform(e)

		// local fixed-end forces
		var fef []float64
		wloc := make([]float64, 3) // local intensity kept for the rigid-end correction
		switch l.Type {

		case inp.LoadMemberDist:
			wdef := []float64{l.W[0] * scale, l.W[1] * scale, l.W[2] * scale}
			if l.Fcode == inp.FrameGlobal {
				la.MatVecMul(wloc, 1, R, wdef)
			} else {
				copy(wloc, wdef)
			}
			if l.Projected {
				if l.Fcode == inp.FrameLocal {
					o.Rep.Add(ProjectionIgnored, e.Id, io.Sf("element %d: projected loads are only supported in the global frame; ignoring projection", e.Id))
				} else {
					p1 := m.Nodes[e.I0].Coords
					p2 := m.Nodes[e.J0].Coords
					fac, vertical := ProjFactor(p1, p2, e.Ltotal)
					if vertical {
						o.Rep.Add(VerticalProjected, e.Id, io.Sf("element %d is vertical; projected load is zero", e.Id))
					}
					for k := 0; k < 3; k++ {
						wloc[k] *= fac
					}
				}
			}
			fef = DistFef(wloc, e.Lclear)

		case inp.LoadMemberPoint:
			pval := l.Force * scale
			vec := make([]float64, 3)
			switch l.Dcode {
			case inp.DirGravity:
				vec[2] = -pval
			case inp.DirX:
				vec[0] = pval
			case inp.DirY:
				vec[1] = pval
			case inp.DirZ:
				vec[2] = pval
			default:
				o.Rep.Add(UnknownDirection, e.Id, io.Sf("unknown load direction %q; zero contribution", l.Dir))
				continue
			}
			ploc := make([]float64, 3)
			if l.Fcode == inp.FrameGlobal {
				la.MatVecMul(ploc, 1, R, vec)
			} else {
				copy(ploc, vec)
			}

			// position within the clear span
			dist := l.Dist
			if l.IsRel {
				dist *= e.Ltotal
			}
			if dist < e.Ri || dist > e.Ltotal-e.Rj {
				o.Rep.Skip()
				continue
			}
			var ok bool
			fef, ok = PointFef(e.Mat, e.Sec, e.Lclear, dist-e.Ri, ploc)
			if !ok {
				o.Rep.Skip()
				continue
			}
		}

		// condense for releases
		if e.HasRel {
			kraw := o.localStiffness(e)
			var ok bool
			fef, ok = CondenseFef(kraw, fef, e.RelI, e.RelJ)
			if !ok {
				o.Rep.Add(SingularRelease, e.Id, io.Sf("element %d: unstable release configuration in load condensation; keeping uncondensed forces", e.Id))
			}
		}

		// transform to global
		fefGlob := make([]float64, 12)
		la.MatTrVecMul(fefGlob, 1, T, fef) // fefGlob := trans(T) * fef

		// rigid-end correction: the load acting over the rigid extensions adds
		// force and leverage beyond the clear-span fixed-end forces
		if l.Type == inp.LoadMemberDist && (e.Ri > 0 || e.Rj > 0) {
			aux := make([]float64, 3)
			if e.Ri > 0 {
				Fr := []float64{wloc[0] * e.Ri, wloc[1] * e.Ri, wloc[2] * e.Ri}
				cen := []float64{e.Ri/2.0 + insI[0], insI[1], insI[2]}
				Mr := make([]float64, 3)
				utl.Cross3d(Mr, cen, Fr) // Mr := cen cross Fr
				la.MatTrVecMul(aux, 1, R, Fr)
				for k := 0; k < 3; k++ {
					fefGlob[k] -= aux[k]
				}
				la.MatTrVecMul(aux, 1, R, Mr)
				for k := 0; k < 3; k++ {
					fefGlob[3+k] -= aux[k]
				}
			}
			if e.Rj > 0 {
				Fr := []float64{wloc[0] * e.Rj, wloc[1] * e.Rj, wloc[2] * e.Rj}
				cen := []float64{-e.Rj/2.0 + insJ[0], insJ[1], insJ[2]}
				Mr := make([]float64, 3)
				utl.Cross3d(Mr, cen, Fr)
				la.MatTrVecMul(aux, 1, R, Fr)
				for k := 0; k < 3; k++ {
					fefGlob[6+k] -= aux[k]
				}
				la.MatTrVecMul(aux, 1, R, Mr)
				for k := 0; k < 3; k++ {
					fefGlob[9+k] -= aux[k]
				}
			}
		}

		// equivalent nodal loads
		for k := 0; k < 6; k++ {
			o.P[e.I0*6+k] -= fefGlob[k]
			o.P[e.J0*6+k] -= fefGlob[6+k]
		}
	}
}
