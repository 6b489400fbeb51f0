// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the structural model data read from a (.ocm) JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// AsmData holds global data for assembly runs
type AsmData struct {

	// global information
	Desc string `json:"desc"` // description of model

	// constants
	RelPenalty float64 `json:"relpenalty"` // stabilization coefficient for diagonals of released rotational DOFs; default = 1e-8
	Gravity    float64 `json:"gravity"`    // gravity acceleration; default = 9.80665

	// debugging
	SpyFile string `json:"spyfile"` // path for per-element matrix export; empty => no export
}

// SetDefault sets default values
func (o *AsmData) SetDefault() {
	o.RelPenalty = 1e-8
	o.Gravity = 9.80665
}

// Node holds joint data. Each node carries 6 DOFs ordered [ux, uy, uz, rx, ry, rz];
// the global equation numbers of node with index i are 6*i .. 6*i+5
type Node struct {
	Id     int       `json:"id"`     // identifier
	Coords []float64 `json:"coords"` // [3] global coordinates
}

// Material holds linear elastic material parameters
type Material struct {
	E   float64 `json:"E"`   // Young's modulus
	G   float64 `json:"G"`   // shear modulus
	Rho float64 `json:"rho"` // unit weight (force per volume)
}

// Section holds cross-sectional properties of a frame member
type Section struct {
	A   float64 `json:"A"`   // cross-sectional area
	J   float64 `json:"J"`   // torsional constant
	I22 float64 `json:"I22"` // moment of inertia about local 2-axis (bending in the 1-3 plane)
	I33 float64 `json:"I33"` // moment of inertia about local 3-axis (bending in the 1-2 plane)
	As2 float64 `json:"As2"` // effective shear area along local 2-axis; 0 => shear-rigid
	As3 float64 `json:"As3"` // effective shear area along local 3-axis; 0 => shear-rigid
}

// Element holds frame member data
type Element struct {

	// input data
	Id    int       `json:"id"`    // identifier
	Verts []int     `json:"verts"` // [2] node ids
	Mat   *Material `json:"mat"`   // material
	Sec   *Section  `json:"sec"`   // section
	Ri    float64   `json:"ri"`    // rigid end length at first node
	Rj    float64   `json:"rj"`    // rigid end length at second node
	OffI  []float64 `json:"offi"`  // [3] insertion-point offset at first node (global frame)
	OffJ  []float64 `json:"offj"`  // [3] insertion-point offset at second node (global frame)
	RelI  []bool    `json:"reli"`  // [6] end release flags at first node
	RelJ  []bool    `json:"relj"`  // [6] end release flags at second node
	Beta  float64   `json:"beta"`  // roll angle about local 1-axis [rad]

	// derived
	I0, J0 int     // indices of end nodes in Model.Nodes
	Ltotal float64 // center-to-center length (between adjusted end points)
	Lclear float64 // clear length = Ltotal - Ri - Rj
	HasRel bool    // any end release flag is set
}

// Model holds all model data and derived maps. It is the immutable snapshot
// consumed by the assemblers; assembly never mutates it
type Model struct {

	// input data
	Data        AsmData       `json:"data"`        // global constants
	Nodes       []*Node       `json:"nodes"`       // nodes
	Elems       []*Element    `json:"elements"`    // frame members
	Loads       []*Load       `json:"loads"`       // load definitions
	LoadCases   []*LoadCase   `json:"loadcases"`   // load cases
	MassSources []*MassSource `json:"masssources"` // mass source definitions

	// derived
	Ndofs      int         // total number of degrees of freedom = 6 * len(Nodes)
	NodeId2Idx map[int]int // node id => index in Nodes
	ElemId2Idx map[int]int // element id => index in Elems
}

// ReadModel reads a model from a JSON file. It panics on unreadable or
// inconsistent input; use Derived directly when building models in code
func ReadModel(path string) *Model {

	// new model
	var o Model
	o.Data.SetDefault()

	// read file
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("ReadModel: cannot read model file %q", path)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadModel: cannot unmarshal model file %q", path)
	}

	// derived quantities
	err = o.Derived()
	if err != nil {
		chk.Panic("ReadModel: inconsistent model file %q: %v", path, err)
	}
	return &o
}

// Derived computes derived quantities: id maps, element lengths and the total
// number of DOFs. It must be called once after the input data is set
func (o *Model) Derived() (err error) {

	// defaults for zero-valued constants
	if o.Data.RelPenalty <= 0 {
		o.Data.RelPenalty = 1e-8
	}
	if o.Data.Gravity <= 0 {
		o.Data.Gravity = 9.80665
	}

	// nodes
	o.Ndofs = 6 * len(o.Nodes)
	o.NodeId2Idx = make(map[int]int)
	for i, nod := range o.Nodes {
		if len(nod.Coords) != 3 {
			return chk.Err("node %d must have 3 coordinates", nod.Id)
		}
		if _, found := o.NodeId2Idx[nod.Id]; found {
			return chk.Err("duplicate node id %d", nod.Id)
		}
		o.NodeId2Idx[nod.Id] = i
	}

	// elements
	o.ElemId2Idx = make(map[int]int)
	for i, e := range o.Elems {
		if len(e.Verts) != 2 {
			return chk.Err("element %d must connect exactly 2 nodes", e.Id)
		}
		if _, found := o.ElemId2Idx[e.Id]; found {
			return chk.Err("duplicate element id %d", e.Id)
		}
		o.ElemId2Idx[e.Id] = i
		i0, found0 := o.NodeId2Idx[e.Verts[0]]
		i1, found1 := o.NodeId2Idx[e.Verts[1]]
		if !found0 || !found1 {
			return chk.Err("element %d references unknown node", e.Id)
		}
		e.I0, e.J0 = i0, i1
		if e.Mat == nil || e.Sec == nil {
			return chk.Err("element %d must have material and section", e.Id)
		}
		if e.OffI == nil {
			e.OffI = []float64{0, 0, 0}
		}
		if e.OffJ == nil {
			e.OffJ = []float64{0, 0, 0}
		}
		if e.RelI == nil {
			e.RelI = make([]bool, 6)
		}
		if e.RelJ == nil {
			e.RelJ = make([]bool, 6)
		}
		if len(e.OffI) != 3 || len(e.OffJ) != 3 || len(e.RelI) != 6 || len(e.RelJ) != 6 {
			return chk.Err("element %d: offsets must have 3 components and releases 6 flags", e.Id)
		}
		for k := 0; k < 6; k++ {
			if e.RelI[k] || e.RelJ[k] {
				e.HasRel = true
			}
		}

		// lengths from adjusted end points
		p1 := o.Nodes[i0].Coords
		p2 := o.Nodes[i1].Coords
		sum := 0.0
		for k := 0; k < 3; k++ {
			d := (p2[k] + e.OffJ[k]) - (p1[k] + e.OffI[k])
			sum += d * d
		}
		e.Ltotal = math.Sqrt(sum)
		e.Lclear = e.Ltotal - e.Ri - e.Rj
		if e.Lclear <= 0 {
			return chk.Err("element %d has non-positive clear length", e.Id)
		}
	}

	// loads
	for _, l := range o.Loads {
		if err = l.resolve(); err != nil {
			return
		}
	}
	return
}

// AdjustedCoords returns the end coordinates of an element after adding the
// global insertion offsets
func (o *Model) AdjustedCoords(e *Element) (p1, p2 []float64) {
	p1 = make([]float64, 3)
	p2 = make([]float64, 3)
	for k := 0; k < 3; k++ {
		p1[k] = o.Nodes[e.I0].Coords[k] + e.OffI[k]
		p2[k] = o.Nodes[e.J0].Coords[k] + e.OffJ[k]
	}
	return
}

// FindCase returns a load case by name or nil
func (o *Model) FindCase(name string) *LoadCase {
	for _, lc := range o.LoadCases {
		if lc.Name == name {
			return lc
		}
	}
	return nil
}

// FindMassSource resolves a mass source name. The name "Default" falls back to
// the first defined source when no exact match exists. Returns nil if
// unresolvable
func (o *Model) FindMassSource(name string) *MassSource {
	for _, ms := range o.MassSources {
		if ms.Name == name {
			return ms
		}
	}
	if name == "Default" && len(o.MassSources) > 0 {
		return o.MassSources[0]
	}
	return nil
}

// BuildLoadVector computes the nodal-load contribution to the global load
// vector for the active patterns of the given load case
func (o *Model) BuildLoadVector(lc *LoadCase) (p []float64) {
	p = make([]float64, o.Ndofs)
	if lc == nil {
		return
	}
	scales := lc.ActiveScales()
	for _, l := range o.Loads {
		if l.Type != LoadNodal {
			continue
		}
		scale, active := scales[l.Pattern]
		if !active {
			continue
		}
		idx, found := o.NodeId2Idx[l.NodeId]
		if !found {
			continue // dangling reference: silently skipped
		}
		for k, f := range l.F {
			if k >= 6 {
				break
			}
			p[idx*6+k] += f * scale
		}
	}
	return
}
