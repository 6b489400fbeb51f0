// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. read model file and derived quantities")

	defer func() {
		if err := recover(); err != nil {
			tst.Errorf("panic: %v\n", err)
		}
	}()
	m := ReadModel("data/frame01.ocm")

	// global data
	chk.Scalar(tst, "gravity", 1e-15, m.Data.Gravity, 9.81)
	chk.Scalar(tst, "relpenalty", 1e-17, m.Data.RelPenalty, 1e-8)
	chk.IntAssert(m.Ndofs, 24)

	// id maps
	chk.IntAssert(m.NodeId2Idx[3], 2)
	chk.IntAssert(m.ElemId2Idx[2], 1)

	// lengths: the beam has rigid ends, the right column insertion offsets
	beam := m.Elems[1]
	chk.Scalar(tst, "beam Ltotal", 1e-14, beam.Ltotal, 4.0)
	chk.Scalar(tst, "beam Lclear", 1e-14, beam.Lclear, 3.5)
	if !beam.HasRel {
		tst.Errorf("beam release flag not derived\n")
	}
	col := m.Elems[2]
	chk.Scalar(tst, "col Ltotal", 1e-14, col.Ltotal, 3.0) // both ends shifted equally
	if col.HasRel {
		tst.Errorf("column has no releases\n")
	}

	// default slices filled in
	chk.IntAssert(len(m.Elems[0].OffI), 3)
	chk.IntAssert(len(m.Elems[0].RelI), 6)

	// load strings resolved at ingestion
	chk.IntAssert(int(m.Loads[2].Dcode), int(DirGravity))
	chk.IntAssert(int(m.Loads[2].Fcode), int(FrameGlobal))
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. direction and frame parsing")

	dirs := map[string]Direction{
		"Gravity":      DirGravity,
		"My Gravity":   DirGravity, // gravity wins over the Y
		"X":            DirX,
		"x proj":       DirX,
		"1":            DirX,
		"Y":            DirY,
		"2":            DirY,
		"Z":            DirZ,
		"dir 3":        DirZ,
		"XY note":      DirX, // X matched first
		"":             DirNone,
		"about":        DirNone,
		"perpendicul.": DirNone,
	}
	for s, want := range dirs {
		if got := ParseDirection(s); got != want {
			tst.Errorf("ParseDirection(%q) = %v, want %v\n", s, got, want)
		}
	}

	frames := map[string]Frame{
		"Local":  FrameLocal,
		"LOCAL":  FrameLocal,
		"local":  FrameLocal,
		"Global": FrameGlobal,
		"":       FrameGlobal,
		"other":  FrameGlobal,
	}
	for s, want := range frames {
		if got := ParseFrame(s); got != want {
			tst.Errorf("ParseFrame(%q) = %v, want %v\n", s, got, want)
		}
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. load cases and nodal load vector")

	m := ReadModel("data/frame01.ocm")

	// case lookup
	if m.FindCase("D+L") == nil {
		tst.Errorf("cannot find case D+L\n")
	}
	if m.FindCase("nope") != nil {
		tst.Errorf("bogus case must resolve to nil\n")
	}

	// nodal contribution only; member loads are left to the assembler
	p := m.BuildLoadVector(m.FindCase("D"))
	chk.IntAssert(len(p), 24)
	chk.Scalar(tst, "p fz node2", 1e-15, p[1*6+2], -1000.0)
	sum := 0.0
	for _, v := range p {
		sum += v
	}
	chk.Scalar(tst, "resultant", 1e-15, sum, -1000.0)

	// nil case gives a zero vector
	pz := m.BuildLoadVector(nil)
	for _, v := range pz {
		chk.Scalar(tst, "pz", 1e-15, v, 0)
	}
}

func Test_model04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model04. mass source resolution")

	m := ReadModel("data/frame01.ocm")

	ms := m.FindMassSource("MsSrc")
	if ms == nil {
		tst.Errorf("cannot find mass source\n")
		return
	}
	if !ms.SelfMass || !ms.FromLoads {
		tst.Errorf("mass source flags not read\n")
	}
	scales := ms.ActiveScales()
	chk.Scalar(tst, "scale", 1e-15, scales["DEAD"], 1.0)

	// "Default" falls back to the first source; anything else must fail
	if m.FindMassSource("Default") != ms {
		tst.Errorf("Default must fall back to the first source\n")
	}
	if m.FindMassSource("nope") != nil {
		tst.Errorf("bogus source must resolve to nil\n")
	}
}

func Test_model05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model05. inconsistent models are rejected")

	mat := &Material{E: 1, G: 1}
	sec := &Section{A: 1}

	// unknown node reference
	m := &Model{
		Nodes: []*Node{{Id: 1, Coords: []float64{0, 0, 0}}},
		Elems: []*Element{{Id: 1, Verts: []int{1, 99}, Mat: mat, Sec: sec}},
	}
	if err := m.Derived(); err == nil {
		tst.Errorf("unknown node reference must be rejected\n")
	}

	// duplicate node ids
	m = &Model{
		Nodes: []*Node{
			{Id: 1, Coords: []float64{0, 0, 0}},
			{Id: 1, Coords: []float64{1, 0, 0}},
		},
	}
	if err := m.Derived(); err == nil {
		tst.Errorf("duplicate node ids must be rejected\n")
	}

	// rigid ends longer than the member
	m = &Model{
		Nodes: []*Node{
			{Id: 1, Coords: []float64{0, 0, 0}},
			{Id: 2, Coords: []float64{1, 0, 0}},
		},
		Elems: []*Element{{Id: 1, Verts: []int{1, 2}, Mat: mat, Sec: sec, Ri: 0.6, Rj: 0.6}},
	}
	if err := m.Derived(); err == nil {
		tst.Errorf("non-positive clear length must be rejected\n")
	}

	// missing material
	m = &Model{
		Nodes: []*Node{
			{Id: 1, Coords: []float64{0, 0, 0}},
			{Id: 2, Coords: []float64{1, 0, 0}},
		},
		Elems: []*Element{{Id: 1, Verts: []int{1, 2}, Sec: sec}},
	}
	if err := m.Derived(); err == nil {
		tst.Errorf("missing material must be rejected\n")
	}
}
