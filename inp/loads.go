// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
)

// load types
const (
	LoadNodal       = "nodal"        // concentrated forces/moments at a node
	LoadMemberDist  = "member_dist"  // uniformly distributed load along a member
	LoadMemberPoint = "member_point" // concentrated force at a position along a member
)

// Direction is the resolved direction code of a member point load
type Direction int

const (
	DirNone    Direction = iota // unparseable direction string
	DirX                        // axis 1
	DirY                        // axis 2
	DirZ                        // axis 3
	DirGravity                  // global -Z, always in the global frame
)

// Frame is the resolved coordinate frame of a member load
type Frame int

const (
	FrameGlobal Frame = iota
	FrameLocal
)

// Load holds one load definition. Direction and frame strings are resolved
// once, during Model.Derived, into the Dcode and Fcode enumerations; the
// assemblers only ever match on the resolved codes
type Load struct {

	// input data
	Pattern string `json:"pattern"` // load pattern name
	Type    string `json:"type"`    // "nodal", "member_dist" or "member_point"

	// nodal loads
	NodeId int       `json:"nid"` // node id
	F      []float64 `json:"f"`   // [6] fx, fy, fz, mx, my, mz

	// member loads
	ElemId int    `json:"eid"`   // element id
	Coord  string `json:"coord"` // "Global" (default) or "Local"

	// distributed member loads
	W         []float64 `json:"w"`         // [3] intensity components
	Projected bool      `json:"projected"` // scale by horizontal projection (global frame only)

	// member point loads
	Force float64 `json:"force"` // magnitude
	Dir   string  `json:"dir"`   // direction code; e.g. "Gravity", "X", "2"
	Dist  float64 `json:"dist"`  // position from first node (absolute or relative)
	IsRel bool    `json:"isrel"` // Dist is relative to the total length

	// derived
	Dcode Direction // resolved direction
	Fcode Frame     // resolved frame
}

// resolve parses the direction and frame strings into closed enumerations
func (o *Load) resolve() (err error) {
	o.Dcode = ParseDirection(o.Dir)
	o.Fcode = ParseFrame(o.Coord)
	if o.Dcode == DirGravity {
		o.Fcode = FrameGlobal // gravity is always a global direction
	}
	if o.W == nil {
		o.W = []float64{0, 0, 0}
	}
	return
}

// ParseDirection maps a direction string to a Direction code. Matching is
// case-insensitive: a substring "GRAVITY" wins; otherwise X/1, Y/2, Z/3 are
// matched in this priority order. Unmatched strings map to DirNone
func ParseDirection(dir string) Direction {
	d := strings.ToUpper(dir)
	switch {
	case strings.Contains(d, "GRAVITY"):
		return DirGravity
	case strings.Contains(d, "X") || strings.Contains(d, "1"):
		return DirX
	case strings.Contains(d, "Y") || strings.Contains(d, "2"):
		return DirY
	case strings.Contains(d, "Z") || strings.Contains(d, "3"):
		return DirZ
	}
	return DirNone
}

// ParseFrame maps a coordinate frame string to a Frame code. Anything other
// than "Local" (case-insensitive) is the global frame
func ParseFrame(coord string) Frame {
	if strings.EqualFold(coord, "Local") {
		return FrameLocal
	}
	return FrameGlobal
}

// PatScale holds one (pattern, scale factor) pair
type PatScale struct {
	Pattern string  `json:"pattern"` // pattern name
	Scale   float64 `json:"scale"`   // scale factor
}

// LoadCase holds the active pattern scaling of one analysis case
type LoadCase struct {
	Name     string      `json:"name"`     // case name
	Patterns []*PatScale `json:"patterns"` // active patterns and scale factors
}

// ActiveScales returns the pattern => scale factor map of this case
func (o *LoadCase) ActiveScales() map[string]float64 {
	res := make(map[string]float64)
	for _, ps := range o.Patterns {
		res[ps.Pattern] = ps.Scale
	}
	return res
}

// MassSource describes how structural mass is derived for dynamic analysis
type MassSource struct {
	Name      string      `json:"name"`      // source name
	SelfMass  bool        `json:"selfmass"`  // include element self-mass
	FromLoads bool        `json:"fromloads"` // include mass converted from gravity loads
	Patterns  []*PatScale `json:"patterns"`  // patterns contributing to load-derived mass
}

// ActiveScales returns the pattern => scale factor map of this mass source
func (o *MassSource) ActiveScales() map[string]float64 {
	res := make(map[string]float64)
	for _, ps := range o.Patterns {
		res[ps.Pattern] = ps.Scale
	}
	return res
}
