// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the global assembly of stiffness, load and mass for
// 3D frame models: coordinate transformation, static condensation of end
// releases, fixed-end forces of member loads and lumped mass generation
package fem

import (
	"github.com/cpmech/gosl/io"
)

// AlertKind labels one class of degraded assembly
type AlertKind int

const (
	SingularRelease   AlertKind = iota // released-DOF block inversion failed; uncondensed matrix kept
	UnknownDirection                   // unparseable load direction; zero contribution
	UnknownMassSource                  // mass source name unresolvable; zero mass matrix
	ProjectionIgnored                  // projected load declared in a local frame
	VerticalProjected                  // projected load on a vertical member; zero load
)

// Alert holds one diagnostic record
type Alert struct {
	Kind   AlertKind // class of degradation
	ElemId int       // element id; -1 when not element-bound
	Msg    string    // human-readable description
}

// Report collects structured diagnostics during assembly. Assembly never
// aborts: every degraded contribution appends a record here so that callers
// can detect degradation without scraping console output
type Report struct {
	Verbose bool    // echo alerts to the console
	Alerts  []Alert // recorded alerts
	Skipped int     // silently skipped loads (dangling references, out-of-span positions)
}

// Add appends an alert, echoing it when Verbose is active
func (o *Report) Add(kind AlertKind, elemId int, msg string) {
	o.Alerts = append(o.Alerts, Alert{Kind: kind, ElemId: elemId, Msg: msg})
	if o.Verbose {
		io.PfRed("Warning: %s\n", msg)
	}
}

// Skip counts one silently skipped load
func (o *Report) Skip() {
	o.Skipped++
}

// Count returns the number of alerts of one kind
func (o *Report) Count(kind AlertKind) (n int) {
	for _, a := range o.Alerts {
		if a.Kind == kind {
			n++
		}
	}
	return
}
