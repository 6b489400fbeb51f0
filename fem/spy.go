// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SpyRecord holds the transformed matrices of one element
type SpyRecord struct {
	ElemId int         `json:"id"`     // element id
	Klocal [][]float64 `json:"klocal"` // condensed local stiffness
	T      [][]float64 `json:"T"`      // total transform (eccentricity * rotation)
}

// Spy records per-element transformed matrices for external inspection. It is
// an optional debug sink: a nil *Spy disables recording entirely
type Spy struct {
	Records []*SpyRecord // recorded matrices, in element order
}

// Record stores deep copies of the local stiffness and total transform
func (o *Spy) Record(elemId int, k, T [][]float64) {
	if o == nil {
		return
	}
	r := &SpyRecord{ElemId: elemId}
	r.Klocal = make([][]float64, len(k))
	for i := range k {
		r.Klocal[i] = append([]float64{}, k[i]...)
	}
	r.T = make([][]float64, len(T))
	for i := range T {
		r.T[i] = append([]float64{}, T[i]...)
	}
	o.Records = append(o.Records, r)
}

// Save writes the recorded matrices as JSON
func (o *Spy) Save(path string) (err error) {
	if o == nil {
		return
	}
	b, err := json.MarshalIndent(o.Records, "", "  ")
	if err != nil {
		return chk.Err("Spy.Save: cannot marshal records: %v", err)
	}
	io.WriteStringToFileD(filepath.Dir(path), filepath.Base(path), string(b))
	return
}
