// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_spy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spy01. saved matrices reload unchanged")

	m := singleElementModel(tst, []float64{0, 0, 0}, []float64{3, 4, 0})
	if m == nil {
		return
	}
	asm := NewAssembler(m, m.FindCase("DL"))
	asm.Spy = new(Spy)
	asm.AssembleSystem()

	// write and read back
	if err := asm.Spy.Save("/tmp/opencivil/spy01.json"); err != nil {
		tst.Errorf("cannot save spy file: %v\n", err)
		return
	}
	b, err := io.ReadFile("/tmp/opencivil/spy01.json")
	if err != nil {
		tst.Errorf("cannot read spy file back: %v\n", err)
		return
	}
	var records []*SpyRecord
	if err := json.Unmarshal(b, &records); err != nil {
		tst.Errorf("cannot unmarshal spy file: %v\n", err)
		return
	}

	// round trip preserves the recorded matrices exactly
	chk.IntAssert(len(records), 1)
	chk.IntAssert(records[0].ElemId, 1)
	chk.Matrix(tst, "klocal", 1e-17, records[0].Klocal, asm.Spy.Records[0].Klocal)
	chk.Matrix(tst, "T", 1e-17, records[0].T, asm.Spy.Records[0].T)

	// a nil spy is a no-op sink
	var nilSpy *Spy
	nilSpy.Record(1, nil, nil)
	if err := nilSpy.Save("/tmp/opencivil/unused.json"); err != nil {
		tst.Errorf("nil spy save must be a no-op: %v\n", err)
	}
}
