// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"math"
	"testing"
)

func TestXYZ(t *testing.T) {
	v := vec3(1, 2, 3)
	p := XYZ(v)
	if p.X() != 1 || p.Y() != 2 || p.Z() != 3 {
		t.Errorf("XYZ: got (%v, %v, %v), want (1, 2, 3)", p.X(), p.Y(), p.Z())
	}
	p.SetX(-1)
	p.SetY(-2)
	p.SetZ(-3)
	checkValues(t, "XYZ setters", v, []float64{-1, -2, -3})
}

func TestRGB(t *testing.T) {
	v := vec3(1.5, -0.25, 0.5)
	c := RGB(v)
	if c.R() != 255 {
		t.Errorf("R: got %d, want 255", c.R())
	}
	if c.G() != 0 {
		t.Errorf("G: got %d, want 0", c.G())
	}
	if c.B() != 128 {
		t.Errorf("B: got %d, want 128", c.B())
	}

	for _, ch := range []uint8{0, 1, 127, 200, 254, 255} {
		c.SetR(ch)
		c.SetG(255 - ch)
		c.SetB(ch / 2)
		if c.R() != ch || c.G() != 255-ch || c.B() != ch/2 {
			t.Errorf("RGB round trip %d: got (%d, %d, %d)", ch, c.R(), c.G(), c.B())
		}
	}

	v.Set(0, 0, math.NaN())
	if c.R() != 0 {
		t.Errorf("R of NaN: got %d, want 0", c.R())
	}
}

func TestEqualApprox(t *testing.T) {
	a := vec3(1, 2, 3)
	b := vec3(1, 2, 3.0001)
	if EqualApprox(a, b, 1e-6) {
		t.Errorf("EqualApprox: difference of 1e-4 accepted with eps 1e-6")
	}
	if !EqualApprox(a, b, 1e-3) {
		t.Errorf("EqualApprox: difference of 1e-4 rejected with eps 1e-3")
	}
	if EqualApprox(vec3(math.NaN(), 0, 0), vec3(math.NaN(), 0, 0), 1) {
		t.Errorf("EqualApprox: NaN compared equal")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(vec3(1, 2, 3)) {
		t.Errorf("IsFinite: finite vector rejected")
	}
	if IsFinite(vec3(1, math.Inf(-1), 3)) {
		t.Errorf("IsFinite: -Inf accepted")
	}
	if IsFinite(DivScalar(vec3(0, 1, 2), 0)) {
		t.Errorf("IsFinite: 0/0 accepted")
	}
}
