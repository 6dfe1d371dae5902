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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geomEps = 1e-12

func assertVec3(t *testing.T, want [3]float64, got Expr[float64, D3, D1]) {
	t.Helper()
	for i, w := range want {
		assert.InDelta(t, w, got.At(i, 0), geomEps, "component %d", i)
	}
}

func TestAxes(t *testing.T) {
	assertVec3(t, [3]float64{1, 0, 0}, XAxis[float64]())
	assertVec3(t, [3]float64{0, 1, 0}, YAxis[float64]())
	assertVec3(t, [3]float64{0, 0, 1}, ZAxis[float64]())

	e := Eval(Axis[float64, D4](3))
	assert.Equal(t, []float64{0, 0, 0, 1}, e.Values())

	assert.PanicsWithValue(t, "numarray: axis 3 out of range for dimension 3", func() {
		Axis[float64, D3](3)
	})
	assert.Panics(t, func() { Axis[float64, D2](-1) })
}

func TestIdentity(t *testing.T) {
	id := Eval(Identity[float64, D4]())
	for i := range 4 {
		for j := range 4 {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, id.At(i, j), "(%d, %d)", i, j)
		}
	}

	m := mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, EqualApprox(Eval(MatMul(Identity[float64, D3](), m)), m, 0))
}

func TestRotations(t *testing.T) {
	quarter := math.Pi / 2

	assertVec3(t, [3]float64{0, 0, 1}, Eval(MatMul(RotateX(quarter), YAxis[float64]())))
	assertVec3(t, [3]float64{0, 0, -1}, Eval(MatMul(RotateY(quarter), XAxis[float64]())))
	assertVec3(t, [3]float64{0, 1, 0}, Eval(MatMul(RotateZ(quarter), XAxis[float64]())))

	// Rotating about an axis leaves that axis fixed.
	assertVec3(t, [3]float64{1, 0, 0}, Eval(MatMul(RotateX(0.7), XAxis[float64]())))
	assertVec3(t, [3]float64{0, 1, 0}, Eval(MatMul(RotateY(0.7), YAxis[float64]())))
	assertVec3(t, [3]float64{0, 0, 1}, Eval(MatMul(RotateZ(0.7), ZAxis[float64]())))
}

func TestRotationMatrices(t *testing.T) {
	c, s := math.Cos(0.4), math.Sin(0.4)
	tests := []struct {
		name string
		got  Expr[float64, D3, D3]
		want []float64
	}{
		{"X", RotateX(0.4), []float64{1, 0, 0, 0, c, -s, 0, s, c}},
		{"Y", RotateY(0.4), []float64{c, 0, s, 0, 1, 0, -s, 0, c}},
		{"Z", RotateZ(0.4), []float64{c, -s, 0, s, c, 0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, Eval(tt.got).Values(), geomEps)
			assert.InDelta(t, 1.0, Determinant(tt.got), geomEps)
		})
	}
}

func TestComposedRotation(t *testing.T) {
	// Two quarter turns about z send x to -x.
	r := Eval(MatMul(RotateZ(math.Pi/2), RotateZ(math.Pi/2)))
	assertVec3(t, [3]float64{-1, 0, 0}, Eval(MatMul(r, XAxis[float64]())))

	// Rotation preserves length.
	v := vec3(1, -2, 3)
	rv := Eval(MatMul(MatMul(RotateX(0.3), RotateY(-1.1)), v))
	assert.InDelta(t, Length(v), Length(rv), geomEps)
}

func TestScale(t *testing.T) {
	s := Eval(Scale(2.0, 3, 4))
	assert.Equal(t, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4}, s.Values())

	scaled := Eval(MatMul(s, vec3(1, 1, 1)))
	assertVec3(t, [3]float64{2, 3, 4}, scaled)

	inv := Eval(Inverse(s))
	require.True(t, IsFinite(inv))
	assertVec3(t, [3]float64{1, 1, 1}, Eval(MatMul(inv, scaled)))
}

func TestFloat32Geometry(t *testing.T) {
	v := Eval(MatMul(RotateZ[float32](math.Pi/2), XAxis[float32]()))
	assert.InDelta(t, 0, v.At(0, 0), 1e-6)
	assert.InDelta(t, 1, v.At(1, 0), 1e-6)
}
