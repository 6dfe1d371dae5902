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
	"testing"

	"github.com/stretchr/testify/assert"
)

var invertible = []float64{3, 1, 1, 5, 2, 1, 3, 1, 2}

func TestDeterminant(t *testing.T) {
	if got := Determinant(mat3(invertible...)); got != 1 {
		t.Errorf("Determinant: got %v, want 1", got)
	}
	if got := Determinant(Identity[float64, D3]()); got != 1 {
		t.Errorf("Determinant(I): got %v, want 1", got)
	}
	if got := Determinant(mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)); got != 0 {
		t.Errorf("Determinant(singular): got %v, want 0", got)
	}
	if got := Determinant(Scale(2.0, 3, 4)); got != 24 {
		t.Errorf("Determinant(Scale): got %v, want 24", got)
	}
}

func TestCofactor(t *testing.T) {
	checkValues(t, "Cofactor", Cofactor(mat3(invertible...)),
		[]float64{3, -7, -1, -1, 3, 0, -1, 2, 1})
}

func TestInverse(t *testing.T) {
	m := mat3(invertible...)
	inv := Eval(Inverse(m))
	checkValues(t, "Inverse", inv, []float64{3, -1, -1, -7, 3, 2, -1, 0, 1})

	assert.True(t, EqualApprox(Eval(MatMul(m, inv)), Identity[float64, D3](), 1e-12), "M * inverse(M) != I")
	assert.True(t, EqualApprox(Eval(MatMul(inv, m)), Identity[float64, D3](), 1e-12), "inverse(M) * M != I")

	r := Eval(RotateZ(0.3))
	assert.True(t, EqualApprox(Eval(Inverse(r)), Transpose(r), 1e-12), "inverse of a rotation is its transpose")
}

func TestInverseSingular(t *testing.T) {
	inv := Eval(Inverse(mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)))
	assert.False(t, IsFinite(inv))
}
