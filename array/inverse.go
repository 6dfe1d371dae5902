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

import "github.com/ajroetker/go-numarray/simd"

// adjoint3x3 lists, for each row (or column) of a 3x3 matrix, the two rows
// (or columns) that remain after deleting it.
var adjoint3x3 = [3][2]int{{1, 2}, {0, 2}, {0, 1}}

// CofactorExpr is the cofactor matrix of a 3x3 expression: element (i, j) is
// (-1)^(i+j) times the determinant of the minor obtained by deleting row i
// and column j.
type CofactorExpr[T simd.Floats] struct {
	dims[D3, D3]
	op Expr[T, D3, D3]
}

// Cofactor returns the cofactor matrix of m.
func Cofactor[T simd.Floats](m Expr[T, D3, D3]) CofactorExpr[T] {
	return CofactorExpr[T]{op: m}
}

func (e CofactorExpr[T]) At(i, j int) T {
	r1, r2 := adjoint3x3[i][0], adjoint3x3[i][1]
	c1, c2 := adjoint3x3[j][0], adjoint3x3[j][1]
	minor := e.op.At(r1, c1)*e.op.At(r2, c2) - e.op.At(r1, c2)*e.op.At(r2, c1)
	if (i+j)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant of m, expanded along the first row.
func Determinant[T simd.Floats](m Expr[T, D3, D3]) T {
	cof := Cofactor(m)
	var det T
	for j := range 3 {
		det += m.At(0, j) * cof.At(0, j)
	}
	return det
}

// Inverse returns the inverse of m as its adjugate divided by its
// determinant. The determinant is computed once, here. There is no pivoting
// and no singularity check: a singular m yields Inf or NaN elements.
func Inverse[T simd.Floats](m Expr[T, D3, D3]) DivScalarExpr[T, D3, D3] {
	return DivScalar[T, D3, D3](Transpose[T, D3, D3](Cofactor(m)), Determinant(m))
}
