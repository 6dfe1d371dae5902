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

	"github.com/ajroetker/go-numarray/scalar"
	"github.com/ajroetker/go-numarray/simd"
)

// EqualApprox reports whether every element of a is within eps of the
// corresponding element of b. NaN elements never compare equal.
func EqualApprox[T simd.Floats, R, C Dim](a, b Expr[T, R, C], eps T) bool {
	s := ShapeOf[R, C]()
	for i := range s.Rows {
		for j := range s.Columns {
			if !(scalar.Abs(a.At(i, j)-b.At(i, j)) <= eps) {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no element of e is NaN or infinite, e.g. after
// inverting a matrix that may be singular.
func IsFinite[T simd.Floats, R, C Dim](e Expr[T, R, C]) bool {
	s := ShapeOf[R, C]()
	for i := range s.Rows {
		for j := range s.Columns {
			x := float64(e.At(i, j))
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}
	return true
}
