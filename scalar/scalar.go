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

// Package scalar holds the element-level math helpers used by the array
// engine. The functions are pure and stateless.
package scalar

import (
	"math"

	"github.com/ajroetker/go-numarray/simd"
)

// Sqrt returns the square root of x. Negative input yields NaN.
func Sqrt[T simd.Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

// InvSqrt returns 1/sqrt(x). Zero input yields +Inf.
func InvSqrt[T simd.Floats](x T) T {
	return T(1 / math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T simd.Floats](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T simd.Floats](x T) T {
	return T(math.Cos(float64(x)))
}

// Min returns the smaller of a and b, or b when either is NaN.
func Min[T simd.Floats](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, or b when either is NaN.
func Max[T simd.Floats](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]. The result is unspecified when lo > hi.
func Clamp[T simd.Floats](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// Abs returns the absolute value of x.
func Abs[T simd.Floats](x T) T {
	return T(math.Abs(float64(x)))
}
