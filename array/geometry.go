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
	"fmt"

	"github.com/ajroetker/go-numarray/scalar"
	"github.com/ajroetker/go-numarray/simd"
)

// IdentityExpr is the N x N identity matrix.
type IdentityExpr[T simd.Floats, N Dim] struct {
	dims[N, N]
}

// Identity returns the N x N identity matrix.
func Identity[T simd.Floats, N Dim]() IdentityExpr[T, N] {
	return IdentityExpr[T, N]{}
}

func (IdentityExpr[T, N]) At(i, j int) T {
	if i == j {
		return 1
	}
	return 0
}

// AxisExpr is the unit column vector along axis k.
type AxisExpr[T simd.Floats, N Dim] struct {
	dims[N, D1]
	k int
}

// Axis returns the N-vector with a one at row k and zeros elsewhere.
// It panics if k is outside [0, N).
func Axis[T simd.Floats, N Dim](k int) AxisExpr[T, N] {
	if n := extent[N](); k < 0 || k >= n {
		panic(fmt.Sprintf("numarray: axis %d out of range for dimension %d", k, n))
	}
	return AxisExpr[T, N]{k: k}
}

// XAxis returns the 3-vector (1, 0, 0).
func XAxis[T simd.Floats]() AxisExpr[T, D3] { return Axis[T, D3](0) }

// YAxis returns the 3-vector (0, 1, 0).
func YAxis[T simd.Floats]() AxisExpr[T, D3] { return Axis[T, D3](1) }

// ZAxis returns the 3-vector (0, 0, 1).
func ZAxis[T simd.Floats]() AxisExpr[T, D3] { return Axis[T, D3](2) }

func (e AxisExpr[T, N]) At(i, _ int) T {
	if i == e.k {
		return 1
	}
	return 0
}

// RotationExpr is a 3x3 rotation about one of the coordinate axes.
type RotationExpr[T simd.Floats] struct {
	dims[D3, D3]
	axis     int
	cos, sin T
}

func rotation[T simd.Floats](axis int, angle T) RotationExpr[T] {
	return RotationExpr[T]{axis: axis, cos: scalar.Cos(angle), sin: scalar.Sin(angle)}
}

// RotateX returns the rotation by angle radians about the x axis.
func RotateX[T simd.Floats](angle T) RotationExpr[T] { return rotation(0, angle) }

// RotateY returns the rotation by angle radians about the y axis.
func RotateY[T simd.Floats](angle T) RotationExpr[T] { return rotation(1, angle) }

// RotateZ returns the rotation by angle radians about the z axis.
func RotateZ[T simd.Floats](angle T) RotationExpr[T] { return rotation(2, angle) }

// At follows the right-hand rule: with (u, v) the axes after the rotation
// axis in cyclic order, (u, v) holds -sin and (v, u) holds sin.
func (e RotationExpr[T]) At(i, j int) T {
	switch {
	case i == e.axis && j == e.axis:
		return 1
	case i == e.axis || j == e.axis:
		return 0
	case i == j:
		return e.cos
	case i == (e.axis+1)%3:
		return -e.sin
	default:
		return e.sin
	}
}

// ScaleExpr is a 3x3 diagonal scaling matrix.
type ScaleExpr[T simd.Floats] struct {
	dims[D3, D3]
	diag [3]T
}

// Scale returns diag(sx, sy, sz).
func Scale[T simd.Floats](sx, sy, sz T) ScaleExpr[T] {
	return ScaleExpr[T]{diag: [3]T{sx, sy, sz}}
}

func (e ScaleExpr[T]) At(i, j int) T {
	if i != j {
		return 0
	}
	return e.diag[i]
}
