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

package simd

import "math"

// This file provides the block primitives. Every operation works on the
// active lanes of its operands; binary operations use the shorter operand.

// Load creates a vector from the first Lanes[T]() elements of src.
// A short src yields a vector with fewer lanes.
func Load[T Floats](src []T) Vec[T] {
	n := min(Lanes[T](), len(src))
	var v Vec[T]
	copy(v.data[:n], src[:n])
	v.n = n
	return v
}

// Store writes a vector's lanes to dst.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(v.n, len(dst))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	v := Vec[T]{n: Lanes[T]()}
	for i := 0; i < v.n; i++ {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: Lanes[T]()}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates all lanes.
func Neg[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := 0; i < r.n; i++ {
		r.data[i] = -v.data[i]
	}
	return r
}

// Min returns element-wise minimum.
// Like MINPS, the second operand is returned when either lane is NaN.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		if a.data[i] < b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Max returns element-wise maximum.
// Like MAXPS, the second operand is returned when either lane is NaN.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := 0; i < r.n; i++ {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Clamp limits every lane of v to [lo, hi].
func Clamp[T Floats](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// Sqrt computes square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := 0; i < r.n; i++ {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}

// ReduceSum sums all lanes (horizontal add).
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := 0; i < v.n; i++ {
		sum += v.data[i]
	}
	return sum
}
