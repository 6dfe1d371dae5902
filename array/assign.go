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

//go:generate go run ../cmd/arraygen --output unrolled_gen.go

// kernel writes every logical element of an expression into dst, laid out
// by a fixed policy and shape.
type kernel[T simd.Floats] func(dst []T, at func(i, j int) T)

// Assign evaluates e into a and returns a.
//
// The dispatch rule is consulted once: if SIMD is enabled and every node of
// e supports block evaluation under a's policy, e is evaluated block by
// block; otherwise element by element.
func (a *Array[T, R, C]) Assign(e Expr[T, R, C]) *Array[T, R, C] {
	if simd.Enabled() && SupportsBlock(e, a.policy) {
		a.assignBlocks(e.(BlockExpr[T, R, C]))
	} else {
		a.assignElements(e)
	}
	return a
}

// assignElements evaluates e at every logical position, in storage order.
func (a *Array[T, R, C]) assignElements(e Expr[T, R, C]) {
	if k := unrolledKernel[T](layoutOf(a.policy), a.Rows(), a.Columns()); k != nil {
		k(a.data, e.At)
		return
	}
	p := a.policy
	for l := range a.Size() {
		a.data[l] = e.At(p.Row(l), p.Column(l))
	}
}

// assignBlocks evaluates e one storage block at a time. e must support
// blocks under a's policy.
func (a *Array[T, R, C]) assignBlocks(e BlockExpr[T, R, C]) {
	lanes := simd.Lanes[T]()
	for b := range a.Blocks() {
		simd.Store(e.Block(b), a.data[b*lanes:])
	}
	a.clearPadding()
}

// AddAssign sets a to a + e and returns a.
func (a *Array[T, R, C]) AddAssign(e Expr[T, R, C]) *Array[T, R, C] {
	return a.Assign(Add[T, R, C](a, e))
}

// SubAssign sets a to a - e and returns a.
func (a *Array[T, R, C]) SubAssign(e Expr[T, R, C]) *Array[T, R, C] {
	return a.Assign(Sub[T, R, C](a, e))
}

// HadamardAssign sets a to the element-wise product of a and e and returns a.
func (a *Array[T, R, C]) HadamardAssign(e Expr[T, R, C]) *Array[T, R, C] {
	return a.Assign(Hadamard[T, R, C](a, e))
}

// MulAssign scales a by k and returns a.
func (a *Array[T, R, C]) MulAssign(k T) *Array[T, R, C] {
	return a.Assign(MulScalar[T, R, C](a, k))
}

// DivAssign divides a by k and returns a.
func (a *Array[T, R, C]) DivAssign(k T) *Array[T, R, C] {
	return a.Assign(DivScalar[T, R, C](a, k))
}
