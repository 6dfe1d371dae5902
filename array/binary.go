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

// AddExpr is the element-wise sum of two expressions.
type AddExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	lhs, rhs Expr[T, R, C]
}

// Add returns lhs + rhs.
func Add[T simd.Floats, R, C Dim](lhs, rhs Expr[T, R, C]) AddExpr[T, R, C] {
	return AddExpr[T, R, C]{lhs: lhs, rhs: rhs}
}

func (e AddExpr[T, R, C]) At(i, j int) T {
	return e.lhs.At(i, j) + e.rhs.At(i, j)
}

func (e AddExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Add(blockOf(e.lhs, b), blockOf(e.rhs, b))
}

func (e AddExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.lhs, p) && SupportsBlock(e.rhs, p)
}

// SubExpr is the element-wise difference of two expressions.
type SubExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	lhs, rhs Expr[T, R, C]
}

// Sub returns lhs - rhs.
func Sub[T simd.Floats, R, C Dim](lhs, rhs Expr[T, R, C]) SubExpr[T, R, C] {
	return SubExpr[T, R, C]{lhs: lhs, rhs: rhs}
}

func (e SubExpr[T, R, C]) At(i, j int) T {
	return e.lhs.At(i, j) - e.rhs.At(i, j)
}

func (e SubExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Sub(blockOf(e.lhs, b), blockOf(e.rhs, b))
}

func (e SubExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.lhs, p) && SupportsBlock(e.rhs, p)
}

// HadamardExpr is the element-wise product of two expressions.
type HadamardExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	lhs, rhs Expr[T, R, C]
}

// Hadamard returns the element-wise product of lhs and rhs.
func Hadamard[T simd.Floats, R, C Dim](lhs, rhs Expr[T, R, C]) HadamardExpr[T, R, C] {
	return HadamardExpr[T, R, C]{lhs: lhs, rhs: rhs}
}

func (e HadamardExpr[T, R, C]) At(i, j int) T {
	return e.lhs.At(i, j) * e.rhs.At(i, j)
}

func (e HadamardExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Mul(blockOf(e.lhs, b), blockOf(e.rhs, b))
}

func (e HadamardExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.lhs, p) && SupportsBlock(e.rhs, p)
}

// MatMulExpr is the matrix product of an R x K and a K x C expression.
// It has no block form.
type MatMulExpr[T simd.Floats, R, K, C Dim] struct {
	dims[R, C]
	lhs   Expr[T, R, K]
	rhs   Expr[T, K, C]
	inner int
}

// MatMul returns the matrix product lhs * rhs. A matrix-vector product is
// the case C = D1. The inner extents must agree, which the compiler checks.
func MatMul[T simd.Floats, R, K, C Dim](lhs Expr[T, R, K], rhs Expr[T, K, C]) MatMulExpr[T, R, K, C] {
	return MatMulExpr[T, R, K, C]{lhs: lhs, rhs: rhs, inner: extent[K]()}
}

// At sums lhs(i, k) * rhs(k, j) over k in increasing order.
func (e MatMulExpr[T, R, K, C]) At(i, j int) T {
	var sum T
	for k := range e.inner {
		sum += e.lhs.At(i, k) * e.rhs.At(k, j)
	}
	return sum
}

// MulScalarExpr scales every element of an expression by a constant.
type MulScalarExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op Expr[T, R, C]
	k  T
}

// MulScalar returns e * k.
func MulScalar[T simd.Floats, R, C Dim](e Expr[T, R, C], k T) MulScalarExpr[T, R, C] {
	return MulScalarExpr[T, R, C]{op: e, k: k}
}

// ScalarMul returns k * e.
func ScalarMul[T simd.Floats, R, C Dim](k T, e Expr[T, R, C]) MulScalarExpr[T, R, C] {
	return MulScalarExpr[T, R, C]{op: e, k: k}
}

func (e MulScalarExpr[T, R, C]) At(i, j int) T {
	return e.op.At(i, j) * e.k
}

func (e MulScalarExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Mul(blockOf(e.op, b), simd.Set(e.k))
}

func (e MulScalarExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.op, p)
}

// DivScalarExpr divides every element of an expression by a constant.
type DivScalarExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op Expr[T, R, C]
	k  T
}

// DivScalar returns e / k. Division by zero follows IEEE 754.
func DivScalar[T simd.Floats, R, C Dim](e Expr[T, R, C], k T) DivScalarExpr[T, R, C] {
	return DivScalarExpr[T, R, C]{op: e, k: k}
}

func (e DivScalarExpr[T, R, C]) At(i, j int) T {
	return e.op.At(i, j) / e.k
}

func (e DivScalarExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Div(blockOf(e.op, b), simd.Set(e.k))
}

func (e DivScalarExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.op, p)
}
