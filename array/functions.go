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

// CrossExpr is the cross product of two 3-vectors.
type CrossExpr[T simd.Floats] struct {
	dims[D3, D1]
	a, b Expr[T, D3, D1]
}

// Cross returns a x b.
func Cross[T simd.Floats](a, b Expr[T, D3, D1]) CrossExpr[T] {
	return CrossExpr[T]{a: a, b: b}
}

// At returns component i: a[i+1]*b[i+2] - a[i+2]*b[i+1], indices mod 3.
func (e CrossExpr[T]) At(i, _ int) T {
	j, k := (i+1)%3, (i+2)%3
	return e.a.At(j, 0)*e.b.At(k, 0) - e.a.At(k, 0)*e.b.At(j, 0)
}

// Dot returns the inner product of two column vectors.
//
// When both operands support blocks under row-major layout, whole blocks are
// multiplied and accumulated lane-wise and summed once at the end, with the
// remainder added element by element. Otherwise the products are summed in
// index order.
func Dot[T simd.Floats, N Dim](a, b Expr[T, N, D1]) T {
	var p IndexPolicy[N, D1] = RowMajor[N, D1]{}
	if simd.Enabled() && SupportsBlock(a, p) && SupportsBlock(b, p) {
		return dotBlocks(a, b)
	}
	return dotElements(a, b)
}

func dotElements[T simd.Floats, N Dim](a, b Expr[T, N, D1]) T {
	var sum T
	for i := range extent[N]() {
		sum += a.At(i, 0) * b.At(i, 0)
	}
	return sum
}

func dotBlocks[T simd.Floats, N Dim](a, b Expr[T, N, D1]) T {
	lanes := simd.Lanes[T]()
	acc := simd.Zero[T]()
	var tail T
	simd.ProcessWithTail[T](extent[N](),
		func(offset int) {
			blk := offset / lanes
			acc = simd.Add(acc, simd.Mul(blockOf(a, blk), blockOf(b, blk)))
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				tail += a.At(i, 0) * b.At(i, 0)
			}
		},
	)
	return simd.ReduceSum(acc) + tail
}

// Dot1 returns max(0, Dot(a, b)), the clamped cosine term used in lighting.
func Dot1[T simd.Floats, N Dim](a, b Expr[T, N, D1]) T {
	return scalar.Max(0, Dot(a, b))
}

// Length returns the Euclidean norm of a.
func Length[T simd.Floats, N Dim](a Expr[T, N, D1]) T {
	return scalar.Sqrt(Dot(a, a))
}

// Distance returns the length of to - from.
func Distance[T simd.Floats, N Dim](from, to Expr[T, N, D1]) T {
	return Length[T, N](Sub(to, from))
}

// NormalizeExpr divides a vector by its length. The length is computed once,
// when the node is built.
type NormalizeExpr[T simd.Floats, N Dim] struct {
	dims[N, D1]
	op     Expr[T, N, D1]
	length T
}

// Normalize returns a / Length(a). A zero vector yields NaN elements.
func Normalize[T simd.Floats, N Dim](a Expr[T, N, D1]) NormalizeExpr[T, N] {
	return NormalizeExpr[T, N]{op: a, length: Length(a)}
}

// Direction returns the unit vector pointing from from to to.
func Direction[T simd.Floats, N Dim](from, to Expr[T, N, D1]) NormalizeExpr[T, N] {
	return Normalize[T, N](Sub(to, from))
}

func (e NormalizeExpr[T, N]) At(i, j int) T {
	return e.op.At(i, j) / e.length
}

func (e NormalizeExpr[T, N]) Block(b int) simd.Vec[T] {
	return simd.Div(blockOf(e.op, b), simd.Set(e.length))
}

func (e NormalizeExpr[T, N]) SupportsBlock(p IndexPolicy[N, D1]) bool {
	return SupportsBlock(e.op, p)
}

// TransposeExpr swaps rows and columns of an expression. It has no block
// form.
type TransposeExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op Expr[T, C, R]
}

// Transpose returns the C x R transpose of e.
func Transpose[T simd.Floats, R, C Dim](e Expr[T, R, C]) TransposeExpr[T, C, R] {
	return TransposeExpr[T, C, R]{op: e}
}

func (e TransposeExpr[T, R, C]) At(i, j int) T {
	return e.op.At(j, i)
}

// ClampExpr limits every element to [lo, hi].
type ClampExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op     Expr[T, R, C]
	lo, hi T
}

// Clamp returns e with every element limited to [lo, hi].
func Clamp[T simd.Floats, R, C Dim](e Expr[T, R, C], lo, hi T) ClampExpr[T, R, C] {
	return ClampExpr[T, R, C]{op: e, lo: lo, hi: hi}
}

func (e ClampExpr[T, R, C]) At(i, j int) T {
	return scalar.Clamp(e.op.At(i, j), e.lo, e.hi)
}

func (e ClampExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Clamp(blockOf(e.op, b), simd.Set(e.lo), simd.Set(e.hi))
}

func (e ClampExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.op, p)
}

// MinExpr takes the element-wise minimum of an expression and a bound.
type MinExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op    Expr[T, R, C]
	bound T
}

// Min returns e with every element replaced by min(element, bound).
func Min[T simd.Floats, R, C Dim](e Expr[T, R, C], bound T) MinExpr[T, R, C] {
	return MinExpr[T, R, C]{op: e, bound: bound}
}

func (e MinExpr[T, R, C]) At(i, j int) T {
	return scalar.Min(e.op.At(i, j), e.bound)
}

func (e MinExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Min(blockOf(e.op, b), simd.Set(e.bound))
}

func (e MinExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.op, p)
}

// MaxExpr takes the element-wise maximum of an expression and a bound.
type MaxExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op    Expr[T, R, C]
	bound T
}

// Max returns e with every element replaced by max(element, bound).
func Max[T simd.Floats, R, C Dim](e Expr[T, R, C], bound T) MaxExpr[T, R, C] {
	return MaxExpr[T, R, C]{op: e, bound: bound}
}

func (e MaxExpr[T, R, C]) At(i, j int) T {
	return scalar.Max(e.op.At(i, j), e.bound)
}

func (e MaxExpr[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Max(blockOf(e.op, b), simd.Set(e.bound))
}

func (e MaxExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SupportsBlock(e.op, p)
}

// CastExpr views an R x C expression as an R2 x C2 one of the same size,
// keeping the row-major order of the elements.
type CastExpr[R2, C2 Dim, T simd.Floats, R, C Dim] struct {
	dims[R2, C2]
	op      Expr[T, R, C]
	cols    int
	srcCols int
}

// Cast reshapes e to R2 x C2, e.g. a 3x1 column into a 1x3 row:
//
//	row := array.Cast[array.D1, array.D3](v)
//
// It panics if the two shapes hold a different number of elements.
func Cast[R2, C2 Dim, T simd.Floats, R, C Dim](e Expr[T, R, C]) CastExpr[R2, C2, T, R, C] {
	to, from := ShapeOf[R2, C2](), ShapeOf[R, C]()
	if to.Size != from.Size {
		panic(fmt.Sprintf("numarray: cannot cast %s to %s", from, to))
	}
	return CastExpr[R2, C2, T, R, C]{op: e, cols: to.Columns, srcCols: from.Columns}
}

func (e CastExpr[R2, C2, T, R, C]) At(i, j int) T {
	l := i*e.cols + j
	return e.op.At(l/e.srcCols, l%e.srcCols)
}

// Block passes the operand's block through: row-major storage of both shapes
// is the same sequence.
func (e CastExpr[R2, C2, T, R, C]) Block(b int) simd.Vec[T] {
	return blockOf(e.op, b)
}

func (e CastExpr[R2, C2, T, R, C]) SupportsBlock(p IndexPolicy[R2, C2]) bool {
	if _, ok := p.(RowMajor[R2, C2]); !ok {
		return false
	}
	return SupportsBlock(e.op, IndexPolicy[R, C](RowMajor[R, C]{}))
}
