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

// Expr is a lazily evaluated R x C expression with elements of type T.
// Arrays are expressions too, so they can appear anywhere an operand can.
type Expr[T simd.Floats, R, C Dim] interface {
	// At evaluates element (i, j). Indices are not validated.
	At(i, j int) T

	// Dims returns the shape markers; see ShapeOf.
	Dims() (R, C)
}

// BlockExpr is an expression that can also produce a whole block of storage
// at once.
type BlockExpr[T simd.Floats, R, C Dim] interface {
	Expr[T, R, C]

	// Block evaluates storage block b, i.e. offsets
	// [b*simd.Lanes[T](), (b+1)*simd.Lanes[T]()) under the policy that
	// SupportsBlock accepted.
	Block(b int) simd.Vec[T]

	// SupportsBlock reports whether Block is valid under p for this node and
	// every operand below it.
	SupportsBlock(p IndexPolicy[R, C]) bool
}

// SupportsBlock is the dispatch rule: it reports whether e can be evaluated
// block by block into storage laid out by p. Expressions without a Block
// method answer false.
func SupportsBlock[T simd.Floats, R, C Dim](e Expr[T, R, C], p IndexPolicy[R, C]) bool {
	be, ok := e.(BlockExpr[T, R, C])
	return ok && be.SupportsBlock(p)
}

// blockOf evaluates block b of an operand already accepted by SupportsBlock.
func blockOf[T simd.Floats, R, C Dim](e Expr[T, R, C], b int) simd.Vec[T] {
	return e.(BlockExpr[T, R, C]).Block(b)
}
