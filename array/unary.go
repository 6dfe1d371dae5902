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

// PlusExpr is unary plus: it yields its operand unchanged.
type PlusExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op Expr[T, R, C]
}

// Plus returns +e.
func Plus[T simd.Floats, R, C Dim](e Expr[T, R, C]) PlusExpr[T, R, C] {
	return PlusExpr[T, R, C]{op: e}
}

func (e PlusExpr[T, R, C]) At(i, j int) T                          { return e.op.At(i, j) }
func (e PlusExpr[T, R, C]) Block(b int) simd.Vec[T]                { return blockOf(e.op, b) }
func (e PlusExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool { return SupportsBlock(e.op, p) }

// NegExpr negates every element.
type NegExpr[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	op Expr[T, R, C]
}

// Neg returns -e.
func Neg[T simd.Floats, R, C Dim](e Expr[T, R, C]) NegExpr[T, R, C] {
	return NegExpr[T, R, C]{op: e}
}

func (e NegExpr[T, R, C]) At(i, j int) T                          { return -e.op.At(i, j) }
func (e NegExpr[T, R, C]) Block(b int) simd.Vec[T]                { return simd.Neg(blockOf(e.op, b)) }
func (e NegExpr[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool { return SupportsBlock(e.op, p) }
