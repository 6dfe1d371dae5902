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

// Package array provides fixed-size vectors and matrices whose dimensions
// are part of their type, combined through lazy expression nodes.
//
// Dimensions are carried by marker types (D1, D2, D3, D4, or your own Dim).
// An Array[float64, D3, D1] is a 3-vector; an Array[float64, D3, D3] is a
// 3x3 matrix. Operands of different shapes are different types, so shape
// mismatches are rejected by the compiler.
//
// Building an expression evaluates nothing:
//
//	a := array.FromValues[float64, array.D3, array.D1](1, 2, 3)
//	b := array.FromValues[float64, array.D3, array.D1](4, 5, 6)
//	e := array.Add(array.MulScalar(a, 2), b) // no work yet
//
// Work happens when an expression is assigned into an array:
//
//	c := array.Eval(e)
//	a.Assign(array.Cross(a, b))
//
// Assignment asks the expression tree once whether every node can be
// evaluated a whole block at a time under the destination's IndexPolicy.
// If so the block loop runs; otherwise every logical element is evaluated
// individually. Both paths produce the same values, except that block
// reductions (Dot) may differ in the last bit because lane-wise summation
// reassociates.
//
// Expression nodes keep references to their operands. Assigning an
// expression into one of its own operands is safe for element-wise nodes
// (Add, Sub, Hadamard, the scalar and unary operators, Normalize, Clamp, Min,
// Max) but not for nodes that read other elements (MatMul, Transpose, Cross,
// Cofactor, Inverse, Cast); evaluate those into a fresh array with Eval.
//
// Numeric edge cases are not checked: a singular matrix inverts to Inf/NaN,
// normalizing a zero vector yields NaN. Use IsFinite to detect them.
package array
