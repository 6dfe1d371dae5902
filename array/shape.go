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

import "strconv"

// Shape describes the extents of an array or expression.
type Shape struct {
	Rows    int
	Columns int
	Size    int
}

// ShapeOf returns the shape described by the marker types R and C.
func ShapeOf[R, C Dim]() Shape {
	r, c := extent[R](), extent[C]()
	return Shape{Rows: r, Columns: c, Size: r * c}
}

// Valid reports whether both extents are positive and Size is their product.
func (s Shape) Valid() bool {
	return s.Rows > 0 && s.Columns > 0 && s.Size == s.Rows*s.Columns
}

// IsSquare reports whether the shape has as many rows as columns.
func (s Shape) IsSquare() bool {
	return s.Valid() && s.Rows == s.Columns
}

// IsColumn reports whether the shape is a column vector.
func (s Shape) IsColumn() bool {
	return s.Valid() && s.Columns == 1
}

// HasDimensions reports whether the shape is rows x columns.
func (s Shape) HasDimensions(rows, columns int) bool {
	return s.Valid() && s.Rows == rows && s.Columns == columns
}

// Identical reports whether two shapes have the same extents.
// Element types are compared by the type system, not here.
func (s Shape) Identical(other Shape) bool {
	return s.Valid() && other.Valid() && s.Rows == other.Rows && s.Columns == other.Columns
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Columns)
}
