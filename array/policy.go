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

// IndexPolicy maps a logical (row, column) pair to a storage offset and back.
//
// Two arrays may take part in the same block evaluation only if they use the
// same policy; see SamePolicy. Implementations must be comparable.
type IndexPolicy[R, C Dim] interface {
	// Index returns the storage offset of element (i, j).
	Index(i, j int) int

	// Row returns the row of storage offset l.
	Row(l int) int

	// Column returns the column of storage offset l.
	Column(l int) int

	// Name returns a human-readable name ("row-major").
	Name() string

	Dims() (R, C)
}

// RowMajor stores rows contiguously: l = i*Columns + j.
type RowMajor[R, C Dim] struct {
	dims[R, C]
}

func (RowMajor[R, C]) Index(i, j int) int { return i*extent[C]() + j }
func (RowMajor[R, C]) Row(l int) int      { return l / extent[C]() }
func (RowMajor[R, C]) Column(l int) int   { return l % extent[C]() }
func (RowMajor[R, C]) Name() string       { return "row-major" }

// ColumnMajor stores columns contiguously: l = j*Rows + i.
type ColumnMajor[R, C Dim] struct {
	dims[R, C]
}

func (ColumnMajor[R, C]) Index(i, j int) int { return j*extent[R]() + i }
func (ColumnMajor[R, C]) Row(l int) int      { return l % extent[R]() }
func (ColumnMajor[R, C]) Column(l int) int   { return l / extent[R]() }
func (ColumnMajor[R, C]) Name() string       { return "column-major" }

// SamePolicy reports whether a and b are the same policy.
func SamePolicy[R, C Dim](a, b IndexPolicy[R, C]) bool {
	return a == b
}

// layout identifies the built-in policies for kernel selection.
type layout int

const (
	layoutOther layout = iota
	layoutRowMajor
	layoutColumnMajor
)

func layoutOf[R, C Dim](p IndexPolicy[R, C]) layout {
	switch p.(type) {
	case RowMajor[R, C]:
		return layoutRowMajor
	case ColumnMajor[R, C]:
		return layoutColumnMajor
	default:
		return layoutOther
	}
}
