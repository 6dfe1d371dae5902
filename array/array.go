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
	"strconv"
	"strings"
	"unsafe"

	"github.com/ajroetker/go-numarray/simd"
)

// Array is an R x C container of T that owns its storage.
//
// The buffer holds simd.AlignedSize[T](Size) elements so that block
// evaluation never runs off the end. Slots past Size are padding and are
// kept at zero by every method.
type Array[T simd.Floats, R, C Dim] struct {
	dims[R, C]
	policy IndexPolicy[R, C]
	data   []T
}

// New returns a zero-filled row-major array.
func New[T simd.Floats, R, C Dim]() *Array[T, R, C] {
	return NewWithPolicy[T, R, C](RowMajor[R, C]{})
}

// NewWithPolicy returns a zero-filled array stored according to p.
func NewWithPolicy[T simd.Floats, R, C Dim](p IndexPolicy[R, C]) *Array[T, R, C] {
	s := ShapeOf[R, C]()
	return &Array[T, R, C]{
		policy: p,
		data:   make([]T, simd.AlignedSize[T](s.Size)),
	}
}

// Fill returns a row-major array with every element set to v.
func Fill[T simd.Floats, R, C Dim](v T) *Array[T, R, C] {
	return New[T, R, C]().SetScalar(v)
}

// FromValues returns a row-major array initialized from values given in
// row-major order. Missing values are zero and extra values are ignored.
func FromValues[T simd.Floats, R, C Dim](values ...T) *Array[T, R, C] {
	return New[T, R, C]().SetValues(values...)
}

// Eval evaluates e into a new row-major array.
func Eval[T simd.Floats, R, C Dim](e Expr[T, R, C]) *Array[T, R, C] {
	return New[T, R, C]().Assign(e)
}

// Clone returns an independent copy of a, with the same policy.
func (a *Array[T, R, C]) Clone() *Array[T, R, C] {
	b := &Array[T, R, C]{
		policy: a.policy,
		data:   make([]T, len(a.data)),
	}
	copy(b.data, a.data)
	return b
}

// CopyFrom makes a hold the same logical values as src and returns a.
// When both use the same policy the whole buffer is copied; otherwise
// elements are copied one by one into a's layout.
func (a *Array[T, R, C]) CopyFrom(src *Array[T, R, C]) *Array[T, R, C] {
	if a == src {
		return a
	}
	if SamePolicy(a.policy, src.policy) {
		copy(a.data, src.data)
		return a
	}
	a.assignElements(src)
	return a
}

// MoveFrom is CopyFrom. src is left unchanged.
func (a *Array[T, R, C]) MoveFrom(src *Array[T, R, C]) *Array[T, R, C] {
	return a.CopyFrom(src)
}

// SetScalar sets every element to v and returns a.
func (a *Array[T, R, C]) SetScalar(v T) *Array[T, R, C] {
	n := a.Size()
	for l := range n {
		a.data[l] = v
	}
	a.clearPadding()
	return a
}

// SetValues assigns values in row-major order, whatever a's policy, and
// returns a. Missing values are zero and extra values are ignored.
func (a *Array[T, R, C]) SetValues(values ...T) *Array[T, R, C] {
	cols := a.Columns()
	n := a.Size()
	clear(a.data)
	for k := 0; k < n && k < len(values); k++ {
		a.data[a.policy.Index(k/cols, k%cols)] = values[k]
	}
	return a
}

// At returns element (i, j). Indices are not validated beyond Go's slice
// bounds checks.
func (a *Array[T, R, C]) At(i, j int) T {
	return a.data[a.policy.Index(i, j)]
}

// Set sets element (i, j) to v.
func (a *Array[T, R, C]) Set(i, j int, v T) {
	a.data[a.policy.Index(i, j)] = v
}

// Elem returns the element at storage offset l.
func (a *Array[T, R, C]) Elem(l int) T {
	return a.data[l]
}

// SetElem sets the element at storage offset l, which must be less than
// Size.
func (a *Array[T, R, C]) SetElem(l int, v T) {
	a.data[l] = v
}

// Block loads storage block b.
func (a *Array[T, R, C]) Block(b int) simd.Vec[T] {
	return simd.Load(a.data[b*simd.Lanes[T]():])
}

// SetBlock stores v into storage block b. Lanes that fall into padding are
// reset to zero.
func (a *Array[T, R, C]) SetBlock(b int, v simd.Vec[T]) {
	simd.Store(v, a.data[b*simd.Lanes[T]():])
	if b == a.Blocks()-1 {
		a.clearPadding()
	}
}

// SupportsBlock reports whether a is stored according to p.
func (a *Array[T, R, C]) SupportsBlock(p IndexPolicy[R, C]) bool {
	return SamePolicy(a.policy, p)
}

// Rows returns the number of rows.
func (a *Array[T, R, C]) Rows() int { return extent[R]() }

// Columns returns the number of columns.
func (a *Array[T, R, C]) Columns() int { return extent[C]() }

// Size returns the number of logical elements.
func (a *Array[T, R, C]) Size() int { return extent[R]() * extent[C]() }

// Blocks returns the number of storage blocks.
func (a *Array[T, R, C]) Blocks() int { return simd.Blocks[T](a.Size()) }

// Shape returns the array's shape.
func (a *Array[T, R, C]) Shape() Shape { return ShapeOf[R, C]() }

// Policy returns the index policy the array is stored with.
func (a *Array[T, R, C]) Policy() IndexPolicy[R, C] { return a.policy }

// Values returns a copy of the logical elements in row-major order.
func (a *Array[T, R, C]) Values() []T {
	cols := a.Columns()
	out := make([]T, a.Size())
	for k := range out {
		out[k] = a.At(k/cols, k%cols)
	}
	return out
}

// String formats the array one row per line, e.g. "[1 2 3]\n[4 5 6]".
func (a *Array[T, R, C]) String() string {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	var sb strings.Builder
	for i := range a.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := range a.Columns() {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(a.At(i, j)), 'g', -1, bits))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func (a *Array[T, R, C]) clearPadding() {
	clear(a.data[a.Size():])
}
