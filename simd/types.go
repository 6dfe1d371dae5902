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

// Package simd is the block facility used by the array engine.
//
// It reports the native vector width for an element type, rounds logical
// element counts up to whole blocks, and exposes block-granularity
// load/store/arith primitives. The implementation is portable Go: a Vec
// holds its lanes inline, so block evaluation never touches the heap.
//
// Basic usage:
//
//	lanes := simd.Lanes[float64]()
//	buf := make([]float64, simd.AlignedSize[float64](9))
//	v := simd.Add(simd.Load(buf), simd.Set(1.0))
//	simd.Store(v, buf)
package simd

// Floats is the constraint for element types the engine operates on.
type Floats interface {
	~float32 | ~float64
}

// maxLanes bounds the lane count of any Vec: 512-bit registers of float32.
const maxLanes = 16

// Vec is one block of lanes. The zero value has no lanes; use Load, Set or
// Zero to obtain a vector sized for the current dispatch width.
type Vec[T Floats] struct {
	data [maxLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst.
// This is the method form of the Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
