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

package simd

// Blocks returns the number of blocks needed to hold count elements.
func Blocks[T Floats](count int) int {
	lanes := Lanes[T]()
	return (count + lanes - 1) / lanes
}

// AlignedSize rounds count up to the next multiple of the block width.
// This is the allocation size of a buffer processed block by block.
func AlignedSize[T Floats](count int) int {
	return Blocks[T](count) * Lanes[T]()
}

// IsAligned returns true if count is a multiple of the block width.
func IsAligned[T Floats](count int) bool {
	return count%Lanes[T]() == 0
}

// ProcessWithTail calls fullFn(offset) for every whole block in size
// elements and tailFn(offset, count) once for the remainder, if any.
//
// Example:
//
//	simd.ProcessWithTail[float64](n,
//	    func(offset int) {
//	        sum = simd.Add(sum, simd.Load(data[offset:]))
//	    },
//	    func(offset, count int) {
//	        for _, x := range data[offset : offset+count] {
//	            tail += x
//	        }
//	    },
//	)
func ProcessWithTail[T Floats](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := Lanes[T]()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}
