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

import "testing"

func TestBlocks(t *testing.T) {
	lanes := Lanes[float64]()
	tests := []struct {
		count, blocks int
	}{
		{1, 1},
		{lanes, 1},
		{lanes + 1, 2},
		{3 * lanes, 3},
	}
	for _, tt := range tests {
		if got := Blocks[float64](tt.count); got != tt.blocks {
			t.Errorf("Blocks(%d): got %d, want %d", tt.count, got, tt.blocks)
		}
		if got := AlignedSize[float64](tt.count); got != tt.blocks*lanes {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.count, got, tt.blocks*lanes)
		}
	}
}

func TestIsAligned(t *testing.T) {
	lanes := Lanes[float32]()
	if !IsAligned[float32](2 * lanes) {
		t.Errorf("IsAligned(%d) = false, want true", 2*lanes)
	}
	if lanes > 1 && IsAligned[float32](lanes+1) {
		t.Errorf("IsAligned(%d) = true, want false", lanes+1)
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := Lanes[float32]()
	size := 2*lanes + 1

	var fullOffsets []int
	tailOffset, tailCount := -1, 0
	ProcessWithTail[float32](size,
		func(offset int) { fullOffsets = append(fullOffsets, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)

	if len(fullOffsets) != 2 || fullOffsets[0] != 0 || fullOffsets[1] != lanes {
		t.Errorf("full offsets: got %v, want [0 %d]", fullOffsets, lanes)
	}
	if tailOffset != 2*lanes || tailCount != 1 {
		t.Errorf("tail: got (%d, %d), want (%d, 1)", tailOffset, tailCount, 2*lanes)
	}
}

func TestProcessWithTailExact(t *testing.T) {
	called := false
	ProcessWithTail[float64](Lanes[float64](),
		func(int) {},
		func(int, int) { called = true },
	)
	if called {
		t.Error("tailFn called for an aligned size")
	}
}
