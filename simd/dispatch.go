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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the instruction set the block width is sized for.
type DispatchLevel int

const (
	// DispatchScalar disables block evaluation; buffers keep 16-byte blocks.
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

var levels = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) valid() bool {
	return d >= 0 && int(d) < len(levels)
}

// String returns the lower-case name of the level, or "unknown".
func (d DispatchLevel) String() string {
	if !d.valid() {
		return "unknown"
	}
	return levels[d].name
}

// Width returns the block width in bytes used at level d, or 0 for an
// unknown level.
func (d DispatchLevel) Width() int {
	if !d.valid() {
		return 0
	}
	return levels[d].width
}

// Set once in init and read-only afterwards.
var (
	currentLevel DispatchLevel
	currentWidth int
)

func init() {
	level := DispatchScalar
	if !NoSimdEnv() {
		level = detectLevel()
	}
	currentLevel, currentWidth = level, level.Width()
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the block width in bytes: 16 for SSE2, NEON and
// scalar mode, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the name of the current level.
func CurrentName() string { return currentLevel.String() }

// Enabled reports whether block evaluation may be used.
func Enabled() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether NUMARRAY_NO_SIMD asks for scalar mode. Any value
// other than one strconv.ParseBool reads as false counts as a request.
func NoSimdEnv() bool {
	val := os.Getenv("NUMARRAY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Lanes returns the number of elements of type T in one block, e.g. 8
// float32 or 4 float64 lanes at 32 bytes.
func Lanes[T Floats]() int {
	var zero T
	return max(1, min(maxLanes, currentWidth/int(unsafe.Sizeof(zero))))
}
