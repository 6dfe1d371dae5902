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
	"math"

	"github.com/ajroetker/go-numarray/scalar"
	"github.com/ajroetker/go-numarray/simd"
)

// XYZView names the components of a 3-vector as coordinates.
type XYZView[T simd.Floats] struct {
	v *Array[T, D3, D1]
}

// XYZ returns a coordinate view of v. Writes through the view modify v.
func XYZ[T simd.Floats](v *Array[T, D3, D1]) XYZView[T] {
	return XYZView[T]{v: v}
}

func (x XYZView[T]) X() T { return x.v.At(0, 0) }
func (x XYZView[T]) Y() T { return x.v.At(1, 0) }
func (x XYZView[T]) Z() T { return x.v.At(2, 0) }

func (x XYZView[T]) SetX(c T) { x.v.Set(0, 0, c) }
func (x XYZView[T]) SetY(c T) { x.v.Set(1, 0, c) }
func (x XYZView[T]) SetZ(c T) { x.v.Set(2, 0, c) }

// RGBView reads and writes a 3-vector of [0, 1] intensities as 8-bit color
// channels.
type RGBView[T simd.Floats] struct {
	v *Array[T, D3, D1]
}

// RGB returns a color view of v. Writes through the view modify v.
func RGB[T simd.Floats](v *Array[T, D3, D1]) RGBView[T] {
	return RGBView[T]{v: v}
}

func (c RGBView[T]) R() uint8 { return toChannel(c.v.At(0, 0)) }
func (c RGBView[T]) G() uint8 { return toChannel(c.v.At(1, 0)) }
func (c RGBView[T]) B() uint8 { return toChannel(c.v.At(2, 0)) }

func (c RGBView[T]) SetR(r uint8) { c.v.Set(0, 0, fromChannel[T](r)) }
func (c RGBView[T]) SetG(g uint8) { c.v.Set(1, 0, fromChannel[T](g)) }
func (c RGBView[T]) SetB(b uint8) { c.v.Set(2, 0, fromChannel[T](b)) }

// toChannel clamps x to [0, 1] and scales it to [0, 255], rounding to
// nearest. NaN maps to 0.
func toChannel[T simd.Floats](x T) uint8 {
	if math.IsNaN(float64(x)) {
		return 0
	}
	return uint8(scalar.Clamp(x, 0, 1)*255 + 0.5)
}

func fromChannel[T simd.Floats](c uint8) T {
	return T(c) / 255
}
