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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-numarray/simd"
)

// d9 is a custom extent, used to test shapes without a generated kernel and
// with more than one storage block.
type d9 struct{}

func (d9) Len() int { return 9 }

func vec3(x, y, z float64) *Array[float64, D3, D1] {
	return FromValues[float64, D3, D1](x, y, z)
}

func mat3(values ...float64) *Array[float64, D3, D3] {
	return FromValues[float64, D3, D3](values...)
}

var approx = cmpopts.EquateApprox(0, 1e-12)

// checkValues evaluates e and compares its row-major values with want.
func checkValues[T simd.Floats, R, C Dim](t *testing.T, name string, e Expr[T, R, C], want []T) {
	t.Helper()
	got := Eval(e).Values()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// checkPadding fails if any slot past Size is not zero.
func checkPadding[T simd.Floats, R, C Dim](t *testing.T, name string, a *Array[T, R, C]) {
	t.Helper()
	for l := a.Size(); l < len(a.data); l++ {
		if a.data[l] != 0 {
			t.Errorf("%s: padding slot %d = %v, want 0", name, l, a.data[l])
		}
	}
}

// checkBlockEquivalence evaluates e through both assignment paths and fails
// if they disagree.
func checkBlockEquivalence[T simd.Floats, R, C Dim](t *testing.T, name string, e BlockExpr[T, R, C]) {
	t.Helper()
	if !e.SupportsBlock(RowMajor[R, C]{}) {
		t.Fatalf("%s: expected block support under row-major", name)
	}
	elems := New[T, R, C]()
	elems.assignElements(e)
	blocks := New[T, R, C]()
	blocks.assignBlocks(e)
	if diff := cmp.Diff(elems.data, blocks.data, approx); diff != "" {
		t.Errorf("%s: element and block paths differ (-elements +blocks):\n%s", name, diff)
	}
	checkPadding(t, name, blocks)
}
