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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShapes(t *testing.T) {
	got, err := parseShapes(" 3x3, 2X2,,3x3 ,4x1")
	require.NoError(t, err)
	want := []Shape{{3, 3}, {2, 2}, {4, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseShapes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseShapesErrors(t *testing.T) {
	for _, in := range []string{"", " , ", "3", "ax3", "3xb", "0x3", "9x9"} {
		if _, err := parseShapes(in); err == nil {
			t.Errorf("parseShapes(%q): expected error", in)
		}
	}
}

func TestParseLayouts(t *testing.T) {
	got, err := parseLayouts("Column-Major,row-major,column-major")
	require.NoError(t, err)
	assert.Equal(t, []string{"column-major", "row-major"}, got)

	_, err = parseLayouts("diagonal")
	assert.ErrorContains(t, err, "unknown layout")
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "RowMajor", camel("row-major"))
	assert.Equal(t, "ColumnMajor", camel("column-major"))
}

func TestNewKernel(t *testing.T) {
	k := newKernel("column-major", Shape{Rows: 2, Cols: 3})
	assert.Equal(t, "assignColumnMajor2x3", k.Name)
	assert.Equal(t, "layoutColumnMajor", k.Layout)
	want := []Store{
		{0, 0, 0}, {1, 1, 0},
		{2, 0, 1}, {3, 1, 1},
		{4, 0, 2}, {5, 1, 2},
	}
	if diff := cmp.Diff(want, k.Stores); diff != "" {
		t.Errorf("column-major stores mismatch (-want +got):\n%s", diff)
	}

	k = newKernel("row-major", Shape{Rows: 2, Cols: 3})
	assert.Equal(t, Store{Offset: 4, Row: 1, Col: 1}, k.Stores[4])
}

func TestGenerate(t *testing.T) {
	src, err := Generate("array", []string{"row-major"}, []Shape{{2, 2}})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by arraygen. DO NOT EDIT."))
	assert.Contains(t, out, "case l == layoutRowMajor && rows == 2 && cols == 2:")
	assert.Contains(t, out, "func assignRowMajor2x2[T simd.Floats](dst []T, at func(i, j int) T) {")
	assert.Contains(t, out, "\tdst[3] = at(1, 1)\n")
}

// TestGeneratedFileUpToDate fails when array/unrolled_gen.go was edited by
// hand or the generator changed without regenerating.
func TestGeneratedFileUpToDate(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "array", "unrolled_gen.go"))
	require.NoError(t, err)

	shapes, err := parseShapes("2x2,3x1,3x3,4x1,4x4")
	require.NoError(t, err)
	got, err := Generate("array", knownLayouts, shapes)
	require.NoError(t, err)

	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("array/unrolled_gen.go is stale; run go generate ./array (-committed +generated):\n%s", diff)
	}
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "kernels.go")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--shapes", "3x1", "--layouts", "row-major", "--package", "geom", "--output", out})
	require.NoError(t, cmd.Execute())

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package geom")
	assert.Contains(t, string(src), "func assignRowMajor3x1[T simd.Floats]")
}
