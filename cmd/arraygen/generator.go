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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// maxKernelSize bounds the number of statements in one kernel.
const maxKernelSize = 64

// knownLayouts are the policies package array can select a kernel for.
var knownLayouts = []string{"row-major", "column-major"}

// Shape is a kernel's extent.
type Shape struct {
	Rows, Cols int
}

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Store is one statement of a kernel: dst[Offset] = at(Row, Col).
type Store struct {
	Offset, Row, Col int
}

// Kernel describes one generated function.
type Kernel struct {
	Name   string
	Layout string // Go constant of the layout in package array
	Shape
	Stores []Store
}

// parseShapes parses a comma-separated list of RxC shapes. Blank entries and
// duplicates are dropped; order is kept.
func parseShapes(s string) ([]Shape, error) {
	fields := lo.Uniq(lo.Compact(lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.ToLower(strings.TrimSpace(f))
	})))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no shapes given")
	}

	shapes := make([]Shape, 0, len(fields))
	for _, f := range fields {
		r, c, ok := strings.Cut(f, "x")
		if !ok {
			return nil, fmt.Errorf("shape %q: want RxC", f)
		}
		rows, err := strconv.Atoi(r)
		if err != nil {
			return nil, fmt.Errorf("shape %q: rows: %w", f, err)
		}
		cols, err := strconv.Atoi(c)
		if err != nil {
			return nil, fmt.Errorf("shape %q: columns: %w", f, err)
		}
		if rows < 1 || cols < 1 || rows*cols > maxKernelSize {
			return nil, fmt.Errorf("shape %q: size must be in [1, %d]", f, maxKernelSize)
		}
		shapes = append(shapes, Shape{Rows: rows, Cols: cols})
	}
	return shapes, nil
}

// parseLayouts parses a comma-separated list of layout names.
func parseLayouts(s string) ([]string, error) {
	layouts := lo.Uniq(lo.Compact(lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.ToLower(strings.TrimSpace(f))
	})))
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts given")
	}
	for _, l := range layouts {
		if !lo.Contains(knownLayouts, l) {
			return nil, fmt.Errorf("unknown layout %q (want one of %s)", l, strings.Join(knownLayouts, ", "))
		}
	}
	return layouts, nil
}

// camel turns "row-major" into "RowMajor".
func camel(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	title := cases.Title(language.English)
	return strings.Join(lo.Map(words, func(w string, _ int) string { return title.String(w) }), "")
}

func newKernel(layout string, s Shape) Kernel {
	k := Kernel{
		Name:   "assign" + camel(layout) + s.String(),
		Layout: "layout" + camel(layout),
		Shape:  s,
		Stores: make([]Store, 0, s.Rows*s.Cols),
	}
	for l := range s.Rows * s.Cols {
		st := Store{Offset: l}
		switch layout {
		case "column-major":
			st.Row, st.Col = l%s.Rows, l/s.Rows
		default:
			st.Row, st.Col = l/s.Cols, l%s.Cols
		}
		k.Stores = append(k.Stores, st)
	}
	return k
}

var fileTemplate = template.Must(template.New("unrolled").Parse(`// Code generated by arraygen. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-numarray/simd"

// unrolledKernel returns the straight-line assignment kernel for the given
// layout and shape, or nil if none was generated.
func unrolledKernel[T simd.Floats](l layout, rows, cols int) kernel[T] {
	switch {
{{- range .Kernels}}
	case l == {{.Layout}} && rows == {{.Rows}} && cols == {{.Cols}}:
		return {{.Name}}[T]
{{- end}}
	}
	return nil
}
{{range .Kernels}}
func {{.Name}}[T simd.Floats](dst []T, at func(i, j int) T) {
{{- range .Stores}}
	dst[{{.Offset}}] = at({{.Row}}, {{.Col}})
{{- end}}
}
{{end}}`))

// Generate renders the kernel file for every combination of layout and
// shape, formatted as gofmt would.
func Generate(pkg string, layouts []string, shapes []Shape) ([]byte, error) {
	var kernels []Kernel
	for _, layout := range layouts {
		for _, s := range shapes {
			kernels = append(kernels, newKernel(layout, s))
		}
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Kernels []Kernel
	}{pkg, kernels})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out, err := imports.Process("unrolled_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}
