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

// Command arraygen generates the straight-line assignment kernels used by
// package array for small, common shapes.
//
// Usage:
//
//	arraygen --shapes 2x2,3x1,3x3,4x1,4x4 --layouts row-major,column-major --output unrolled_gen.go
//
// Or via go:generate from the array package:
//
//	//go:generate go run ../cmd/arraygen --output unrolled_gen.go
//
// Each kernel writes every element of an expression into a destination
// buffer in storage order, one statement per element, so the element loop
// and its index arithmetic disappear for those shapes.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type options struct {
	shapes  string
	layouts string
	output  string
	pkg     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "arraygen",
		Short:         "Generate unrolled assignment kernels for package array",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.shapes, "shapes", "2x2,3x1,3x3,4x1,4x4", "Comma-separated shapes, as RxC")
	cmd.Flags().StringVar(&opts.layouts, "layouts", "row-major,column-major", "Comma-separated layouts ("+strings.Join(knownLayouts, ",")+")")
	cmd.Flags().StringVar(&opts.output, "output", "unrolled_gen.go", "Output file, or - for stdout")
	cmd.Flags().StringVar(&opts.pkg, "package", "array", "Package name of the generated file")
	return cmd
}

func run(opts *options) error {
	shapes, err := parseShapes(opts.shapes)
	if err != nil {
		return err
	}
	layouts, err := parseLayouts(opts.layouts)
	if err != nil {
		return err
	}

	src, err := Generate(opts.pkg, layouts, shapes)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	log.Printf("wrote %d kernels to %s", len(shapes)*len(layouts), opts.output)
	return nil
}

func main() {
	log.SetPrefix("arraygen: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
