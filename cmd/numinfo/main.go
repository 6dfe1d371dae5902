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

// Command numinfo prints the CPU features and block width that package array
// will use on this machine.
package main

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-numarray/simd"
)

func newRootCmd() *cobra.Command {
	var features bool
	cmd := &cobra.Command{
		Use:           "numinfo",
		Short:         "Print the detected SIMD dispatch level and block widths",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd.OutOrStdout(), runtime.GOARCH, features)
		},
	}
	cmd.Flags().BoolVar(&features, "features", true, "Also print raw golang.org/x/sys/cpu feature flags")
	return cmd
}

func report(w io.Writer, arch string, features bool) error {
	ew := &errWriter{w: w}
	ew.printf("GOOS: %s\n", runtime.GOOS)
	ew.printf("GOARCH: %s\n", arch)
	ew.printf("NumCPU: %d\n", runtime.NumCPU())
	ew.printf("\n")

	ew.printf("Dispatch level: %s\n", simd.CurrentLevel())
	ew.printf("Dispatch width: %d bytes\n", simd.CurrentWidth())
	ew.printf("Dispatch name: %s\n", simd.CurrentName())
	ew.printf("Block evaluation: %v\n", simd.Enabled())
	ew.printf("Lanes float32: %d\n", simd.Lanes[float32]())
	ew.printf("Lanes float64: %d\n", simd.Lanes[float64]())

	if features {
		switch arch {
		case "arm64":
			ew.printf("\n")
			printARM64Features(ew)
		case "amd64":
			ew.printf("\n")
			printAMD64Features(ew)
		}
	}
	if ew.err != nil {
		return fmt.Errorf("writing report: %w", ew.err)
	}
	return nil
}

func printARM64Features(ew *errWriter) {
	ew.printf("=== golang.org/x/sys/cpu.ARM64 ===\n")
	ew.printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	ew.printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
	ew.printf("  HasASIMDHP: %v (FP16 NEON)\n", cpu.ARM64.HasASIMDHP)
	ew.printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	ew.printf("  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(ew *errWriter) {
	ew.printf("=== golang.org/x/sys/cpu.X86 ===\n")
	ew.printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	ew.printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	ew.printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	ew.printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	ew.printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	ew.printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	ew.printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}

// errWriter keeps the first write error so the report can be written
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func main() {
	log.SetPrefix("numinfo: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
