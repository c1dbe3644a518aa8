// Copyright 2025 go-transpose Authors
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

// Package main prints the CPU features relevant to the tile kernels, the
// dispatch chain and the kernel each pixel format ends up with.
package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-transpose/dispatch"
	"github.com/ajroetker/go-transpose/transpose"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Printf("  HasASIMD: %v (NEON)\n", cpu.ARM64.HasASIMD)
		fmt.Printf("  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	case "amd64":
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
		fmt.Printf("  HasSSSE3:    %v\n", cpu.X86.HasSSSE3)
		fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
		fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
		fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	}
	fmt.Println()

	fmt.Printf("TRANSPOSE_NO_SIMD: %v\n", dispatch.NoSimdEnv())
	if v := os.Getenv("TRANSPOSE_MAX_LEVEL"); v != "" {
		fmt.Printf("TRANSPOSE_MAX_LEVEL: %s\n", v)
	}
	fmt.Print("Dispatch chain:")
	for _, l := range dispatch.Levels() {
		fmt.Printf(" %s", l)
	}
	fmt.Println()
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tKERNEL\tLEVEL\tTILE")
	for _, k := range transpose.SelectedKernels() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%d\n", k.Format, k.Kernel, k.Level, k.TileSize, k.TileSize)
	}
	tw.Flush()
}
