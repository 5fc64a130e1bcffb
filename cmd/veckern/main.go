// Copyright 2025 veckern Authors
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

// veckern is a diagnostic tool for the kernel library: it prints the
// detected CPU capabilities, times the compiled-in tiers against each
// other, and probes process memory usage.
//
// Usage:
//
//	veckern cpuinfo
//	veckern bench --size 4096 --iters 200
//	veckern memcheck --threshold 512
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/visionai/veckern/kern"
	"github.com/visionai/veckern/memprobe"
)

func main() {
	root := &cobra.Command{
		Use:     "veckern",
		Short:   "Diagnostics for the veckern numeric kernel library",
		Version: kern.Version(),
	}

	root.AddCommand(cpuinfoCmd(), benchCmd(), memcheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cpuinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print detected CPU capabilities and the active tier",
		Run: func(cmd *cobra.Command, args []string) {
			c := kern.Detect()

			fmt.Printf("GOOS: %s\n", runtime.GOOS)
			fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
			fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
			fmt.Println()

			fmt.Printf("Platform: %s (id %d)\n", kern.PlatformInfo(), int(kern.PlatformInfo()))
			fmt.Printf("Brand: %s\n", c.Brand)
			fmt.Printf("Optimization level: %d\n", c.OptLevel)
			fmt.Printf("Cache line: %d bytes\n", c.CacheLineSize)
			fmt.Printf("Prefetch: %v\n", c.Prefetch)
			fmt.Println()

			fmt.Printf("Active tier: %s (%d lanes)\n", kern.ActiveTier(), kern.ActiveTier().Lanes())
			fmt.Printf("Compiled-in tiers:")
			for _, t := range kern.CompiledTiers() {
				fmt.Printf(" %s", t)
			}
			fmt.Println()
		},
	}
}

func benchCmd() *cobra.Command {
	var dim int
	var iters int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each compiled-in tier on square matrix multiply",
		Run: func(cmd *cobra.Command, args []string) {
			a := make([]float32, dim*dim)
			b := make([]float32, dim*dim)
			c := make([]float32, dim*dim)
			want := make([]float32, dim*dim)
			rng := rand.New(rand.NewSource(1))
			for i := range a {
				a[i] = rng.Float32()*2 - 1
				b[i] = rng.Float32()*2 - 1
			}

			kern.DispatchMatMul(a, b, want, dim, dim, dim, "baseline")

			fmt.Printf("matrix_multiply %dx%dx%d, %d iters per tier\n", dim, dim, dim, iters)
			for _, t := range kern.CompiledTiers() {
				start := time.Now()
				for i := 0; i < iters; i++ {
					kern.DispatchMatMul(a, b, c, dim, dim, dim, t.String())
				}
				elapsed := time.Since(start)
				fmt.Printf("  %-8s %10s/op  rms vs baseline = %.3g\n",
					t, (elapsed / time.Duration(iters)).Round(time.Microsecond), rms(c, want))
			}
		},
	}

	cmd.Flags().IntVar(&dim, "size", 256, "square matrix dimension")
	cmd.Flags().IntVar(&iters, "iters", 20, "iterations per tier")
	return cmd
}

// rms is the root-mean-square difference between two equal-length buffers.
func rms(got, want []float32) float32 {
	if len(got) == 0 {
		return 0
	}
	var sum float32
	for i := range got {
		d := got[i] - want[i]
		sum += d * d
	}
	return math32.Sqrt(sum / float32(len(got)))
}

func memcheckCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "memcheck",
		Short: "Probe process memory usage",
		Run: func(cmd *cobra.Command, args []string) {
			r := memprobe.Check("veckern-cli", threshold)
			fmt.Printf("probe: %s\n", r.Name)
			fmt.Printf("current:   %.1f MB\n", r.CurrentMB)
			fmt.Printf("peak:      %.1f MB\n", r.PeakMB)
			fmt.Printf("available: %.1f MB\n", r.AvailableMB)
			if r.Exceeded {
				fmt.Printf("threshold %.1f MB exceeded\n", threshold)
			}
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0, "alert threshold in MB (0 disables)")
	return cmd
}
