// Copyright 2025 go-fractalsort Authors
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

// Command fractaldemo demonstrates and benchmarks fractal sort.
//
// Usage:
//
//	fractaldemo                     # sort the built-in demo array and print it
//	fractaldemo -bench -n 1000000   # time fractal sort against slices.Sort
//	fractaldemo -bench -parallel    # include the worker-pool variant
//	fractaldemo -seed 42            # fix the pivot sampling seed
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fractalsort/fractal"
	"github.com/ajroetker/go-fractalsort/workerpool"
)

var (
	bench    = flag.Bool("bench", false, "benchmark against the standard library instead of running the demo")
	n        = flag.Int("n", 1_000_000, "input size for -bench")
	seed     = flag.Int64("seed", 0, "pivot sampling seed (0 = time-based)")
	parallel = flag.Bool("parallel", false, "also benchmark the worker-pool variant")
	workers  = flag.Int("workers", 0, "workers for -parallel (0 = GOMAXPROCS)")
)

// demoData is the input of the original demonstration program.
var demoData = []int{
	18, 2, 12, 5, 29, 17, 4, 0,
	19, 23, 1, 9, 7, 6,
	59, 559, 342, 678, 231, 560,
	248, 2485, 2495, 2495, 586, 35,
	788,
	8, 976, 0, 668, 866, 765, 57, 43, 75, 8, 754, 74,
	75, 965, 86, 75578, 98,
}

func main() {
	flag.Parse()

	cfg := fractal.Config{}
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(*seed))
	}

	if *bench {
		if err := runBench(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "fractaldemo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runDemo(cfg)
}

func runDemo(cfg fractal.Config) {
	data := slices.Clone(demoData)

	fmt.Println("Original:")
	printInts(data)

	fractal.NewSorter[int](cfg).Sort(data)

	fmt.Println("\nSorted:")
	printInts(data)
}

func runBench(cfg fractal.Config) error {
	if *n <= 0 {
		return fmt.Errorf("invalid -n %d", *n)
	}

	fmt.Printf("=== fractal sort benchmark ===\n")
	fmt.Printf("GOARCH: %s, CPU: %s\n\n", runtime.GOARCH, cpuFeatures())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ref := make([]int, *n)
	for i := range ref {
		ref[i] = rng.Intn(*n)
	}

	data := slices.Clone(ref)
	sorter := fractal.NewSorter[int](cfg)
	start := time.Now()
	sorter.Sort(data)
	report("fractal.Sort", *n, time.Since(start))
	if !fractal.IsSorted(data) {
		return fmt.Errorf("fractal.Sort produced unsorted output")
	}

	if *parallel {
		pool := workerpool.New(*workers)
		defer pool.Close()

		data = slices.Clone(ref)
		start = time.Now()
		sorter.SortParallel(data, pool)
		report(fmt.Sprintf("fractal.SortParallel (%d workers)", pool.NumWorkers()), *n, time.Since(start))
		if !fractal.IsSorted(data) {
			return fmt.Errorf("fractal.SortParallel produced unsorted output")
		}
	}

	data = slices.Clone(ref)
	start = time.Now()
	slices.Sort(data)
	report("slices.Sort", *n, time.Since(start))

	return nil
}

func report(name string, n int, d time.Duration) {
	perElem := d / time.Duration(n)
	fmt.Printf("%-36s %10v  (%v/elem)\n", name, d, perElem)
}

// cpuFeatures reports the detected SIMD level of the host.
func cpuFeatures() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return "scalar"
	}
}

func printInts(data []int) {
	for _, x := range data {
		fmt.Print(x, " ")
	}
	fmt.Println()
}
