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

// Package fractal implements fractal sort, a hybrid sampling quicksort for
// integer slices.
//
// # Algorithm
//
// Fractal sort recursively partitions its input into buckets around sampled
// pivots and reassembles the sorted buckets with a k-way merge:
//   - Small ranges are sorted directly with a bidirectional triple fix pass,
//     a bubble-sort variant that sweeps overlapping triples forward and
//     backward until no swap occurs.
//   - Larger ranges draw a random sample (with replacement), trim outliers
//     from both ends of the sorted sample, and stride-pick roughly sqrt(n)
//     pivots from it. Pivot selection is approximate-quantile by design,
//     trading precision for speed.
//   - Elements are distributed into pivotCount+1 buckets, each bucket is
//     sorted recursively, and the buckets are merged back with a min-heap.
//
// # Supported Types
//
// Integer element types only: int, int32, int64 (and named types thereof).
//
// # Determinism
//
// Pivot sampling needs randomness. The source is injectable through
// Config.Rand, so tests can fix a seed; when left nil each Sorter seeds
// itself from the wall clock.
//
// # Ties
//
// The k-way merge orders heap entries by value alone. Which bucket wins when
// heads are equal is unspecified and may change between runs; callers must
// not rely on any particular order among equal elements.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-fractalsort/fractal"
//
//	func ProcessData(data []int64) {
//	    fractal.Sort(data) // In-place ascending sort
//	}
package fractal
