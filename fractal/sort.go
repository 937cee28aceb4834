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

package fractal

import (
	"math"
	"math/rand"
)

// Sorter runs fractal sort with a fixed configuration. Construct one with
// NewSorter and reuse it across calls; the zero Config (or Config fields)
// fall back to the documented defaults.
//
// A Sorter is not safe for concurrent use: sequential sorts share the
// configured random source. SortParallel is the exception; it derives an
// independent source per bucket before any goroutine starts.
type Sorter[T Ints] struct {
	cfg Config
}

// NewSorter returns a Sorter using cfg with defaults filled in.
func NewSorter[T Ints](cfg Config) *Sorter[T] {
	return &Sorter[T]{cfg: cfg.withDefaults()}
}

// Sort sorts data in-place ascending using the default configuration.
func Sort[T Ints](data []T) {
	NewSorter[T](Config{}).Sort(data)
}

// SortRange sorts data[start:end+1] in-place ascending using the default
// configuration. See Sorter.SortRange for the range contract.
func SortRange[T Ints](data []T, start, end int) error {
	return NewSorter[T](Config{}).SortRange(data, start, end)
}

// Sort sorts data in-place ascending.
func (s *Sorter[T]) Sort(data []T) {
	s.sortRec(data, s.cfg.Rand)
}

// SortRange sorts the inclusive range data[start:end+1] in-place ascending.
// A reversed range (start > end) denotes an empty range and is a no-op.
// Negative indices or end >= len(data) violate the caller contract and
// return ErrInvalidRange with data untouched.
func (s *Sorter[T]) SortRange(data []T, start, end int) error {
	if start > end {
		return nil
	}
	if start < 0 || end >= len(data) {
		return ErrInvalidRange
	}
	s.sortRec(data[start:end+1], s.cfg.Rand)
	return nil
}

// sortRec is the recursive driver. Small slices go straight to the fix
// pass; everything else is partitioned around sampled pivots, the buckets
// are sorted recursively, and the merge result is copied back over data.
func (s *Sorter[T]) sortRec(data []T, rng *rand.Rand) {
	n := len(data)
	if n <= s.cfg.SmallThreshold {
		TripleFix(data)
		return
	}

	pivots := s.pickPivots(data, rng)
	buckets := partition(data, pivots)

	for _, b := range buckets {
		switch {
		case len(b) <= 1:
			// already sorted
		case len(b) == n:
			// Degenerate pivots put every element in one bucket (all
			// elements equal, typically). Recursing would not shrink the
			// problem; fall back to the fix pass.
			TripleFix(b)
		default:
			s.sortRec(b, rng)
		}
	}

	copy(data, Merge(buckets))
}

// pickPivots draws a random sample from data, trims outliers, and
// stride-picks an ascending pivot slice of size max(2, floor(sqrt(n))).
//
// Striding over the trimmed sample is approximate-quantile selection: when
// the sample length is not a multiple of the pivot count the later strides
// land short of the top of the distribution. That imprecision is accepted;
// the index is clamped so the last strides can never read past the sample.
func (s *Sorter[T]) pickPivots(data []T, rng *rand.Rand) []T {
	n := len(data)
	pivotCount := max(2, int(math.Sqrt(float64(n))))
	sampleCount := max(pivotCount, int(float64(pivotCount)*s.cfg.SampleFactor))

	// Sample with replacement.
	samples := make([]T, sampleCount)
	for i := range samples {
		samples[i] = data[rng.Intn(n)]
	}
	TripleFix(samples)

	// Drop the lowest and highest cut values so extreme outliers do not
	// become pivots, but only if at least pivotCount samples survive.
	cut := int(s.cfg.OutlierFrac * float64(sampleCount))
	if cut*2 < len(samples)-pivotCount {
		samples = samples[cut : len(samples)-cut]
	}

	pivots := stridePivots(samples, pivotCount)
	sortPivots(pivots)
	return pivots
}

// stridePivots picks pivotCount values from the non-empty sorted sample at
// stride max(1, len/pivotCount). When the sample is shorter than the pivot
// count the stride degenerates to 1 and the tail strides would run off the
// sample; the index is clamped to the last element instead, which only
// duplicates the top pivot (duplicate pivots produce empty buckets, which
// are harmless).
func stridePivots[T Ints](samples []T, pivotCount int) []T {
	pivots := make([]T, pivotCount)
	step := max(1, len(samples)/pivotCount)
	for i := range pivots {
		idx := min(i*step, len(samples)-1)
		pivots[i] = samples[idx]
	}
	return pivots
}

// partition distributes the elements of data into len(pivots)+1 buckets:
// bucket b holds the elements below pivots[b], the last bucket everything
// at or above the last pivot. Buckets keep the elements' relative order;
// together they are a permutation of data.
func partition[T Ints](data []T, pivots []T) [][]T {
	buckets := make([][]T, len(pivots)+1)
	for _, x := range data {
		b := 0
		for b < len(pivots) && x >= pivots[b] {
			b++
		}
		buckets[b] = append(buckets[b], x)
	}
	return buckets
}
