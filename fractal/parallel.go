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
	"math/rand"

	"github.com/ajroetker/go-fractalsort/workerpool"
)

// SortParallel sorts data in-place ascending, distributing the top-level
// buckets across pool. Buckets are disjoint slices, so they need no
// synchronization beyond the join; each bucket recursion then runs
// sequentially on its worker. The result is identical to Sort up to the
// unspecified order of equal elements.
//
// A nil pool, or data small enough for the fix pass, sorts sequentially.
func (s *Sorter[T]) SortParallel(data []T, pool *workerpool.Pool) {
	n := len(data)
	if pool == nil || n <= s.cfg.SmallThreshold {
		s.Sort(data)
		return
	}

	rng := s.cfg.Rand
	pivots := s.pickPivots(data, rng)
	buckets := partition(data, pivots)

	// A *rand.Rand cannot be shared across goroutines; draw one seed per
	// bucket up front and give every bucket its own source.
	seeds := make([]int64, len(buckets))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	pool.Each(len(buckets), func(i int) {
		b := buckets[i]
		switch {
		case len(b) <= 1:
			// already sorted
		case len(b) == n:
			TripleFix(b)
		default:
			s.sortRec(b, rand.New(rand.NewSource(seeds[i])))
		}
	})

	copy(data, Merge(buckets))
}

// ParallelSort sorts data in-place ascending on pool using the default
// configuration.
func ParallelSort[T Ints](data []T, pool *workerpool.Pool) {
	NewSorter[T](Config{}).SortParallel(data, pool)
}
