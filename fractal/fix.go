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

// TripleFix sorts data in-place with bidirectional sweeps of overlapping
// triples. Each triple (i, i+1, i+2) is ordered by three pairwise
// compare-swaps; forward and backward sweeps alternate until a full cycle
// performs no swap. Worst case is quadratic like bubble sort, but the
// bidirectional passes settle small ranges in a handful of cycles, which is
// the only place the driver uses it.
func TripleFix[T Ints](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n == 2 {
		if data[0] > data[1] {
			data[0], data[1] = data[1], data[0]
		}
		return
	}

	changed := true
	for changed {
		changed = false
		// Forward sweep
		for i := 0; i+2 < n; i++ {
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
				changed = true
			}
			if data[i+1] > data[i+2] {
				data[i+1], data[i+2] = data[i+2], data[i+1]
				changed = true
			}
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
				changed = true
			}
		}
		// Backward sweep
		for i := n - 3; i >= 0; i-- {
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
				changed = true
			}
			if data[i+1] > data[i+2] {
				data[i+1], data[i+2] = data[i+2], data[i+1]
				changed = true
			}
			if data[i] > data[i+1] {
				data[i], data[i+1] = data[i+1], data[i]
				changed = true
			}
		}
	}
}

// sortPivots orders a pivot slice ascending. Partitioning requires sorted
// pivots; the pivot slice is always small, so the fix pass is enough.
func sortPivots[T Ints](pivots []T) {
	TripleFix(pivots)
}
