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
	"slices"
	"testing"
)

// TestTripleFixBasic tests the three-element case
func TestTripleFixBasic(t *testing.T) {
	data := []int{3, 1, 2}
	TripleFix(data)
	want := []int{1, 2, 3}
	if !slices.Equal(data, want) {
		t.Errorf("TripleFix([3,1,2]) = %v, want %v", data, want)
	}
}

// TestTripleFixEmpty tests that an empty slice is untouched
func TestTripleFixEmpty(t *testing.T) {
	var empty []int32
	TripleFix(empty)
	if len(empty) != 0 {
		t.Errorf("TripleFix(empty) should not modify empty slice")
	}
}

// TestTripleFixSingle tests single element slices
func TestTripleFixSingle(t *testing.T) {
	data := []int64{42}
	TripleFix(data)
	if data[0] != 42 {
		t.Errorf("TripleFix([42]) = %v, want [42]", data)
	}
}

// TestTripleFixPair tests the two-element compare-swap
func TestTripleFixPair(t *testing.T) {
	data := []int{9, 4}
	TripleFix(data)
	if data[0] != 4 || data[1] != 9 {
		t.Errorf("TripleFix([9,4]) = %v, want [4 9]", data)
	}

	data = []int{4, 9}
	TripleFix(data)
	if data[0] != 4 || data[1] != 9 {
		t.Errorf("TripleFix([4,9]) = %v, want [4 9]", data)
	}
}

// TestTripleFixAllSame tests that identical elements terminate after one
// cycle with zero swaps
func TestTripleFixAllSame(t *testing.T) {
	data := []int{5, 5, 5, 5, 5}
	TripleFix(data)
	want := []int{5, 5, 5, 5, 5}
	if !slices.Equal(data, want) {
		t.Errorf("TripleFix(allSame) = %v, want %v", data, want)
	}
}

// TestTripleFixReverse tests reverse sorted input
func TestTripleFixReverse(t *testing.T) {
	data := []int{8, 7, 6, 5, 4, 3, 2, 1}
	TripleFix(data)
	if !IsSorted(data) {
		t.Errorf("TripleFix(reverse) produced unsorted result: %v", data)
	}
}

// TestTripleFixRandom tests random inputs against the standard library
func TestTripleFixRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 3, 4, 7, 8, 12, 13, 25, 64}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(100) - 50
		}
		want := slices.Clone(data)
		slices.Sort(want)

		TripleFix(data)
		if !slices.Equal(data, want) {
			t.Errorf("TripleFix(random, n=%d) = %v, want %v", n, data, want)
		}
	}
}

// TestSortPivots tests the pivot sort entry point, including the empty case
func TestSortPivots(t *testing.T) {
	pivots := []int{30, 10, 20}
	sortPivots(pivots)
	want := []int{10, 20, 30}
	if !slices.Equal(pivots, want) {
		t.Errorf("sortPivots = %v, want %v", pivots, want)
	}

	var empty []int
	sortPivots(empty)
	if len(empty) != 0 {
		t.Errorf("sortPivots(empty) should be a no-op")
	}
}
