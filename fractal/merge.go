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

import "container/heap"

// headEntry is one candidate in the merge heap: the current head value of a
// bucket plus enough position to fetch its successor.
type headEntry[T Ints] struct {
	value  T
	bucket int
	pos    int
}

// mergeHeap is a min-heap of bucket heads ordered by value. Equal values
// compare as not-less, so the winner among equal heads depends on heap
// layout; Merge documents this as unspecified.
type mergeHeap[T Ints] []headEntry[T]

func (h mergeHeap[T]) Len() int { return len(h) }

func (h mergeHeap[T]) Less(i, j int) bool { return h[i].value < h[j].value }

func (h mergeHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap[T]) Push(x any) { *h = append(*h, x.(headEntry[T])) }
func (h *mergeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Merge combines pre-sorted buckets into one ascending slice using a k-way
// min-heap merge: the heap holds the head of every non-empty bucket, and
// popping the minimum pushes that bucket's next element. Cost is O(N log K)
// for N total elements in K buckets.
//
// Buckets must each be in ascending order. Empty buckets (and an empty
// bucket list) are fine. The relative order of equal values from different
// buckets is unspecified.
func Merge[T Ints](buckets [][]T) []T {
	total := 0
	for _, b := range buckets {
		total += len(b)
	}

	h := make(mergeHeap[T], 0, len(buckets))
	for b, bucket := range buckets {
		if len(bucket) > 0 {
			h = append(h, headEntry[T]{value: bucket[0], bucket: b, pos: 0})
		}
	}
	heap.Init(&h)

	out := make([]T, 0, total)
	for h.Len() > 0 {
		e := heap.Pop(&h).(headEntry[T])
		out = append(out, e.value)
		if next := e.pos + 1; next < len(buckets[e.bucket]) {
			heap.Push(&h, headEntry[T]{
				value:  buckets[e.bucket][next],
				bucket: e.bucket,
				pos:    next,
			})
		}
	}
	return out
}
