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

// Ints is the element type constraint for all sort functions in this
// package. Fractal sort is defined over integers only; the constraint exists
// so callers are not locked to a single width, not to generalize the
// algorithm to arbitrary comparable types.
type Ints interface {
	~int | ~int32 | ~int64
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Ints](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
