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
	"errors"
	"math/rand"
	"time"
)

// Default tuning values. See Config for what each one controls.
const (
	// DefaultSmallThreshold: ranges this size or smaller skip partitioning
	// and go straight to the triple fix pass.
	DefaultSmallThreshold = 12

	// DefaultSampleFactor: pivot sample size as a multiple of the pivot
	// count.
	DefaultSampleFactor = 2.0

	// DefaultOutlierFrac: fraction of the sorted sample discarded from each
	// end before pivots are picked.
	DefaultOutlierFrac = 0.15
)

// ErrInvalidRange is returned by SortRange when a range index is negative or
// past the end of the slice. A reversed range (start > end) is not an error;
// it denotes an empty range and sorting it is a no-op.
var ErrInvalidRange = errors.New("fractal: range index out of bounds")

// Config holds the tuning knobs of the sort. The zero value of any field
// means "use the default", so Config{} behaves like DefaultConfig().
type Config struct {
	// SmallThreshold is the largest range size sorted directly with the
	// bidirectional fix pass instead of being partitioned.
	SmallThreshold int

	// SampleFactor scales the pivot sample: a range with pivotCount pivots
	// draws pivotCount*SampleFactor random elements (at least pivotCount).
	SampleFactor float64

	// OutlierFrac is the fraction of the sorted sample trimmed from each
	// end before pivot selection, provided enough samples remain.
	OutlierFrac float64

	// Rand supplies the randomness for pivot sampling. Fixing the seed makes
	// the sort deterministic, which tests rely on. When nil, the Sorter
	// creates a source seeded from the current time. A *rand.Rand is not
	// safe for concurrent use; SortParallel derives an independent source
	// per bucket from this one.
	Rand *rand.Rand
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		SmallThreshold: DefaultSmallThreshold,
		SampleFactor:   DefaultSampleFactor,
		OutlierFrac:    DefaultOutlierFrac,
	}
}

// withDefaults fills zero-valued fields. Negative values are treated as
// zero: there is no meaningful negative threshold or fraction.
func (c Config) withDefaults() Config {
	if c.SmallThreshold <= 0 {
		c.SmallThreshold = DefaultSmallThreshold
	}
	if c.SampleFactor <= 0 {
		c.SampleFactor = DefaultSampleFactor
	}
	if c.OutlierFrac <= 0 {
		c.OutlierFrac = DefaultOutlierFrac
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}
