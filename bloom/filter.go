// Package bloom provides approximate set membership for page titles using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records titles seen during a sync.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected titles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a title.
func (f *Filter) Add(title string) {
	f.f.AddString(title)
}

// Test returns true if the title might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(title string) bool {
	return f.f.TestString(title)
}

// EstimatedCount returns the approximate number of distinct titles recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
