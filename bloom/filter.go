// Package bloom provides archive path deduplication using Bloom
// filters. Batch runs over mirrored site archives see the same page
// under several paths (directory copies, index variants); the filter
// keeps re-processing cheap to detect without holding every path in a
// map.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter tracks which archive paths a batch run has already
// claimed. A false Claim result may be a false positive and must be
// confirmed against an exact record before a path is treated as seen;
// false negatives do not occur.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected paths with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Claim marks a path as seen and reports whether this call was the
// first to claim it.
func (f *SeenFilter) Claim(path string) bool {
	if f.f.TestString(path) {
		return false
	}
	f.f.AddString(path)
	return true
}

// Seen reports whether the path might have been claimed already.
func (f *SeenFilter) Seen(path string) bool {
	return f.f.TestString(path)
}

// EstimatedCount returns the approximate number of claimed paths.
func (f *SeenFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
