// Package bloom provides probabilistic membership tracking for crawl
// frontiers.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks which URLs a crawl has already seen.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL may have been seen. False positives are
// possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
