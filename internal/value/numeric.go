package value

import "golang.org/x/exp/constraints"

// clamp restricts v to [lo, hi], shared by every index/slice bound
// normalization that needs to pin an offset into a collection's valid
// range (indexing.go), across whichever integer width the call site
// happens to use.
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
