package geom

// Alignment utilities for tiler slot arithmetic. Bands and alignments are
// always powers of two, so alignment is mask arithmetic.

// AlignUp returns n rounded up to the next multiple of b.
// b must be a power of two. Negative n rounds toward zero, which the
// co-pack table compatibility check relies on.
//
// Example:
//
//	AlignUp(5, 4)  = 8
//	AlignUp(8, 4)  = 8
//	AlignUp(-2, 4) = 0
func AlignUp(n, b int) int {
	return (n + b - 1) &^ (b - 1)
}

// AlignDown returns n rounded down to the previous multiple of b.
// b must be a power of two.
func AlignDown(n, b int) int {
	return n &^ (b - 1)
}

// CeilDiv returns n divided by d, rounded up. n and d must be positive.
//
// Example:
//
//	CeilDiv(176, 64) = 3
//	CeilDiv(128, 64) = 2
func CeilDiv(n, d int) int {
	return (n + d - 1) / d
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
