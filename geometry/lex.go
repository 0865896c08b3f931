package geometry

// CumSizes returns prefix products of sizes: out[0] = 1 and
// out[k] = sizes[0]*...*sizes[k-1]. The last entry is the site count.
// The first axis varies fastest in the lexicographic order built on it.
func CumSizes(sizes []int) []int {
	cum := make([]int, len(sizes)+1)
	cum[0] = 1
	for i, s := range sizes {
		cum[i+1] = cum[i] * s
	}

	return cum
}

// LexCoordToIdx maps coordinates to their lexicographic index.
func LexCoordToIdx(xs, cum []int) int {
	idx := 0
	for i, x := range xs {
		idx += x * cum[i]
	}

	return idx
}

// LexIdxToCoord is the inverse of LexCoordToIdx for 0 <= idx < Π sizes.
func LexIdxToCoord(idx int, sizes []int) []int {
	xs := make([]int, len(sizes))
	for i, s := range sizes {
		xs[i] = idx % s
		idx /= s
	}

	return xs
}

// CoordParity returns the checkerboard colour (sum of coordinates mod 2).
func CoordParity(xs []int) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}

	return Mod(sum, 2)
}

// LexCoordToEOIdx returns the parity of xs and its half index, that is the
// lexicographic index divided by two.
func LexCoordToEOIdx(xs, cum []int) (eo, half int) {
	return CoordParity(xs), LexCoordToIdx(xs, cum) / 2
}

// LexEOIdxToCoord inverts LexCoordToEOIdx.
//
// Of the two lexicographic indices 2*half and 2*half+1 exactly one has the
// requested parity: stepping along the fastest axis flips parity, and a carry
// out of it only happens across odd-sized axes, which flips it as well.
func LexEOIdxToCoord(eo, half int, sizes []int) []int {
	xs := LexIdxToCoord(2*half, sizes)
	if CoordParity(xs) == eo {
		return xs
	}

	return LexIdxToCoord(2*half+1, sizes)
}

// ParityCounts returns how many of the Π sizes sites have the same parity as
// the origin and how many have the opposite one. The first count is
// ⌈N/2⌉ and never smaller than the second.
func ParityCounts(sizes []int) (same, opposite int) {
	n := CumSizes(sizes)[len(sizes)]
	opposite = n / 2

	return n - opposite, opposite
}
