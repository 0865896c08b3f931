package geometry

// FloorDiv divides rounding towards negative infinity, so that
// FloorDiv(x, y)*y + Mod(x, y) == x for every x and y > 0.
func FloorDiv(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}

	return q
}

// Mod returns the remainder of FloorDiv; for y > 0 it is in [0, y).
func Mod(x, y int) int {
	r := x % y
	if r != 0 && ((r < 0) != (y < 0)) {
		r += y
	}

	return r
}

// CeilDiv divides rounding towards positive infinity (x >= 0, y > 0).
func CeilDiv(x, y int) int {
	return (x + y - 1) / y
}
