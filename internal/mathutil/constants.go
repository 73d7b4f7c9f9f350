package mathutil

import "github.com/chewxy/math32"

// Epsilon is the tolerance used by every approximate comparison in the kernel.
const Epsilon float32 = 0.0001

// Equal32 reports whether a and b differ by less than Epsilon.
func Equal32(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

// clampIndex pins i into [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// sign returns the cofactor sign for (row, col).
func sign(row, col int) float32 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
