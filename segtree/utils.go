package segtree

import (
	"math/bits"

	"github.com/uyouii/timeseries-rangetree/model"
)

func getMaxPointCount() int {
	return MaxPointCount
}

// nextPowerOfTwo returns the smallest power of two >= n, for n >= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func lessY(a, b model.Point) bool {
	return a.Y < b.Y
}

func greaterY(a, b model.Point) bool {
	return a.Y > b.Y
}
