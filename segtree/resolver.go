package segtree

import (
	"math"
	"sort"

	"github.com/uyouii/timeseries-rangetree/model"
)

// Resolver maps an x coordinate to an index of the point sequence.
// Exact matches come from a lookup table; anything else snaps to the
// nearest stored x.
type Resolver struct {
	xs    []float64
	index map[float64]int
}

func NewResolver(points []model.Point) *Resolver {
	r := &Resolver{
		xs:    make([]float64, len(points)),
		index: make(map[float64]int, len(points)),
	}
	for i, p := range points {
		r.xs[i] = p.X
		// duplicated x: the last index wins
		r.index[p.X] = i
	}
	return r
}

func (r *Resolver) Len() int {
	return len(r.xs)
}

func (r *Resolver) ExactIndex(x float64) (int, bool) {
	i, ok := r.index[x]
	return i, ok
}

// NearestIndex returns the index whose x is closest to x. Values outside
// the stored span clamp to the first or last index, and a tie between two
// neighbours goes to the left one. ok is false for an empty sequence or a
// NaN x.
func (r *Resolver) NearestIndex(x float64) (int, bool) {
	n := len(r.xs)
	if n == 0 || math.IsNaN(x) {
		return 0, false
	}
	if x <= r.xs[0] {
		return 0, true
	}
	if x >= r.xs[n-1] {
		return n - 1, true
	}

	i := sort.SearchFloat64s(r.xs, x)
	// only reachable with unsorted input
	if i < 1 {
		i = 1
	} else if i > n-1 {
		i = n - 1
	}

	if r.xs[i]-x < x-r.xs[i-1] {
		return i, true
	}
	return i - 1, true
}

// Resolve tries an exact match, then the nearest neighbour, and falls back
// to defaultIndex when neither yields an index.
func (r *Resolver) Resolve(x float64, defaultIndex int) int {
	if i, ok := r.ExactIndex(x); ok {
		return i
	}
	if i, ok := r.NearestIndex(x); ok {
		return i
	}
	return defaultIndex
}

func (r *Resolver) first() float64 {
	return r.xs[0]
}

func (r *Resolver) last() float64 {
	return r.xs[len(r.xs)-1]
}
