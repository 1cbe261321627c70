package segtree

import "github.com/uyouii/timeseries-rangetree/model"

// DualSegmentTree answers min-y and max-y queries over an x-interval and
// shifts y-values over an x-interval, all in O(log n).
//
// The points passed to NewDualSegmentTree must be sorted by X ascending;
// this is not checked, and unsorted input gives wrong answers.
//
// A DualSegmentTree is not safe for concurrent use. Queries write pending
// deltas back into the tree, so even two concurrent queries race.
type DualSegmentTree struct {
	resolver *Resolver
	minTree  *engine
	maxTree  *engine
}

func NewDualSegmentTree(points []model.Point) *DualSegmentTree {
	return &DualSegmentTree{
		resolver: NewResolver(points),
		minTree:  newEngine(points, lessY),
		maxTree:  newEngine(points, greaterY),
	}
}

func (t *DualSegmentTree) Len() int {
	return t.resolver.Len()
}

// IndexRange resolves [fromX, toX] to array indices. ok is false when the
// tree is empty, the interval is reversed or NaN, or it does not touch the
// stored x span at all. Bounds inside the span that match no point snap
// to the nearest one.
func (t *DualSegmentTree) IndexRange(fromX, toX float64) (left, right int, ok bool) {
	n := t.resolver.Len()
	if n == 0 || !(fromX <= toX) {
		return 0, 0, false
	}
	if toX < t.resolver.first() || fromX > t.resolver.last() {
		return 0, 0, false
	}

	left = t.resolver.Resolve(fromX, 0)
	right = t.resolver.Resolve(toX, n-1)
	if left > right {
		return 0, 0, false
	}
	return left, right, true
}

// QueryMinInRange returns the point with the smallest y in [fromX, toX].
// Equal y values resolve to the leftmost point.
func (t *DualSegmentTree) QueryMinInRange(fromX, toX float64) (model.Point, bool) {
	left, right, ok := t.IndexRange(fromX, toX)
	if !ok {
		return model.Point{}, false
	}
	return t.minTree.query(left, right)
}

// QueryMaxInRange returns the point with the largest y in [fromX, toX].
// Equal y values resolve to the leftmost point.
func (t *DualSegmentTree) QueryMaxInRange(fromX, toX float64) (model.Point, bool) {
	left, right, ok := t.IndexRange(fromX, toX)
	if !ok {
		return model.Point{}, false
	}
	return t.maxTree.query(left, right)
}

// QueryRange returns both extrema of [fromX, toX].
func (t *DualSegmentTree) QueryRange(fromX, toX float64) (model.YRange, bool) {
	left, right, ok := t.IndexRange(fromX, toX)
	if !ok {
		return model.YRange{}, false
	}
	minPoint, minOk := t.minTree.query(left, right)
	maxPoint, maxOk := t.maxTree.query(left, right)
	if !minOk || !maxOk {
		return model.YRange{}, false
	}
	return model.YRange{Min: minPoint, Max: maxPoint}, true
}

// Update adds delta to the y of every point in [fromX, toX].
func (t *DualSegmentTree) Update(fromX, toX, delta float64) {
	left, right, ok := t.IndexRange(fromX, toX)
	if !ok {
		return
	}
	t.minTree.update(left, right, delta)
	t.maxTree.update(left, right, delta)
}

// Points returns the current points, with every update applied, in index
// order. It costs O(n log n).
func (t *DualSegmentTree) Points() []model.Point {
	res := make([]model.Point, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		p, ok := t.minTree.query(i, i)
		if !ok {
			continue
		}
		res = append(res, p)
	}
	return res
}
