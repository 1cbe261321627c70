package segtree

import "github.com/uyouii/timeseries-rangetree/model"

// betterFunc reports whether a should replace b as the winner of a range.
// It must be strict so that equal y keeps the left point.
type betterFunc func(a, b model.Point) bool

// engine is a lazily propagated segment tree over a fixed point sequence,
// stored in flat arrays with heap addressing. The comparator decides whether
// it tracks the minimum or the maximum y.
//
// Queries are not read-only: visiting a node folds its pending delta into
// the stored point and hands it down to the children.
type engine struct {
	n      int
	tree   []model.Point
	filled []bool
	lazy   []float64
	better betterFunc
}

func newEngine(points []model.Point, cmp betterFunc) *engine {
	e := &engine{
		n:      len(points),
		better: cmp,
	}
	if e.n == 0 {
		return e
	}

	size := 2 * nextPowerOfTwo(e.n)
	e.tree = make([]model.Point, size)
	e.filled = make([]bool, size)
	e.lazy = make([]float64, size)
	e.build(points, rootNode, 0, e.n-1)
	return e
}

func (e *engine) build(points []model.Point, node, start, end int) {
	if start == end {
		e.tree[node] = points[start]
		e.filled[node] = true
		return
	}
	mid := start + (end-start)/2
	e.build(points, 2*node, start, mid)
	e.build(points, 2*node+1, mid+1, end)
	e.tree[node], e.filled[node] = e.pick(e.tree[2*node], e.filled[2*node], e.tree[2*node+1], e.filled[2*node+1])
}

// pick combines two optional winners. An absent side loses; on a tie the
// first argument stays.
func (e *engine) pick(a model.Point, aok bool, b model.Point, bok bool) (model.Point, bool) {
	if !aok {
		return b, bok
	}
	if !bok {
		return a, true
	}
	if e.better(b, a) {
		return b, true
	}
	return a, true
}

// push materializes the pending delta of node.
func (e *engine) push(node, start, end int) {
	delta := e.lazy[node]
	if delta == noDelta {
		return
	}
	if e.filled[node] {
		e.tree[node] = e.tree[node].WithDelta(delta)
	}
	if start != end {
		e.lazy[2*node] += delta
		e.lazy[2*node+1] += delta
	}
	e.lazy[node] = noDelta
}

func (e *engine) query(left, right int) (model.Point, bool) {
	if e.n == 0 {
		return model.Point{}, false
	}
	return e.queryNode(rootNode, 0, e.n-1, left, right)
}

func (e *engine) queryNode(node, start, end, left, right int) (model.Point, bool) {
	e.push(node, start, end)

	if start > right || end < left {
		return model.Point{}, false
	}
	if start >= left && end <= right {
		return e.tree[node], e.filled[node]
	}

	mid := start + (end-start)/2
	lp, lok := e.queryNode(2*node, start, mid, left, right)
	rp, rok := e.queryNode(2*node+1, mid+1, end, left, right)
	return e.pick(lp, lok, rp, rok)
}

func (e *engine) update(left, right int, delta float64) {
	if e.n == 0 {
		return
	}
	e.updateNode(rootNode, 0, e.n-1, left, right, delta)
}

func (e *engine) updateNode(node, start, end, left, right int, delta float64) {
	e.push(node, start, end)

	if start > right || end < left {
		return
	}
	if start >= left && end <= right {
		if e.filled[node] {
			e.tree[node] = e.tree[node].WithDelta(delta)
		}
		if start != end {
			e.lazy[2*node] += delta
			e.lazy[2*node+1] += delta
		}
		return
	}

	mid := start + (end-start)/2
	e.updateNode(2*node, start, mid, left, right, delta)
	e.updateNode(2*node+1, mid+1, end, left, right, delta)
	e.tree[node], e.filled[node] = e.pick(e.tree[2*node], e.filled[2*node], e.tree[2*node+1], e.filled[2*node+1])
}
