package model

// Point is one chart sample. X is the ordering key, Y the value being
// extremized or shifted.
type Point struct {
	X float64
	Y float64
}

// WithDelta returns a copy of p with delta added to Y.
func (p Point) WithDelta(delta float64) Point {
	return Point{X: p.X, Y: p.Y + delta}
}

// YRange holds both extrema of one x-interval.
type YRange struct {
	Min Point
	Max Point
}

func (r YRange) Span() float64 {
	return r.Max.Y - r.Min.Y
}
