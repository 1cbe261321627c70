package segtree

const (
	// heap addressing: children of node i are 2i and 2i+1
	rootNode = 1

	noDelta = 0.0
)

const (
	// one week of minute samples
	MaxPointCount = 7 * 1440
)
