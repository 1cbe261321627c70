package common

import "errors"

var (
	ErrorInvalidValue   = errors.New("invalid value")
	ErrorUnsortedPoints = errors.New("points are not sorted by x")
)
