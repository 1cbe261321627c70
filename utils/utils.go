package utils

import (
	"math"
	"time"
)

// TimeToX maps t to a chart x coordinate: unix seconds with nanosecond fraction.
func TimeToX(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func XToTime(x float64) time.Time {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return time.Time{}
	}
	sec, frac := math.Modf(x)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9)))
}
