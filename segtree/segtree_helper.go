package segtree

import (
	"context"
	"math"
	"sort"

	"github.com/uyouii/timeseries-rangetree/common"
	"github.com/uyouii/timeseries-rangetree/model"
	"github.com/uyouii/timeseries-rangetree/utils"
	"go.uber.org/zap"
)

// PointsFromTimeValues converts time values to chart points, dropping NaN
// values. The order of values is kept.
func PointsFromTimeValues(values []model.TimeValue) []model.Point {
	res := make([]model.Point, 0, len(values))
	for _, value := range values {
		if math.IsNaN(value.Value) {
			continue
		}
		res = append(res, model.Point{
			X: utils.TimeToX(value.Time),
			Y: value.Value,
		})
	}
	return res
}

// NewDualSegmentTreeFromTimeSeries builds a tree over timeSeries. Unlike
// NewDualSegmentTree it checks that the values are time ordered.
func NewDualSegmentTreeFromTimeSeries(ctx context.Context,
	timeSeries *model.TimeSeries) (*DualSegmentTree, error) {
	logger := utils.GetLogger(ctx)

	if timeSeries == nil {
		logger.Error("time series is nil")
		return nil, common.ErrorInvalidValue
	}

	values := timeSeries.Values
	sorted := sort.SliceIsSorted(values, func(i, j int) bool {
		return values[i].Time.Before(values[j].Time)
	})
	if !sorted {
		logger.Error("time series values not sorted", zap.String("timeSeries", timeSeries.DebugString()))
		return nil, common.ErrorUnsortedPoints
	}

	points := PointsFromTimeValues(values)
	if dropped := len(values) - len(points); dropped > 0 {
		logger.Info("drop NaN values", zap.Int("dropped", dropped))
	}

	return NewDualSegmentTree(points), nil
}
