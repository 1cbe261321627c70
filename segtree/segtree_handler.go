package segtree

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/uyouii/timeseries-rangetree/model"
	"github.com/uyouii/timeseries-rangetree/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// the range handler sits between a chart and the tree.
// the tree has a fixed size, so every append rebuilds it from the current
// points (shifts already applied) plus the new ones.
// the handler owns ordering: new values are sorted by time and only values
// after the last appended time are accepted, so the tree input stays sorted.
// like the tree, the handler is not safe for concurrent use.

type RangeHandler struct {
	tree               *DualSegmentTree
	timeSeriesKey      string
	lastAppendDataTime time.Time // time of the newest appended value
	maxPointCount      int
}

func NewRangeHandler(ctx context.Context, timeSeriesKey string) *RangeHandler {
	logger := utils.GetLogger(ctx)
	logger.Info("new range handler", zap.String("timeSeriesKey", timeSeriesKey))

	return &RangeHandler{
		tree:               NewDualSegmentTree(nil),
		timeSeriesKey:      timeSeriesKey,
		lastAppendDataTime: time.Time{},
		maxPointCount:      getMaxPointCount(),
	}
}

func (m *RangeHandler) Size() int {
	return m.tree.Len()
}

func (m *RangeHandler) Points() []model.Point {
	return m.tree.Points()
}

func (m *RangeHandler) LastAppendDataTime() time.Time {
	return m.lastAppendDataTime
}

// AppendTimeSeriesData adds the values of timeSeries newer than the last
// appended one and returns how many were added.
func (m *RangeHandler) AppendTimeSeriesData(ctx context.Context, timeSeries *model.TimeSeries) int {
	logger := utils.GetLogger(ctx).With(zap.String("timeSeriesKey", m.timeSeriesKey))

	if timeSeries.IsEmpty() {
		logger.Info("empty time series, skip append")
		return 0
	}

	values := make([]model.TimeValue, len(timeSeries.Values))
	copy(values, timeSeries.Values)
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Before(values[j])
	})

	// 1. drop values already appended or not plottable
	newValues := make([]model.TimeValue, 0, len(values))
	for _, timeValue := range values {
		if !m.lastAppendDataTime.IsZero() && !timeValue.Time.After(m.lastAppendDataTime) {
			continue
		}
		if math.IsNaN(timeValue.Value) {
			continue
		}
		newValues = append(newValues, timeValue)
	}

	if len(newValues) == 0 {
		logger.Info("no new value need append")
		return 0
	}

	// 2. merge with the current points and keep the newest ones
	points := append(m.tree.Points(), PointsFromTimeValues(newValues)...)
	if len(points) > m.maxPointCount {
		logger.Info("too many points, drop the oldest",
			zap.Int("pointCnt", len(points)), zap.Int("limitCount", m.maxPointCount))
		points = points[len(points)-m.maxPointCount:]
	}

	// 3. rebuild
	m.rebuild(ctx, points)
	m.lastAppendDataTime = newValues[len(newValues)-1].Time

	logger.Info(fmt.Sprintf("append %v values", len(newValues)))
	return len(newValues)
}

func (m *RangeHandler) rebuild(ctx context.Context, points []model.Point) {
	logger := utils.GetLogger(ctx)

	m.tree = NewDualSegmentTree(points)

	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	if len(ys) > 0 {
		logger.Info("rebuild range tree", zap.String("timeSeriesKey", m.timeSeriesKey),
			zap.Int("pointCnt", len(ys)), zap.Float64("min", floats.Min(ys)), zap.Float64("max", floats.Max(ys)))
	}
}

// VisibleRange returns the lowest and highest point between from and to,
// the y-axis bounds of a chart showing that window.
func (m *RangeHandler) VisibleRange(ctx context.Context, from, to time.Time) (yRange model.YRange, found bool) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("VisibleRange recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("timeSeriesKey", m.timeSeriesKey))
			yRange, found = model.YRange{}, false
		}
	}()

	yRange, found = m.tree.QueryRange(utils.TimeToX(from), utils.TimeToX(to))
	if !found {
		logger.Debug("no point in range", zap.Time("from", from), zap.Time("to", to))
	}
	return yRange, found
}

// Shift adds delta to every value between from and to.
func (m *RangeHandler) Shift(ctx context.Context, from, to time.Time, delta float64) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("Shift recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("timeSeriesKey", m.timeSeriesKey))
		}
	}()

	m.tree.Update(utils.TimeToX(from), utils.TimeToX(to), delta)
	logger.Info("shift values", zap.Time("from", from), zap.Time("to", to), zap.Float64("delta", delta))
}
