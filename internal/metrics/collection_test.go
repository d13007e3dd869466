package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastedash/wastedash/internal/domain"
)

// hourlyChart builds a single-series chart with one point per stepHours.
func hourlyChart(name string, stepHours int, values []float64) domain.LineChart {
	dates := make([]string, len(values))
	for i := range values {
		hour := i * stepHours
		dates[i] = fmt.Sprintf("2025/06/%02d %02d:00", 2+hour/24, hour%24)
	}
	return domain.LineChart{
		Dates:  dates,
		Series: []domain.LineChartSeries{{Name: name, Data: values}},
	}
}

func TestDetectCollectionsDropToZero(t *testing.T) {
	events := DetectCollections(hourlyChart("鉄くず", 1, []float64{50, 50, 0, 0, 0, 0}))

	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].Index)
	assert.Equal(t, 1, events[0].SnapshotIndex)
	assert.Equal(t, 50.0, events[0].DropAmount)
	assert.True(t, events[0].DroppedToZero)
}

func TestDetectCollectionsLargeDrop(t *testing.T) {
	// 45 -> 10 loses 35 units and 77.8%, qualifying without reaching zero.
	events := DetectCollections(hourlyChart("鉄くず", 1, []float64{0, 0, 0, 0, 45, 10}))

	require.Len(t, events, 1)
	assert.Equal(t, 5, events[0].Index)
	assert.Equal(t, 4, events[0].SnapshotIndex)
	assert.Equal(t, 35.0, events[0].DropAmount)
	assert.False(t, events[0].DroppedToZero)
}

func TestDetectCollectionsBelowThresholds(t *testing.T) {
	// Small absolute drop (9 < 10) and small relative drop (20% < 25%).
	events := DetectCollections(hourlyChart("鉄くず", 1, []float64{9, 0, 100, 80}))
	assert.Empty(t, events)
}

func TestDetectCollectionsDedupWithinWindow(t *testing.T) {
	// Both drops qualify, but they are 3h apart: the drop-to-zero event
	// wins and the larger partial drop cannot displace it.
	events := DetectCollections(hourlyChart("鉄くず", 1, []float64{50, 50, 0, 0, 45, 10}))

	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].Index)
	assert.True(t, events[0].DroppedToZero)
}

func TestDetectCollectionsSeparateEventsOutsideWindow(t *testing.T) {
	// Same shape but 4h between points puts the drops 12h apart.
	events := DetectCollections(hourlyChart("鉄くず", 4, []float64{50, 50, 0, 0, 45, 10}))

	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].Index)
	assert.Equal(t, 5, events[1].Index)
	// Oldest first; callers reverse for latest-first display.
	assert.True(t, events[0].Time.Before(events[1].Time))
}

func TestDetectCollectionsZeroDropDisplacesLargerDrop(t *testing.T) {
	chart := domain.LineChart{
		Dates: []string{"2025/06/02 08:00", "2025/06/02 09:00", "2025/06/02 10:00"},
		Series: []domain.LineChartSeries{
			// Accepted first: a 60-unit partial drop.
			{Name: "複合品", Data: []float64{100, 40, 40}},
			// A smaller drop to zero an hour later displaces it.
			{Name: "空き瓶", Data: []float64{20, 20, 0}},
		},
	}
	events := DetectCollections(chart)

	require.Len(t, events, 1)
	assert.True(t, events[0].DroppedToZero)
	assert.Equal(t, 20.0, events[0].DropAmount)
	assert.Equal(t, 1, events[0].SeriesIndex)
}

func TestDetectCollectionsLargerDropDisplacesSmaller(t *testing.T) {
	chart := domain.LineChart{
		Dates: []string{"2025/06/02 08:00", "2025/06/02 09:00", "2025/06/02 10:00"},
		Series: []domain.LineChartSeries{
			{Name: "複合品", Data: []float64{40, 25, 25}},
			{Name: "鉄くず", Data: []float64{100, 100, 20}},
		},
	}
	events := DetectCollections(chart)

	require.Len(t, events, 1)
	assert.Equal(t, 80.0, events[0].DropAmount)
}

func TestDetectCollectionsPoolsSeries(t *testing.T) {
	chart := domain.LineChart{
		Dates: []string{"2025/06/02 08:00", "2025/06/02 09:00", "2025/06/03 08:00", "2025/06/03 09:00"},
		Series: []domain.LineChartSeries{
			{Name: "再生紙", Data: []float64{30, 0, 30, 30}},
			{Name: "可燃物", Data: []float64{10, 10, 50, 0}},
		},
	}
	events := DetectCollections(chart)

	require.Len(t, events, 2)
	assert.Equal(t, 0, events[0].SeriesIndex)
	assert.Equal(t, 1, events[1].SeriesIndex)
}
