package metrics

import (
	"sort"
	"time"

	"github.com/wastedash/wastedash/internal/domain"
)

// Thresholds of the collection heuristic: a bin is considered emptied
// when its series drops to zero from at least minDropAmount, or loses at
// least a quarter of its value and at least minDropAmount in one step.
const (
	minDropAmount     = 10.0
	minDropPercentage = 25.0
	dedupWindow       = 6 * time.Hour
)

// CollectionEvent is a detected emptying of a waste receptacle: a
// significant downward step between two adjacent points of a series.
// SnapshotIndex is the pre-drop point, used to report the value at the
// time of collection.
type CollectionEvent struct {
	Timestamp     string
	Time          time.Time
	Index         int
	SnapshotIndex int
	SeriesIndex   int
	DropAmount    float64
	DroppedToZero bool
}

// DetectCollections scans every series of an aligned matrix for
// collection events and deduplicates events closer than six hours to one
// another. The result is ordered oldest first.
//
// Deduplication is a greedy single pass over candidates in time order: a
// candidate near an already accepted event displaces it only when the
// candidate dropped to zero and the accepted one did not, or when the
// candidate's drop is strictly larger and the accepted one is not a
// drop to zero. Drop-to-zero events are never displaced by larger
// partial drops.
func DetectCollections(chart domain.LineChart) []CollectionEvent {
	var candidates []CollectionEvent
	for si, s := range chart.Series {
		n := len(s.Data)
		if n > len(chart.Dates) {
			n = len(chart.Dates)
		}
		for i := 1; i < n; i++ {
			prev, curr := s.Data[i-1], s.Data[i]
			if prev <= 0 || curr >= prev {
				continue
			}
			dropAmount := prev - curr
			dropPct := dropAmount / prev * 100
			droppedToZero := curr == 0 && prev >= minDropAmount
			largeDrop := dropPct >= minDropPercentage && dropAmount >= minDropAmount
			if !droppedToZero && !largeDrop {
				continue
			}
			t, err := ParseChartTimestamp(chart.Dates[i])
			if err != nil {
				// A label that is not a chart timestamp cannot take part
				// in the dedup window; the candidate is unusable.
				continue
			}
			candidates = append(candidates, CollectionEvent{
				Timestamp:     chart.Dates[i],
				Time:          t,
				Index:         i,
				SnapshotIndex: i - 1,
				SeriesIndex:   si,
				DropAmount:    dropAmount,
				DroppedToZero: droppedToZero,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Time.Before(candidates[j].Time)
	})

	var accepted []CollectionEvent
	for _, ev := range candidates {
		at := closeEventIndex(accepted, ev.Time)
		if at < 0 {
			accepted = append(accepted, ev)
			continue
		}
		existing := accepted[at]
		if existing.DroppedToZero {
			continue
		}
		if ev.DroppedToZero || ev.DropAmount > existing.DropAmount {
			accepted[at] = ev
		}
	}
	return accepted
}

func closeEventIndex(events []CollectionEvent, t time.Time) int {
	for i, ev := range events {
		if absDuration(t.Sub(ev.Time)) < dedupWindow {
			return i
		}
	}
	return -1
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
