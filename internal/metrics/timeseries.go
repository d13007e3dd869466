package metrics

import (
	"sort"
	"time"

	"github.com/wastedash/wastedash/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SeriesPoint is one named sample on a shared chart axis. Timestamps use
// the fixed-width "YYYY/MM/DD HH:mm" chart format so that lexicographic
// order equals chronological order.
type SeriesPoint struct {
	Name      string
	Timestamp string
	Value     float64
}

const chartTimeLayout = "2006/01/02 15:04"

// ParseChartTimestamp parses a chart axis label, tolerating a missing
// time-of-day part.
func ParseChartTimestamp(ts string) (time.Time, error) {
	if t, err := time.Parse(chartTimeLayout, ts); err == nil {
		return t, nil
	}
	return time.Parse("2006/01/02", ts)
}

// AlignSeries merges named samples taken at possibly differing timestamps
// into a single dense matrix: one date axis (the distinct timestamps of
// all points, ascending) and one zero-filled row per series name, in
// first-appearance order. The axis is built from the points themselves,
// so every point lands on it by construction.
func AlignSeries(points []SeriesPoint) domain.LineChart {
	sorted := make([]SeriesPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	dates := make([]string, 0)
	dateIndex := make(map[string]int)
	for _, p := range sorted {
		if _, ok := dateIndex[p.Timestamp]; !ok {
			dateIndex[p.Timestamp] = len(dates)
			dates = append(dates, p.Timestamp)
		}
	}

	var names []string
	rows := make(map[string][]float64)
	for _, p := range sorted {
		row, ok := rows[p.Name]
		if !ok {
			row = make([]float64, len(dates))
			rows[p.Name] = row
			names = append(names, p.Name)
		}
		row[dateIndex[p.Timestamp]] = p.Value
	}

	series := make([]domain.LineChartSeries, 0, len(names))
	for _, name := range names {
		series = append(series, domain.LineChartSeries{Name: name, Data: rows[name]})
	}
	return domain.LineChart{Dates: dates, Series: series}
}

// NameOrder ranks series names by a fixed preferred display list, with
// unknown names after all known ones in locale-aware alphabetical order.
type NameOrder struct {
	preferred map[string]int
	col       *collate.Collator
}

func NewNameOrder(preferred []string) *NameOrder {
	idx := make(map[string]int, len(preferred))
	for i, name := range preferred {
		idx[name] = i
	}
	return &NameOrder{preferred: idx, col: collate.New(language.Japanese)}
}

func (o *NameOrder) Compare(a, b string) int {
	ia, okA := o.preferred[a]
	ib, okB := o.preferred[b]
	switch {
	case okA && okB:
		return ia - ib
	case okA:
		return -1
	case okB:
		return 1
	}
	return o.col.CompareString(a, b)
}

func (o *NameOrder) Less(a, b string) bool { return o.Compare(a, b) < 0 }

// OrderSeries sorts the matrix rows in place by display name order.
func OrderSeries(chart *domain.LineChart, order *NameOrder) {
	sort.SliceStable(chart.Series, func(i, j int) bool {
		return order.Less(chart.Series[i].Name, chart.Series[j].Name)
	})
}

// SortNames returns names sorted by the same display order.
func (o *NameOrder) SortNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.SliceStable(out, func(i, j int) bool { return o.Less(out[i], out[j]) })
	return out
}
