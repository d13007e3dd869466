package metrics

import (
	"sort"
	"strings"

	"github.com/wastedash/wastedash/internal/domain"
)

// DailyRange collapses one series of an aligned matrix into calendar
// days. Each day's value is the spread between the day's highest and
// lowest sample, which approximates the amount accumulated (and removed)
// that day. DayOfWeek is Monday-based (Monday = 0). Days come out in
// ascending date order.
func DailyRange(chart domain.LineChart, seriesName string) []domain.CalendarEntry {
	var series *domain.LineChartSeries
	for i := range chart.Series {
		if chart.Series[i].Name == seriesName {
			series = &chart.Series[i]
			break
		}
	}
	if series == nil {
		return nil
	}

	type dayStat struct {
		min, max  float64
		dayOfWeek int
	}
	days := make(map[string]*dayStat)

	for idx, ts := range chart.Dates {
		if idx >= len(series.Data) {
			break
		}
		t, err := ParseChartTimestamp(ts)
		if err != nil {
			continue
		}
		datePart, _, _ := strings.Cut(ts, " ")
		value := series.Data[idx]
		stat, ok := days[datePart]
		if !ok {
			days[datePart] = &dayStat{
				min:       value,
				max:       value,
				dayOfWeek: (int(t.Weekday()) + 6) % 7,
			}
			continue
		}
		if value < stat.min {
			stat.min = value
		}
		if value > stat.max {
			stat.max = value
		}
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.CalendarEntry, 0, len(dates))
	for _, d := range dates {
		stat := days[d]
		out = append(out, domain.CalendarEntry{
			Date:      d,
			DayOfWeek: stat.dayOfWeek,
			Value:     stat.max - stat.min,
		})
	}
	return out
}
