package service

import (
	"sort"

	"github.com/wastedash/wastedash/internal/domain"
	"github.com/wastedash/wastedash/internal/metrics"
	"github.com/wastedash/wastedash/internal/repository"
)

// Preferred display order of the known waste series. Names outside this
// list sort after it, alphabetically with Japanese collation.
var wasteSeriesOrder = []string{
	"再生紙",
	"新聞紙・雑誌",
	"空き瓶",
	"複合品",
	"樹脂・ゴムくず",
	"鉄くず",
	"スプレー缶",
	"可燃物",
	"その他",
}

type DetailService struct {
	repos *repository.Repos
}

// WasteDetail builds the detail view of one waste category. When
// wasteName is non-empty the calendar is recomputed from that series of
// the line chart instead of the stored heatmap records.
func (s *DetailService) WasteDetail(category, wasteName string) (*domain.WasteDetailData, error) {
	records, err := s.repos.Detail.WasteDetail()
	if err != nil {
		return nil, err
	}

	order := metrics.NewNameOrder(wasteSeriesOrder)

	var points []metrics.SeriesPoint
	for _, rec := range records.LineChartRecords {
		if rec.CategoryID != category {
			continue
		}
		points = append(points, metrics.SeriesPoint{
			Name:      rec.WasteName,
			Timestamp: rec.RecordedAt,
			Value:     rec.Value,
		})
	}
	lineChart := metrics.AlignSeries(points)
	metrics.OrderSeries(&lineChart, order)

	gauges := make([]domain.GaugeView, 0)
	for _, g := range records.GaugeSnapshots {
		if g.CategoryID != category {
			continue
		}
		gauges = append(gauges, domain.GaugeView{Name: g.WasteName, Percentage: g.Percentage})
	}
	sort.SliceStable(gauges, func(i, j int) bool {
		return order.Less(gauges[i].Name, gauges[j].Name)
	})

	var calendar []domain.CalendarEntry
	if wasteName != "" {
		calendar = metrics.DailyRange(lineChart, wasteName)
	} else {
		for _, c := range records.CalendarHeatmap {
			if c.CategoryID != category {
				continue
			}
			calendar = append(calendar, domain.CalendarEntry{
				Date:      c.Date,
				DayOfWeek: c.DayOfWeek,
				Value:     c.Value,
			})
		}
		sort.SliceStable(calendar, func(i, j int) bool {
			return calendar[i].Date < calendar[j].Date
		})
	}
	if calendar == nil {
		calendar = make([]domain.CalendarEntry, 0)
	}

	history := make([]domain.CollectionHistoryEntry, 0)
	for _, h := range records.CollectionHistory {
		if h.CategoryID != category {
			continue
		}
		history = append(history, domain.CollectionHistoryEntry{Item: h.Item, Rate: h.Rate})
	}

	events := metrics.DetectCollections(lineChart)
	eventViews := make([]domain.CollectionEventView, 0, len(events))
	for i, ev := range events {
		eventViews = append(eventViews, domain.CollectionEventView{
			Sequence:      i + 1,
			Timestamp:     ev.Timestamp,
			Index:         ev.Index,
			SnapshotIndex: ev.SnapshotIndex,
			DropAmount:    ev.DropAmount,
			DroppedToZero: ev.DroppedToZero,
		})
	}

	return &domain.WasteDetailData{
		Category:          category,
		LineChart:         lineChart,
		Gauges:            gauges,
		Calendar:          calendar,
		CollectionHistory: history,
		CollectionEvents:  eventViews,
	}, nil
}

func (s *DetailService) ProductDetail(product string) (*domain.ProductDetailData, error) {
	data, err := s.repos.Detail.ProductDetail(product)
	if err != nil {
		return nil, err
	}
	data.Product = product
	return data, nil
}
