package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wastedash/wastedash/internal/domain"
)

// LineChartRecord is one raw time-series sample of the waste detail data.
type LineChartRecord struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	WasteCode  string  `json:"waste_code"`
	WasteName  string  `json:"waste_name"`
	RecordedAt string  `json:"recorded_at"`
	Value      float64 `json:"value"`
}

type GaugeSnapshot struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	WasteCode  string  `json:"waste_code"`
	WasteName  string  `json:"waste_name"`
	Percentage float64 `json:"percentage"`
	RecordedAt string  `json:"recorded_at"`
}

type CalendarRecord struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	Date       string  `json:"date"`
	DayOfWeek  int     `json:"day_of_week"`
	Value      float64 `json:"value"`
}

type CollectionHistoryRecord struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	Item       string  `json:"item"`
	Rate       float64 `json:"rate"`
}

type WasteDetailRecords struct {
	LineChartRecords  []LineChartRecord         `json:"line_chart_records"`
	GaugeSnapshots    []GaugeSnapshot           `json:"gauge_snapshots"`
	CalendarHeatmap   []CalendarRecord          `json:"calendar_heatmap"`
	CollectionHistory []CollectionHistoryRecord `json:"collection_history"`
}

// DetailStore reads the pre-aggregated detail data files from the data
// directory.
type DetailStore struct {
	dir string
}

func NewDetailStore(dir string) *DetailStore {
	return &DetailStore{dir: dir}
}

func (s *DetailStore) WasteDetail() (*WasteDetailRecords, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, "waste_detail.json"))
	if err != nil {
		return nil, fmt.Errorf("read waste detail data: %w", err)
	}
	var out WasteDetailRecords
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse waste detail data: %w", err)
	}
	return &out, nil
}

type productDetailFile struct {
	ProductA domain.ProductDetailData `json:"productA"`
	ProductB domain.ProductDetailData `json:"productB"`
}

func (s *DetailStore) ProductDetail(product string) (*domain.ProductDetailData, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, "product_detail.json"))
	if err != nil {
		return nil, fmt.Errorf("read product detail data: %w", err)
	}
	var file productDetailFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse product detail data: %w", err)
	}
	data := file.ProductA
	if product == "B" {
		data = file.ProductB
	}
	return &data, nil
}
