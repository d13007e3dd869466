package domain

import "time"

// LatestReadingRow is the newest reading per device at or before a target
// time, as returned by the repository.
type LatestReadingRow struct {
	DeviceName    string    `db:"device_name" json:"device_name"`
	SensorType    string    `db:"sensor_type" json:"sensor_type"`
	Time          time.Time `db:"time" json:"time"`
	ReadingValue  float64   `db:"reading_value" json:"reading_value"`
	Voltage       *float64  `db:"voltage" json:"voltage"`
	Unit          string    `db:"unit" json:"unit"`
	RaspberryPiID string    `db:"raspberrypi_id" json:"raspberrypi_id"`
}

const (
	SensorTypeDistance = "distance"
	SensorTypeWeight   = "weight"
)

// NormalizedValue is a reading converted to canonical units. Distance is
// carried as a 0-100 fill percentage, weight in kilograms.
type NormalizedValue struct {
	DeviceName  string
	SensorType  string
	DistancePct int
	WeightKG    float64
	Voltage     *float64
	Time        time.Time
}

type DeviceConfig struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	PlaceName    string `json:"place_name"`
	DisplayOrder int    `json:"display_order"`
	Category     string `json:"category"`
}

const (
	PlaceTypeWaste   = "waste"
	PlaceTypeProduct = "product"
)

type PlaceConfig struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Path        string `json:"path"`
	MarkerName  string `json:"marker_name"`
}

// MarkerConfig positions a map marker in percentage coordinates.
type MarkerConfig struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// DashboardConfig is the parsed static configuration. Immutable once loaded.
type DashboardConfig struct {
	Sensors []DeviceConfig `json:"sensors"`
	Places  []PlaceConfig  `json:"places"`
	Markers []MarkerConfig `json:"markers"`
}

type WasteCategoryView struct {
	Name         string     `json:"name"`
	Percentage   int        `json:"percentage"`
	Active       bool       `json:"active"`
	UpdatedAt    *time.Time `json:"updatedAt"`
	DisplayOrder int        `json:"display_order"`
	Category     string     `json:"category"`
}

type ProductView struct {
	Name         string     `json:"name"`
	Weight       int        `json:"weight"`
	Active       bool       `json:"active"`
	UpdatedAt    *time.Time `json:"updatedAt"`
	DisplayOrder int        `json:"display_order"`
	Category     string     `json:"category"`
}

type MarkerItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type MapMarkerView struct {
	Name  string       `json:"name"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Items []MarkerItem `json:"items"`
}

type WasteCategoryGroup struct {
	Title   string              `json:"title"`
	Sensors []WasteCategoryView `json:"sensors"`
	Path    string              `json:"path"`
}

type ProductGroup struct {
	Title   string      `json:"title"`
	Product ProductView `json:"product"`
	Path    string      `json:"path"`
}

// DashboardPayload is rebuilt on every request, never persisted.
type DashboardPayload struct {
	Timestamp       string               `json:"timestamp"`
	WasteCategories []WasteCategoryGroup `json:"wasteCategories"`
	Products        []ProductGroup       `json:"products"`
	MapMarkers      []MapMarkerView      `json:"mapMarkers"`
}

type GaugeView struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type CalendarEntry struct {
	Date      string  `json:"date"`
	DayOfWeek int     `json:"dayOfWeek"`
	Value     float64 `json:"value"`
}

type CollectionHistoryEntry struct {
	Item string  `json:"item"`
	Rate float64 `json:"rate"`
}

type CollectionEventView struct {
	Sequence      int     `json:"sequence"`
	Timestamp     string  `json:"timestamp"`
	Index         int     `json:"index"`
	SnapshotIndex int     `json:"snapshotIndex"`
	DropAmount    float64 `json:"dropAmount"`
	DroppedToZero bool    `json:"droppedToZero"`
}

type WasteDetailData struct {
	Category          string                   `json:"category"`
	LineChart         LineChart                `json:"lineChart"`
	Gauges            []GaugeView              `json:"gauges"`
	Calendar          []CalendarEntry          `json:"calendar"`
	CollectionHistory []CollectionHistoryEntry `json:"collectionHistory"`
	CollectionEvents  []CollectionEventView    `json:"collectionEvents"`
}

type LineChartSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type LineChart struct {
	Dates  []string          `json:"dates"`
	Series []LineChartSeries `json:"series"`
}

type ValueChart struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

type BarChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

type BarChartData struct {
	Dates  []string         `json:"dates"`
	Values []float64        `json:"values,omitempty"`
	Series []BarChartSeries `json:"series,omitempty"`
}

type ProductDetailData struct {
	Product             string          `json:"product"`
	DailyBarChart       ValueChart      `json:"dailyBarChart"`
	CumulativeAreaChart ValueChart      `json:"cumulativeAreaChart"`
	Calendar            []CalendarEntry `json:"calendar"`
	SmallBarChart       *BarChartData   `json:"smallBarChart,omitempty"`
}
