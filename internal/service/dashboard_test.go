package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastedash/wastedash/internal/domain"
)

func testConfig() *domain.DashboardConfig {
	return &domain.DashboardConfig{
		Sensors: []domain.DeviceConfig{
			{Name: "bin-a-02", DisplayName: "新聞紙・雑誌", PlaceName: "waste-a", DisplayOrder: 2, Category: "paper"},
			{Name: "bin-a-01", DisplayName: "再生紙", PlaceName: "waste-a", DisplayOrder: 1, Category: "paper"},
			{Name: "scale-a-01", DisplayName: "加工品A", PlaceName: "product-a", DisplayOrder: 1, Category: "product"},
		},
		Places: []domain.PlaceConfig{
			{Name: "waste-a", DisplayName: "A置き場", Type: "waste", Path: "/waste/A", MarkerName: "m1"},
			{Name: "product-a", DisplayName: "加工品A", Type: "product", Path: "/product/A", MarkerName: "m1"},
		},
		Markers: []domain.MarkerConfig{
			{Name: "m1", X: 70, Y: 30},
			{Name: "m2", X: 20, Y: 60},
		},
	}
}

func TestAssembleDashboardSortsByDisplayOrder(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	values := []domain.NormalizedValue{
		{DeviceName: "bin-a-01", SensorType: "distance", DistancePct: 64, Time: reference.Add(-time.Hour)},
		{DeviceName: "bin-a-02", SensorType: "distance", DistancePct: 38, Time: reference.Add(-time.Hour)},
	}

	payload := assembleDashboard(reference, testConfig(), values, 24*time.Hour)

	require.Len(t, payload.WasteCategories, 1)
	sensors := payload.WasteCategories[0].Sensors
	require.Len(t, sensors, 2)
	assert.Equal(t, "再生紙", sensors[0].Name)
	assert.Equal(t, 64, sensors[0].Percentage)
	assert.Equal(t, "新聞紙・雑誌", sensors[1].Name)
	assert.Equal(t, 38, sensors[1].Percentage)
}

func TestAssembleDashboardMissingValueIsFirstClass(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	payload := assembleDashboard(reference, testConfig(), nil, 24*time.Hour)

	sensors := payload.WasteCategories[0].Sensors
	require.Len(t, sensors, 2)
	for _, s := range sensors {
		assert.Equal(t, 0, s.Percentage)
		assert.False(t, s.Active)
		assert.Nil(t, s.UpdatedAt)
	}
	product := payload.Products[0].Product
	assert.Equal(t, 0, product.Weight)
	assert.False(t, product.Active)
	assert.Nil(t, product.UpdatedAt)
	// The device still resolves, so its order and category carry over.
	assert.Equal(t, 1, product.DisplayOrder)
	assert.Equal(t, "product", product.Category)
}

func TestAssembleDashboardProductWeight(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	values := []domain.NormalizedValue{
		{DeviceName: "scale-a-01", SensorType: "weight", WeightKG: 41.6, Time: reference.Add(-2 * time.Hour)},
	}

	payload := assembleDashboard(reference, testConfig(), values, 24*time.Hour)

	require.Len(t, payload.Products, 1)
	product := payload.Products[0].Product
	assert.Equal(t, 42, product.Weight)
	assert.True(t, product.Active)
	require.NotNil(t, product.UpdatedAt)
	assert.Equal(t, reference.Add(-2*time.Hour), *product.UpdatedAt)
}

func TestAssembleDashboardStaleValueInactive(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	values := []domain.NormalizedValue{
		{DeviceName: "bin-a-01", SensorType: "distance", DistancePct: 80, Time: reference.Add(-25 * time.Hour)},
	}

	payload := assembleDashboard(reference, testConfig(), values, 24*time.Hour)

	sensors := payload.WasteCategories[0].Sensors
	assert.Equal(t, 80, sensors[0].Percentage)
	assert.False(t, sensors[0].Active)
	assert.NotNil(t, sensors[0].UpdatedAt)
}

func TestAssembleDashboardMarkers(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	payload := assembleDashboard(reference, testConfig(), nil, 24*time.Hour)

	require.Len(t, payload.MapMarkers, 2)
	assert.Equal(t, "m1", payload.MapMarkers[0].Name)
	require.Len(t, payload.MapMarkers[0].Items, 2)
	assert.Equal(t, "A置き場", payload.MapMarkers[0].Items[0].Name)
	assert.Equal(t, "/waste/A", payload.MapMarkers[0].Items[0].Path)
	// A marker with no places still appears, with an empty item list.
	assert.NotNil(t, payload.MapMarkers[1].Items)
	assert.Empty(t, payload.MapMarkers[1].Items)
}

func TestAssembleDashboardEmptyConfig(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	payload := assembleDashboard(reference, &domain.DashboardConfig{}, nil, 24*time.Hour)

	assert.NotNil(t, payload.WasteCategories)
	assert.Empty(t, payload.WasteCategories)
	assert.Empty(t, payload.Products)
	assert.Empty(t, payload.MapMarkers)
	assert.Equal(t, "2025-06-03T12:00:00Z", payload.Timestamp)
}

func TestAssembleDashboardIdempotent(t *testing.T) {
	reference := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	values := []domain.NormalizedValue{
		{DeviceName: "bin-a-01", SensorType: "distance", DistancePct: 64, Time: reference.Add(-time.Hour)},
		{DeviceName: "scale-a-01", SensorType: "weight", WeightKG: 12.2, Time: reference.Add(-time.Hour)},
	}

	first, err := json.Marshal(assembleDashboard(reference, testConfig(), values, 24*time.Hour))
	require.NoError(t, err)
	second, err := json.Marshal(assembleDashboard(reference, testConfig(), values, 24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeDropsBadRows(t *testing.T) {
	s := &DashboardService{fullMM: 36.5, threshold: 24 * time.Hour}
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	rows := []domain.LatestReadingRow{
		{DeviceName: "bin-a-01", SensorType: "distance", Time: now, ReadingValue: 0, Unit: "mm"},
		{DeviceName: "bin-a-02", SensorType: "distance", Time: now, ReadingValue: 3, Unit: "in"},
		{DeviceName: "scale-a-01", SensorType: "weight", Time: now, ReadingValue: 500, Unit: "g"},
		{DeviceName: "scale-b-01", SensorType: "weight", Time: time.Time{}, ReadingValue: 1, Unit: "kg"},
		{DeviceName: "probe-01", SensorType: "humidity", Time: now, ReadingValue: 40, Unit: "%"},
	}

	values := s.normalize(rows)

	require.Len(t, values, 2)
	assert.Equal(t, "bin-a-01", values[0].DeviceName)
	assert.Equal(t, 100, values[0].DistancePct)
	assert.Equal(t, "scale-a-01", values[1].DeviceName)
	assert.Equal(t, 0.5, values[1].WeightKG)
}
