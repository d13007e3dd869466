package service

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wastedash/wastedash/internal/domain"
	"github.com/wastedash/wastedash/internal/metrics"
	"github.com/wastedash/wastedash/internal/repository"
)

// DashboardService builds the home dashboard payload from the latest
// reading per device and the static configuration. Failures on either
// input degrade to empty data so the dashboard always renders.
type DashboardService struct {
	repos     *repository.Repos
	fullMM    float64
	threshold time.Duration
}

func (s *DashboardService) Build(reference time.Time) *domain.DashboardPayload {
	cfg := s.safeConfig()
	rows := s.safeLatestRows(reference)
	values := s.normalize(rows)
	return assembleDashboard(reference, cfg, values, s.threshold)
}

func (s *DashboardService) safeConfig() *domain.DashboardConfig {
	cfg, err := s.repos.Config.Load()
	if err != nil {
		log.Error().Err(err).Msg("loading device config failed, using empty config")
		return &domain.DashboardConfig{}
	}
	return cfg
}

func (s *DashboardService) safeLatestRows(reference time.Time) []domain.LatestReadingRow {
	rows, err := s.repos.LatestPerDevice(reference)
	if err != nil {
		log.Error().Err(err).Msg("loading latest readings failed, using empty set")
		return nil
	}
	return rows
}

// normalize converts raw latest-reading rows to canonical units, dropping
// rows with unrecognized units, non-finite values or invalid timestamps.
func (s *DashboardService) normalize(rows []domain.LatestReadingRow) []domain.NormalizedValue {
	out := make([]domain.NormalizedValue, 0, len(rows))
	for _, row := range rows {
		if row.Time.IsZero() {
			log.Warn().Str("device", row.DeviceName).Msg("skipping row with invalid time")
			continue
		}
		switch row.SensorType {
		case domain.SensorTypeDistance:
			mm, ok := metrics.ToDistanceMM(row.ReadingValue, row.Unit)
			if !ok {
				log.Warn().Str("device", row.DeviceName).Str("unit", row.Unit).
					Msg("skipping distance row with invalid unit or value")
				continue
			}
			out = append(out, domain.NormalizedValue{
				DeviceName:  row.DeviceName,
				SensorType:  row.SensorType,
				DistancePct: metrics.FillPercentage(mm, s.fullMM),
				Voltage:     row.Voltage,
				Time:        row.Time,
			})
		case domain.SensorTypeWeight:
			kg, ok := metrics.ToWeightKG(row.ReadingValue, row.Unit)
			if !ok {
				log.Warn().Str("device", row.DeviceName).Str("unit", row.Unit).
					Msg("skipping weight row with invalid unit or value")
				continue
			}
			out = append(out, domain.NormalizedValue{
				DeviceName: row.DeviceName,
				SensorType: row.SensorType,
				WeightKG:   kg,
				Voltage:    row.Voltage,
				Time:       row.Time,
			})
		}
	}
	return out
}

func assembleDashboard(reference time.Time, cfg *domain.DashboardConfig, values []domain.NormalizedValue, threshold time.Duration) *domain.DashboardPayload {
	byDevice := make(map[string]domain.NormalizedValue, len(values))
	for _, v := range values {
		byDevice[v.DeviceName] = v
	}

	wastePlaces := cfg.PlacesOfType(domain.PlaceTypeWaste)
	wasteCategories := make([]domain.WasteCategoryGroup, 0, len(wastePlaces))
	for _, place := range wastePlaces {
		devices := cfg.DevicesAtPlace(place.Name)
		sensors := make([]domain.WasteCategoryView, 0, len(devices))
		for _, device := range devices {
			v, ok := byDevice[device.Name]
			if !ok {
				log.Warn().Str("device", device.Name).Msg("no sensor value for device")
			}
			view := domain.WasteCategoryView{
				Name:         device.DisplayName,
				DisplayOrder: device.DisplayOrder,
				Category:     device.Category,
			}
			if ok {
				if v.SensorType == domain.SensorTypeDistance {
					view.Percentage = v.DistancePct
				}
				view.Active = metrics.Active(v.Time, reference, threshold)
				t := v.Time
				view.UpdatedAt = &t
			}
			sensors = append(sensors, view)
		}
		sort.SliceStable(sensors, func(i, j int) bool {
			return sensors[i].DisplayOrder < sensors[j].DisplayOrder
		})
		wasteCategories = append(wasteCategories, domain.WasteCategoryGroup{
			Title:   place.DisplayName,
			Sensors: sensors,
			Path:    place.Path,
		})
	}

	productPlaces := cfg.PlacesOfType(domain.PlaceTypeProduct)
	products := make([]domain.ProductGroup, 0, len(productPlaces))
	for _, place := range productPlaces {
		product := domain.ProductView{Name: place.DisplayName}
		if device, ok := cfg.FirstDeviceAtPlace(place.Name); ok {
			product.DisplayOrder = device.DisplayOrder
			product.Category = device.Category
			if v, ok := byDevice[device.Name]; ok {
				if v.SensorType == domain.SensorTypeWeight {
					product.Weight = int(math.Round(v.WeightKG))
				}
				product.Active = metrics.Active(v.Time, reference, threshold)
				t := v.Time
				product.UpdatedAt = &t
			}
		}
		products = append(products, domain.ProductGroup{
			Title:   place.DisplayName,
			Product: product,
			Path:    place.Path,
		})
	}

	mapMarkers := make([]domain.MapMarkerView, 0, len(cfg.Markers))
	for _, marker := range cfg.Markers {
		places := cfg.PlacesAtMarker(marker.Name)
		items := make([]domain.MarkerItem, 0, len(places))
		for _, place := range places {
			items = append(items, domain.MarkerItem{Name: place.DisplayName, Path: place.Path})
		}
		mapMarkers = append(mapMarkers, domain.MapMarkerView{
			Name:  marker.Name,
			X:     marker.X,
			Y:     marker.Y,
			Items: items,
		})
	}

	return &domain.DashboardPayload{
		Timestamp:       reference.UTC().Format(time.RFC3339),
		WasteCategories: wasteCategories,
		Products:        products,
		MapMarkers:      mapMarkers,
	}
}
