package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/wastedash/wastedash/internal/domain"
)

// ConfigError reports the first entry of the static configuration that
// failed shape validation.
type ConfigError struct {
	Section string
	Index   int
	Field   string
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid dashboard config: %s %s", e.Section, e.Field)
	}
	return fmt.Sprintf("invalid dashboard config: %s[%d] %s", e.Section, e.Index, e.Field)
}

// ConfigCache loads the static dashboard configuration once per process.
// Only successful loads are cached, so a transient failure is retried on
// the next request. Concurrent first loads may parse redundantly; they
// converge on equal immutable values, so the race is harmless.
type ConfigCache struct {
	path   string
	cached atomic.Pointer[domain.DashboardConfig]
}

func NewConfigCache(path string) *ConfigCache {
	return &ConfigCache{path: path}
}

func (c *ConfigCache) Load() (*domain.DashboardConfig, error) {
	if cfg := c.cached.Load(); cfg != nil {
		return cfg, nil
	}
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read dashboard config: %w", err)
	}
	cfg, err := ParseDashboardConfig(raw)
	if err != nil {
		return nil, err
	}
	c.cached.Store(cfg)
	return cfg, nil
}

type rawDashboardConfig struct {
	Sensors *[]rawDevice `json:"sensors"`
	Places  *[]rawPlace  `json:"places"`
	Markers *[]rawMarker `json:"markers"`
}

type rawDevice struct {
	Name         *string `json:"name"`
	DisplayName  *string `json:"display_name"`
	PlaceName    *string `json:"place_name"`
	DisplayOrder *int    `json:"display_order"`
	Category     *string `json:"category"`
}

type rawPlace struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Type        *string `json:"type"`
	Path        *string `json:"path"`
	MarkerName  *string `json:"marker_name"`
}

type rawMarker struct {
	Name *string  `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}

// ParseDashboardConfig validates the configuration field by field and
// produces a typed immutable value. Referential integrity between
// devices, places and markers is deliberately not required here; broken
// references simply yield no matches at join time.
func ParseDashboardConfig(raw []byte) (*domain.DashboardConfig, error) {
	var rc rawDashboardConfig
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("parse dashboard config: %w", err)
	}
	if rc.Sensors == nil {
		return nil, &ConfigError{Section: "sensors", Index: -1, Field: "must be an array"}
	}
	if rc.Places == nil {
		return nil, &ConfigError{Section: "places", Index: -1, Field: "must be an array"}
	}
	if rc.Markers == nil {
		return nil, &ConfigError{Section: "markers", Index: -1, Field: "must be an array"}
	}

	cfg := &domain.DashboardConfig{
		Sensors: make([]domain.DeviceConfig, 0, len(*rc.Sensors)),
		Places:  make([]domain.PlaceConfig, 0, len(*rc.Places)),
		Markers: make([]domain.MarkerConfig, 0, len(*rc.Markers)),
	}

	for i, d := range *rc.Sensors {
		field, ok := missingDeviceField(d)
		if !ok {
			return nil, &ConfigError{Section: "sensors", Index: i, Field: field}
		}
		cfg.Sensors = append(cfg.Sensors, domain.DeviceConfig{
			Name:         *d.Name,
			DisplayName:  *d.DisplayName,
			PlaceName:    *d.PlaceName,
			DisplayOrder: *d.DisplayOrder,
			Category:     *d.Category,
		})
	}
	for i, p := range *rc.Places {
		field, ok := missingPlaceField(p)
		if !ok {
			return nil, &ConfigError{Section: "places", Index: i, Field: field}
		}
		cfg.Places = append(cfg.Places, domain.PlaceConfig{
			Name:        *p.Name,
			DisplayName: *p.DisplayName,
			Type:        *p.Type,
			Path:        *p.Path,
			MarkerName:  *p.MarkerName,
		})
	}
	for i, m := range *rc.Markers {
		field, ok := missingMarkerField(m)
		if !ok {
			return nil, &ConfigError{Section: "markers", Index: i, Field: field}
		}
		cfg.Markers = append(cfg.Markers, domain.MarkerConfig{Name: *m.Name, X: *m.X, Y: *m.Y})
	}
	return cfg, nil
}

func missingDeviceField(d rawDevice) (string, bool) {
	switch {
	case d.Name == nil:
		return "name", false
	case d.DisplayName == nil:
		return "display_name", false
	case d.PlaceName == nil:
		return "place_name", false
	case d.DisplayOrder == nil:
		return "display_order", false
	case d.Category == nil:
		return "category", false
	}
	return "", true
}

func missingPlaceField(p rawPlace) (string, bool) {
	switch {
	case p.Name == nil:
		return "name", false
	case p.DisplayName == nil:
		return "display_name", false
	case p.Type == nil:
		return "type", false
	case *p.Type != domain.PlaceTypeWaste && *p.Type != domain.PlaceTypeProduct:
		return "type", false
	case p.Path == nil:
		return "path", false
	case p.MarkerName == nil:
		return "marker_name", false
	}
	return "", true
}

func missingMarkerField(m rawMarker) (string, bool) {
	switch {
	case m.Name == nil:
		return "name", false
	case m.X == nil:
		return "x", false
	case m.Y == nil:
		return "y", false
	}
	return "", true
}
