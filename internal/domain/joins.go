package domain

import "time"

// SensorReading is one raw ingested sample as stored by the ingestor.
type SensorReading struct {
	DeviceName    string    `db:"sensor_id" json:"device_name"`
	SensorType    string    `db:"sensor_type" json:"sensor_type"`
	MeasuredAt    time.Time `db:"measured_at" json:"measured_at"`
	ReadingValue  float64   `db:"reading_value" json:"reading_value"`
	Unit          string    `db:"unit" json:"unit"`
	Voltage       *float64  `db:"voltage" json:"voltage"`
	RaspberryPiID string    `db:"raspberrypi_id" json:"raspberrypi_id"`
}

// DevicesAtPlace returns the devices configured at a place, in
// configuration order.
func (c *DashboardConfig) DevicesAtPlace(placeName string) []DeviceConfig {
	var out []DeviceConfig
	for _, d := range c.Sensors {
		if d.PlaceName == placeName {
			out = append(out, d)
		}
	}
	return out
}

// FirstDeviceAtPlace returns the first configured device at a place.
// Valid configurations carry at most one device per product place; when
// more exist, configuration order wins.
func (c *DashboardConfig) FirstDeviceAtPlace(placeName string) (DeviceConfig, bool) {
	for _, d := range c.Sensors {
		if d.PlaceName == placeName {
			return d, true
		}
	}
	return DeviceConfig{}, false
}

// PlacesOfType returns places of the given type in configuration order.
func (c *DashboardConfig) PlacesOfType(placeType string) []PlaceConfig {
	var out []PlaceConfig
	for _, p := range c.Places {
		if p.Type == placeType {
			out = append(out, p)
		}
	}
	return out
}

// PlacesAtMarker returns the places referencing a marker, in
// configuration order.
func (c *DashboardConfig) PlacesAtMarker(markerName string) []PlaceConfig {
	var out []PlaceConfig
	for _, p := range c.Places {
		if p.MarkerName == markerName {
			out = append(out, p)
		}
	}
	return out
}
