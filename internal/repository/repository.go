package repository

import (
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wastedash/wastedash/internal/domain"
)

type Repos struct {
	db     *sqlx.DB
	Config *ConfigCache
	Detail *DetailStore
}

func New(db *sqlx.DB, dataDir string) *Repos {
	return &Repos{
		db:     db,
		Config: NewConfigCache(filepath.Join(dataDir, "dashboard_config.json")),
		Detail: NewDetailStore(dataDir),
	}
}

// LatestPerDevice returns the newest distance/weight reading per device
// at or before the target time.
func (r *Repos) LatestPerDevice(target time.Time) ([]domain.LatestReadingRow, error) {
	var out []domain.LatestReadingRow
	err := r.db.Select(&out, `
		SELECT DISTINCT ON (sensor_id)
			sensor_id AS device_name,
			sensor_type,
			measured_at AS time,
			reading_value,
			voltage,
			unit,
			raspberrypi_id
		FROM wm.sensor_readings
		WHERE measured_at <= $1
			AND sensor_type IN ('distance', 'weight')
		ORDER BY sensor_id, measured_at DESC`, target)
	return out, err
}

func (r *Repos) InsertReading(rd *domain.SensorReading) error {
	_, err := r.db.Exec(`
		INSERT INTO wm.sensor_readings(sensor_id, sensor_type, measured_at, reading_value, unit, voltage, raspberrypi_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rd.DeviceName, rd.SensorType, rd.MeasuredAt, rd.ReadingValue, rd.Unit, rd.Voltage, rd.RaspberryPiID)
	return err
}
