package service

import (
	"encoding/json"
	"fmt"

	"github.com/wastedash/wastedash/internal/domain"
	"github.com/wastedash/wastedash/internal/repository"
)

type ReadingService struct {
	repos *repository.Repos
}

// FromMQTT decodes one reading payload and stores it.
func (s *ReadingService) FromMQTT(topic string, payload []byte) error {
	var rd domain.SensorReading
	if err := json.Unmarshal(payload, &rd); err != nil {
		return fmt.Errorf("decode reading from %s: %w", topic, err)
	}
	if rd.SensorType != domain.SensorTypeDistance && rd.SensorType != domain.SensorTypeWeight {
		return fmt.Errorf("unknown sensor type %q from %s", rd.SensorType, topic)
	}
	return s.repos.InsertReading(&rd)
}
