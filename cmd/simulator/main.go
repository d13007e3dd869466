package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/wastedash/wastedash/internal/config"
	"github.com/wastedash/wastedash/internal/domain"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	devices := []struct {
		name       string
		sensorType string
		unit       string
	}{
		{"bin-a-01", domain.SensorTypeDistance, "mm"},
		{"bin-b-01", domain.SensorTypeDistance, "mm"},
		{"scale-a-01", domain.SensorTypeWeight, "kg"},
	}

	for i := 0; i < 100; i++ {
		d := devices[i%len(devices)]
		voltage := 3.2 + rand.Float64()*0.6
		r := domain.SensorReading{
			DeviceName:    d.name,
			SensorType:    d.sensorType,
			MeasuredAt:    time.Now(),
			Unit:          d.unit,
			Voltage:       &voltage,
			RaspberryPiID: "rpi-sim-01",
		}
		if d.sensorType == domain.SensorTypeDistance {
			r.ReadingValue = rand.Float64() * 36.5
		} else {
			r.ReadingValue = rand.Float64() * 120
		}
		payload, _ := json.Marshal(r)
		token := client.Publish(config.MQTTTopic(), 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
