// Package reading holds the record model shared by the store, the reporter,
// and the statistics pass.
package reading

import (
	"math"
	"time"

	"weathermon/internal/sensor"
)

// TimestampLayout is local ISO-8601 with microseconds, the on-disk timestamp
// format. Timestamps stay strings end to end so file round-trips compare
// exactly.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Reading is one timestamped sample of all metrics. Field names are the
// on-disk contract; do not rename.
type Reading struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureC float64 `json:"temperature_celsius"`
	TemperatureF float64 `json:"temperature_fahrenheit"`
	Humidity     float64 `json:"humidity_percent"`
	AQI          int     `json:"air_quality_index"`
	AQIStatus    string  `json:"air_quality_status"`
}

// Air quality status labels, in increasing severity.
const (
	StatusGood               = "Good"
	StatusModerate           = "Moderate"
	StatusUnhealthySensitive = "Unhealthy for Sensitive Groups"
	StatusUnhealthy          = "Unhealthy"
	StatusVeryUnhealthy      = "Very Unhealthy"
	StatusHazardous          = "Hazardous"
)

// Classify maps an AQI value to its status label. Thresholds are inclusive
// upper bounds; anything above 300 is Hazardous. No range validation: a
// future real sensor reporting out-of-range values still gets a label.
func Classify(aqi int) string {
	switch {
	case aqi <= 50:
		return StatusGood
	case aqi <= 100:
		return StatusModerate
	case aqi <= 150:
		return StatusUnhealthySensitive
	case aqi <= 200:
		return StatusUnhealthy
	case aqi <= 300:
		return StatusVeryUnhealthy
	default:
		return StatusHazardous
	}
}

// Fahrenheit converts celsius and rounds to 2 decimals.
func Fahrenheit(celsius float64) float64 {
	return math.Round((celsius*9/5+32)*100) / 100
}

// Collector composes one Reading per call from a sensor Source.
type Collector struct {
	Source sensor.Source
	Now    func() time.Time
}

func NewCollector(src sensor.Source) *Collector {
	return &Collector{Source: src, Now: time.Now}
}

// Collect samples each metric once and derives fahrenheit and status.
func (c *Collector) Collect() Reading {
	celsius := c.Source.Temperature()
	humidity := c.Source.Humidity()
	aqi := c.Source.AirQuality()

	return Reading{
		Timestamp:    c.Now().Format(TimestampLayout),
		TemperatureC: celsius,
		TemperatureF: Fahrenheit(celsius),
		Humidity:     humidity,
		AQI:          aqi,
		AQIStatus:    Classify(aqi),
	}
}
