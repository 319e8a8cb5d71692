// Package stats reduces a reading history to aggregate figures.
package stats

import (
	"errors"

	"weathermon/internal/reading"
)

// ErrNoData is returned when there is no history to aggregate. Callers must
// check for it rather than rendering a zero-valued summary.
var ErrNoData = errors.New("no data available")

// Metric holds the reductions for one real-valued series.
type Metric struct {
	Mean float64
	Min  float64
	Max  float64
}

// AQIMetric keeps min/max as integers; the mean stays fractional and is
// rounded only at display time.
type AQIMetric struct {
	Mean float64
	Min  int
	Max  int
}

type Summary struct {
	Count       int
	Temperature Metric
	Humidity    Metric
	AirQuality  AQIMetric
}

// Compute aggregates the full history. Empty input yields ErrNoData.
func Compute(history []reading.Reading) (Summary, error) {
	if len(history) == 0 {
		return Summary{}, ErrNoData
	}

	first := history[0]
	s := Summary{
		Count:       len(history),
		Temperature: Metric{Min: first.TemperatureC, Max: first.TemperatureC},
		Humidity:    Metric{Min: first.Humidity, Max: first.Humidity},
		AirQuality:  AQIMetric{Min: first.AQI, Max: first.AQI},
	}

	var tempSum, humSum float64
	var aqiSum int
	for _, r := range history {
		tempSum += r.TemperatureC
		humSum += r.Humidity
		aqiSum += r.AQI

		if r.TemperatureC < s.Temperature.Min {
			s.Temperature.Min = r.TemperatureC
		}
		if r.TemperatureC > s.Temperature.Max {
			s.Temperature.Max = r.TemperatureC
		}
		if r.Humidity < s.Humidity.Min {
			s.Humidity.Min = r.Humidity
		}
		if r.Humidity > s.Humidity.Max {
			s.Humidity.Max = r.Humidity
		}
		if r.AQI < s.AirQuality.Min {
			s.AirQuality.Min = r.AQI
		}
		if r.AQI > s.AirQuality.Max {
			s.AirQuality.Max = r.AQI
		}
	}

	n := float64(len(history))
	s.Temperature.Mean = tempSum / n
	s.Humidity.Mean = humSum / n
	s.AirQuality.Mean = float64(aqiSum) / n
	return s, nil
}
