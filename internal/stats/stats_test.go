package stats

import (
	"errors"
	"testing"

	"weathermon/internal/reading"
)

func TestCompute_Empty(t *testing.T) {
	_, err := Compute(nil)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Compute(nil) error = %v, want ErrNoData", err)
	}

	_, err = Compute([]reading.Reading{})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Compute(empty) error = %v, want ErrNoData", err)
	}
}

func TestCompute_ThreeReadings(t *testing.T) {
	history := []reading.Reading{
		{TemperatureC: 20.00, Humidity: 40.00, AQI: 10},
		{TemperatureC: 25.00, Humidity: 50.00, AQI: 60},
		{TemperatureC: 30.00, Humidity: 60.00, AQI: 200},
	}

	got, err := Compute(history)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
	if got.Temperature.Mean != 25.00 || got.Temperature.Min != 20.00 || got.Temperature.Max != 30.00 {
		t.Errorf("Temperature = %+v, want mean=25 min=20 max=30", got.Temperature)
	}
	if got.Humidity.Mean != 50.00 || got.Humidity.Min != 40.00 || got.Humidity.Max != 60.00 {
		t.Errorf("Humidity = %+v, want mean=50 min=40 max=60", got.Humidity)
	}
	if got.AirQuality.Mean != 90.0 || got.AirQuality.Min != 10 || got.AirQuality.Max != 200 {
		t.Errorf("AirQuality = %+v, want mean=90 min=10 max=200", got.AirQuality)
	}
}

func TestCompute_SingleReading(t *testing.T) {
	history := []reading.Reading{
		{TemperatureC: 21.5, Humidity: 48.25, AQI: 77},
	}

	got, err := Compute(history)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got.Count != 1 {
		t.Errorf("Count = %d, want 1", got.Count)
	}
	if got.Temperature.Mean != 21.5 || got.Temperature.Min != 21.5 || got.Temperature.Max != 21.5 {
		t.Errorf("Temperature = %+v, want all 21.5", got.Temperature)
	}
	if got.AirQuality.Mean != 77 || got.AirQuality.Min != 77 || got.AirQuality.Max != 77 {
		t.Errorf("AirQuality = %+v, want all 77", got.AirQuality)
	}
}
