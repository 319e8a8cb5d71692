// Package sensor provides the measurement seam between the monitoring loop
// and whatever produces environmental values. The default driver simulates
// readings; a real instrument implements Source and slots in unchanged.
package sensor

import (
	"math"
	"math/rand"
	"time"
)

// Source produces one value per metric per call.
type Source interface {
	Temperature() float64
	Humidity() float64
	AirQuality() int
}

// Simulated generates uniformly distributed placeholder readings:
// temperature 15-35 °C, humidity 30-90 %, AQI 0-500.
type Simulated struct {
	rng *rand.Rand
}

func NewSimulated() *Simulated {
	return NewSimulatedWithSeed(time.Now().UnixNano())
}

// NewSimulatedWithSeed returns a deterministic source for tests.
func NewSimulatedWithSeed(seed int64) *Simulated {
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulated) Temperature() float64 {
	return round2(15.0 + s.rng.Float64()*20.0)
}

func (s *Simulated) Humidity() float64 {
	return round2(30.0 + s.rng.Float64()*60.0)
}

func (s *Simulated) AirQuality() int {
	return s.rng.Intn(501)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
