package sensor

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
	"periph.io/x/host/v3"
)

// BME280 reads temperature and humidity from a BME280 over I²C. The chip has
// no air-quality channel, so AQI is delegated to a fallback Source.
type BME280 struct {
	bus    i2c.BusCloser
	dev    *bmxx80.Dev
	aqi    Source
	logger *slog.Logger
	last   physic.Env
}

func NewBME280(address uint16, aqi Source, logger *slog.Logger) (*BME280, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	bus, err := i2creg.Open("") // default bus, usually /dev/i2c-1
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	dev, err := bmxx80.NewI2C(bus, address, &bmxx80.DefaultOpts)
	if err != nil {
		if closeErr := bus.Close(); closeErr != nil {
			logger.Error("close i2c bus", "error", closeErr)
		}
		return nil, fmt.Errorf("bme280 at 0x%02x: %w", address, err)
	}

	return &BME280{bus: bus, dev: dev, aqi: aqi, logger: logger}, nil
}

func (b *BME280) Temperature() float64 {
	return round2(b.sense().Temperature.Celsius())
}

func (b *BME280) Humidity() float64 {
	// physic.RelativeHumidity is fixed point at 0.00001 %rH.
	return round2(float64(b.sense().Humidity) / 100000.0)
}

func (b *BME280) AirQuality() int {
	return b.aqi.AirQuality()
}

// sense reads the chip, falling back to the last good measurement on error.
func (b *BME280) sense() physic.Env {
	var env physic.Env
	if err := b.dev.Sense(&env); err != nil {
		b.logger.Warn("bme280 sense failed, using last reading", "error", err)
		return b.last
	}
	b.last = env
	return env
}

func (b *BME280) Close() error {
	if err := b.dev.Halt(); err != nil {
		b.logger.Error("halt bme280", "error", err)
	}
	return b.bus.Close()
}
