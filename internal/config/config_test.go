package config

import (
	"log/slog"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL", "WEATHER_DATA_FILE", "STORE_DRIVER",
		"SQLITE_PATH", "HISTORY_LIMIT", "MONITOR_INTERVAL",
		"SENSOR_DRIVER", "BME280_ADDRESS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want nil", err)
	}

	if got.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want %q", got.AppEnv, "dev")
	}
	if got.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, slog.LevelInfo)
	}
	if got.DataFile != "weather_data.json" {
		t.Errorf("DataFile = %q, want %q", got.DataFile, "weather_data.json")
	}
	if got.StoreDriver != "json" {
		t.Errorf("StoreDriver = %q, want %q", got.StoreDriver, "json")
	}
	if got.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want 100", got.HistoryLimit)
	}
	if got.MonitorInterval != 5*time.Second {
		t.Errorf("MonitorInterval = %v, want 5s", got.MonitorInterval)
	}
	if got.SensorDriver != "simulated" {
		t.Errorf("SensorDriver = %q, want %q", got.SensorDriver, "simulated")
	}
	if got.BME280Address != 0x76 {
		t.Errorf("BME280Address = %#x, want 0x76", got.BME280Address)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEATHER_DATA_FILE", "  /tmp/history.json  ")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/history.db")
	t.Setenv("HISTORY_LIMIT", "25")
	t.Setenv("MONITOR_INTERVAL", "2s")
	t.Setenv("SENSOR_DRIVER", "bme280")
	t.Setenv("BME280_ADDRESS", "0x77")

	got, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want nil", err)
	}

	if got.AppEnv != "prod" {
		t.Errorf("AppEnv = %q, want %q", got.AppEnv, "prod")
	}
	if got.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, slog.LevelDebug)
	}
	if got.DataFile != "/tmp/history.json" {
		t.Errorf("DataFile = %q, want %q", got.DataFile, "/tmp/history.json")
	}
	if got.StoreDriver != "sqlite" {
		t.Errorf("StoreDriver = %q, want %q", got.StoreDriver, "sqlite")
	}
	if got.HistoryLimit != 25 {
		t.Errorf("HistoryLimit = %d, want 25", got.HistoryLimit)
	}
	if got.MonitorInterval != 2*time.Second {
		t.Errorf("MonitorInterval = %v, want 2s", got.MonitorInterval)
	}
	if got.SensorDriver != "bme280" {
		t.Errorf("SensorDriver = %q, want %q", got.SensorDriver, "bme280")
	}
	if got.BME280Address != 0x77 {
		t.Errorf("BME280Address = %#x, want 0x77", got.BME280Address)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad app env", key: "APP_ENV", value: "staging"},
		{name: "bad log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "bad store driver", key: "STORE_DRIVER", value: "postgres"},
		{name: "non-numeric history limit", key: "HISTORY_LIMIT", value: "many"},
		{name: "zero history limit", key: "HISTORY_LIMIT", value: "0"},
		{name: "negative history limit", key: "HISTORY_LIMIT", value: "-5"},
		{name: "bad interval", key: "MONITOR_INTERVAL", value: "soon"},
		{name: "zero interval", key: "MONITOR_INTERVAL", value: "0s"},
		{name: "bad sensor driver", key: "SENSOR_DRIVER", value: "dht22"},
		{name: "bad bme280 address", key: "BME280_ADDRESS", value: "street 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := LoadFromEnv(); err == nil {
				t.Fatalf("LoadFromEnv() error = nil, want error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: " INFO ", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
