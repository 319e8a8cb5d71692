package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// DataFile is the JSON history file used by the default store driver.
	DataFile     string
	StoreDriver  string
	SQLitePath   string
	HistoryLimit int

	// MonitorInterval is the default wait between readings; the menu
	// prompt can override it per run.
	MonitorInterval time.Duration

	SensorDriver  string
	BME280Address uint16
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadFromEnv()
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	dataFile := strings.TrimSpace(os.Getenv("WEATHER_DATA_FILE"))
	if dataFile == "" {
		dataFile = "weather_data.json"
	}

	storeDriver := strings.TrimSpace(os.Getenv("STORE_DRIVER"))
	if storeDriver == "" {
		storeDriver = "json"
	}
	switch storeDriver {
	case "json", "sqlite":
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q (allowed: json, sqlite)", storeDriver)
	}

	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if sqlitePath == "" {
		sqlitePath = "weather_data.db"
	}

	historyLimitStr := strings.TrimSpace(os.Getenv("HISTORY_LIMIT"))
	if historyLimitStr == "" {
		historyLimitStr = "100"
	}
	historyLimit, err := strconv.Atoi(historyLimitStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HISTORY_LIMIT %q: %w", historyLimitStr, err)
	}
	if historyLimit <= 0 {
		return Config{}, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", historyLimit)
	}

	monitorIntervalStr := strings.TrimSpace(os.Getenv("MONITOR_INTERVAL"))
	if monitorIntervalStr == "" {
		monitorIntervalStr = "5s"
	}
	monitorInterval, err := time.ParseDuration(monitorIntervalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MONITOR_INTERVAL %q: %w", monitorIntervalStr, err)
	}
	if monitorInterval <= 0 {
		return Config{}, fmt.Errorf("MONITOR_INTERVAL must be positive, got %v", monitorInterval)
	}

	sensorDriver := strings.TrimSpace(os.Getenv("SENSOR_DRIVER"))
	if sensorDriver == "" {
		sensorDriver = "simulated"
	}
	switch sensorDriver {
	case "simulated", "bme280":
	default:
		return Config{}, fmt.Errorf("invalid SENSOR_DRIVER %q (allowed: simulated, bme280)", sensorDriver)
	}

	bme280AddressStr := strings.TrimSpace(os.Getenv("BME280_ADDRESS"))
	if bme280AddressStr == "" {
		bme280AddressStr = "0x76"
	}
	bme280Address, err := strconv.ParseUint(bme280AddressStr, 0, 16)
	if err != nil {
		return Config{}, fmt.Errorf("invalid BME280_ADDRESS %q: %w", bme280AddressStr, err)
	}

	return Config{
		AppEnv:          appEnv,
		LogLevel:        level,
		DataFile:        dataFile,
		StoreDriver:     storeDriver,
		SQLitePath:      sqlitePath,
		HistoryLimit:    historyLimit,
		MonitorInterval: monitorInterval,
		SensorDriver:    sensorDriver,
		BME280Address:   uint16(bme280Address),
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
