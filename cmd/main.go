// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"weathermon/internal/app"
	"weathermon/internal/config"
	"weathermon/internal/logging"
	"weathermon/internal/reading"
	"weathermon/internal/sensor"
	"weathermon/internal/store"
)

const appName = "weathermon"

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
		"store_driver", cfg.StoreDriver,
		"sensor_driver", cfg.SensorDriver,
		"history_limit", cfg.HistoryLimit,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	src, closeSource, err := newSource(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	st, closeStore, err := newStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	a := app.New(cfg, reading.NewCollector(src), st, os.Stdin, os.Stdout, logger)
	return a.Run(ctx)
}

func newSource(cfg config.Config, logger *slog.Logger) (sensor.Source, func(), error) {
	switch cfg.SensorDriver {
	case "bme280":
		// The BME280 has no AQI channel; that metric stays simulated.
		dev, err := sensor.NewBME280(cfg.BME280Address, sensor.NewSimulated(), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("sensor driver %s: %w", cfg.SensorDriver, err)
		}
		return dev, func() {
			if err := dev.Close(); err != nil {
				logger.Error("close sensor", "error", err)
			}
		}, nil
	default:
		return sensor.NewSimulated(), func() {}, nil
	}
}

func newStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case "sqlite":
		s, err := store.OpenSQLite(cfg.SQLitePath, cfg.HistoryLimit)
		if err != nil {
			return nil, nil, fmt.Errorf("store driver %s: %w", cfg.StoreDriver, err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				slog.Error("close store", "error", err)
			}
		}, nil
	default:
		return store.NewFileStore(cfg.DataFile, cfg.HistoryLimit), func() {}, nil
	}
}
