// Package app wires the collector, store, and renderer behind the
// interactive menu and drives the monitoring loop.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"weathermon/internal/config"
	"weathermon/internal/reading"
	"weathermon/internal/report"
	"weathermon/internal/stats"
	"weathermon/internal/store"
)

type App struct {
	cfg       config.Config
	collector *reading.Collector
	store     store.Store
	in        *bufio.Reader
	out       io.Writer
	render    *report.Renderer
	logger    *slog.Logger
}

func New(cfg config.Config, collector *reading.Collector, st store.Store, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		cfg:       cfg,
		collector: collector,
		store:     st,
		in:        bufio.NewReader(in),
		out:       out,
		render:    report.NewRenderer(out),
		logger:    logger,
	}
}

// Run presents the menu once and executes the chosen action. Any input
// other than 1 or 2 exits.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Weather Monitoring System")
	fmt.Fprintln(a.out, "1. Start Monitoring")
	fmt.Fprintln(a.out, "2. View Statistics")
	fmt.Fprintln(a.out, "3. Exit")
	fmt.Fprint(a.out, "\nEnter your choice (1-3): ")

	switch a.readLine() {
	case "1":
		return a.Monitor(ctx, a.promptInterval())
	case "2":
		a.Statistics()
		return nil
	default:
		fmt.Fprintln(a.out, "Exiting...")
		return nil
	}
}

// promptInterval asks for a sampling interval in whole seconds. Blank,
// non-numeric, or non-positive input falls back to the configured default.
func (a *App) promptInterval() time.Duration {
	fmt.Fprintf(a.out, "Enter monitoring interval in seconds (default %d): ", int(a.cfg.MonitorInterval/time.Second))

	line := a.readLine()
	if line == "" {
		return a.cfg.MonitorInterval
	}
	secs, err := strconv.Atoi(line)
	if err != nil || secs <= 0 {
		a.logger.Debug("invalid interval input, using default", "input", line)
		return a.cfg.MonitorInterval
	}
	return time.Duration(secs) * time.Second
}

// Monitor samples on every tick until ctx is cancelled: collect, display,
// append, then wait. A failed append is logged and the loop continues.
func (a *App) Monitor(ctx context.Context, interval time.Duration) error {
	fmt.Fprintln(a.out, "\nStarting Weather Monitoring System...")
	fmt.Fprintf(a.out, "Reading sensors every %d seconds\n", int(interval/time.Second))
	fmt.Fprint(a.out, "Press Ctrl+C to stop\n\n")

	for {
		rec := a.collector.Collect()
		a.render.Reading(rec)
		if err := a.store.Append(rec); err != nil {
			a.logger.Error("saving reading failed", "error", err)
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out, "\n\nMonitoring stopped by user.")
			a.logger.Info("monitoring stopped")
			return nil
		case <-time.After(interval):
		}
	}
}

// Statistics loads the full history and renders the aggregate block, or the
// no-data notice when there is nothing to aggregate.
func (a *App) Statistics() {
	history, err := a.store.LoadAll()
	if err != nil {
		a.logger.Error("loading history failed", "error", err)
		a.render.NoData()
		return
	}

	summary, err := stats.Compute(history)
	if errors.Is(err, stats.ErrNoData) {
		a.render.NoData()
		return
	}
	a.render.Statistics(summary)
}

func (a *App) readLine() string {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
