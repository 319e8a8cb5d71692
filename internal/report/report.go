// Package report renders readings and statistics as fixed-format console
// blocks. The layout is an output contract; changing it breaks downstream
// log scraping.
package report

import (
	"fmt"
	"io"
	"strings"

	"weathermon/internal/reading"
	"weathermon/internal/stats"
)

var border = strings.Repeat("=", 50)

// Renderer writes report blocks to w. Inject a bytes.Buffer in tests,
// os.Stdout in production.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Reading renders one live sample.
func (r *Renderer) Reading(rec reading.Reading) {
	fmt.Fprintf(r.w, "\n%s\n", border)
	fmt.Fprintf(r.w, "Weather Monitor - %s\n", rec.Timestamp)
	fmt.Fprintf(r.w, "%s\n", border)
	fmt.Fprintf(r.w, "Temperature: %.2f°C (%.2f°F)\n", rec.TemperatureC, rec.TemperatureF)
	fmt.Fprintf(r.w, "Humidity: %.2f%%\n", rec.Humidity)
	fmt.Fprintf(r.w, "Air Quality Index: %d\n", rec.AQI)
	fmt.Fprintf(r.w, "Air Quality Status: %s\n", rec.AQIStatus)
	fmt.Fprintf(r.w, "%s\n", border)
}

// Statistics renders an aggregate summary.
func (r *Renderer) Statistics(s stats.Summary) {
	fmt.Fprintf(r.w, "\n%s\n", border)
	fmt.Fprintf(r.w, "Weather Statistics\n")
	fmt.Fprintf(r.w, "%s\n", border)
	fmt.Fprintf(r.w, "Total Readings: %d\n", s.Count)
	fmt.Fprintf(r.w, "\nTemperature:\n")
	fmt.Fprintf(r.w, "  Average: %.2f°C\n", s.Temperature.Mean)
	fmt.Fprintf(r.w, "  Min: %.2f°C\n", s.Temperature.Min)
	fmt.Fprintf(r.w, "  Max: %.2f°C\n", s.Temperature.Max)
	fmt.Fprintf(r.w, "\nHumidity:\n")
	fmt.Fprintf(r.w, "  Average: %.2f%%\n", s.Humidity.Mean)
	fmt.Fprintf(r.w, "  Min: %.2f%%\n", s.Humidity.Min)
	fmt.Fprintf(r.w, "  Max: %.2f%%\n", s.Humidity.Max)
	fmt.Fprintf(r.w, "\nAir Quality Index:\n")
	fmt.Fprintf(r.w, "  Average: %.0f\n", s.AirQuality.Mean)
	fmt.Fprintf(r.w, "  Min: %d\n", s.AirQuality.Min)
	fmt.Fprintf(r.w, "  Max: %d\n", s.AirQuality.Max)
	fmt.Fprintf(r.w, "%s\n\n", border)
}

// NoData prints the empty-history notice.
func (r *Renderer) NoData() {
	fmt.Fprintln(r.w, "No data available yet.")
}
