package dashboard

import (
	"time"

	"messageboard/internal/models"
)

// View is what the dashboard overlay shows.
type View struct {
	Stats Stats `json:"stats"`
	Chart Chart `json:"chart"`
}

// Dashboard recomputes statistics on demand and hands the histogram to a
// chart renderer.
type Dashboard struct {
	chart ChartRenderer
	loc   *time.Location
}

// New creates a Dashboard bucketing hours in loc.
func New(chart ChartRenderer, loc *time.Location) *Dashboard {
	return &Dashboard{chart: chart, loc: loc}
}

// Open aggregates messages and re-renders the chart.
func (d *Dashboard) Open(messages []models.Message) View {
	stats := Aggregate(messages, d.loc)
	return View{
		Stats: stats,
		Chart: d.chart.Render(stats.Hours),
	}
}
