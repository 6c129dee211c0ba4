package dashboard

import (
	"sync"

	"messageboard/internal/i18n"

	"github.com/google/uuid"
)

// ChartRenderer plots an hour histogram. Rendering replaces any chart the
// renderer drew before.
type ChartRenderer interface {
	Render(hours Histogram) Chart
}

// Chart is a bar chart description the browser hands to Chart.js as-is.
type Chart struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series of the chart.
type Dataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
}

// Slot holds at most one live chart instance.
type Slot struct {
	texts i18n.Catalog

	mu        sync.Mutex
	current   *Chart
	destroyed int
}

// NewSlot creates an empty chart slot.
func NewSlot(texts i18n.Catalog) *Slot {
	return &Slot{texts: texts}
}

// Render destroys the previous chart, if any, and installs a new one.
func (s *Slot) Render(hours Histogram) Chart {
	labels := make([]string, HoursPerDay)
	for h := range labels {
		labels[h] = s.texts.Hour(h)
	}

	chart := Chart{
		ID:     uuid.NewString(),
		Type:   "bar",
		Labels: labels,
		Datasets: []Dataset{{
			Label:           s.texts.ChartLabel,
			Data:            append([]int(nil), hours[:]...),
			BackgroundColor: "rgba(100, 108, 255, 0.5)",
			BorderColor:     "#646cff",
			BorderWidth:     1,
		}},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.destroyed++
	}
	s.current = &chart
	return chart
}

// Current returns the live chart.
func (s *Slot) Current() (Chart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Chart{}, false
	}
	return *s.current, true
}

// Destroyed counts charts replaced so far.
func (s *Slot) Destroyed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}
