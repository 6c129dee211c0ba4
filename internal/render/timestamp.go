package render

import (
	"time"

	"messageboard/internal/i18n"

	"github.com/dustin/go-humanize"
)

// FormatTimestamp renders ts relative to now: "just now" under a minute,
// then minutes, hours and days up to a week, and an absolute date after.
// Future timestamps count as just now.
func FormatTimestamp(ts, now time.Time, loc *time.Location, texts i18n.Catalog) string {
	diff := now.Sub(ts)
	switch {
	case diff < 0:
		return texts.JustNow
	case diff < humanize.Week:
		return humanize.CustomRelTime(ts, now, "", "", texts.RelTime())
	}

	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(texts.DateLayout)
}
