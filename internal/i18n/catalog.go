// Package i18n holds the user-facing texts of the board.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Catalog is a set of message templates for one locale.
type Catalog struct {
	Locale string

	EmptyContent   string
	ContentTooLong string // %d = maximum length
	LoadFailed     string
	SaveFailed     string
	ReactFailed    string
	Sent           string
	EmptyBoard     string

	JustNow    string
	MinuteAgo  string
	MinutesAgo string // %d
	HourAgo    string
	HoursAgo   string // %d
	DayAgo     string
	DaysAgo    string // %d
	DateLayout string

	ChartLabel string
	HourLabel  string // %d

	StatsMessages  string
	StatsWords     string
	StatsReactions string

	UnknownAvatar   string
	UnknownReaction string
	UnknownTopic    string
	MessageNotFound string
	NoticeNotFound  string
}

var German = Catalog{
	Locale:         "de",
	EmptyContent:   "Bitte gib eine Nachricht ein.",
	ContentTooLong: "Die Nachricht darf maximal %d Zeichen lang sein.",
	LoadFailed:     "Fehler beim Laden der Nachrichten.",
	SaveFailed:     "Fehler beim Speichern der Nachricht.",
	ReactFailed:    "Konnte nicht reagieren.",
	Sent:           "✅ Gesendet!",
	EmptyBoard:     "Noch keine Nachrichten. Schreib die erste!",
	JustNow:        "Gerade eben",
	MinuteAgo:      "vor 1 Min.",
	MinutesAgo:     "vor %d Min.",
	HourAgo:        "vor 1 Std.",
	HoursAgo:       "vor %d Std.",
	DayAgo:         "vor 1 Tag",
	DaysAgo:        "vor %d Tagen",
	DateLayout:     "02.01.2006, 15:04",
	ChartLabel:     "Nachrichten pro Stunde",
	HourLabel:      "%d Uhr",

	StatsMessages:  "Nachrichten",
	StatsWords:     "Wörter",
	StatsReactions: "Reaktionen",

	UnknownAvatar:   "Unbekannter Avatar",
	UnknownReaction: "Unbekannte Reaktion",
	UnknownTopic:    "Unbekanntes Thema",
	MessageNotFound: "Nachricht nicht gefunden",
	NoticeNotFound:  "Hinweis nicht gefunden",
}

var English = Catalog{
	Locale:         "en",
	EmptyContent:   "Please enter a message.",
	ContentTooLong: "A message may be at most %d characters long.",
	LoadFailed:     "Failed to load messages.",
	SaveFailed:     "Failed to save the message.",
	ReactFailed:    "Could not react.",
	Sent:           "✅ Sent!",
	EmptyBoard:     "No messages yet. Write the first one!",
	JustNow:        "just now",
	MinuteAgo:      "1 minute ago",
	MinutesAgo:     "%d minutes ago",
	HourAgo:        "1 hour ago",
	HoursAgo:       "%d hours ago",
	DayAgo:         "1 day ago",
	DaysAgo:        "%d days ago",
	DateLayout:     "01/02/2006, 03:04 PM",
	ChartLabel:     "Messages per hour",
	HourLabel:      "%d:00",

	StatsMessages:  "Messages",
	StatsWords:     "Words",
	StatsReactions: "Reactions",

	UnknownAvatar:   "Unknown avatar",
	UnknownReaction: "Unknown reaction",
	UnknownTopic:    "Unknown topic",
	MessageNotFound: "Message not found",
	NoticeNotFound:  "Notice not found",
}

// Lookup returns the catalog for locale, falling back to German.
func Lookup(locale string) Catalog {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en", "en-us", "en-gb":
		return English
	default:
		return German
	}
}

// TooLong renders the length-limit validation message.
func (c Catalog) TooLong(max int) string {
	return fmt.Sprintf(c.ContentTooLong, max)
}

// RelTime returns the relative-time magnitudes for timestamps younger than a
// week, for use with humanize.CustomRelTime. Counts are floored.
func (c Catalog) RelTime() []humanize.RelTimeMagnitude {
	return []humanize.RelTimeMagnitude{
		{D: time.Minute, Format: c.JustNow, DivBy: 1},
		{D: 2 * time.Minute, Format: c.MinuteAgo, DivBy: 1},
		{D: time.Hour, Format: c.MinutesAgo, DivBy: time.Minute},
		{D: 2 * time.Hour, Format: c.HourAgo, DivBy: 1},
		{D: humanize.Day, Format: c.HoursAgo, DivBy: time.Hour},
		{D: 2 * humanize.Day, Format: c.DayAgo, DivBy: 1},
		{D: humanize.Week, Format: c.DaysAgo, DivBy: humanize.Day},
	}
}

// Hour renders an x-axis label of the activity chart.
func (c Catalog) Hour(h int) string {
	return fmt.Sprintf(c.HourLabel, h)
}
