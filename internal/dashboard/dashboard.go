// Package dashboard derives activity statistics from the message list.
package dashboard

import (
	"strings"
	"time"

	"messageboard/internal/models"

	"github.com/samber/lo"
)

// HoursPerDay is the number of histogram buckets.
const HoursPerDay = 24

// Histogram counts messages by local hour of day.
type Histogram [HoursPerDay]int

// Sum returns the number of messages in all buckets.
func (h Histogram) Sum() int {
	return lo.Sum(h[:])
}

// Stats is the dashboard summary.
type Stats struct {
	TotalMessages  int       `json:"total_messages"`
	TotalWords     int       `json:"total_words"`
	TotalReactions int       `json:"total_reactions"`
	Hours          Histogram `json:"hours"`
}

// Aggregate recomputes every figure from the full list. It is O(n) and keeps
// no cache; it only runs when the dashboard is opened.
func Aggregate(messages []models.Message, loc *time.Location) Stats {
	if loc == nil {
		loc = time.Local
	}

	stats := Stats{
		TotalMessages: len(messages),
		TotalWords: lo.SumBy(messages, func(m models.Message) int {
			return WordCount(m.Content)
		}),
		TotalReactions: lo.SumBy(messages, func(m models.Message) int {
			return m.Reactions.Total()
		}),
	}
	for _, m := range messages {
		stats.Hours[m.Time().In(loc).Hour()]++
	}
	return stats
}

// WordCount counts whitespace-separated tokens.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
