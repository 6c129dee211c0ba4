package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Reactions maps a reaction label (an emoji) to its count.
type Reactions map[string]int

// Count returns the tally for label, zero when absent.
func (r Reactions) Count(label string) int {
	if r == nil {
		return 0
	}
	return r[label]
}

// Total sums every tally.
func (r Reactions) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Clone returns an independent copy.
func (r Reactions) Clone() Reactions {
	if r == nil {
		return nil
	}
	out := make(Reactions, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// UnmarshalJSON accepts numbers, floats and numeric strings. Anything else
// counts as zero, and negative values are clamped.
func (r *Reactions) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Reactions, len(raw))
	for label, value := range raw {
		out[label] = parseCount(value)
	}
	*r = out
	return nil
}

func parseCount(value json.RawMessage) int {
	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return 0
		}
		n = json.Number(strings.TrimSpace(s))
	}

	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return clamp(float64(i))
	}
	if f, err := n.Float64(); err == nil && !math.IsNaN(f) {
		return clamp(math.Trunc(f))
	}
	return 0
}

func clamp(f float64) int {
	if f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
