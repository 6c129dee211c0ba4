// Package render turns board state into a declarative view-model. It never
// touches a presentation surface; hosts draw the returned tree.
package render

import (
	"strconv"
	"time"
	"unicode/utf8"

	"messageboard/internal/board"
	"messageboard/internal/i18n"
	"messageboard/internal/models"
)

// ShortIDLength is how many characters of an identifier a card shows.
const ShortIDLength = 12

// Options configure rendering.
type Options struct {
	Reactions      []string
	AnimationDelay time.Duration
	Location       *time.Location
	Texts          i18n.Catalog
}

// BoardView is the full render tree of the message list.
type BoardView struct {
	Empty      bool   `json:"empty"`
	EmptyText  string `json:"empty_text,omitempty"`
	Cards      []Card `json:"cards"`
	Avatar     string `json:"avatar"`
	TotalCards int    `json:"total_cards"`
}

// Card is one rendered message.
type Card struct {
	Key            string           `json:"key"`
	AvatarGlyph    string           `json:"avatar_glyph"`
	Content        string           `json:"content"`
	Time           string           `json:"time"`
	Datetime       string           `json:"datetime"`
	ShortID        string           `json:"short_id"`
	FullID         string           `json:"full_id"`
	AnimationDelay time.Duration    `json:"animation_delay"`
	Reactions      []ReactionButton `json:"reactions"`
}

// AnimationDelayMillis is the CSS-friendly form of AnimationDelay.
func (c Card) AnimationDelayMillis() int64 {
	return c.AnimationDelay.Milliseconds()
}

// ReactionButton is one reaction control of a card.
type ReactionButton struct {
	Label     string `json:"label"`
	Count     int    `json:"count"`
	CountText string `json:"count_text"`
	Active    bool   `json:"active"`
}

// Render builds the view of snap at instant now. The result fully replaces
// any previous view.
func Render(snap board.Snapshot, now time.Time, opts Options) BoardView {
	view := BoardView{
		Avatar: snap.Avatar,
		Cards:  []Card{},
	}
	if len(snap.Messages) == 0 {
		view.Empty = true
		view.EmptyText = opts.Texts.EmptyBoard
		return view
	}

	view.Cards = make([]Card, 0, len(snap.Messages))
	for i, m := range snap.Messages {
		view.Cards = append(view.Cards, renderCard(snap, m, i, now, opts))
	}
	view.TotalCards = len(view.Cards)
	return view
}

func renderCard(snap board.Snapshot, m models.Message, index int, now time.Time, opts Options) Card {
	key := m.Key()
	loc := location(opts)

	buttons := make([]ReactionButton, 0, len(opts.Reactions))
	for _, label := range opts.Reactions {
		n := m.Reactions.Count(label)
		buttons = append(buttons, ReactionButton{
			Label:     label,
			Count:     n,
			CountText: countText(n),
			Active:    snap.Active(key, label),
		})
	}

	return Card{
		Key:            key,
		AvatarGlyph:    models.Glyph(m.Avatar),
		Content:        m.Content,
		Time:           FormatTimestamp(m.Time(), now, loc, opts.Texts),
		Datetime:       m.Time().In(loc).Format(time.RFC3339),
		ShortID:        ShortID(key),
		FullID:         key,
		AnimationDelay: time.Duration(index) * opts.AnimationDelay,
		Reactions:      buttons,
	}
}

// ShortID truncates an identifier for display and marks the cut.
func ShortID(id string) string {
	if utf8.RuneCountInString(id) > ShortIDLength {
		id = string([]rune(id)[:ShortIDLength])
	}
	return id + "..."
}

func countText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func location(opts Options) *time.Location {
	if opts.Location == nil {
		return time.Local
	}
	return opts.Location
}
