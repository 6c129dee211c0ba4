package render

import (
	"context"
	"testing"
	"time"

	"messageboard/internal/board"
	"messageboard/internal/i18n"
	"messageboard/internal/models"
	"messageboard/internal/notice"

	"github.com/stretchr/testify/require"
)

// staticStore serves a fixed list and accepts every reaction.
type staticStore struct {
	messages []models.Message
}

func (s staticStore) LoadAll(context.Context) ([]models.Message, error) {
	return s.messages, nil
}

func (s staticStore) Create(_ context.Context, d models.Draft) (models.Message, error) {
	return models.Message{MessageID: "created", Content: d.Content, Avatar: d.Avatar}, nil
}

func (s staticStore) React(context.Context, models.ReactionRequest) error {
	return nil
}

func loaded(t *testing.T, messages ...models.Message) *board.Controller {
	t.Helper()
	c := board.NewController(
		staticStore{messages: messages},
		board.NewState(models.DefaultAvatar),
		notice.NewNotifier(time.Hour, time.Hour, nil, nil),
		i18n.German,
		board.Options{MaxLength: 500, Avatars: models.DefaultAvatars, Reactions: models.DefaultReactions},
		nil,
	)
	require.NoError(t, c.Load(context.Background()))
	return c
}

var testOpts = Options{
	Reactions:      models.DefaultReactions,
	AnimationDelay: 100 * time.Millisecond,
	Location:       time.UTC,
	Texts:          i18n.German,
}

func TestRender_EmptyList(t *testing.T) {
	req := require.New(t)

	view := Render(loaded(t).State().Snapshot(), time.Now(), testOpts)

	req.True(view.Empty)
	req.Equal(i18n.German.EmptyBoard, view.EmptyText)
	req.Empty(view.Cards)
	req.Zero(view.TotalCards)
}

func TestRender_OneCardPerMessageInOrder(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	c := loaded(t,
		models.Message{MessageID: "3f2c9a4e-1b7d-4c2e-9a51-77e0d4b6a001", Content: "neu", Avatar: "cat", Timestamp: now.Add(-30 * time.Second).UnixMilli()},
		models.Message{ID: "short", Content: "alt", Avatar: "dragon", Timestamp: now.Add(-90 * time.Minute).UnixMilli(), Reactions: models.Reactions{"🔥": 4}},
	)

	view := Render(c.State().Snapshot(), now, testOpts)

	req.False(view.Empty)
	req.Len(view.Cards, 2)
	req.Equal(2, view.TotalCards)

	first := view.Cards[0]
	req.Equal("neu", first.Content)
	req.Equal("🐱", first.AvatarGlyph)
	req.Equal("Gerade eben", first.Time)
	req.Equal("3f2c9a4e-1b7...", first.ShortID)
	req.Equal("3f2c9a4e-1b7d-4c2e-9a51-77e0d4b6a001", first.FullID)
	req.Zero(first.AnimationDelay)

	second := view.Cards[1]
	req.Equal("alt", second.Content)
	req.Equal(models.FallbackGlyph, second.AvatarGlyph)
	req.Equal("vor 1 Std.", second.Time)
	req.Equal("short...", second.ShortID)
	req.Equal(int64(100), second.AnimationDelayMillis())

	req.Len(second.Reactions, len(models.DefaultReactions))
	for _, b := range second.Reactions {
		if b.Label == "🔥" {
			req.Equal(4, b.Count)
			req.Equal("4", b.CountText)
			continue
		}
		req.Zero(b.Count)
		req.Empty(b.CountText, "zero counts are hidden")
	}
}

func TestRender_ActiveReactionIsMarked(t *testing.T) {
	req := require.New(t)
	c := loaded(t, models.Message{MessageID: "m1", Content: "hi", Timestamp: time.Now().UnixMilli()})

	_, err := c.React(context.Background(), "m1", "🎉")
	req.NoError(err)

	view := Render(c.State().Snapshot(), time.Now(), testOpts)
	for _, b := range view.Cards[0].Reactions {
		req.Equal(b.Label == "🎉", b.Active, b.Label)
	}
}

func TestRender_IsIdempotent(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	c := loaded(t, models.Message{MessageID: "m1", Content: "a", Timestamp: now.UnixMilli()})

	snap := c.State().Snapshot()
	req.Equal(Render(snap, now, testOpts), Render(snap, now, testOpts))
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		ago   time.Duration
		texts i18n.Catalog
		want  string
	}{
		{"30 seconds", 30 * time.Second, i18n.German, "Gerade eben"},
		{"future", -time.Minute, i18n.German, "Gerade eben"},
		{"one minute", time.Minute, i18n.German, "vor 1 Min."},
		{"59 minutes", 59 * time.Minute, i18n.German, "vor 59 Min."},
		{"90 minutes", 90 * time.Minute, i18n.German, "vor 1 Std."},
		{"23 hours", 23 * time.Hour, i18n.German, "vor 23 Std."},
		{"one day", 25 * time.Hour, i18n.German, "vor 1 Tag"},
		{"just under a minute", time.Minute - time.Millisecond, i18n.German, "Gerade eben"},
		{"119 seconds", 119 * time.Second, i18n.German, "vor 1 Min."},
		{"two minutes", 2 * time.Minute, i18n.German, "vor 2 Min."},
		{"one hour", time.Hour, i18n.German, "vor 1 Std."},
		{"two hours", 2 * time.Hour, i18n.German, "vor 2 Std."},
		{"one day exactly", 24 * time.Hour, i18n.German, "vor 1 Tag"},
		{"47 hours", 47 * time.Hour, i18n.German, "vor 1 Tag"},
		{"six days", 6 * 24 * time.Hour, i18n.German, "vor 6 Tagen"},
		{"just under a week", 7*24*time.Hour - time.Second, i18n.German, "vor 6 Tagen"},
		{"one week", 7 * 24 * time.Hour, i18n.German, "10.10.2026, 12:00"},
		{"ten days", 10 * 24 * time.Hour, i18n.German, "07.10.2026, 12:00"},
		{"english just now", 30 * time.Second, i18n.English, "just now"},
		{"english minutes", 5 * time.Minute, i18n.English, "5 minutes ago"},
		{"english hours", 3 * time.Hour, i18n.English, "3 hours ago"},
		{"english days", 2 * 24 * time.Hour, i18n.English, "2 days ago"},
		{"english one minute", 90 * time.Second, i18n.English, "1 minute ago"},
		{"english one hour", 61 * time.Minute, i18n.English, "1 hour ago"},
		{"english absolute", 10 * 24 * time.Hour, i18n.English, "10/07/2026, 12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatTimestamp(now.Add(-tt.ago), now, time.UTC, tt.texts))
		})
	}
}

func TestFormatTimestamp_AbsoluteUsesLocation(t *testing.T) {
	req := require.New(t)
	berlin, err := time.LoadLocation("Europe/Berlin")
	req.NoError(err)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	got := FormatTimestamp(now.Add(-10*24*time.Hour), now, berlin, i18n.German)

	req.Equal("07.10.2026, 14:00", got)
}
