package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReactions_UnmarshalJSON_IsLenient(t *testing.T) {
	req := require.New(t)

	var msg Message
	err := json.Unmarshal([]byte(`{
		"messageId": "7f9c",
		"content": "hi",
		"timestamp": 1700000000000,
		"reactions": {"👍": 3, "❤️": "2", "🔥": 1.0, "🎉": "lots", "x": -4}
	}`), &msg)

	req.NoError(err)
	req.Equal(3, msg.Reactions.Count("👍"))
	req.Equal(2, msg.Reactions.Count("❤️"))
	req.Equal(1, msg.Reactions.Count("🔥"))
	req.Equal(0, msg.Reactions.Count("🎉"))
	req.Equal(0, msg.Reactions.Count("x"))
	req.Equal(6, msg.Reactions.Total())
}

func TestReactions_NullAndMissing(t *testing.T) {
	req := require.New(t)

	var msg Message
	req.NoError(json.Unmarshal([]byte(`{"id":"a","reactions":null}`), &msg))
	req.Nil(msg.Reactions)
	req.Equal(0, msg.Reactions.Count("👍"))
	req.Equal(0, msg.Reactions.Total())
}

func TestMessage_Key(t *testing.T) {
	req := require.New(t)

	req.Equal("m-1", Message{MessageID: "m-1", ID: "i-1"}.Key())
	req.Equal("i-1", Message{ID: "i-1"}.Key())
	req.Equal(UnknownKey, Message{}.Key())
}

func TestMessage_CloneDoesNotShareReactions(t *testing.T) {
	req := require.New(t)

	original := Message{ID: "a", Reactions: Reactions{"👍": 1}}
	copied := original.Clone()
	copied.Reactions["👍"] = 5

	req.Equal(1, original.Reactions.Count("👍"))
}

func TestGlyph_FallsBackForUnknownAvatar(t *testing.T) {
	req := require.New(t)

	req.Equal("🥷", Glyph("ninja"))
	req.Equal(FallbackGlyph, Glyph("dragon"))
}

func TestDraft_LengthCountsCharacters(t *testing.T) {
	require.Equal(t, 3, Draft{Content: "äöü"}.Length())
}
