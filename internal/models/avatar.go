package models

// DefaultAvatar is selected until the user picks another one.
const DefaultAvatar = "anonymous"

// FallbackGlyph is shown for avatar keys missing from the catalog.
const FallbackGlyph = "👤"

// AvatarGlyphs maps every known avatar key to its display glyph.
var AvatarGlyphs = map[string]string{
	"anonymous": "👤",
	"ninja":     "🥷",
	"cat":       "🐱",
	"alien":     "👽",
	"robot":     "🤖",
	"unicorn":   "🦄",
}

// DefaultAvatars keeps the picker order.
var DefaultAvatars = []string{"anonymous", "ninja", "cat", "alien", "robot", "unicorn"}

// DefaultReactions are the labels offered on every message.
var DefaultReactions = []string{"👍", "❤️", "🔥", "🎉"}

// Glyph returns the display glyph for an avatar key.
func Glyph(avatar string) string {
	if g, ok := AvatarGlyphs[avatar]; ok {
		return g
	}
	return FallbackGlyph
}
