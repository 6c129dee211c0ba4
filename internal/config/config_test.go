package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load(viper.New(), t.TempDir())

	req.NoError(err)
	req.Equal(DefaultAPIURL, cfg.APIURL)
	req.Equal(500, cfg.MaxMessageLength)
	req.Equal(100*time.Millisecond, cfg.AnimationDelay)
	req.Equal(5*time.Second, cfg.ErrorNoticeDuration)
	req.Equal(2*time.Second, cfg.SuccessNoticeDuration)
	req.Equal([]string{"anonymous", "ninja", "cat", "alien", "robot", "unicorn"}, cfg.Avatars)
	req.Equal([]string{"👍", "❤️", "🔥", "🎉"}, cfg.Reactions)
	req.Equal("anonymous", cfg.DefaultAvatar)
	req.Equal("de", cfg.Locale)
	req.Zero(cfg.HTTPTimeout)
}

func TestLoad_EnvFileOverridesDefaults(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	env := "API_URL=http://localhost:9000/messages\n" +
		"MAX_MESSAGE_LENGTH=140\n" +
		"AVATARS=cat, robot\n" +
		"DEFAULT_AVATAR=cat\n" +
		"LOCALE=en\n" +
		"ERROR_NOTICE_DURATION=3s\n" +
		"TIMEZONE=Europe/Berlin\n"
	req.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := Load(viper.New(), dir)

	req.NoError(err)
	req.Equal("http://localhost:9000/messages", cfg.APIURL)
	req.Equal(140, cfg.MaxMessageLength)
	req.Equal([]string{"cat", "robot"}, cfg.Avatars)
	req.Equal("en", cfg.Locale)
	req.Equal(3*time.Second, cfg.ErrorNoticeDuration)

	loc, err := cfg.Location()
	req.NoError(err)
	req.Equal("Europe/Berlin", loc.String())
}

func TestLoad_RejectsDefaultAvatarOutsideSet(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, ".env"), []byte("AVATARS=cat\nDEFAULT_AVATAR=ninja\n"), 0o600))

	_, err := Load(viper.New(), dir)

	req.ErrorContains(err, "DEFAULT_AVATAR")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	base := func() Config {
		return Config{
			APIURL:                "http://localhost/messages",
			ServerAddr:            ":8080",
			MaxMessageLength:      500,
			ErrorNoticeDuration:   time.Second,
			SuccessNoticeDuration: time.Second,
			Avatars:               []string{"anonymous"},
			DefaultAvatar:         "anonymous",
			Reactions:             []string{"👍"},
			Locale:                "de",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing url", func(c *Config) { c.APIURL = "" }},
		{"zero max length", func(c *Config) { c.MaxMessageLength = 0 }},
		{"no reactions", func(c *Config) { c.Reactions = nil }},
		{"unknown locale", func(c *Config) { c.Locale = "fr" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}

	require.NoError(t, func() error { c := base(); return c.Validate() }())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
