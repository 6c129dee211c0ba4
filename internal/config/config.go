package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"messageboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the message collection the board was first deployed against.
const DefaultAPIURL = "https://7hfrgj6w5i.execute-api.eu-central-1.amazonaws.com/prod/messages"

// Config holds the application configuration.
type Config struct {
	APIURL                string        `mapstructure:"API_URL" validate:"required,url"`
	ServerAddr            string        `mapstructure:"SERVER_ADDR" validate:"required"`
	MaxMessageLength      int           `mapstructure:"MAX_MESSAGE_LENGTH" validate:"min=1"`
	AnimationDelay        time.Duration `mapstructure:"ANIMATION_DELAY" validate:"min=0"`
	ErrorNoticeDuration   time.Duration `mapstructure:"ERROR_NOTICE_DURATION" validate:"gt=0"`
	SuccessNoticeDuration time.Duration `mapstructure:"SUCCESS_NOTICE_DURATION" validate:"gt=0"`
	Avatars               []string      `mapstructure:"AVATARS" validate:"min=1,dive,required"`
	DefaultAvatar         string        `mapstructure:"DEFAULT_AVATAR" validate:"required"`
	Reactions             []string      `mapstructure:"REACTIONS" validate:"min=1,dive,required"`
	Locale                string        `mapstructure:"LOCALE" validate:"oneof=de en"`
	Timezone              string        `mapstructure:"TIMEZONE"`
	HTTPTimeout           time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"min=0"`
	APITokenSecret        string        `mapstructure:"API_TOKEN_SECRET"`
	LogDevelopment        bool          `mapstructure:"LOG_DEVELOPMENT"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(viper.GetViper(), ".")
	if err != nil {
		log.Fatalf("Unable to load configuration, %v", err)
	}
	AppConfig = cfg
}

// Load reads configuration through v, looking for a .env file in dir.
func Load(v *viper.Viper, dir string) (*Config, error) {
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Avatars = splitList(cfg.Avatars)
	cfg.Reactions = splitList(cfg.Reactions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_URL", DefaultAPIURL)
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("MAX_MESSAGE_LENGTH", 500)
	v.SetDefault("ANIMATION_DELAY", 100*time.Millisecond)
	v.SetDefault("ERROR_NOTICE_DURATION", 5*time.Second)
	v.SetDefault("SUCCESS_NOTICE_DURATION", 2*time.Second)
	v.SetDefault("AVATARS", strings.Join(models.DefaultAvatars, ","))
	v.SetDefault("DEFAULT_AVATAR", models.DefaultAvatar)
	v.SetDefault("REACTIONS", strings.Join(models.DefaultReactions, ","))
	v.SetDefault("LOCALE", "de")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("HTTP_TIMEOUT", time.Duration(0))
	v.SetDefault("API_TOKEN_SECRET", "")
	v.SetDefault("LOG_DEVELOPMENT", false)
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !contains(c.Avatars, c.DefaultAvatar) {
		return fmt.Errorf("invalid config: DEFAULT_AVATAR %q is not one of AVATARS", c.DefaultAvatar)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: TIMEZONE: %w", err)
	}
	return nil
}

// Location resolves TIMEZONE; an empty value means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// splitList tolerates both "a,b" and ["a", "b"] inputs and trims blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
