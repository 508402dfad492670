package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	DefaultLocale   string
	SeedFile        string
	DiscordToken    string
	DiscordGuildID  string
	ShutdownTimeout time.Duration
}

// DiscordEnabled reports whether the Discord front end should be started.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	cfg := &Config{
		HTTPAddr:        strings.TrimSpace(v.GetString("HTTP_ADDR")),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:       strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		DefaultLocale:   strings.TrimSpace(v.GetString("DEFAULT_LOCALE")),
		SeedFile:        strings.TrimSpace(v.GetString("SEED_FILE")),
		DiscordToken:    strings.TrimSpace(v.GetString("DISCORD_TOKEN")),
		DiscordGuildID:  strings.TrimSpace(v.GetString("DISCORD_GUILD_ID")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.HTTPAddr); err != nil {
		return fmt.Errorf("config: HTTP_ADDR invalid (%q): %w", c.HTTPAddr, err)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be json or console (got %q)", c.LogFormat)
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive")
	}

	for _, r := range c.DiscordGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	return nil
}
