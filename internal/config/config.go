package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/disgoorg/disgo/httpserver"
	"github.com/disgoorg/snowflake/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DiscordBotToken   string  `koanf:"discord_bot_token"`
	DiscordPublicKey  string  `koanf:"discord_public_key"`
	DiscordAppID      string  `koanf:"discord_app_id"`
	DiscordGuildID    string  `koanf:"discord_guild_id"`
	ReminderChannelID string  `koanf:"reminder_channel_id"`
	DatabasePath      string  `koanf:"database_path"`
	Port              string  `koanf:"port"`
	Timezone          string  `koanf:"timezone"`
	SlackWebhookURL   string  `koanf:"slack_webhook_url"`
	NaturalDates      bool    `koanf:"natural_dates"`
	SyncOnStart       bool    `koanf:"sync_on_start"`
	RateLimitRPS      float64 `koanf:"rate_limit_rps"`
	RateLimitBurst    int     `koanf:"rate_limit_burst"`
	Debug             bool    `koanf:"debug"`
	Silent            bool    `koanf:"silent"`
}

func defaults() map[string]any {
	return map[string]any{
		"database_path":    "./schedule.db",
		"port":             "3000",
		"timezone":         "Asia/Tokyo",
		"natural_dates":    false,
		"sync_on_start":    true,
		"rate_limit_rps":   5.0,
		"rate_limit_burst": 20,
	}
}

// Load reads defaults, then the optional YAML file named by CONFIG_FILE, then environment variables.
// Environment keys are the upper-case form of the koanf keys, e.g. DISCORD_BOT_TOKEN.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	known := defaults()
	for _, key := range []string{"discord_bot_token", "discord_public_key", "discord_app_id", "discord_guild_id",
		"reminder_channel_id", "slack_webhook_url", "debug", "silent"} {
		known[key] = nil
	}
	// empty variables count as unset, like the defaults they would otherwise hide
	err := k.Load(env.ProviderWithValue("", ".", func(name, value string) (string, any) {
		key := strings.ToLower(name)
		if _, ok := known[key]; !ok || value == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every missing or malformed required value.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		name  string
		value string
	}{
		{"DISCORD_BOT_TOKEN", c.DiscordBotToken},
		{"DISCORD_PUBLIC_KEY", c.DiscordPublicKey},
		{"DISCORD_APP_ID", c.DiscordAppID},
		{"DISCORD_GUILD_ID", c.DiscordGuildID},
		{"REMINDER_CHANNEL_ID", c.ReminderChannelID},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	if c.DiscordPublicKey != "" {
		if _, err := c.PublicKey(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, r := range required[2:] {
		if r.value == "" {
			continue
		}
		if _, err := snowflake.Parse(r.value); err != nil {
			errs = append(errs, fmt.Errorf("%s is not a valid snowflake: %w", r.name, err))
		}
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// PublicKey decodes the hex encoded application public key.
func (c *Config) PublicKey() (httpserver.PublicKey, error) {
	key, err := hex.DecodeString(c.DiscordPublicKey)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is not valid hex: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	return key, nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q is invalid: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) AppID() snowflake.ID { return snowflake.MustParse(c.DiscordAppID) }
func (c *Config) GuildID() snowflake.ID { return snowflake.MustParse(c.DiscordGuildID) }
func (c *Config) ReminderChannel() snowflake.ID { return snowflake.MustParse(c.ReminderChannelID) }
