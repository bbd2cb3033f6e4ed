package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	return &Config{
		DiscordBotToken:   "token",
		DiscordPublicKey:  hex.EncodeToString(pub),
		DiscordAppID:      "1100000000000000001",
		DiscordGuildID:    "1100000000000000002",
		ReminderChannelID: "1100000000000000003",
		Timezone:          "Asia/Tokyo",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./schedule.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.True(t, cfg.SyncOnStart)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.DiscordBotToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "timezone: UTC\nreminder_channel_id: \"42\"\nport: \"9000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "42", cfg.ReminderChannelID)
	assert.Equal(t, "9100", cfg.Port, "Environment wins over the file")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Should accept complete config",
			mutate: func(c *Config) {},
		},
		{
			name:    "Should require bot token",
			mutate:  func(c *Config) { c.DiscordBotToken = "" },
			wantErr: "DISCORD_BOT_TOKEN is required",
		},
		{
			name:    "Should reject short public key",
			mutate:  func(c *Config) { c.DiscordPublicKey = "abcd" },
			wantErr: "DISCORD_PUBLIC_KEY must be 32 bytes",
		},
		{
			name:    "Should reject non hex public key",
			mutate:  func(c *Config) { c.DiscordPublicKey = "zz" },
			wantErr: "not valid hex",
		},
		{
			name:    "Should reject invalid guild id",
			mutate:  func(c *Config) { c.DiscordGuildID = "guild" },
			wantErr: "DISCORD_GUILD_ID is not a valid snowflake",
		},
		{
			name:    "Should reject unknown timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: "TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_IDs(t *testing.T) {
	cfg := validConfig(t)

	assert.Equal(t, snowflake.ID(1100000000000000001), cfg.AppID())
	assert.Equal(t, snowflake.ID(1100000000000000002), cfg.GuildID())
	assert.Equal(t, snowflake.ID(1100000000000000003), cfg.ReminderChannel())

	key, err := cfg.PublicKey()
	require.NoError(t, err)
	assert.Len(t, key, ed25519.PublicKeySize)
}

func TestConfig_Location(t *testing.T) {
	t.Setenv("ZONEINFO", t.TempDir())

	cfg := validConfig(t)
	loc, err := cfg.Location()
	require.NoError(t, err)

	_, offset := time.Date(2025, 6, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 9*3600, offset)

	cfg.Timezone = "Nowhere/City"
	_, err = cfg.Location()
	assert.Error(t, err)
}
