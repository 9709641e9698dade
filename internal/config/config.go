package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SettingsBackend selects where guild settings are persisted
type SettingsBackend string

const (
	SettingsBackendRedis SettingsBackend = "redis"
	SettingsBackendFile  SettingsBackend = "file"
)

type (
	Config struct {
		LogLevel        logrus.Level
		DefaultAutofill bool
		Discord         Discord
		Settings        Settings
	}

	Discord struct {
		Token         string
		ApplicationID string

		// GuildID registers commands to one guild instead of globally
		GuildID string
	}

	Settings struct {
		Backend SettingsBackend
		File    string
		Redis   Redis
	}

	Redis struct {
		Addr     string
		Password string
		Database int
	}
)

// Load reads a .env file when present, then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds the configuration from environment variables
func FromEnv() (*Config, error) {
	cfg := &Config{
		Discord: Discord{
			Token:         os.Getenv("DISCORD_TOKEN"),
			ApplicationID: os.Getenv("APPLICATION_ID"),
			GuildID:       os.Getenv("GUILD_ID"),
		},
		Settings: Settings{
			Backend: SettingsBackend(getEnv("SETTINGS_BACKEND", string(SettingsBackendRedis))),
			File:    getEnv("SETTINGS_FILE", "persistent_settings.json"),
			Redis: Redis{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
			},
		},
	}

	var err error

	cfg.Settings.Redis.Database, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_DB")
	}

	cfg.DefaultAutofill, err = strconv.ParseBool(getEnv("DEFAULT_AUTOFILL", "true"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid DEFAULT_AUTOFILL")
	}

	cfg.LogLevel, err = logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid LOG_LEVEL")
	}

	switch cfg.Settings.Backend {
	case SettingsBackendRedis:
	case SettingsBackendFile:
		if cfg.Settings.File == "" {
			return nil, errors.New("missing SETTINGS_FILE")
		}
	default:
		return nil, errors.Errorf("unknown SETTINGS_BACKEND %q, want redis or file", cfg.Settings.Backend)
	}

	return cfg, nil
}

// RequireDiscord checks the values needed to connect the bot
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("missing DISCORD_TOKEN")
	}
	if c.Discord.ApplicationID == "" {
		return errors.New("missing APPLICATION_ID")
	}
	return nil
}

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Discord.Token == "" {
		tok = "[empty]"
	}
	pass := "[set]"
	if c.Settings.Redis.Password == "" {
		pass = "[empty]"
	}
	return fmt.Sprintf(
		"appID=%s guildID=%s settings=%s file=%s redis=%s/%d redisPassword=%s autofill=%t logLevel=%s token=%s",
		c.Discord.ApplicationID, c.Discord.GuildID, c.Settings.Backend, c.Settings.File,
		c.Settings.Redis.Addr, c.Settings.Redis.Database, pass, c.DefaultAutofill, c.LogLevel, tok,
	)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
