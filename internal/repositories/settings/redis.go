package settings

import (
	"context"
	"encoding/json"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "guild_settings:"

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func settingsKey(guildID string) string {
	return settingsKeyPrefix + guildID
}

// GetSettings retrieves guild settings from Redis
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, settingsKey(input.GuildID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSettingsNotFound
		}
		return nil, errors.Wrapf(err, "failed to get settings for guild %s", input.GuildID)
	}

	var settings models.GuildSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}

	return &settings, nil
}

// SaveSettings persists guild settings to Redis
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if err := validateSave(input); err != nil {
		return err
	}

	raw, err := json.Marshal(input.Settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	// No expiration, settings live as long as the guild
	if err := r.client.Set(ctx, settingsKey(input.Settings.GuildID), raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save settings for guild %s", input.Settings.GuildID)
	}

	return nil
}
