package infra

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewSettingsRepository_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, closer, err := NewSettingsRepository(context.Background(), config.Settings{
		Backend: config.SettingsBackendRedis,
		Redis:   config.Redis{Addr: mr.Addr()},
	}, quietLogger())
	require.NoError(t, err)
	defer closer.Close()

	err = repo.SaveSettings(context.Background(), &settings.SaveSettingsInput{
		Settings: &models.GuildSettings{GuildID: "g", Autofill: true},
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists("guild_settings:g"))
}

func TestNewSettingsRepository_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := NewSettingsRepository(context.Background(), config.Settings{
		Backend: config.SettingsBackendRedis,
		Redis:   config.Redis{Addr: addr},
	}, quietLogger())
	assert.Error(t, err)
}

func TestNewSettingsRepository_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	repo, closer, err := NewSettingsRepository(context.Background(), config.Settings{
		Backend: config.SettingsBackendFile,
		File:    path,
	}, quietLogger())
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, err = repo.GetSettings(context.Background(), &settings.GetSettingsInput{GuildID: "g"})
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}

func TestNewSettingsRepository_Unknown(t *testing.T) {
	_, _, err := NewSettingsRepository(context.Background(), config.Settings{Backend: "mongo"}, quietLogger())
	assert.Error(t, err)
}
