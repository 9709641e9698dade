package infra

import (
	"context"
	"io"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	"github.com/atharrell/LoL-Game-Queue-Bot/internal/repositories/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewSettingsRepository opens the configured settings backend. The returned
// closer releases the backend connection.
func NewSettingsRepository(ctx context.Context, cfg config.Settings, logger *log.Logger) (settings.Repository, io.Closer, error) {
	switch cfg.Backend {
	case config.SettingsBackendFile:
		repo, err := settings.NewFile(&settings.FileConfig{Path: cfg.File})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open settings file")
		}
		logger.WithField("path", cfg.File).Info("using file settings backend")
		return repo, nopCloser{}, nil

	case config.SettingsBackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		repo, err := settings.NewRedis(&settings.Config{RedisClient: client})
		if err != nil {
			client.Close()
			return nil, nil, errors.Wrap(err, "failed to create settings repository")
		}
		return repo, client, nil
	}

	return nil, nil, errors.Errorf("unknown settings backend %q", cfg.Backend)
}
