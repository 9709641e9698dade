package infra

import (
	"context"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func NewRedisClient(ctx context.Context, cfg config.Redis, logger *log.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrapf(err, "redis at %s is not reachable", cfg.Addr)
	}

	logger.WithFields(log.Fields{
		"addr": cfg.Addr,
		"db":   cfg.Database,
	}).Info("redis is running")

	return rdb, nil
}
