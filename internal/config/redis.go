package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ConnectRedis opens the client used for login throttling.
// It returns nil when REDIS_URL is unset.
func ConnectRedis(ctx context.Context, cfg *Config, log logrus.FieldLogger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, login throttling disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to reach redis: %w", err)
	}

	log.WithField("addr", opts.Addr).Info("connected to redis")
	return client, nil
}
