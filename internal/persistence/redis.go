package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/config"
)

const redisCheckTimeout = 3 * time.Second

// Redis is the client behind the redis credential store, plus the key
// namespace the portal writes under.
type Redis struct {
	Client *redis.Client
	prefix string
}

// NewRedis builds a client for cfg. The server is checked once with a short
// timeout; when it is down the store's commands fail and readiness reports
// it until it comes up.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	r := &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: strings.Trim(cfg.KeyPrefix, ":"),
	}

	checkCtx, cancel := context.WithTimeout(ctx, redisCheckTimeout)
	defer cancel()
	if err := r.Ping(checkCtx); err != nil {
		logger.Warn("redis session backend unreachable", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("redis session backend ready", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}
	return r
}

// Key places name under the configured prefix.
func (r *Redis) Key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + ":" + name
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}
