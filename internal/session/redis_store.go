package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the credential record in a single Redis hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore stores entries in the hash named key. The client is owned
// by the caller.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "exam-portal:session"
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.key, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.HSet(ctx, s.key, key, value).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.HDel(ctx, s.key, keys...).Err()
}

func (s *RedisStore) Close() error {
	return nil
}
