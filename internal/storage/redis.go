package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps each document as raw JSON under "<prefix><key>".
// Values never expire; the stores own deletion semantics.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend creates a Redis-based backend. Prefix may be empty.
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "devfolio:"
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) key(key string) string {
	return r.prefix + key
}

func (r *RedisBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(b), nil
}

func (r *RedisBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	return r.client.Set(ctx, r.key(key), []byte(value), 0).Err()
}
