package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tasker:session:"

// RedisBackend shares sessions across processes. Selected with
// session.backend: redis in the config.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(ctx context.Context, id string) (*Identity, error) {
	raw, err := b.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var ident Identity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, ErrNoSession
	}
	return &ident, nil
}

func (b *RedisBackend) Save(ctx context.Context, id string, ident *Identity, ttl time.Duration) error {
	raw, err := json.Marshal(ident)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, redisKeyPrefix+id, raw, ttl).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, id string) error {
	return b.client.Del(ctx, redisKeyPrefix+id).Err()
}
