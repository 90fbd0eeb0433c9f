// Package redisstore keeps survey progress in Redis so a survey can be
// resumed from another machine sharing the same server.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/bigfive/internal/progress"
)

// DefaultPrefix namespaces every key written by KV.
const DefaultPrefix = "bigfive"

// KV implements progress.KV on a Redis client. Keys are stored as
// "<prefix>:<key>". When ttl is positive every write refreshes the key's
// expiry, so abandoned surveys eventually disappear. The result id never
// expires.
type KV struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ progress.KV = (*KV)(nil)

// New wraps client. An empty prefix uses DefaultPrefix.
func New(client *redis.Client, prefix string, ttl time.Duration) *KV {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KV{client: client, prefix: prefix, ttl: ttl}
}

// Dial connects to addr and verifies the server answers PING.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := kv.client.Get(ctx, kv.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (kv *KV) Set(ctx context.Context, key, value string) error {
	var ttl time.Duration
	if key != progress.KeyResultID {
		ttl = kv.ttl
	}
	if err := kv.client.Set(ctx, kv.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = kv.key(k)
	}
	if err := kv.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (kv *KV) key(k string) string {
	return kv.prefix + ":" + k
}
