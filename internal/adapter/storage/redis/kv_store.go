package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const scanBatch = 100

// KVStore implements ports.KeyValueStore on Redis. Every key is namespaced
// under prefix so Clear never touches data it does not own.
type KVStore struct {
	client *goredis.Client
	prefix string
}

// NewKVStore creates a Redis-backed key/value store.
func NewKVStore(client *goredis.Client, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

// Get returns nil, nil if the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis kv get: %w", err)
	}
	return val, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted.
func (s *KVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis kv set: %w", err)
	}
	return nil
}

// SetIfAbsent uses SET NX. It returns false when the key already exists.
func (s *KVStore) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	args := goredis.SetArgs{Mode: "NX"}
	if ttl > 0 {
		args.TTL = ttl
	}
	result, err := s.client.SetArgs(ctx, s.prefix+key, value, args).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis kv set nx: %w", err)
	}
	return result == "OK", nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis kv delete: %w", err)
	}
	return nil
}

// Clear deletes every key under the store's prefix.
func (s *KVStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis kv scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis kv clear: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
