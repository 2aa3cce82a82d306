package viewstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps records as JSON under "viewstate:<viewer>:<key>".
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ttl), nil
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "viewstate:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(viewer, key string) string {
	return s.prefix + storeKey(viewer, key)
}

func (s *RedisStore) Load(ctx context.Context, viewer, key string) (Record, bool, error) {
	raw, err := s.client.Get(ctx, s.key(viewer, key)).Bytes()
	if err == redis.Nil {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("load view state: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("unmarshal view state: %w", err)
	}
	return rec, true, nil
}

func (s *RedisStore) Save(ctx context.Context, viewer, key string, rec Record) error {
	rec.UpdatedAt = time.Now()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal view state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(viewer, key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, viewer, key string) error {
	if err := s.client.Del(ctx, s.key(viewer, key)).Err(); err != nil {
		return fmt.Errorf("delete view state: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
