package viewstate

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryItem struct {
	rec       Record
	expiresAt time.Time
}

// MemoryStore is an in-process LRU with per-item expiry. Good for a single
// instance; use RedisStore when several instances serve the same viewers.
type MemoryStore struct {
	cache *lru.Cache[string, memoryItem]
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(capacity int, ttl time.Duration) (*MemoryStore, error) {
	c, err := lru.New[string, memoryItem](capacity)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryStore{cache: c, ttl: ttl, now: time.Now}, nil
}

func (s *MemoryStore) Load(_ context.Context, viewer, key string) (Record, bool, error) {
	k := storeKey(viewer, key)
	item, ok := s.cache.Get(k)
	if !ok {
		return Record{}, false, nil
	}
	if s.now().After(item.expiresAt) {
		s.cache.Remove(k)
		return Record{}, false, nil
	}
	return item.rec, true, nil
}

func (s *MemoryStore) Save(_ context.Context, viewer, key string, rec Record) error {
	now := s.now()
	rec.UpdatedAt = now
	s.cache.Add(storeKey(viewer, key), memoryItem{rec: rec, expiresAt: now.Add(s.ttl)})
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, viewer, key string) error {
	s.cache.Remove(storeKey(viewer, key))
	return nil
}

// Len is the number of records held, expired ones included.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
