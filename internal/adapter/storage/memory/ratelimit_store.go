package memory

import (
	"context"
	"sync"
	"time"
)

type window struct {
	id    int64
	count int
}

// RateLimitStore implements ports.RateLimitStore with per-process fixed windows.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]window), now: time.Now}
}

func (s *RateLimitStore) Allow(_ context.Context, key string, limit int, size time.Duration) (bool, int, error) {
	seconds := int64(size / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	id := s.now().Unix() / seconds

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.windows[key]
	if w.id != id {
		w = window{id: id}
	}
	w.count++
	s.windows[key] = w

	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return w.count <= limit, remaining, nil
}
