// Package memory is an in-memory ttl cache for responses.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu    sync.Mutex
	items map[string]item
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		items: map[string]item{},
	}
}

// Get returns the cached content for key, or nil when absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[key]
	if !ok {
		return nil
	}

	if time.Now().After(v.expiresAt) {
		delete(s.items, key)
		return nil
	}

	return v.content
}

// Set stores content under key for duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
}
