package storage

import (
	"context"
	"sync"
	"time"

	"overcooked-simplified/web-svc/internal/domain"
)

type memoryEntry struct {
	items   []domain.Notification
	expires time.Time
}

// MemoryFlashStore is the flash store used when no Redis is configured.
type MemoryFlashStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryFlashStore(ttl time.Duration) *MemoryFlashStore {
	return &MemoryFlashStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryFlashStore) Push(_ context.Context, session string, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)

	entry, ok := s.entries[session]
	if !ok {
		entry = &memoryEntry{}
		s.entries[session] = entry
	}
	entry.items = append(entry.items, n)
	entry.expires = now.Add(s.ttl)
	return nil
}

func (s *MemoryFlashStore) Drain(_ context.Context, session string) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[session]
	delete(s.entries, session)
	if !ok || s.now().After(entry.expires) {
		return []domain.Notification{}, nil
	}
	return entry.items, nil
}

func (s *MemoryFlashStore) evict(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, key)
		}
	}
}
