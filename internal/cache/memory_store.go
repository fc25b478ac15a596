package cache

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is the in-process fallback backend. Entries never expire; they
// live until cleared or until the process exits. The mutex serializes the
// read-modify-write of Append so concurrent turns for one session are not lost.
type MemoryStore struct {
	mu         sync.Mutex
	cache      *gocache.Cache
	maxHistory int
}

var _ ConversationCache = &MemoryStore{}

func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{
		cache:      gocache.New(gocache.NoExpiration, 0),
		maxHistory: maxHistory,
	}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, turn ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []ConversationTurn
	if x, found := s.cache.Get(sessionID); found {
		history = x.([]ConversationTurn)
	}

	// Newest-first, same layout as the Redis list.
	history = append([]ConversationTurn{turn}, history...)
	if len(history) > s.maxHistory {
		history = history[:s.maxHistory]
	}
	s.cache.Set(sessionID, history, gocache.NoExpiration)
	return nil
}

func (s *MemoryStore) History(_ context.Context, sessionID string, limit int) ([]ConversationTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return []ConversationTurn{}, nil
	}

	x, found := s.cache.Get(sessionID)
	if !found {
		return []ConversationTurn{}, nil
	}
	history := x.([]ConversationTurn)
	if limit < len(history) {
		history = history[:limit]
	}

	turns := make([]ConversationTurn, len(history))
	for i, turn := range history {
		turns[len(history)-1-i] = turn
	}
	return turns, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(sessionID)
	return nil
}

func (s *MemoryStore) HealthCheck(_ context.Context) bool {
	return true
}

func (s *MemoryStore) Shutdown() error {
	return nil
}
