package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session's history in a Redis list, newest-first.
// Trim and expiry ride along with every append; if the process dies between
// the push and the trim, the oversized list is corrected on the next append.
type RedisStore struct {
	client     *redis.Client
	maxHistory int
	ttl        time.Duration
}

var _ ConversationCache = &RedisStore{}

func NewRedisStore(client *redis.Client, maxHistory int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:     client,
		maxHistory: maxHistory,
		ttl:        ttl,
	}
}

func historyKey(sessionID string) string {
	return "chat_history:" + sessionID
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turn ConversationTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("marshal turn: %w", err)
	}

	key := historyKey(sessionID)
	if err := s.client.LPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("lpush: %w", err)
	}
	if err := s.client.LTrim(ctx, key, 0, int64(s.maxHistory-1)).Err(); err != nil {
		return fmt.Errorf("ltrim: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("expire: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, sessionID string, limit int) ([]ConversationTurn, error) {
	// A non-positive limit would make LRANGE wrap around to the whole list.
	if limit <= 0 {
		return []ConversationTurn{}, nil
	}

	entries, err := s.client.LRange(ctx, historyKey(sessionID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange: %w", err)
	}

	turns := make([]ConversationTurn, 0, len(entries))
	for _, entry := range entries {
		var turn ConversationTurn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			continue // skip corrupt entries
		}
		turns = append(turns, turn)
	}

	// Stored newest-first; callers get chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, historyKey(sessionID)).Err()
}

func (s *RedisStore) HealthCheck(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

func (s *RedisStore) Shutdown() error {
	return s.client.Close()
}
