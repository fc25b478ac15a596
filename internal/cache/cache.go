package cache

import (
	"context"
	"time"
)

// ConversationTurn is one user/assistant exchange in a session's history.
type ConversationTurn struct {
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Timestamp         time.Time `json:"timestamp"`
}

// ConversationCache is the storage contract shared by the Redis backend and
// the in-memory fallback. Histories are stored newest-first and capped;
// History returns chronological order (oldest first).
type ConversationCache interface {
	Append(ctx context.Context, sessionID string, turn ConversationTurn) error
	History(ctx context.Context, sessionID string, limit int) ([]ConversationTurn, error)
	Clear(ctx context.Context, sessionID string) error
	HealthCheck(ctx context.Context) bool
	Shutdown() error
}

// Backend identifies which storage backend the manager selected at startup.
type Backend int

const (
	BackendRemote Backend = iota
	BackendFallback
)

func (b Backend) String() string {
	if b == BackendRemote {
		return "redis"
	}
	return "memory"
}
