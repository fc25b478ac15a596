package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"sib-chatbot-be/internal/pkg/logger"
)

// Manager fronts the selected backend and absorbs its failures: reads degrade
// to empty history, writes to false. Cache trouble never fails a chat request.
type Manager struct {
	backend ConversationCache
	state   Backend
	logger  logger.ILogger
}

// NewManager probes Redis once and fixes the backend for the process lifetime.
// On any probe failure the in-memory fallback is used; there is no automatic
// re-probe later.
func NewManager(redisURL string, maxHistory int, ttl time.Duration, log logger.ILogger) *Manager {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("Cache", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{
			"error": err.Error(),
		})
		opt = &redis.Options{Addr: redisURL}
	}

	rdb := redis.NewClient(opt)
	probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(probeCtx).Err(); err != nil {
		log.Warn("Cache", "Redis not available, using memory cache", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
		return NewManagerWithBackend(NewMemoryStore(maxHistory), BackendFallback, log)
	}

	log.Info("Cache", "Redis cache initialized", map[string]interface{}{"url": redisURL})
	return NewManagerWithBackend(NewRedisStore(rdb, maxHistory, ttl), BackendRemote, log)
}

// NewManagerWithBackend wires an explicit backend. Tests use it to force
// either side of the contract.
func NewManagerWithBackend(backend ConversationCache, state Backend, log logger.ILogger) *Manager {
	return &Manager{
		backend: backend,
		state:   state,
		logger:  log,
	}
}

// Backend reports which backend was selected at startup.
func (m *Manager) Backend() Backend {
	return m.state
}

func (m *Manager) Append(ctx context.Context, sessionID string, turn ConversationTurn) bool {
	if err := m.backend.Append(ctx, sessionID, turn); err != nil {
		m.logger.Error("Cache", "Failed to add to chat history", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
		return false
	}
	return true
}

func (m *Manager) History(ctx context.Context, sessionID string, limit int) []ConversationTurn {
	turns, err := m.backend.History(ctx, sessionID, limit)
	if err != nil {
		m.logger.Error("Cache", "Failed to get chat history", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
		return []ConversationTurn{}
	}
	return turns
}

func (m *Manager) Clear(ctx context.Context, sessionID string) bool {
	if err := m.backend.Clear(ctx, sessionID); err != nil {
		m.logger.Error("Cache", "Failed to clear chat history", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
		return false
	}
	return true
}

func (m *Manager) HealthCheck(ctx context.Context) bool {
	return m.backend.HealthCheck(ctx)
}

func (m *Manager) Shutdown() {
	if err := m.backend.Shutdown(); err != nil {
		m.logger.Warn("Cache", "Error closing cache backend", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
