package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/knowledge"
	"sib-chatbot-be/internal/pkg/logger"
	"sib-chatbot-be/pkg/llm"
	"sib-chatbot-be/pkg/rag/prompt"
	"sib-chatbot-be/pkg/rag/relevance"
	"sib-chatbot-be/pkg/rag/response"
	"sib-chatbot-be/pkg/rag/scope"
)

// ErrServiceNotReady is the only hard failure Query surfaces. Every other
// problem resolves to a natural-language fallback answer.
var ErrServiceNotReady = errors.New("rag service not ready")

// IRagService is the query pipeline exposed to the HTTP layer.
type IRagService interface {
	Initialize(ctx context.Context) error
	Query(ctx context.Context, message, sessionID string) (*dto.QueryResult, error)
	Reload(ctx context.Context) error
	HealthStatus(ctx context.Context) *dto.HealthStatus
	DocumentCount() int
	Ready() bool
}

type ragService struct {
	store         *knowledge.Store
	loader        *knowledge.DirLoader
	scopeFilter   *scope.Filter
	scorer        *relevance.Scorer
	promptBuilder *prompt.Builder
	llmProvider   llm.LLMProvider
	logger        logger.ILogger

	modelName    string
	modelTimeout time.Duration

	ready atomic.Bool
}

func NewRagService(
	cfg *config.Config,
	store *knowledge.Store,
	loader *knowledge.DirLoader,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IRagService {
	return &ragService{
		store:         store,
		loader:        loader,
		scopeFilter:   scope.NewFilter(),
		scorer:        relevance.NewScorer(cfg.Documents.ChunkSize, cfg.Documents.MaxRelevantDocs),
		promptBuilder: prompt.NewBuilder(),
		llmProvider:   llmProvider,
		logger:        log,
		modelName:     cfg.Ai.ModelName,
		modelTimeout:  time.Duration(cfg.Ai.TimeoutSeconds) * time.Second,
	}
}

// Initialize verifies the model is reachable and loads the knowledge base.
// The service only answers queries after this succeeds.
func (s *ragService) Initialize(ctx context.Context) error {
	s.logger.Info("RagService", "Initializing RAG service", map[string]interface{}{
		"model": s.modelName,
	})

	probe, err := s.callModel(ctx, "Hello")
	if err != nil {
		s.logger.Error("RagService", "LLM connection test failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.logger.Info("RagService", "LLM connection test passed", map[string]interface{}{
		"response": truncateForLog(probe, 50),
	})

	// A missing or unreadable knowledge base degrades answers, it does not
	// block startup.
	if err := s.Reload(ctx); err != nil {
		s.logger.Warn("RagService", "Initial document load failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.ready.Store(true)
	s.logger.Info("RagService", "RAG service initialized", map[string]interface{}{
		"documents": s.store.Len(),
	})
	return nil
}

func (s *ragService) Ready() bool {
	return s.ready.Load()
}

func (s *ragService) DocumentCount() int {
	return s.store.Len()
}

// Query runs scope check -> scoring -> prompt build -> model call. Model
// failures are recovered into a fallback answer with the cause captured on
// the result; the call itself only fails when the service is not ready.
func (s *ragService) Query(ctx context.Context, message, sessionID string) (*dto.QueryResult, error) {
	if !s.ready.Load() {
		return nil, ErrServiceNotReady
	}

	start := time.Now()
	s.logger.Info("RagService", "Processing query", map[string]interface{}{
		"session_id": sessionID,
		"message":    truncateForLog(message, 100),
	})

	if !s.scopeFilter.InScope(message) {
		return s.result(response.OutOfScope, nil, start, sessionID, ""), nil
	}

	snap := s.store.Snapshot()
	scored := s.scorer.Score(message, snap)
	if len(scored) == 0 {
		return s.result(response.NoKnowledge, nil, start, sessionID, ""), nil
	}

	promptText := s.promptBuilder.Build(message, scored)

	sources := make([]string, len(scored))
	for i, doc := range scored {
		sources[i] = doc.Name
	}

	answer, err := s.callModel(ctx, promptText)
	if err != nil {
		s.logger.Error("RagService", "Model call failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return s.result(response.ModelFailure, nil, start, sessionID, err.Error()), nil
	}

	return s.result(strings.TrimSpace(answer), sources, start, sessionID, ""), nil
}

// Reload re-reads the knowledge base and swaps it in atomically. On loader
// failure the previous snapshot stays in place.
func (s *ragService) Reload(ctx context.Context) error {
	content, err := s.loader.Load()
	if err != nil {
		s.logger.Warn("RagService", "Document reload failed, keeping previous content", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.store.Replace(content)
	return nil
}

// HealthStatus reports readiness plus a lightweight model round-trip. It
// never returns an error; failures show up as unhealthy fields.
func (s *ragService) HealthStatus(ctx context.Context) *dto.HealthStatus {
	llmHealthy := false
	if _, err := s.callModel(ctx, "Test connection"); err == nil {
		llmHealthy = true
	} else {
		s.logger.Warn("RagService", "Health check model call failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	status := &dto.HealthStatus{
		Ready:           s.ready.Load() && llmHealthy,
		ContentLoaded:   s.store.Len() > 0,
		DocumentsLoaded: s.store.Len(),
		Model:           s.modelName,
	}
	if last := s.store.LastUpdate(); !last.IsZero() {
		status.LastUpdate = &last
	}
	return status
}

func (s *ragService) callModel(ctx context.Context, promptText string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()
	return s.llmProvider.Generate(callCtx, promptText)
}

func (s *ragService) result(answer string, sources []string, start time.Time, sessionID, errDetail string) *dto.QueryResult {
	if sources == nil {
		sources = []string{}
	}
	return &dto.QueryResult{
		Answer:      answer,
		Sources:     sources,
		Elapsed:     time.Since(start),
		SessionId:   sessionID,
		ErrorDetail: errDetail,
	}
}

func truncateForLog(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
