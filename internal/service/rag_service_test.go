package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/knowledge"
	"sib-chatbot-be/pkg/llm"
	"sib-chatbot-be/pkg/rag/response"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// stubProvider counts model invocations and returns a fixed answer or error.
type stubProvider struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testConfig() *config.Config {
	return &config.Config{
		Documents: config.DocumentsConfig{ChunkSize: 1000, MaxRelevantDocs: 5},
		Ai:        config.AIConfig{ModelName: "test-model", TimeoutSeconds: 5},
	}
}

func newTestService(t *testing.T, provider llm.LLMProvider, documents map[string]string) IRagService {
	t.Helper()

	dir := t.TempDir()
	for name, text := range documents {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := testConfig()
	store := knowledge.NewStore()
	loader := knowledge.NewDirLoader(dir, cfg.Documents.ChunkSize, nopLogger{})

	return NewRagService(cfg, store, loader, provider, nopLogger{})
}

func TestQueryFailsBeforeInitialization(t *testing.T) {
	svc := newTestService(t, &stubProvider{response: "ok"}, nil)

	result, err := svc.Query(context.Background(), "What is the savings rate?", "s1")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrServiceNotReady)
}

func TestInitializeFailsWhenModelUnreachable(t *testing.T) {
	svc := newTestService(t, &stubProvider{err: errors.New("connection refused")}, nil)

	assert.Error(t, svc.Initialize(context.Background()))
	assert.False(t, svc.Ready())
}

func TestQueryOutOfScopeSkipsModel(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc := newTestService(t, provider, map[string]string{"savings.txt": "Savings deposit info"})
	assert.NoError(t, svc.Initialize(context.Background()))

	callsAfterInit := provider.callCount()
	result, err := svc.Query(context.Background(), "What is the weather today?", "s1")

	assert.NoError(t, err)
	assert.Equal(t, response.OutOfScope, result.Answer)
	assert.Empty(t, result.Sources)
	assert.Equal(t, "s1", result.SessionId)
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, callsAfterInit, provider.callCount(), "refusal must not call the model")
}

func TestQueryEmptyStoreReturnsNoKnowledge(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc := newTestService(t, provider, nil)
	assert.NoError(t, svc.Initialize(context.Background()))

	callsAfterInit := provider.callCount()
	result, err := svc.Query(context.Background(), "What is the savings interest rate?", "s1")

	assert.NoError(t, err)
	assert.Equal(t, response.NoKnowledge, result.Answer)
	assert.Empty(t, result.Sources)
	assert.Equal(t, callsAfterInit, provider.callCount(), "no-knowledge branch must not call the model")
}

func TestQuerySuccessReturnsSources(t *testing.T) {
	provider := &stubProvider{response: "  The savings interest rate is 3.5%.  "}
	svc := newTestService(t, provider, map[string]string{
		"savings.txt": "Savings account interest rate is 3.5%",
	})
	assert.NoError(t, svc.Initialize(context.Background()))

	result, err := svc.Query(context.Background(), "What is the savings interest rate?", "s1")

	assert.NoError(t, err)
	assert.Equal(t, "The savings interest rate is 3.5%.", result.Answer)
	assert.Equal(t, []string{"savings.txt"}, result.Sources)
	assert.Empty(t, result.ErrorDetail)
}

func TestQueryModelFailureRecovers(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc := newTestService(t, provider, map[string]string{
		"savings.txt": "Savings account interest rate is 3.5%",
	})
	assert.NoError(t, svc.Initialize(context.Background()))

	provider.mu.Lock()
	provider.err = errors.New("model timeout")
	provider.mu.Unlock()

	result, err := svc.Query(context.Background(), "What is the savings interest rate?", "s1")

	assert.NoError(t, err, "model failures must not fail the query")
	assert.Equal(t, response.ModelFailure, result.Answer)
	assert.Empty(t, result.Sources)
	assert.Contains(t, result.ErrorDetail, "model timeout")
}

func TestReloadPicksUpNewDocuments(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	store := knowledge.NewStore()
	loader := knowledge.NewDirLoader(dir, cfg.Documents.ChunkSize, nopLogger{})
	svc := NewRagService(cfg, store, loader, &stubProvider{response: "ok"}, nopLogger{})
	assert.NoError(t, svc.Initialize(context.Background()))
	assert.Equal(t, 0, svc.DocumentCount())

	err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("Savings deposit info"), 0o644)
	assert.NoError(t, err)

	assert.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, 1, svc.DocumentCount())
}

func TestHealthStatusReportsState(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc := newTestService(t, provider, map[string]string{"savings.txt": "Savings info"})
	assert.NoError(t, svc.Initialize(context.Background()))

	status := svc.HealthStatus(context.Background())
	assert.True(t, status.Ready)
	assert.True(t, status.ContentLoaded)
	assert.Equal(t, 1, status.DocumentsLoaded)
	assert.Equal(t, "test-model", status.Model)
	assert.NotNil(t, status.LastUpdate)

	provider.mu.Lock()
	provider.err = errors.New("down")
	provider.mu.Unlock()

	status = svc.HealthStatus(context.Background())
	assert.False(t, status.Ready, "health should report an unreachable model")
	assert.True(t, status.ContentLoaded)
}
