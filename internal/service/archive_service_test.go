package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"

	"sib-chatbot-be/internal/cache"
)

func TestArchiveServicePersistsTurn(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	manager := cache.NewManagerWithBackend(cache.NewMemoryStore(50), cache.BackendFallback, nopLogger{})
	svc := NewArchiveService(pubSub, "ARCHIVE_TEST", manager, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, svc.Consume(ctx))

	assert.NoError(t, svc.Publish("s1", "What is the savings rate?", "3.5%"))

	assert.Eventually(t, func() bool {
		return len(manager.History(ctx, "s1", 10)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	history := manager.History(ctx, "s1", 10)
	assert.Equal(t, "What is the savings rate?", history[0].UserMessage)
	assert.Equal(t, "3.5%", history[0].AssistantResponse)
	assert.False(t, history[0].Timestamp.IsZero())
}
