package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sib-chatbot-be/internal/cache"
	"sib-chatbot-be/internal/pkg/logger"
)

// ArchiveTurnMessage is the payload published after a chat response is sent.
type ArchiveTurnMessage struct {
	SessionId         string    `json:"session_id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	Timestamp         time.Time `json:"timestamp"`
}

// IArchiveService persists finished conversation turns to the session cache
// off the request path, so a slow cache never delays the chat response.
type IArchiveService interface {
	Publish(sessionID, userMessage, assistantResponse string) error
	Consume(ctx context.Context) error
}

type archiveService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	cache     *cache.Manager
	logger    logger.ILogger
}

func NewArchiveService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cacheManager *cache.Manager,
	log logger.ILogger,
) IArchiveService {
	return &archiveService{
		pubSub:    pubSub,
		topicName: topicName,
		cache:     cacheManager,
		logger:    log,
	}
}

func (as *archiveService) Publish(sessionID, userMessage, assistantResponse string) error {
	payload, err := json.Marshal(ArchiveTurnMessage{
		SessionId:         sessionID,
		UserMessage:       userMessage,
		AssistantResponse: assistantResponse,
		Timestamp:         time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return as.pubSub.Publish(as.topicName, message.NewMessage(watermill.NewUUID(), payload))
}

func (as *archiveService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (as *archiveService) processMessage(ctx context.Context, msg *message.Message) {
	var payload ArchiveTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		as.logger.Error("Archive", "Failed to unmarshal archive message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	// The cache manager degrades internally on backend failure, so there is
	// nothing to retry here either way.
	as.cache.Append(ctx, payload.SessionId, cache.ConversationTurn{
		UserMessage:       payload.UserMessage,
		AssistantResponse: payload.AssistantResponse,
		Timestamp:         payload.Timestamp,
	})
	msg.Ack()
}
