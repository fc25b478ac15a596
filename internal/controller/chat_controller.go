package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sib-chatbot-be/internal/cache"
	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/pkg/logger"
	"sib-chatbot-be/internal/pkg/serverutils"
	"sib-chatbot-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	cfg            *config.Config
	ragService     service.IRagService
	cacheManager   *cache.Manager
	archiveService service.IArchiveService
	logger         logger.ILogger
}

func NewChatController(
	cfg *config.Config,
	ragService service.IRagService,
	cacheManager *cache.Manager,
	archiveService service.IArchiveService,
	log logger.ILogger,
) IChatController {
	return &chatController{
		cfg:            cfg,
		ragService:     ragService,
		cacheManager:   cacheManager,
		archiveService: archiveService,
		logger:         log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Get("history/:session_id", c.GetHistory)
	h.Delete("history/:session_id", c.ClearHistory)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if len(req.Message) > c.cfg.Chat.MaxMessageLength {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Message too long"))
	}

	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := c.ragService.Query(ctx.Context(), req.Message, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotReady) {
			return ctx.Status(fiber.StatusServiceUnavailable).
				JSON(serverutils.ErrorResponse(503, "Service is starting up, please try again shortly"))
		}
		return err
	}

	// Archive the turn off the request path.
	if err := c.archiveService.Publish(sessionID, req.Message, result.Answer); err != nil {
		c.logger.Warn("ChatController", "Failed to publish archive event", map[string]interface{}{
			"session_id": sessionID, "error": err.Error(),
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Message processed", dto.ChatResponse{
		Answer:       result.Answer,
		Sources:      result.Sources,
		ResponseTime: result.Elapsed.Seconds(),
		SessionId:    sessionID,
		Timestamp:    time.Now().UTC(),
	}))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	limit := ctx.QueryInt("limit", c.cfg.Chat.MaxHistory)

	turns := c.cacheManager.History(ctx.Context(), sessionID, limit)
	history := make([]dto.TurnDTO, len(turns))
	for i, turn := range turns {
		history[i] = dto.TurnDTO{
			UserMessage:       turn.UserMessage,
			AssistantResponse: turn.AssistantResponse,
			Timestamp:         turn.Timestamp,
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", dto.HistoryResponse{
		SessionId: sessionID,
		History:   history,
	}))
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	cleared := c.cacheManager.Clear(ctx.Context(), sessionID)

	return ctx.JSON(serverutils.SuccessResponse("Chat history cleared", dto.ClearHistoryResponse{
		SessionId: sessionID,
		Cleared:   cleared,
	}))
}
