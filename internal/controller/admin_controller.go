package controller

import (
	"runtime"

	"github.com/gofiber/fiber/v2"

	"sib-chatbot-be/internal/cache"
	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/pkg/serverutils"
	"sib-chatbot-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ReloadDocuments(ctx *fiber.Ctx) error
	SystemInfo(ctx *fiber.Ctx) error
}

type adminController struct {
	cfg          *config.Config
	ragService   service.IRagService
	cacheManager *cache.Manager
}

func NewAdminController(cfg *config.Config, ragService service.IRagService, cacheManager *cache.Manager) IAdminController {
	return &adminController{
		cfg:          cfg,
		ragService:   ragService,
		cacheManager: cacheManager,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.AdminAuthMiddleware(c.cfg.App.AdminSecret))
	h.Post("reload-documents", c.ReloadDocuments)
	h.Get("system-info", c.SystemInfo)
}

func (c *adminController) ReloadDocuments(ctx *fiber.Ctx) error {
	if err := c.ragService.Reload(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.ErrorResponse(500, "Failed to reload documents"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Documents reloaded successfully", dto.ReloadResponse{
		Count: c.ragService.DocumentCount(),
	}))
}

func (c *adminController) SystemInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("System info", dto.SystemInfoResponse{
		Environment:     c.cfg.App.Environment,
		Model:           c.cfg.Ai.ModelName,
		Ready:           c.ragService.Ready(),
		DocumentsLoaded: c.ragService.DocumentCount(),
		CacheBackend:    c.cacheManager.Backend().String(),
		GoVersion:       runtime.Version(),
		NumGoroutine:    runtime.NumGoroutine(),
	}))
}
