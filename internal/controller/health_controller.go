package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sib-chatbot-be/internal/cache"
	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/pkg/serverutils"
	"sib-chatbot-be/internal/service"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Basic(ctx *fiber.Ctx) error
	Detailed(ctx *fiber.Ctx) error
	Ready(ctx *fiber.Ctx) error
	Live(ctx *fiber.Ctx) error
}

type healthController struct {
	ragService   service.IRagService
	cacheManager *cache.Manager
}

func NewHealthController(ragService service.IRagService, cacheManager *cache.Manager) IHealthController {
	return &healthController{
		ragService:   ragService,
		cacheManager: cacheManager,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health")
	h.Get("", c.Basic)
	h.Get("detailed", c.Detailed)
	h.Get("ready", c.Ready)
	h.Get("live", c.Live)
}

func (c *healthController) Basic(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:     "healthy",
		Components: map[string]interface{}{"api": "healthy"},
		Timestamp:  time.Now().UTC(),
	})
}

// Detailed probes the model and the cache backend. Probe failures are
// reported in the payload, never as an HTTP error.
func (c *healthController) Detailed(ctx *fiber.Ctx) error {
	ragStatus := c.ragService.HealthStatus(ctx.Context())
	cacheHealthy := c.cacheManager.HealthCheck(ctx.Context())

	components := map[string]interface{}{
		"llm":           healthWord(ragStatus.Ready),
		"documents":     healthWord(ragStatus.ContentLoaded),
		"cache":         healthWord(cacheHealthy),
		"cache_backend": c.cacheManager.Backend().String(),
		"model":         ragStatus.Model,
	}
	if ragStatus.LastUpdate != nil {
		components["last_update"] = ragStatus.LastUpdate
	}

	return ctx.JSON(dto.HealthResponse{
		Status:     healthWord(ragStatus.Ready && cacheHealthy),
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func (c *healthController) Ready(ctx *fiber.Ctx) error {
	if !c.ragService.Ready() {
		return ctx.Status(fiber.StatusServiceUnavailable).
			JSON(serverutils.ErrorResponse(503, "not_ready"))
	}
	return ctx.JSON(fiber.Map{"status": "ready"})
}

func (c *healthController) Live(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "alive", "timestamp": time.Now().UTC()})
}

func healthWord(healthy bool) string {
	if healthy {
		return "healthy"
	}
	return "unhealthy"
}
