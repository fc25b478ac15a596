package bootstrap

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sib-chatbot-be/internal/cache"
	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/controller"
	"sib-chatbot-be/internal/knowledge"
	"sib-chatbot-be/internal/pkg/logger"
	"sib-chatbot-be/internal/service"
	"sib-chatbot-be/pkg/llm/ollama"
)

const archiveTopic = "ARCHIVE_CONVERSATION"

// Container wires every component explicitly; nothing lives in package-level
// state. main.go owns the lifecycle of everything here.
type Container struct {
	// Controllers
	ChatController     controller.IChatController
	HealthController   controller.IHealthController
	AdminController    controller.IAdminController
	ServicesController controller.IServicesController

	// Background services (exposed for main.go to run)
	RagService     service.IRagService
	ArchiveService service.IArchiveService
	Watcher        *knowledge.Watcher
	CacheManager   *cache.Manager

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Knowledge base
	store := knowledge.NewStore()
	loader := knowledge.NewDirLoader(cfg.Documents.Path, cfg.Documents.ChunkSize, sysLogger)

	// 3. LLM provider
	llmProvider := ollama.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.ModelName,
		cfg.Ai.Temperature,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	sysLogger.Info("Bootstrap", "Using LLM provider: ollama", map[string]interface{}{
		"model": cfg.Ai.ModelName,
	})

	// 4. Session cache (probes Redis once, falls back to memory)
	cacheManager := cache.NewManager(
		cfg.App.RedisURL,
		cfg.Chat.MaxHistory,
		time.Duration(cfg.Chat.HistoryTTLHours)*time.Hour,
		sysLogger,
	)

	// 5. Event bus for conversation archiving
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 6. Services
	ragService := service.NewRagService(cfg, store, loader, llmProvider, sysLogger)
	archiveService := service.NewArchiveService(pubSub, archiveTopic, cacheManager, sysLogger)

	// 7. Document watcher (auto-reload on file changes)
	watcher, err := knowledge.NewWatcher(cfg.Documents.Path, ragService.Reload, sysLogger)
	if err != nil {
		sysLogger.Warn("Bootstrap", "File watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		watcher = nil
	}

	// 8. Controllers
	return &Container{
		ChatController:     controller.NewChatController(cfg, ragService, cacheManager, archiveService, sysLogger),
		HealthController:   controller.NewHealthController(ragService, cacheManager),
		AdminController:    controller.NewAdminController(cfg, ragService, cacheManager),
		ServicesController: controller.NewServicesController(),

		RagService:     ragService,
		ArchiveService: archiveService,
		Watcher:        watcher,
		CacheManager:   cacheManager,
		Logger:         sysLogger,
	}
}
