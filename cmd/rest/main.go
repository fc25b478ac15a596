package main

import (
	"context"
	"log"

	"sib-chatbot-be/internal/bootstrap"
	"sib-chatbot-be/internal/config"
	"sib-chatbot-be/internal/server"
	"sib-chatbot-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()
	defer container.CacheManager.Shutdown()

	// 4. Start Background Services
	if err := container.ArchiveService.Consume(context.Background()); err != nil {
		log.Printf("Background Archive Consumer Error: %v", err)
	}

	if container.Watcher != nil {
		go func() {
			if err := container.Watcher.Run(context.Background()); err != nil {
				log.Printf("Background Watcher Error: %v", err)
			}
		}()
	}

	// 5. Initialize RAG pipeline. A failed init leaves the service not-ready
	// (chat returns 503) rather than killing the process.
	if err := container.RagService.Initialize(context.Background()); err != nil {
		log.Printf("[WARN] RAG service initialization failed: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
