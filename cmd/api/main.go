package main

import (
	"context"
	"fmt"
	"log"

	openaiadapter "github.com/Kuzay3t/AgriLingua/internal/adapter/openai"
	"github.com/Kuzay3t/AgriLingua/internal/adapter/repository/postgres"
	"github.com/Kuzay3t/AgriLingua/internal/delivery/http/handler"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/chat"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/rag"
	"github.com/Kuzay3t/AgriLingua/pkg/config"
	"github.com/Kuzay3t/AgriLingua/pkg/database"

	"github.com/gofiber/fiber/v2"

	// log
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("connected to database")

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// initialize model clients
	embeddingClient := openaiadapter.NewEmbeddingClient(cfg.OpenAIKey, cfg.OpenAIEmbeddingModel)
	chatClient := openaiadapter.NewChatClient(cfg.GroqKey, cfg.GroqBaseURL, cfg.GroqChatModel)

	// initialize repository
	chunkRepo := postgres.NewChunkRepository(db)

	// initialize services
	chunker := rag.NewChunker(cfg.MaxChunkSize, cfg.MinChunkLength)
	ingestionService := rag.NewIngestionService(chunker, embeddingClient, chunkRepo, cfg.IngestBatchSize)
	retrievalService := rag.NewRetrievalService(embeddingClient, chunkRepo, cfg.TopKResults, cfg.SimilarityThreshold)
	orchestrator := chat.NewOrchestrator(retrievalService, chatClient, cfg.TopKResults, cfg.ChatContextThreshold)

	// initialize handlers
	ragHandler := handler.NewRAGHandler(ingestionService, retrievalService, rag.NewTextExtractor(), chunkRepo)
	chatHandler := handler.NewChatHandler(orchestrator)

	// initialize fiber app
	app := fiber.New()

	// middleware for log request and response in terminal
	app.Use(logger.New())

	api := app.Group("/api")

	// rag routes
	api.Post("/rag/documents", ragHandler.StoreChunks)
	api.Get("/rag/documents", ragHandler.ListDocuments)
	api.Post("/rag/ingest", ragHandler.Ingest)
	api.Post("/rag/ingest/upload", ragHandler.Upload)
	api.Post("/rag/query", ragHandler.Query)

	// chat route
	api.Post("/chat", chatHandler.Chat)

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
