// @title         akiya-concierge API
// @version       1.0
// @description   空き家・不動産カタログに基づいてユーザーの質問にLLMが回答するチャットサービス。
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/akiyanavi/concierge/docs"

	// internal imports
	apihttp "github.com/akiyanavi/concierge/api/http"
	"github.com/akiyanavi/concierge/api/http/handlers"
	"github.com/akiyanavi/concierge/pkg/chat"
	"github.com/akiyanavi/concierge/pkg/config"
	"github.com/akiyanavi/concierge/pkg/health"
	healthnotion "github.com/akiyanavi/concierge/pkg/health/checkers"
	"github.com/akiyanavi/concierge/pkg/listing"
	"github.com/akiyanavi/concierge/pkg/llm/anthropic"
	"github.com/akiyanavi/concierge/pkg/logger"
	"github.com/akiyanavi/concierge/pkg/notion"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	// Outbound clients are constructed here and injected; nothing global.
	notionClient := notion.New(cfg.NotionToken, cfg.NotionDatabaseID, cfg.NotionBase)
	llmClient := anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicBase, cfg.AnthropicModel, cfg.MaxTokens)

	catalog := listing.NewSource(notionClient)
	chatUC := chat.NewService(catalog, llmClient, zlog)
	chatHandler := handlers.NewChatHandler(chatUC, zlog)
	suggestHandler := handlers.NewSuggestHandler()

	// Health service: compose checkers
	readiness := health.NewService(healthnotion.NewNotionChecker(notionClient))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	apihttp.Register(app, chatHandler, suggestHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	zlog.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
