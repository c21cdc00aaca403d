// cmd/api-server/main.go
package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"handbag-explorer/internal/api"
	"handbag-explorer/internal/common/config"
	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/common/observability"
	"handbag-explorer/internal/providers/ai"
	"handbag-explorer/internal/providers/search"
	"handbag-explorer/internal/providers/vector"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting api server...",
		zap.String("name", cfg.App.Name),
		zap.String("search_provider", cfg.Search.Provider),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Search provider ---
	// A missing hosted API key is not fatal; the search route answers
	// with an empty result set and an explanatory message.
	var searchProvider search.Provider
	switch cfg.Search.Provider {
	case "elasticsearch":
		provider, err := search.NewElasticProvider(
			cfg.Search.Elasticsearch.Addresses,
			cfg.Search.Elasticsearch.Username,
			cfg.Search.Elasticsearch.Password,
			cfg.Search.Elasticsearch.Index,
			log,
		)
		if err != nil {
			zapLog.Fatal("elasticsearch client init failed", zap.Error(err))
		}
		searchProvider = provider
	default:
		if cfg.Search.Hosted.APIKey != "" {
			searchProvider = search.NewHostedProvider(
				cfg.Search.Hosted.BaseURL,
				cfg.Search.Hosted.APIKey,
				config.GetDuration(cfg.Search.Hosted.Timeout),
				cfg.Search.Hosted.MaxRetries,
				log,
			)
		} else {
			zapLog.Warn("No search API key configured, search will return empty results")
		}
	}

	// --- AI providers ---
	var chat ai.ChatProvider
	var embedder ai.EmbeddingProvider
	if cfg.AI.APIKey != "" {
		client := ai.NewClient(ai.Config{
			BaseURL:        cfg.AI.BaseURL,
			APIKey:         cfg.AI.APIKey,
			ChatModel:      cfg.AI.ChatModel,
			EmbeddingModel: cfg.AI.EmbeddingModel,
			Temperature:    cfg.AI.Temperature,
			MaxTokens:      cfg.AI.MaxTokens,
		})
		chat = client
		embedder = client
	} else {
		zapLog.Warn("No AI API key configured, concierge falls back to the deterministic parser")
	}
	concierge := ai.NewConcierge(chat, log)

	// --- Vector index ---
	var store vector.Store
	if cfg.Vector.BaseURL != "" && cfg.Vector.APIKey != "" {
		store = vector.NewPineconeStore(cfg.Vector.BaseURL, cfg.Vector.APIKey, config.GetDuration(cfg.Vector.Timeout))
	} else {
		zapLog.Warn("No vector index configured, similarity lookups will be empty")
	}
	similarity := vector.NewSimilarityService(store, embedder, log)

	// --- HTTP server ---
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	})

	allow := cfg.Server.AllowOrigins
	if allow == "" {
		allow = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allow,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handler := api.NewHandler(cfg, searchProvider, concierge, similarity, log)
	api.RegisterRoutes(app, handler, obs)

	// Prometheus metrics on a separate listener.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		if err := app.Listen(cfg.Server.Address); err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()
	zapLog.Info("API server listening", zap.String("address", cfg.Server.Address))

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
