// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trailhead/internal/config"
	"trailhead/internal/gateway"
	httptransport "trailhead/internal/http"
	"trailhead/internal/infra"
	"trailhead/internal/llm"
	"trailhead/internal/logging"
	"trailhead/internal/modules/recommendation"
)

func main() {
	logger := logging.New(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Error("db init failed", "err", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	store := recommendation.NewStore(dbPool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("schema init failed", "err", err)
		os.Exit(1)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	cache := gateway.NewCache(redisClient, cfg.Gateway.CacheTTL)

	gw := gateway.NewClient(cfg.Gateway.Endpoint, cfg.Gateway.Timeout, cache, logger)
	defer gw.Close()

	var generator llm.Generator
	switch cfg.LLM.Provider {
	case "gemini":
		gemini, err := llm.NewGeminiProvider(ctx, cfg.LLM.GeminiKey, logger)
		if err != nil {
			logger.Error("gemini init failed", "err", err)
			os.Exit(1)
		}
		defer gemini.Close()
		generator = gemini
	default:
		generator = llm.NewOpenAIProvider(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.Timeout, logger)
	}

	recSvc := recommendation.NewService(store, gw, generator, logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(recSvc, gw, logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("trailhead listening",
		"addr", cfg.HTTP.Addr,
		"llm_provider", cfg.LLM.Provider,
		"llm_base_url", cfg.LLM.BaseURL,
		"mcp_gateway", cfg.Gateway.Endpoint,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
