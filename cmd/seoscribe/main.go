// Package main is the entry point for the blog generation API server.
// It loads configuration, connects to services, wires the AI pipeline,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"seoscribe/internal/ai"
	"seoscribe/internal/analyze"
	"seoscribe/internal/cache"
	"seoscribe/internal/chatedit"
	"seoscribe/internal/compose"
	"seoscribe/internal/config"
	"seoscribe/internal/database"
	"seoscribe/internal/fetch"
	"seoscribe/internal/handlers"
	"seoscribe/internal/research"
	"seoscribe/internal/router"
	"seoscribe/internal/store"
)

func main() {
	// Local development reads a .env file; in production the environment
	// comes from the deployment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"provider", cfg.AIProvider,
	)

	// Connect to PostgreSQL and bring the schema up to date.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Valkey backs the research findings cache. The cache fails open, so a
	// missing Valkey only costs repeat vendor calls.
	var researchCache *cache.ResearchCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, research caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		researchCache = cache.NewResearchCache(valkeyClient, cache.DefaultResearchTTL)
	}

	// The AI provider registry holds every vendor with a configured key.
	// Perplexity serves research; the active provider serves generation.
	registry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"perplexity": {APIKey: cfg.PerplexityKey, Model: cfg.PerplexityModel, BaseURL: cfg.PerplexityBaseURL, KeyEnvVar: config.EnvPerplexityKey, Temperature: 0.2, MaxTokens: 1000},
		"openai":     {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL, KeyEnvVar: config.EnvOpenAIKey, Temperature: 0.7},
		"gemini":     {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL, KeyEnvVar: config.EnvGeminiKey, Temperature: 0.7},
		"claude":     {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL, KeyEnvVar: config.EnvClaudeKey, Temperature: 0.7},
		"mistral":    {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL, KeyEnvVar: config.EnvMistralKey, Temperature: 0.7},
	})

	slog.Info("ai providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)

	// Wire the pipeline. Services stay nil when their vendor key is
	// missing; the handlers answer those requests with a configuration
	// error naming the key.
	api := handlers.NewAPI(config.EnvPerplexityKey, generationKeyEnv(cfg.AIProvider))
	api.Registry = registry
	api.Fetcher = fetch.New(cfg.FetchTimeout, 0)

	if rp, err := registry.Provider("perplexity"); err == nil {
		api.Analyzer = analyze.New(rp)
		api.Researcher = research.New(rp, researchCache, cfg.ResearchConcurrency)
	} else {
		slog.Warn("research provider not configured", "key", config.EnvPerplexityKey)
	}

	if gen, err := registry.Active(); err == nil {
		api.Composer = compose.New(gen)
		api.Editor = chatedit.New(gen)
	} else {
		slog.Warn("generation provider not configured", "provider", cfg.AIProvider)
	}

	api.Blogs = store.NewBlogStore(db)
	api.Profiles = store.NewBrandProfileStore(db)
	api.ToneSamples = store.NewToneSampleStore(db)
	api.Competitors = store.NewCompetitorURLStore(db)

	r := router.New(api)

	// WriteTimeout must accommodate the pipeline endpoints, which wait on
	// several sequential LLM responses.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// generationKeyEnv maps the active provider name to the environment
// variable its key comes from, for configuration error messages.
func generationKeyEnv(provider string) string {
	switch provider {
	case "gemini":
		return config.EnvGeminiKey
	case "claude":
		return config.EnvClaudeKey
	case "mistral":
		return config.EnvMistralKey
	default:
		return config.EnvOpenAIKey
	}
}
