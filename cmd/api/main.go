package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"assetgen/internal/adapter/repo"
	"assetgen/internal/http/handlers"
	"assetgen/internal/http/httpapi"
	"assetgen/internal/infra"
	"assetgen/internal/pipeline"
	"assetgen/internal/providers/genai"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if err := infra.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare schema")
	}

	jobs := repo.NewJobRepository(pool)
	assets := repo.NewAssetRepository(pool)

	geminiClient, err := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure gemini client")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Str("model", geminiClient.Model()).Msg("gemini api key missing, generation requests will fail")
	}

	runner := pipeline.NewRunner(context.Background(), logger)
	pipe := pipeline.New(jobs, assets, geminiClient, logger)

	app := handlers.NewApp(jobs, assets, pipe, runner, geminiClient, logger, cfg.MaxUploadBytes)
	router := httpapi.NewRouter(app, logger, cfg.CORSOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	if err := runner.Wait(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("background jobs still running at shutdown")
	}
	logger.Info().Msg("server stopped")
}
