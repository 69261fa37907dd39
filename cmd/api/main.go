package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fundrise/internal/http/handlers"
	httpapi "fundrise/internal/http/httpapi"
	"fundrise/internal/infra"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	store, err := infra.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect document store")
	}
	logger.Info().Str("database", store.Name()).Msg("document store connected")

	app := handlers.NewApp(store, logger)
	router := httpapi.NewRouter(app, httpapi.Options{RateLimitPerMin: cfg.RateLimitPerMin})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to close document store")
	}
	logger.Info().Msg("server stopped")
}
