// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/logging"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.Setup(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini init")
	}
	defer provider.Close()

	scopes := ratelimit.DefaultScopes()
	if cfg.Limits.File != "" {
		scopes, err = config.LoadLimits(cfg.Limits.File)
		if err != nil {
			logger.Fatal().Err(err).Msg("load limits file")
		}
	}
	limiter := ratelimit.New(scopes)

	cache := itinerary.NewCache(cfg.Cache.Capacity)
	gateway := itinerary.NewGateway(cache)
	svc := itinerary.NewService(gateway, cache, limiter, provider, cfg.Generation.Timeout)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httptransport.NewRouter(svc, logger, cfg.Environment)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting voyago-api")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}
