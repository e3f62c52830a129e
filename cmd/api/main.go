package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vastgoed-sync/internal/config"
	"vastgoed-sync/internal/interfaces/router"
	"vastgoed-sync/internal/pkg/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logging.Setup(cfg.Env)

	app, c, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}
	defer c.Close()

	if c.Redis != nil {
		log.Info().Msg("Redis connected")
	} else {
		log.Warn().Msg("Redis not configured: job locks are process-local, geocoding is not cached")
	}
	log.Info().Str("port", cfg.Port).Strs("marketplaces", c.Runner.Marketplaces.Registry.Names()).Msg("Server starting")

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
