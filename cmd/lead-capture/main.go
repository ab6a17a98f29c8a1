package main

import (
	"context"
	"log"
	"strconv"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/app/router"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/config"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/otel"
)

func main() {
	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logging.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown, err := otel.Setup(ctx, cfg.Otel.ServiceName, cfg.Otel.CollectorURL)
	if err != nil {
		logger.CtxError(ctx, "Error setting up OTLP", err)
	}
	defer func() {
		if shutdown == nil {
			return
		}
		if err := shutdown(ctx); err != nil {
			logger.CtxError(ctx, "Error shutting down OTLP", err)
		}
	}()

	r := router.SetupRouter(cfg)

	port := strconv.Itoa(cfg.Server.Port)
	logger.CtxInfo(ctx, "Starting lead capture server on port "+port)

	if err := r.Run(":" + port); err != nil {
		logger.CtxError(ctx, "Failed to run server", err)
	}
}
