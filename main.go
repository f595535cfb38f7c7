package main

import (
	"context"
	"log"

	"github.com/rheadsz/voice-ai-agent/internal/bootstrap"
	"github.com/rheadsz/voice-ai-agent/internal/config"
	"github.com/rheadsz/voice-ai-agent/internal/observability"
	"github.com/rheadsz/voice-ai-agent/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "shutdown failed", err)
	}
}
