package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ib-compliance/internal/app"
	"ib-compliance/internal/config"
	"ib-compliance/internal/handlers"
	"ib-compliance/internal/logger"
	"ib-compliance/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = lg.Sync() }()

	a, err := app.New(cfg, lg)
	if err != nil {
		lg.Fatal("failed to start", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// каталог заполняется один раз при старте, до приёма запросов
	if _, err := a.Engine.Seed(ctx); err != nil {
		lg.Error("catalog seeding failed, will retry on first list request", zap.Error(err))
	}

	r, err := server.NewRouter(cfg, handlers.New(a.Engine, a.Risks, lg), lg)
	if err != nil {
		lg.Fatal("failed to build router", zap.Error(err))
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	if err := server.Run(ctx, addr, r, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
