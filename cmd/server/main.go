package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"social-media-api/internal/api"
	"social-media-api/internal/config"
	"social-media-api/internal/database"
	"social-media-api/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap.NewDevelopment: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.NewConfig()
	if err != nil {
		sugar.Fatalf("config: %v", err)
	}

	repo, err := database.NewPgRepository(sugar, cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalf("db open: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			sugar.Errorf("db close: %v", err)
		}
	}()

	accounts := service.NewAccountService(sugar, repo)
	messages := service.NewMessageService(sugar, repo)

	srv := api.NewServer(sugar, accounts, messages, repo, cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		sugar.Infof("received signal: %s", sig)
	case err := <-errCh:
		sugar.Errorf("server: %v", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		sugar.Fatalf("HTTP server shutdown: %v", err)
	}

	sugar.Info("shutdown complete")
}
