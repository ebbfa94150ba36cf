package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/3eLLenKa/journal-review/internal/app"
	"github.com/3eLLenKa/journal-review/internal/config"
)

func main() {
	cfg := config.MustLoad()

	log := app.NewLogger(cfg.App)
	slog.SetDefault(log)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.NewApp(startCtx, cfg, log)
	cancelStart()
	if err != nil {
		log.Error("failed to start application", slog.Any("err", err))
		os.Exit(1)
	}

	go func() {
		application.Server.MustRun()
	}()

	log.Info("application started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	application.Stop(ctx)
	log.Info("application stopped")
}
