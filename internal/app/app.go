package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/3eLLenKa/journal-review/internal/auth"
	"github.com/3eLLenKa/journal-review/internal/config"
	"github.com/3eLLenKa/journal-review/internal/delivery/http/server"
	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/events"
	"github.com/3eLLenKa/journal-review/internal/i18n"
	"github.com/3eLLenKa/journal-review/internal/ports"
	"github.com/3eLLenKa/journal-review/internal/repository"
	"github.com/3eLLenKa/journal-review/internal/service"
	"github.com/gin-gonic/gin"
)

type App struct {
	Server *server.Server

	log       *slog.Logger
	store     ports.Store
	publisher ports.EventPublisher
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := repository.New(ctx, log, cfg.Database, cfg.Migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	publisher, err := newPublisher(cfg.Events, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	tr, err := i18n.New(cfg.Workflow.Locale)
	if err != nil {
		_ = store.Close()
		_ = publisher.Close()
		return nil, err
	}

	issuer, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		_ = store.Close()
		_ = publisher.Close()
		return nil, err
	}

	svc := service.New(log, store, publisher, tr, service.Config{
		Policy:  domain.TransitionPolicy{ProtectTerminal: cfg.Workflow.ProtectTerminalStates},
		Timeout: cfg.Workflow.OpTimeout,
	})

	if !strings.EqualFold(cfg.App.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(log, svc, issuer)

	return &App{
		Server:    server.New(log, ":"+cfg.App.Port, router),
		log:       log,
		store:     store,
		publisher: publisher,
	}, nil
}

// Stop shuts the HTTP server down first so that no request is left without
// its store or publisher.
func (a *App) Stop(ctx context.Context) {
	a.Server.Stop(ctx)

	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close event publisher", slog.Any("err", err))
	}
	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close store", slog.Any("err", err))
	}
}

func newPublisher(cfg config.Events, log *slog.Logger) (ports.EventPublisher, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 {
		log.Info("no kafka brokers configured, workflow events go to the log")
		return events.NewLoggingPublisher(log), nil
	}
	return events.NewKafkaPublisher(brokers, cfg.Topic)
}

func NewLogger(cfg config.App) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
