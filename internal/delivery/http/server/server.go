package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	log    *slog.Logger
	server *http.Server
}

func New(log *slog.Logger, addr string, handler http.Handler) *Server {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{
		log:    log,
		server: s,
	}
}

func (s *Server) Run() error {
	s.log.Info("http server listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("failed to run server", slog.Any("err", err))
		return err
	}

	return nil
}

func (s *Server) MustRun() {
	if err := s.Run(); err != nil {
		panic(err)
	}
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("failed to stop http server gracefully", slog.Any("err", err))
	}
}

// Handler exposes the router, mainly for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
