package server

import (
	"log/slog"

	api "github.com/3eLLenKa/journal-review/internal/delivery/http/gen"
	"github.com/3eLLenKa/journal-review/internal/delivery/http/handlers"
	"github.com/3eLLenKa/journal-review/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the generated strict server behind the auth, logging and
// error middleware.
func NewRouter(log *slog.Logger, svc handlers.Service, parser middleware.TokenParser) *gin.Engine {
	router := gin.New()
	// lets handlers read the actor stored on the request context through
	// the *gin.Context they receive
	router.ContextWithFallback = true

	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.ErrorResponder(),
		middleware.OptionalAuth(log, parser),
	)

	handler := api.NewStrictHandler(handlers.NewHandlers(svc), nil)
	api.RegisterHandlersWithOptions(router, handler, api.GinServerOptions{
		ErrorHandler: middleware.ParamErrorHandler,
	})

	return router
}
