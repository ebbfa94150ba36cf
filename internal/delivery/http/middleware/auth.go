package middleware

import (
	"log/slog"
	"strings"

	"github.com/3eLLenKa/journal-review/internal/auth"
	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/gin-gonic/gin"
)

type TokenParser interface {
	Parse(raw string) (*domain.Actor, error)
}

// OptionalAuth attaches the caller from a valid bearer token to the request
// context. Requests without a usable token pass through anonymously and the
// workflow decides whether that is allowed.
func OptionalAuth(log *slog.Logger, parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.Next()
			return
		}

		actor, err := parser.Parse(token)
		if err != nil {
			log.Debug("middleware.OptionalAuth: ignoring invalid token", slog.Any("error", err))
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
