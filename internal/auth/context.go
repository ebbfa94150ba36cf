package auth

import (
	"context"

	"github.com/3eLLenKa/journal-review/internal/domain"
)

type actorKey struct{}

func WithActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller attached by the auth middleware. A
// request without a valid token has no actor.
func ActorFromContext(ctx context.Context) (*domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(*domain.Actor)
	return actor, ok && actor != nil
}
