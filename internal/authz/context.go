package authz

import (
	"context"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

type actorKey struct{}

// WithActor stores the request actor in the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromCtx returns the request actor, or an anonymous actor when none is set.
func ActorFromCtx(ctx context.Context) domain.Actor {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok {
		return domain.Anonymous()
	}
	return a
}
