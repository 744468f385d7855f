package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/pkg/ctxutil"
)

type actorResolver interface {
	GetActor(ctx context.Context, id uuid.UUID) (domain.Actor, error)
}

// Actor loads the role and staff flag of the authenticated user and stores the
// resulting domain.Actor for authz.ActorFromCtx. It must run after Auth.
func Actor(users actorResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := users.GetActor(r.Context(), userID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusUnauthorized, "user no longer exists")
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "resolve actor",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(authz.WithActor(r.Context(), actor)))
		})
	}
}
