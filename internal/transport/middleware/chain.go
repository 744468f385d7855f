package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that the first one given is the outermost:
// Chain(mw1, mw2)(h) is mw1(mw2(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Identity authenticates the bearer token and then resolves the actor, in that order.
func Identity(validator tokenValidator, users actorResolver, logger *slog.Logger) Middleware {
	return Chain(Auth(validator), Actor(users, logger))
}
