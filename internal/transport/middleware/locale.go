package middleware

import (
	"net/http"

	"github.com/Berlkot/django-proj-kek-2025/internal/locale"
)

// Locale picks the age formatter from the Accept-Language header.
func Locale(registry *locale.Registry) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f := registry.Match(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(locale.WithFormatter(r.Context(), f)))
		})
	}
}
