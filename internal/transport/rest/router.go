package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups everything mounted by NewRouter.
type Handlers struct {
	Health         *HealthHandler
	Advertisements *AdvertisementHandler
	Comments       *CommentHandler
	Articles       *ArticleHandler
	Catalog        *CatalogHandler
	Users          *UserHandler
}

// NewRouter mounts probes at the root and the API under /api. global wraps
// every route; api wraps only the /api subtree.
func NewRouter(h Handlers, global []func(http.Handler) http.Handler, api []func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(global...)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h.Health.Register(r)

	r.Route("/api", func(ar chi.Router) {
		ar.Use(api...)
		h.Advertisements.Register(ar)
		h.Comments.Register(ar)
		h.Articles.Register(ar)
		h.Catalog.Register(ar)
		h.Users.Register(ar)
	})

	return r
}
