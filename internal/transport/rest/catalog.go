package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/catalog"
)

type catalogService interface {
	FilterOptions(ctx context.Context) (*catalog.FilterOptions, error)
	BreedsBySpecies(ctx context.Context, speciesID int64) ([]domain.Breed, error)
	ArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error)
}

// CatalogHandler serves reference data for forms and filters.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/filter-options", h.FilterOptions)
	r.Get("/species/{id}/breeds", h.Breeds)
	r.Get("/article-categories", h.ArticleCategories)
}

// FilterOptions handles GET /filter-options.
func (h *CatalogHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// Breeds handles GET /species/{id}/breeds.
func (h *CatalogHandler) Breeds(w http.ResponseWriter, r *http.Request) {
	speciesID, err := int64Param(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	breeds, err := h.svc.BreedsBySpecies(r.Context(), speciesID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[catalog.BreedOption]{Count: len(breeds), Results: make([]catalog.BreedOption, 0, len(breeds))}
	for _, b := range breeds {
		resp.Results = append(resp.Results, catalog.BreedOption{ID: b.ID, SpeciesID: b.SpeciesID, Name: b.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ArticleCategories handles GET /article-categories.
func (h *CatalogHandler) ArticleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ArticleCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[articleCategoryResponse]{Count: len(categories), Results: make([]articleCategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Results = append(resp.Results, toArticleCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
