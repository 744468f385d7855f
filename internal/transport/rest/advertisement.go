package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/advertisement"
)

type advertisementService interface {
	Create(ctx context.Context, input advertisement.CreateInput) (*advertisement.View, error)
	Update(ctx context.Context, input advertisement.UpdateInput) (*advertisement.View, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*advertisement.View, error)
	List(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error)
	ListMine(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error)
	Rate(ctx context.Context, input advertisement.RateInput) (domain.AdStats, error)
	Approve(ctx context.Context, id uuid.UUID) (*advertisement.View, error)
}

// AdvertisementHandler serves the advertisement endpoints.
type AdvertisementHandler struct {
	svc advertisementService
	log *slog.Logger
}

// NewAdvertisementHandler creates an AdvertisementHandler.
func NewAdvertisementHandler(svc advertisementService, logger *slog.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{svc: svc, log: logger.With("handler", "advertisement")}
}

// Register mounts the handler under /advertisements.
func (h *AdvertisementHandler) Register(r chi.Router) {
	r.Route("/advertisements", func(ar chi.Router) {
		ar.Get("/", h.List)
		ar.Post("/", h.Create)
		ar.Get("/mine", h.ListMine)
		ar.Get("/{id}", h.Get)
		ar.Patch("/{id}", h.Update)
		ar.Delete("/{id}", h.Delete)
		ar.Post("/{id}/rating", h.Rate)
		ar.Post("/{id}/approve", h.Approve)
	})
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type animalRequest struct {
	Name      *string `json:"name"`
	Species   int64   `json:"species"`
	Breed     *int64  `json:"breed"`
	Color     *int64  `json:"color"`
	Gender    string  `json:"gender"`
	BirthDate *string `json:"birth_date"`
}

type createAdvertisementRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Latitude    *float64      `json:"latitude"`
	Longitude   *float64      `json:"longitude"`
	Animal      animalRequest `json:"animal"`
}

type animalPatchRequest struct {
	Name       *string `json:"name"`
	Species    *int64  `json:"species"`
	Breed      *int64  `json:"breed"`
	ClearBreed bool    `json:"clear_breed"`
	Color      *int64  `json:"color"`
	ClearColor bool    `json:"clear_color"`
	Gender     *string `json:"gender"`
	BirthDate  *string `json:"birth_date"`
}

type updateAdvertisementRequest struct {
	Title         *string            `json:"title"`
	Description   *string            `json:"description"`
	Status        *string            `json:"status"`
	Latitude      *float64           `json:"latitude"`
	Longitude     *float64           `json:"longitude"`
	ClearLocation bool               `json:"clear_location"`
	Animal        animalPatchRequest `json:"animal"`
}

type rateRequest struct {
	Rating int `json:"rating"`
}

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ownerResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Region   *namedRef `json:"region,omitempty"`
}

type animalResponse struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name"`
	Species     namedRef  `json:"species"`
	Breed       *namedRef `json:"breed"`
	Color       *namedRef `json:"color"`
	Gender      string    `json:"gender"`
	BirthDate   *string   `json:"birth_date"`
	Age         string    `json:"age"`
	AgeCategory string    `json:"age_category,omitempty"`
}

type advertisementResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	StatusID        int64          `json:"status_id"`
	User            ownerResponse  `json:"user"`
	Animal          animalResponse `json:"animal"`
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
	PublicationDate time.Time      `json:"publication_date"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CommentsCount   int            `json:"comments_count"`
	RatingsCount    int            `json:"ratings_count"`
	AverageRating   *float64       `json:"average_rating"`
}

type ratingResponse struct {
	RatingsCount  int      `json:"ratings_count"`
	AverageRating *float64 `json:"average_rating"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List handles GET /advertisements.
func (h *AdvertisementHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.List)
}

// ListMine handles GET /advertisements/mine.
func (h *AdvertisementHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListMine)
}

func (h *AdvertisementHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, advertisement.ListInput) (*advertisement.ListResult, error),
) {
	filter, err := parseAdFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := advertisement.ListInput{
		Filter:            filter,
		IncludeModeration: newQueryReader(r).bool("include_moderation"),
	}

	result, err := fetch(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[advertisementResponse]{
		Count:   result.Total,
		Results: make([]advertisementResponse, 0, len(result.Items)),
	}
	for _, v := range result.Items {
		resp.Results = append(resp.Results, toAdvertisementResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /advertisements/{id}.
func (h *AdvertisementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvertisementResponse(*view))
}

// Create handles POST /advertisements.
func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdvertisementRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	location, err := geoPoint(req.Latitude, req.Longitude)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	birth, err := parseBirthDate(req.Animal.BirthDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.Create(r.Context(), advertisement.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      strings.TrimSpace(req.Status),
		Location:    location,
		Animal: advertisement.AnimalInput{
			Name:      req.Animal.Name,
			SpeciesID: req.Animal.Species,
			BreedID:   req.Animal.Breed,
			ColorID:   req.Animal.Color,
			Gender:    req.Animal.Gender,
			BirthDate: birth,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAdvertisementResponse(*view))
}

// Update handles PATCH /advertisements/{id}.
func (h *AdvertisementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateAdvertisementRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	location, err := geoPoint(req.Latitude, req.Longitude)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	birth, err := parseBirthDate(req.Animal.BirthDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.Update(r.Context(), advertisement.UpdateInput{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Location:      location,
		ClearLocation: req.ClearLocation,
		Animal: advertisement.AnimalPatch{
			Name:       req.Animal.Name,
			SpeciesID:  req.Animal.Species,
			BreedID:    req.Animal.Breed,
			ClearBreed: req.Animal.ClearBreed,
			ColorID:    req.Animal.Color,
			ClearColor: req.Animal.ClearColor,
			Gender:     req.Animal.Gender,
			BirthDate:  birth,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvertisementResponse(*view))
}

// Delete handles DELETE /advertisements/{id}.
func (h *AdvertisementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Rate handles POST /advertisements/{id}/rating.
func (h *AdvertisementHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.Rate(r.Context(), advertisement.RateInput{AdvertisementID: id, Value: req.Rating})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ratingResponse{
		RatingsCount:  stats.RatingCount,
		AverageRating: stats.AverageRating(),
	})
}

// Approve handles POST /advertisements/{id}/approve.
func (h *AdvertisementHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	view, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvertisementResponse(*view))
}

// ---------------------------------------------------------------------------
// Conversion
// ---------------------------------------------------------------------------

func geoPoint(lat, lon *float64) (*domain.GeoPoint, error) {
	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil || lon == nil:
		return nil, domain.NewValidationError("location", "latitude and longitude must be provided together")
	}
	return &domain.GeoPoint{Latitude: *lat, Longitude: *lon}, nil
}

func parseBirthDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.NewValidationError("animal.birth_date", "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

func toAdvertisementResponse(v advertisement.View) advertisementResponse {
	resp := advertisementResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Status:      v.StatusName,
		StatusID:    v.StatusID,
		User: ownerResponse{
			ID:       v.UserID.String(),
			Username: v.OwnerUsername,
		},
		Animal: animalResponse{
			ID:          v.Animal.ID.String(),
			Name:        v.Animal.Name,
			Species:     namedRef{ID: v.Animal.SpeciesID, Name: v.SpeciesName},
			Gender:      string(v.Animal.Gender),
			Age:         v.AgeText,
			AgeCategory: string(v.AgeBucket),
		},
		PublicationDate: v.PublishedAt,
		UpdatedAt:       v.UpdatedAt,
		CommentsCount:   v.Stats.CommentsCount,
		RatingsCount:    v.Stats.RatingCount,
		AverageRating:   v.AverageRating,
	}
	if v.RegionID != nil && v.RegionName != nil {
		resp.User.Region = &namedRef{ID: *v.RegionID, Name: *v.RegionName}
	}
	if v.Animal.BreedID != nil && v.BreedName != nil {
		resp.Animal.Breed = &namedRef{ID: *v.Animal.BreedID, Name: *v.BreedName}
	}
	if v.Animal.ColorID != nil && v.ColorName != nil {
		resp.Animal.Color = &namedRef{ID: *v.Animal.ColorID, Name: *v.ColorName}
	}
	if v.Animal.BirthDate != nil {
		d := v.Animal.BirthDate.Format(dateLayout)
		resp.Animal.BirthDate = &d
	}
	if v.Location != nil {
		resp.Latitude = &v.Location.Latitude
		resp.Longitude = &v.Location.Longitude
	}
	return resp
}
