package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/comment"
)

type commentService interface {
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	Update(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error)
}

// CommentHandler serves advertisement responses.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

func (h *CommentHandler) Register(r chi.Router) {
	r.Get("/advertisements/{id}/responses", h.List)
	r.Post("/advertisements/{id}/responses", h.Create)
	r.Patch("/responses/{id}", h.Update)
	r.Delete("/responses/{id}", h.Delete)
}

type commentRequest struct {
	Message string `json:"message"`
}

type commentAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type commentResponse struct {
	ID              string        `json:"id"`
	AdvertisementID string        `json:"advertisement"`
	User            commentAuthor `json:"user"`
	Message         string        `json:"message"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:              c.ID.String(),
		AdvertisementID: c.AdvertisementID.String(),
		User:            commentAuthor{ID: c.UserID.String(), Username: c.Username},
		Message:         c.Message,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	adID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	comments, err := h.svc.ListByAdvertisement(r.Context(), adID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[commentResponse]{Count: len(comments), Results: make([]commentResponse, 0, len(comments))}
	for _, c := range comments {
		resp.Results = append(resp.Results, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	adID, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), comment.CreateInput{AdvertisementID: adID, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), comment.UpdateInput{ID: id, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
