package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Berlkot/django-proj-kek-2025/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
}

// UserHandler serves the caller's own account.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

func (h *UserHandler) Register(r chi.Router) {
	r.Get("/users/me", h.Me)
}

type profileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Region       *int64    `json:"region"`
	Role         *string   `json:"role"`
	IsStaff      bool      `json:"is_staff"`
	Capabilities []string  `json:"capabilities"`
	DateJoined   time.Time `json:"date_joined"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := profileResponse{
		ID:           p.User.ID.String(),
		Email:        p.User.Email,
		Username:     p.User.Username,
		Region:       p.User.RegionID,
		IsStaff:      p.User.IsStaff,
		Capabilities: p.Capabilities(),
		DateJoined:   p.User.CreatedAt,
	}
	if p.Role != nil {
		resp.Role = &p.Role.Name
	}
	writeJSON(w, http.StatusOK, resp)
}
