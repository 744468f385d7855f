package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail     string            `json:"detail"`
	Errors     map[string]string `json:"errors,omitempty"`
	Allowed    []string          `json:"allowed,omitempty"`
	ExistingID string            `json:"existing_id,omitempty"`
}

// listResponse wraps paginated and plain collections alike.
type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// handleError maps domain errors to HTTP responses. Anything unrecognised is
// logged and reported as an opaque 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		transition *domain.TransitionError
		duplicate  *domain.DuplicateSubmissionError
		denied     *domain.DeniedError
	)

	switch {
	case errors.As(err, &validation):
		body := errorResponse{Detail: "validation failed", Errors: make(map[string]string, len(validation.Errors))}
		for _, fe := range validation.Errors {
			if _, seen := body.Errors[fe.Field]; !seen {
				body.Errors[fe.Field] = fe.Message
			}
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.As(err, &transition):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: transition.Error(), Allowed: transition.Allowed})
	case errors.As(err, &duplicate):
		writeJSON(w, http.StatusConflict, errorResponse{Detail: duplicate.Error(), ExistingID: duplicate.ExistingID})
	case errors.Is(err, domain.ErrDuplicateRating):
		writeError(w, http.StatusConflict, "you have already rated this advertisement")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication credentials were not provided")
	case errors.Is(err, domain.ErrForbidden):
		detail := "you do not have permission to perform this action"
		if errors.As(err, &denied) {
			detail = denied.Reason
		}
		writeError(w, http.StatusForbidden, detail)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConfiguration):
		log.ErrorContext(r.Context(), "configuration error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a request body into dst and rejects unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}
