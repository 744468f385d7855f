package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const maxMessageLen = 2000

type CreateInput struct {
	AdvertisementID uuid.UUID
	Message         string
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.AdvertisementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "advertisement_id", Message: "required"})
	}
	errs = append(errs, validateMessage(i.Message)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type UpdateInput struct {
	ID      uuid.UUID
	Message string
}

func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateMessage(i.Message)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateMessage(msg string) []domain.FieldError {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return []domain.FieldError{{Field: "message", Message: "required"}}
	}
	if utf8.RuneCountInString(msg) > maxMessageLen {
		return []domain.FieldError{{Field: "message", Message: "max 2000 characters"}}
	}
	return nil
}
