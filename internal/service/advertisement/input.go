package advertisement

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxAnimalNameLen  = 100
)

// AnimalInput describes the animal of a new advertisement.
type AnimalInput struct {
	Name      *string
	SpeciesID int64
	BreedID   *int64
	ColorID   *int64
	Gender    string
	BirthDate *time.Time
}

// CreateInput holds the parameters for creating an advertisement.
type CreateInput struct {
	Title       string
	Description string
	// Status is the status the author asks for. Empty means moderation for
	// privileged actors and "no preference" for everyone else.
	Status   string
	Location *domain.GeoPoint
	Animal   AnimalInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(today time.Time) error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	errs = append(errs, validateLocation(i.Location)...)

	if i.Animal.SpeciesID <= 0 {
		errs = append(errs, domain.FieldError{Field: "animal.species", Message: "required"})
	}
	errs = append(errs, validateAnimalName(i.Animal.Name)...)
	errs = append(errs, validateBirthDate(i.Animal.BirthDate, today)...)
	if _, err := domain.ParseGender(i.Animal.Gender); err != nil {
		errs = append(errs, domain.FieldError{Field: "animal.gender", Message: "must be one of M, F, U"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnimalPatch is a partial animal update. nil means "keep"; ClearBreed and
// ClearColor unset the reference.
type AnimalPatch struct {
	Name       *string
	SpeciesID  *int64
	BreedID    *int64
	ClearBreed bool
	ColorID    *int64
	ClearColor bool
	Gender     *string
	BirthDate  *time.Time
}

// UpdateInput holds a partial advertisement update.
type UpdateInput struct {
	ID            uuid.UUID
	Title         *string
	Description   *string
	Status        *string
	Location      *domain.GeoPoint
	ClearLocation bool
	Animal        AnimalPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate(today time.Time) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		if desc == "" {
			errs = append(errs, domain.FieldError{Field: "description", Message: "must not be empty"})
		}
		if utf8.RuneCountInString(desc) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
		}
	}
	if i.Status != nil && strings.TrimSpace(*i.Status) == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must not be empty"})
	}
	errs = append(errs, validateLocation(i.Location)...)

	if i.Animal.SpeciesID != nil && *i.Animal.SpeciesID <= 0 {
		errs = append(errs, domain.FieldError{Field: "animal.species", Message: "invalid"})
	}
	errs = append(errs, validateAnimalName(i.Animal.Name)...)
	errs = append(errs, validateBirthDate(i.Animal.BirthDate, today)...)
	if i.Animal.Gender != nil {
		if _, err := domain.ParseGender(*i.Animal.Gender); err != nil {
			errs = append(errs, domain.FieldError{Field: "animal.gender", Message: "must be one of M, F, U"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds list filters. IncludeModeration is honoured only for privileged actors.
type ListInput struct {
	Filter            domain.AdFilter
	IncludeModeration bool
}

// RateInput holds a rating submission.
type RateInput struct {
	AdvertisementID uuid.UUID
	Value           int
}

// Validate checks all fields and collects all errors.
func (i RateInput) Validate() error {
	var errs []domain.FieldError
	if i.AdvertisementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "advertisement_id", Message: "required"})
	}
	if err := domain.ValidateRatingValue(i.Value); err != nil {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateLocation(p *domain.GeoPoint) []domain.FieldError {
	if p == nil {
		return nil
	}
	var errs []domain.FieldError
	if p.Latitude < -90 || p.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return errs
}

func validateAnimalName(name *string) []domain.FieldError {
	if name != nil && utf8.RuneCountInString(strings.TrimSpace(*name)) > maxAnimalNameLen {
		return []domain.FieldError{{Field: "animal.name", Message: "max 100 characters"}}
	}
	return nil
}

func validateBirthDate(d *time.Time, today time.Time) []domain.FieldError {
	if d != nil && domain.DateOnly(*d).After(domain.DateOnly(today)) {
		return []domain.FieldError{{Field: "animal.birth_date", Message: "must not be in the future"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
