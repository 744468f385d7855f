package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// StatusByName resolves a configured status. A missing row means the reference
// data was never seeded and is reported as a ConfigurationError.
func (s *Service) StatusByName(ctx context.Context, name string) (*domain.AdStatus, error) {
	st, err := s.catalog.StatusByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.ConfigurationError{Missing: name}
	}
	if err != nil {
		return nil, fmt.Errorf("get status %q: %w", name, err)
	}
	return st, nil
}

// StatusByID returns a status by id.
func (s *Service) StatusByID(ctx context.Context, id int64) (*domain.AdStatus, error) {
	st, err := s.catalog.StatusByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get status %d: %w", id, err)
	}
	return st, nil
}

// Breed returns a breed by id; a missing breed is a validation error on the animal.
func (s *Service) Breed(ctx context.Context, id int64) (*domain.Breed, error) {
	b, err := s.catalog.BreedByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("animal.breed", "unknown breed")
	}
	if err != nil {
		return nil, fmt.Errorf("get breed %d: %w", id, err)
	}
	return b, nil
}

// BreedsBySpecies lists the breeds of one species.
func (s *Service) BreedsBySpecies(ctx context.Context, speciesID int64) ([]domain.Breed, error) {
	breeds, err := s.catalog.ListBreeds(ctx, &speciesID)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

// ArticleCategories lists the categories articles can be filed under.
func (s *Service) ArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	categories, err := s.catalog.ListArticleCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list article categories: %w", err)
	}
	return categories, nil
}
