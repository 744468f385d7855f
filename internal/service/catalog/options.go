package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Option is an id/name pair.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BreedOption is a breed with its species.
type BreedOption struct {
	ID        int64  `json:"id"`
	SpeciesID int64  `json:"species_id"`
	Name      string `json:"name"`
}

// ValueOption is a token with its display label.
type ValueOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions is everything the advertisement list filter form offers.
type FilterOptions struct {
	Regions    []Option      `json:"regions"`
	Statuses   []Option      `json:"statuses"`
	Species    []Option      `json:"species"`
	Breeds     []BreedOption `json:"breeds"`
	Colors     []Option      `json:"colors"`
	Genders    []ValueOption `json:"genders"`
	AgeBuckets []ValueOption `json:"age_categories"`
}

// FilterOptions returns the filter form choices. Moderation statuses are not offered.
// Results are cached when a cache is configured.
func (s *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	var cached FilterOptions
	found, err := s.cache.Get(ctx, filterOptionsKey, &cached)
	if err != nil {
		s.log.WarnContext(ctx, "filter options cache read", slog.String("error", err.Error()))
	}
	if found {
		return &cached, nil
	}

	opts, err := s.loadFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, filterOptionsKey, opts); err != nil {
		s.log.WarnContext(ctx, "filter options cache write", slog.String("error", err.Error()))
	}
	return opts, nil
}

func (s *Service) loadFilterOptions(ctx context.Context) (*FilterOptions, error) {
	regions, err := s.catalog.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	statuses, err := s.catalog.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	species, err := s.catalog.ListSpecies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	breeds, err := s.catalog.ListBreeds(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	colors, err := s.catalog.ListColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}

	opts := &FilterOptions{
		Regions:    make([]Option, 0, len(regions)),
		Statuses:   make([]Option, 0, len(statuses)),
		Species:    make([]Option, 0, len(species)),
		Breeds:     make([]BreedOption, 0, len(breeds)),
		Colors:     make([]Option, 0, len(colors)),
		Genders:    make([]ValueOption, 0, 3),
		AgeBuckets: make([]ValueOption, 0, len(domain.AgeBuckets())),
	}
	for _, r := range regions {
		opts.Regions = append(opts.Regions, Option{ID: r.ID, Name: r.Name})
	}
	for _, st := range statuses {
		if s.policy.IsModeration(st.Name) {
			continue
		}
		opts.Statuses = append(opts.Statuses, Option{ID: st.ID, Name: st.Name})
	}
	for _, sp := range species {
		opts.Species = append(opts.Species, Option{ID: sp.ID, Name: sp.Name})
	}
	for _, b := range breeds {
		opts.Breeds = append(opts.Breeds, BreedOption{ID: b.ID, SpeciesID: b.SpeciesID, Name: b.Name})
	}
	for _, c := range colors {
		opts.Colors = append(opts.Colors, Option{ID: c.ID, Name: c.Name})
	}
	for _, g := range []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderUnknown} {
		opts.Genders = append(opts.Genders, ValueOption{Value: g.String(), Label: g.Label()})
	}
	for _, b := range domain.AgeBuckets() {
		opts.AgeBuckets = append(opts.AgeBuckets, ValueOption{Value: b.String(), Label: b.Label()})
	}
	return opts, nil
}
