package advertisement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Get returns the detail view of an advertisement. Advertisements awaiting
// moderation are hidden from everyone except their owner and privileged actors.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	listing, err := s.visibleListing(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.One(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement stats: %w", err)
	}
	v := s.buildView(ctx, *listing, stats)
	return &v, nil
}

// visibleListing loads an advertisement the actor is allowed to see. Hidden
// advertisements are reported as not found.
func (s *Service) visibleListing(ctx context.Context, id uuid.UUID) (*domain.AdListing, error) {
	listing, err := s.ads.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	actor := authz.ActorFromCtx(ctx)
	if !authz.CanSeeAdvertisement(actor, listing.UserID, s.policy.IsModeration(listing.StatusName)) {
		return nil, fmt.Errorf("advertisement %s: %w", id, domain.ErrNotFound)
	}
	return listing, nil
}

// view loads the view after a write, skipping visibility checks.
func (s *Service) view(ctx context.Context, id uuid.UUID) (*View, error) {
	listing, err := s.ads.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload advertisement: %w", err)
	}
	stats, err := s.stats.One(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement stats: %w", err)
	}
	v := s.buildView(ctx, *listing, stats)
	return &v, nil
}
