package advertisement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Rate records the actor's 1..5 rating and returns the updated aggregates.
// Each user rates an advertisement at most once. Advertisements the actor
// cannot see are reported as not found.
func (s *Service) Rate(ctx context.Context, input RateInput) (domain.AdStats, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.AdStats{}, domain.ErrAuthenticationRequired
	}

	if err := input.Validate(); err != nil {
		return domain.AdStats{}, err
	}

	if _, err := s.visibleListing(ctx, input.AdvertisementID); err != nil {
		return domain.AdStats{}, err
	}

	err := s.ratings.Create(ctx, &domain.Rating{
		AdvertisementID: input.AdvertisementID,
		UserID:          actor.UserID,
		Value:           input.Value,
	})
	if err != nil {
		return domain.AdStats{}, fmt.Errorf("create rating: %w", err)
	}

	s.log.InfoContext(ctx, "advertisement rated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("advertisement_id", input.AdvertisementID.String()),
		slog.Int("rating", input.Value),
	)

	s.stats.Forget(ctx, input.AdvertisementID)
	stats, err := s.stats.One(ctx, input.AdvertisementID)
	if err != nil {
		return domain.AdStats{}, fmt.Errorf("get advertisement stats: %w", err)
	}
	return stats, nil
}
