// Package comment manages responses left on advertisements.
package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, message string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error)
}

type adRepo interface {
	GetListing(ctx context.Context, id uuid.UUID) (*domain.AdListing, error)
}

// moderationPolicy tells which statuses hide an advertisement from strangers.
type moderationPolicy interface {
	IsModeration(status string) bool
}

// statsSource drops cached aggregates after the comment count changes.
type statsSource interface {
	Forget(ctx context.Context, id uuid.UUID)
}

type Service struct {
	log      *slog.Logger
	comments commentRepo
	ads      adRepo
	policy   moderationPolicy
	stats    statsSource
}

func NewService(log *slog.Logger, comments commentRepo, ads adRepo, policy moderationPolicy, stats statsSource) *Service {
	return &Service{
		log:      log.With("service", "comment"),
		comments: comments,
		ads:      ads,
		policy:   policy,
		stats:    stats,
	}
}

// visibleAdvertisement fails with ErrNotFound when the advertisement is
// missing or awaits moderation and the actor may not see it.
func (s *Service) visibleAdvertisement(ctx context.Context, id uuid.UUID) error {
	listing, err := s.ads.GetListing(ctx, id)
	if err != nil {
		return fmt.Errorf("get advertisement: %w", err)
	}
	actor := authz.ActorFromCtx(ctx)
	if !authz.CanSeeAdvertisement(actor, listing.UserID, s.policy.IsModeration(listing.StatusName)) {
		return fmt.Errorf("advertisement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
