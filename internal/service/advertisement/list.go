package advertisement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// List returns a filtered page of advertisements with their aggregates.
// Moderation statuses are hidden unless a privileged actor asks for them.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	f := input.Filter
	f.OwnerID = nil

	actor := authz.ActorFromCtx(ctx)
	if !input.IncludeModeration || !authz.CanManageAnyAdvertisement(actor) {
		f.ExcludeStatuses = s.policy.StatusesIn(domain.PartitionModeration)
	}
	return s.list(ctx, f)
}

// ListMine returns the actor's own advertisements, including those in moderation.
func (s *Service) ListMine(ctx context.Context, input ListInput) (*ListResult, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}

	f := input.Filter
	f.OwnerID = &actor.UserID
	f.ExcludeStatuses = nil
	return s.list(ctx, f)
}

func (s *Service) list(ctx context.Context, f domain.AdFilter) (*ListResult, error) {
	if f.Today.IsZero() {
		f.Today = s.now()
	}
	f.Normalize(domain.PageLimits(s.paging))

	listings, total, err := s.ads.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list advertisements: %w", err)
	}

	ids := make([]uuid.UUID, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	stats, err := s.stats.Stats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load advertisement stats: %w", err)
	}

	items := make([]View, len(listings))
	for i, l := range listings {
		items[i] = s.buildView(ctx, l, stats[l.ID])
	}
	return &ListResult{Items: items, Total: total, Page: f.Page, Size: f.Size}, nil
}
