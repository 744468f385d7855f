package advertisement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Delete removes an advertisement with its animal, responses and ratings.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrAuthenticationRequired
	}

	ad, err := s.ads.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get advertisement: %w", err)
	}
	if err := authz.Check(actor, domain.ActionDelete, authz.Resource{Kind: domain.ResourceAdvertisement, OwnerID: ad.UserID}); err != nil {
		return err
	}

	if err := s.ads.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete advertisement: %w", err)
	}

	s.log.InfoContext(ctx, "advertisement deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("advertisement_id", id.String()),
	)
	return nil
}
