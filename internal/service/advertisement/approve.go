package advertisement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Approve moves an advertisement out of moderation into the status its author
// requested, or the first active status when none was requested.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*View, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}
	if !authz.CanManageAnyAdvertisement(actor) {
		return nil, &domain.DeniedError{Kind: domain.ErrPermissionDenied, Reason: "only moderators can approve advertisements"}
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ad, err := s.ads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	current, err := s.catalog.StatusByID(ctx, ad.StatusID)
	if err != nil {
		return nil, err
	}
	if !s.policy.IsModeration(current.Name) {
		return nil, domain.NewValidationError("status", "advertisement is not awaiting moderation")
	}

	var requested string
	if ad.RequestedStatusID != nil {
		st, err := s.catalog.StatusByID(ctx, *ad.RequestedStatusID)
		if err != nil {
			return nil, err
		}
		requested = st.Name
	}
	target := s.policy.ApprovalTarget(requested)
	if target == "" {
		return nil, &domain.ConfigurationError{Missing: "active status"}
	}
	next, err := s.catalog.StatusByName(ctx, target)
	if err != nil {
		return nil, err
	}

	_, err = s.ads.Update(ctx, ad.ID, domain.AdvertisementUpdateParams{
		StatusID:             &next.ID,
		ClearRequestedStatus: true,
	})
	if err != nil {
		return nil, fmt.Errorf("approve advertisement: %w", err)
	}

	s.log.InfoContext(ctx, "advertisement approved",
		slog.String("moderator_id", actor.UserID.String()),
		slog.String("advertisement_id", ad.ID.String()),
		slog.String("status", target),
	)

	s.publish(ctx, domain.AdvertisementEvent{
		Type:            domain.EventAdvertisementStatusChanged,
		AdvertisementID: &ad.ID,
		UserID:          &ad.UserID,
		Status:          target,
		PreviousStatus:  current.Name,
	})

	return s.view(ctx, ad.ID)
}
