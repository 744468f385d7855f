package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Create leaves a response on an existing advertisement. Any authenticated
// user may respond to an advertisement they can see.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	actor := authz.ActorFromCtx(ctx)
	if err := authz.Check(actor, domain.ActionCreate, authz.Resource{Kind: domain.ResourceComment}); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.visibleAdvertisement(ctx, input.AdvertisementID); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		AdvertisementID: input.AdvertisementID,
		UserID:          actor.UserID,
		Message:         strings.TrimSpace(input.Message),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.stats.Forget(ctx, input.AdvertisementID)

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("advertisement_id", input.AdvertisementID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	// Reload to pick up the author's username.
	created, err := s.comments.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment: %w", err)
	}
	return created, nil
}

// Update edits the message. Only the author with the edit-own capability may
// edit; there is no edit-any for responses.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Comment, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if err := authz.Check(actor, domain.ActionUpdate, authz.Resource{Kind: domain.ResourceComment, OwnerID: c.UserID}); err != nil {
		return nil, err
	}

	msg := strings.TrimSpace(input.Message)
	if err := s.comments.UpdateMessage(ctx, c.ID, msg); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	updated, err := s.comments.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment: %w", err)
	}
	return updated, nil
}

// Delete removes a response.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrAuthenticationRequired
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if err := authz.Check(actor, domain.ActionDelete, authz.Resource{Kind: domain.ResourceComment, OwnerID: c.UserID}); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	s.stats.Forget(ctx, c.AdvertisementID)

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("comment_id", id.String()),
	)
	return nil
}

// ListByAdvertisement returns the responses of an advertisement, oldest first.
func (s *Service) ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error) {
	if adID == uuid.Nil {
		return nil, domain.NewValidationError("advertisement_id", "required")
	}
	if err := s.visibleAdvertisement(ctx, adID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByAdvertisement(ctx, adID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
