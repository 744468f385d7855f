package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// CreateComment leaves a comment on an existing article. Any authenticated
// user may comment.
func (s *Service) CreateComment(ctx context.Context, input CommentInput) (*domain.ArticleComment, error) {
	actor := authz.ActorFromCtx(ctx)
	if err := authz.Check(actor, domain.ActionCreate, authz.Resource{Kind: domain.ResourceComment}); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.articles.GetByID(ctx, input.ArticleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	c := &domain.ArticleComment{
		ArticleID: input.ArticleID,
		UserID:    actor.UserID,
		Message:   strings.TrimSpace(input.Message),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create article comment: %w", err)
	}

	s.log.InfoContext(ctx, "article comment created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("article_id", input.ArticleID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	created, err := s.comments.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("reload article comment: %w", err)
	}
	return created, nil
}

// UpdateComment edits the text. Only the author holding edit-own may do it.
func (s *Service) UpdateComment(ctx context.Context, input CommentUpdateInput) (*domain.ArticleComment, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get article comment: %w", err)
	}
	if err := authz.Check(actor, domain.ActionUpdate, authz.Resource{Kind: domain.ResourceComment, OwnerID: c.UserID}); err != nil {
		return nil, err
	}

	if err := s.comments.UpdateMessage(ctx, c.ID, strings.TrimSpace(input.Message)); err != nil {
		return nil, fmt.Errorf("update article comment: %w", err)
	}

	s.log.InfoContext(ctx, "article comment updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	updated, err := s.comments.GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("reload article comment: %w", err)
	}
	return updated, nil
}

// DeleteComment removes a comment. Authors need delete-own, moderators
// delete-any.
func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrAuthenticationRequired
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get article comment: %w", err)
	}
	if err := authz.Check(actor, domain.ActionDelete, authz.Resource{Kind: domain.ResourceComment, OwnerID: c.UserID}); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article comment: %w", err)
	}

	s.log.InfoContext(ctx, "article comment deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("comment_id", id.String()),
	)
	return nil
}

// ListComments returns the comments of an article, newest first.
func (s *Service) ListComments(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error) {
	if articleID == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article comments: %w", err)
	}
	return comments, nil
}
