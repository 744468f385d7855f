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

// ListResult is one page of articles, newest first.
type ListResult struct {
	Items []domain.Article
	Total int
	Page  int
	Size  int
}

// Create publishes an article authored by the actor.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Article, error) {
	actor := authz.ActorFromCtx(ctx)
	if err := authz.Check(actor, domain.ActionCreate, authz.Resource{Kind: domain.ResourceArticle}); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := &domain.Article{
		AuthorID: actor.UserID,
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
	}
	var created *domain.Article
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.articles.Create(ctx, a); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		if len(input.CategoryIDs) > 0 {
			if err := s.articles.SetCategories(ctx, a.ID, input.CategoryIDs); err != nil {
				return fmt.Errorf("set article categories: %w", err)
			}
		}
		var err error
		created, err = s.articles.GetByID(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("reload article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("article_id", a.ID.String()),
		slog.Int("categories", len(input.CategoryIDs)),
	)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	page, size := domain.DefaultPageLimits.Clamp(input.Page, input.Size)

	f := domain.ArticleFilter{Limit: size, Offset: (page - 1) * size}
	if slug := strings.TrimSpace(input.Category); slug != domain.CategoryAll {
		f.CategorySlug = slug
	}
	items, total, err := s.articles.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &ListResult{Items: items, Total: total, Page: page, Size: size}, nil
}

// Update edits an article. Authors need edit-own; editors with edit-any may
// change any article.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Article, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.articles.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if err := authz.Check(actor, domain.ActionUpdate, authz.Resource{Kind: domain.ResourceArticle, OwnerID: current.AuthorID}); err != nil {
		return nil, err
	}

	var params domain.ArticleUpdateParams
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		params.Content = &content
	}

	var updated *domain.Article
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.CategoryIDs != nil {
			if err := s.articles.SetCategories(ctx, current.ID, *input.CategoryIDs); err != nil {
				return fmt.Errorf("set article categories: %w", err)
			}
		}
		var err error
		if params.Title == nil && params.Content == nil {
			updated, err = s.articles.GetByID(ctx, current.ID)
		} else {
			updated, err = s.articles.Update(ctx, current.ID, params)
		}
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("article_id", current.ID.String()),
	)
	return updated, nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrAuthenticationRequired
	}

	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if err := authz.Check(actor, domain.ActionDelete, authz.Resource{Kind: domain.ResourceArticle, OwnerID: a.AuthorID}); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.log.InfoContext(ctx, "article deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("article_id", id.String()),
	)
	return nil
}
