// Package article manages editorial articles and the comments readers leave on
// them. Article mutations are gated by the article capabilities of the actor's
// role; comments follow the same rules as advertisement responses.
package article

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

type articleRepo interface {
	Create(ctx context.Context, a *domain.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error)
	SetCategories(ctx context.Context, id uuid.UUID, categoryIDs []int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error)
}

type commentRepo interface {
	Create(ctx context.Context, c *domain.ArticleComment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ArticleComment, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, message string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements article operations.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	comments commentRepo
	tx       txManager
}

// NewService creates a new article service.
func NewService(log *slog.Logger, articles articleRepo, comments commentRepo, tx txManager) *Service {
	return &Service{
		log:      log.With("service", "article"),
		articles: articles,
		comments: comments,
		tx:       tx,
	}
}
