package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// CommentRepo stores reader comments on articles.
type CommentRepo struct {
	db postgres.Querier
}

// NewCommentRepo creates a new article comment repository.
func NewCommentRepo(db postgres.Querier) *CommentRepo {
	return &CommentRepo{db: db}
}

const selectArticleComment = `
SELECT c.id, c.article_id, c.user_id, u.username, c.message, c.created_at, c.updated_at
FROM article_comments c
JOIN users u ON u.id = c.user_id`

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	ArticleID uuid.UUID `db:"article_id"`
	UserID    uuid.UUID `db:"user_id"`
	Username  string    `db:"username"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Create stores a comment and fills ID and timestamps.
func (r *CommentRepo) Create(ctx context.Context, c *domain.ArticleComment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := q.QueryRow(ctx, `
INSERT INTO article_comments (id, article_id, user_id, message)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`,
		c.ID, c.ArticleID, c.UserID, c.Message,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "article comment", c.ID)
	}
	return nil
}

// GetByID returns a comment with its author's username.
func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArticleComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row commentRow
	if err := postgres.Get(ctx, q, &row, selectArticleComment+` WHERE c.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "article comment", id)
	}
	c := domain.ArticleComment(row)
	return &c, nil
}

// UpdateMessage replaces the comment text.
func (r *CommentRepo) UpdateMessage(ctx context.Context, id uuid.UUID, message string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE article_comments SET message = $2, updated_at = now() WHERE id = $1`, id, message)
	if err != nil {
		return postgres.MapError(err, "article comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "article comment", id)
	}
	return nil
}

// Delete removes a comment.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM article_comments WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "article comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "article comment", id)
	}
	return nil
}

// ListByArticle returns the comments of one article, newest first.
func (r *CommentRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows := []commentRow{}
	if err := postgres.Select(ctx, q, &rows,
		selectArticleComment+` WHERE c.article_id = $1 ORDER BY c.created_at DESC, c.id`, articleID); err != nil {
		return nil, fmt.Errorf("list article comments: %w", err)
	}

	out := make([]domain.ArticleComment, len(rows))
	for i, row := range rows {
		out[i] = domain.ArticleComment(row)
	}
	return out, nil
}
