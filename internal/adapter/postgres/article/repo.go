// Package article implements the article, article category and article comment
// repositories using PostgreSQL.
package article

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const categoryLinkFK = "article_category_links_category_id_fkey"

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var articleColumns = []string{
	"a.id", "a.author_id", "a.title", "a.content", "a.published_at", "a.updated_at",
	"(SELECT count(*) FROM article_comments ac WHERE ac.article_id = a.id) AS comments_count",
}

type articleRow struct {
	ID            uuid.UUID `db:"id"`
	AuthorID      uuid.UUID `db:"author_id"`
	Title         string    `db:"title"`
	Content       string    `db:"content"`
	PublishedAt   time.Time `db:"published_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	CommentsCount int       `db:"comments_count"`
}

func (r articleRow) toDomain() domain.Article {
	return domain.Article{
		ID:            r.ID,
		AuthorID:      r.AuthorID,
		Title:         r.Title,
		Content:       r.Content,
		PublishedAt:   r.PublishedAt,
		UpdatedAt:     r.UpdatedAt,
		Categories:    []domain.ArticleCategory{},
		CommentsCount: r.CommentsCount,
	}
}

// Create stores an article. Categories are linked separately with SetCategories.
func (r *Repo) Create(ctx context.Context, a *domain.Article) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	err := q.QueryRow(ctx, `
INSERT INTO articles (id, author_id, title, content)
VALUES ($1, $2, $3, $4)
RETURNING published_at, updated_at`,
		a.ID, a.AuthorID, a.Title, a.Content,
	).Scan(&a.PublishedAt, &a.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "article", a.ID)
	}
	return nil
}

// GetByID returns an article with its categories and comment count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(articleColumns...).From("articles a").Where(sq.Eq{"a.id": id})

	var row articleRow
	if err := postgres.GetBuilt(ctx, q, &row, b); err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	out := []domain.Article{row.toDomain()}
	if err := attachCategories(ctx, q, out); err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Update applies a partial update and returns the stored article.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.ArticleUpdateParams) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("articles").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Content != nil {
		b = b.Set("content", *p.Content)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "article", id)
	}
	return r.GetByID(ctx, id)
}

// SetCategories replaces the categories of an article. Unknown category IDs
// are reported as a validation error on "categories".
func (r *Repo) SetCategories(ctx context.Context, id uuid.UUID, categoryIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM article_category_links WHERE article_id = $1`, id); err != nil {
		return postgres.MapError(err, "article", id)
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	_, err := q.Exec(ctx, `
INSERT INTO article_category_links (article_id, category_id)
SELECT $1, unnest($2::bigint[])
ON CONFLICT DO NOTHING`, id, categoryIDs)
	if postgres.IsForeignKeyViolation(err, categoryLinkFK) {
		return domain.NewValidationError("categories", "unknown category")
	}
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	return nil
}

// Delete removes an article together with its comments and category links.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "article", id)
	}
	return nil
}

// List returns a page of articles, newest first, and the total match count.
func (r *Repo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if f.CategorySlug != "" {
		where = append(where, sq.Expr(`EXISTS (
SELECT 1 FROM article_category_links l
JOIN article_categories c ON c.id = l.category_id
WHERE l.article_id = a.id AND c.slug = ?)`, f.CategorySlug))
	}

	countQ := postgres.Builder().Select("count(*)").From("articles a").Where(where)
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	listQ := postgres.Builder().
		Select(articleColumns...).
		From("articles a").
		Where(where).
		OrderBy("a.published_at DESC", "a.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	rows := []articleRow{}
	if err := postgres.SelectBuilt(ctx, q, &rows, listQ); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	out := make([]domain.Article, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	if err := attachCategories(ctx, q, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

type categoryLinkRow struct {
	ArticleID uuid.UUID `db:"article_id"`
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
}

// attachCategories loads the categories of all articles in one query.
func attachCategories(ctx context.Context, q postgres.Querier, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(articles))
	index := make(map[uuid.UUID]int, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
		index[a.ID] = i
	}

	rows := []categoryLinkRow{}
	if err := postgres.Select(ctx, q, &rows, `
SELECT l.article_id, c.id, c.name, c.slug
FROM article_category_links l
JOIN article_categories c ON c.id = l.category_id
WHERE l.article_id = ANY($1)
ORDER BY c.name`, ids); err != nil {
		return fmt.Errorf("load article categories: %w", err)
	}

	for _, row := range rows {
		i := index[row.ArticleID]
		articles[i].Categories = append(articles[i].Categories,
			domain.ArticleCategory{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	return nil
}
