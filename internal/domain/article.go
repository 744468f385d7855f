package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryAll in a list filter means "no category filter".
const CategoryAll = "all"

// Article is an editorial post gated by the article capabilities.
type Article struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Content     string
	PublishedAt time.Time
	UpdatedAt   time.Time

	// Categories are ordered by name.
	Categories    []ArticleCategory
	CommentsCount int
}

// ArticleCategory groups articles. Slug is the value used by list filters.
type ArticleCategory struct {
	ID   int64
	Name string
	Slug string
}

// ArticleUpdateParams holds a partial article update.
type ArticleUpdateParams struct {
	Title   *string
	Content *string
}

// ArticleFilter selects one page of articles. An empty CategorySlug matches
// every article.
type ArticleFilter struct {
	CategorySlug string
	Limit        int
	Offset       int
}

// ArticleComment is a reader's comment on an article.
type ArticleComment struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	UserID    uuid.UUID
	Username  string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
