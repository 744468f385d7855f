// Package comment implements the advertisement response repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const selectComment = `
SELECT c.id, c.advertisement_id, c.user_id, u.username, c.message, c.created_at, c.updated_at
FROM ad_responses c
JOIN users u ON u.id = c.user_id`

type commentRow struct {
	ID              uuid.UUID `db:"id"`
	AdvertisementID uuid.UUID `db:"advertisement_id"`
	UserID          uuid.UUID `db:"user_id"`
	Username        string    `db:"username"`
	Message         string    `db:"message"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment(r)
}

// Create stores a comment and fills ID and timestamps.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := q.QueryRow(ctx, `
INSERT INTO ad_responses (id, advertisement_id, user_id, message)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`,
		c.ID, c.AdvertisementID, c.UserID, c.Message,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// GetByID returns a comment with its author's username.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row commentRow
	if err := postgres.Get(ctx, q, &row, selectComment+` WHERE c.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	c := row.toDomain()
	return &c, nil
}

// UpdateMessage replaces the comment text.
func (r *Repo) UpdateMessage(ctx context.Context, id uuid.UUID, message string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE ad_responses SET message = $2, updated_at = now() WHERE id = $1`, id, message)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM ad_responses WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// ListByAdvertisement returns the comments of one advertisement, oldest first.
func (r *Repo) ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows := []commentRow{}
	if err := postgres.Select(ctx, q, &rows,
		selectComment+` WHERE c.advertisement_id = $1 ORDER BY c.created_at, c.id`, adID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
