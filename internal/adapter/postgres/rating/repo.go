// Package rating implements the Rating repository and the advertisement stats
// aggregation using PostgreSQL.
package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const uniqueRatingConstraint = "ad_ratings_advertisement_user_key"

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a rating. A second rating by the same user returns domain.ErrDuplicateRating.
func (r *Repo) Create(ctx context.Context, rt *domain.Rating) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}

	var createdAt time.Time
	err := q.QueryRow(ctx, `
INSERT INTO ad_ratings (id, advertisement_id, user_id, rating)
VALUES ($1, $2, $3, $4)
RETURNING created_at`,
		rt.ID, rt.AdvertisementID, rt.UserID, rt.Value,
	).Scan(&createdAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueRatingConstraint) {
			return domain.ErrDuplicateRating
		}
		return postgres.MapError(err, "rating", rt.ID)
	}
	rt.CreatedAt = createdAt
	return nil
}

type statsRow struct {
	ID            uuid.UUID `db:"id"`
	CommentsCount int       `db:"comments_count"`
	RatingCount   int       `db:"rating_count"`
	RatingSum     int       `db:"rating_sum"`
}

// StatsByAdvertisementIDs returns comment and rating aggregates for every id.
// IDs without any activity get zero stats.
func (r *Repo) StatsByAdvertisementIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AdStats, error) {
	out := make(map[uuid.UUID]domain.AdStats, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []statsRow
	err := postgres.Select(ctx, q, &rows, `
SELECT a.id,
       (SELECT count(*) FROM ad_responses c WHERE c.advertisement_id = a.id)::int AS comments_count,
       (SELECT count(*) FROM ad_ratings r WHERE r.advertisement_id = a.id)::int AS rating_count,
       (SELECT coalesce(sum(r.rating), 0) FROM ad_ratings r WHERE r.advertisement_id = a.id)::int AS rating_sum
FROM unnest($1::uuid[]) AS a(id)`, ids)
	if err != nil {
		return nil, fmt.Errorf("load advertisement stats: %w", err)
	}

	for _, id := range ids {
		out[id] = domain.AdStats{}
	}
	for _, row := range rows {
		out[row.ID] = domain.AdStats{
			CommentsCount: row.CommentsCount,
			RatingCount:   row.RatingCount,
			RatingSum:     row.RatingSum,
		}
	}
	return out, nil
}
