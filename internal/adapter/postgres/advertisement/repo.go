// Package advertisement implements the Advertisement repository using PostgreSQL.
package advertisement

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Repo provides advertisement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new advertisement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const adColumns = `id, user_id, animal_id, status_id, requested_status_id, title, description,
latitude::float8 AS latitude, longitude::float8 AS longitude, published_at, updated_at`

type adRow struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	AnimalID          uuid.UUID `db:"animal_id"`
	StatusID          int64     `db:"status_id"`
	RequestedStatusID *int64    `db:"requested_status_id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	Latitude          *float64  `db:"latitude"`
	Longitude         *float64  `db:"longitude"`
	PublishedAt       time.Time `db:"published_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r adRow) toDomain() domain.Advertisement {
	ad := domain.Advertisement{
		ID:                r.ID,
		UserID:            r.UserID,
		AnimalID:          r.AnimalID,
		StatusID:          r.StatusID,
		RequestedStatusID: r.RequestedStatusID,
		Title:             r.Title,
		Description:       r.Description,
		PublishedAt:       r.PublishedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Latitude != nil && r.Longitude != nil {
		ad.Location = &domain.GeoPoint{Latitude: *r.Latitude, Longitude: *r.Longitude}
	}
	return ad
}

// Create inserts an advertisement and fills ID and timestamps.
func (r *Repo) Create(ctx context.Context, ad *domain.Advertisement) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if ad.ID == uuid.Nil {
		ad.ID = uuid.New()
	}
	lat, lon := coordinates(ad.Location)

	b := postgres.Builder().
		Insert("advertisements").
		Columns("id", "user_id", "animal_id", "status_id", "requested_status_id",
			"title", "description", "latitude", "longitude").
		Values(ad.ID, ad.UserID, ad.AnimalID, ad.StatusID, ad.RequestedStatusID,
			ad.Title, ad.Description, lat, lon).
		Suffix("RETURNING " + adColumns)

	var row adRow
	if err := postgres.GetBuilt(ctx, q, &row, b); err != nil {
		return postgres.MapError(err, "advertisement", ad.ID)
	}
	*ad = row.toDomain()
	return nil
}

// GetByID returns an advertisement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row adRow
	if err := postgres.Get(ctx, q, &row, `SELECT `+adColumns+` FROM advertisements WHERE id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "advertisement", id)
	}
	ad := row.toDomain()
	return &ad, nil
}

// Update applies a partial update and returns the stored advertisement.
// published_at is never touched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.AdvertisementUpdateParams) (*domain.Advertisement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("advertisements").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + adColumns)

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Description != nil {
		b = b.Set("description", *p.Description)
	}
	if p.StatusID != nil {
		b = b.Set("status_id", *p.StatusID)
	}
	switch {
	case p.ClearLocation:
		b = b.Set("latitude", nil).Set("longitude", nil)
	case p.Location != nil:
		b = b.Set("latitude", p.Location.Latitude).Set("longitude", p.Location.Longitude)
	}
	if p.ClearRequestedStatus {
		b = b.Set("requested_status_id", nil)
	}

	var row adRow
	if err := postgres.GetBuilt(ctx, q, &row, b); err != nil {
		return nil, postgres.MapError(err, "advertisement", id)
	}
	ad := row.toDomain()
	return &ad, nil
}

// Delete removes the advertisement together with its animal, responses and ratings.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// Deleting the animal cascades to the advertisement and its children.
	tag, err := q.Exec(ctx,
		`DELETE FROM animals WHERE id = (SELECT animal_id FROM advertisements WHERE id = $1)`, id)
	if err != nil {
		return postgres.MapError(err, "advertisement", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "advertisement", id)
	}
	return nil
}

// FindDuplicate returns the ID of an advertisement matching the near-duplicate rule:
// same owner, status among q.StatusNames, case-insensitive equal description and,
// when q.Location is set, the same coordinates.
func (r *Repo) FindDuplicate(ctx context.Context, dq domain.DuplicateQuery) (uuid.UUID, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select("a.id").
		From("advertisements a").
		Join("ad_statuses s ON s.id = a.status_id").
		Where(sq.Eq{"a.user_id": dq.UserID}).
		Where("s.name = ANY(?)", dq.StatusNames).
		Where("lower(btrim(a.description)) = lower(btrim(?))", dq.Description).
		Limit(1)

	if dq.Location != nil {
		b = b.Where("a.latitude = round(?::numeric, 6) AND a.longitude = round(?::numeric, 6)",
			dq.Location.Latitude, dq.Location.Longitude)
	}

	var id uuid.UUID
	err := postgres.GetBuilt(ctx, q, &id, b)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("find duplicate advertisement: %w", err)
	}
	return id, true, nil
}

// ArchiveBefore moves advertisements whose status is one of sourceStatuses and
// whose publication is older than cutoff to archivedStatusID. Returns the count.
func (r *Repo) ArchiveBefore(ctx context.Context, sourceStatuses []string, archivedStatusID int64, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `
UPDATE advertisements a
SET status_id = $1, updated_at = now()
FROM ad_statuses s
WHERE s.id = a.status_id AND s.name = ANY($2) AND a.published_at < $3`,
		archivedStatusID, sourceStatuses, cutoff)
	if err != nil {
		return 0, fmt.Errorf("archive advertisements: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountPublishedSince counts advertisements published at or after since.
func (r *Repo) CountPublishedSince(ctx context.Context, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM advertisements WHERE published_at >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count advertisements: %w", err)
	}
	return n, nil
}

func coordinates(p *domain.GeoPoint) (lat, lon *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.Latitude, &p.Longitude
}
