package advertisement

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const listingFrom = `advertisements a
JOIN ad_statuses s ON s.id = a.status_id
JOIN users u ON u.id = a.user_id
LEFT JOIN regions rg ON rg.id = u.region_id
JOIN animals an ON an.id = a.animal_id
JOIN species sp ON sp.id = an.species_id
LEFT JOIN breeds b ON b.id = an.breed_id
LEFT JOIN colors c ON c.id = an.color_id`

var listingColumns = []string{
	"a.id", "a.user_id", "a.animal_id", "a.status_id", "a.requested_status_id",
	"a.title", "a.description",
	"a.latitude::float8 AS latitude", "a.longitude::float8 AS longitude",
	"a.published_at", "a.updated_at",
	"s.name AS status_name", "u.username AS owner_username",
	"u.region_id", "rg.name AS region_name",
	"an.name AS animal_name", "an.species_id", "an.breed_id", "an.color_id",
	"an.gender", "an.birth_date",
	"sp.name AS species_name", "b.name AS breed_name", "c.name AS color_name",
}

type listingRow struct {
	adRow

	StatusName    string     `db:"status_name"`
	OwnerUsername string     `db:"owner_username"`
	RegionID      *int64     `db:"region_id"`
	RegionName    *string    `db:"region_name"`
	AnimalName    *string    `db:"animal_name"`
	SpeciesID     int64      `db:"species_id"`
	BreedID       *int64     `db:"breed_id"`
	ColorID       *int64     `db:"color_id"`
	Gender        string     `db:"gender"`
	BirthDate     *time.Time `db:"birth_date"`
	SpeciesName   string     `db:"species_name"`
	BreedName     *string    `db:"breed_name"`
	ColorName     *string    `db:"color_name"`
}

func (r listingRow) toDomain() domain.AdListing {
	return domain.AdListing{
		Advertisement: r.adRow.toDomain(),
		StatusName:    r.StatusName,
		OwnerUsername: r.OwnerUsername,
		RegionID:      r.RegionID,
		RegionName:    r.RegionName,
		Animal: domain.Animal{
			ID:        r.AnimalID,
			Name:      r.AnimalName,
			SpeciesID: r.SpeciesID,
			BreedID:   r.BreedID,
			ColorID:   r.ColorID,
			Gender:    domain.Gender(r.Gender),
			BirthDate: r.BirthDate,
		},
		SpeciesName: r.SpeciesName,
		BreedName:   r.BreedName,
		ColorName:   r.ColorName,
	}
}

// GetListing returns the joined read model of one advertisement.
func (r *Repo) GetListing(ctx context.Context, id uuid.UUID) (*domain.AdListing, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(listingColumns...).From(listingFrom).Where(sq.Eq{"a.id": id})

	var row listingRow
	if err := postgres.GetBuilt(ctx, q, &row, b); err != nil {
		return nil, postgres.MapError(err, "advertisement", id)
	}
	l := row.toDomain()
	return &l, nil
}

// List returns one page of advertisements matching f and the total match count.
// f must be normalized.
func (r *Repo) List(ctx context.Context, f domain.AdFilter) ([]domain.AdListing, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := filterConditions(f)

	countQ := postgres.Builder().Select("count(*)").From(listingFrom).Where(where)
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count advertisements: %w", err)
	}

	listQ := postgres.Builder().
		Select(listingColumns...).
		From(listingFrom).
		Where(where).
		OrderBy(orderBy(f.OrderBy)...).
		Limit(uint64(f.Size)).
		Offset(uint64(f.Offset()))

	rows := []listingRow{}
	if err := postgres.SelectBuilt(ctx, q, &rows, listQ); err != nil {
		return nil, 0, fmt.Errorf("list advertisements: %w", err)
	}

	out := make([]domain.AdListing, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, total, nil
}

func filterConditions(f domain.AdFilter) sq.And {
	where := sq.And{}

	if f.RegionID != nil {
		where = append(where, sq.Eq{"u.region_id": *f.RegionID})
	}
	if f.StatusID != nil {
		where = append(where, sq.Eq{"a.status_id": *f.StatusID})
	}
	if f.SpeciesID != nil {
		where = append(where, sq.Eq{"an.species_id": *f.SpeciesID})
	}
	if f.BreedID != nil {
		where = append(where, sq.Eq{"an.breed_id": *f.BreedID})
	}
	if f.ColorID != nil {
		where = append(where, sq.Eq{"an.color_id": *f.ColorID})
	}
	if f.Gender != nil {
		where = append(where, sq.Eq{"an.gender": string(*f.Gender)})
	}
	if f.Age != nil {
		if from, to, ok := f.Age.Range(f.Today); ok {
			where = append(where,
				sq.NotEq{"an.birth_date": nil},
				sq.GtOrEq{"an.birth_date": from},
				sq.LtOrEq{"an.birth_date": to})
		} else {
			where = append(where, sq.Eq{"an.birth_date": nil})
		}
	}
	if f.Search != nil {
		if s := domain.NormalizeSearch(*f.Search); s != "" {
			pattern := "%" + domain.EscapeLike(s) + "%"
			where = append(where, sq.Or{
				sq.ILike{"a.title": pattern},
				sq.ILike{"a.description": pattern},
				sq.ILike{"an.name": pattern},
			})
		}
	}
	if f.PublishedFrom != nil {
		where = append(where, sq.GtOrEq{"a.published_at": *f.PublishedFrom})
	}
	if f.PublishedTo != nil {
		where = append(where, sq.LtOrEq{"a.published_at": *f.PublishedTo})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"a.user_id": *f.OwnerID})
	}
	if len(f.ExcludeStatuses) > 0 {
		where = append(where, sq.NotEq{"s.name": f.ExcludeStatuses})
	}
	return where
}

func orderBy(order string) []string {
	switch order {
	case domain.OrderPublishedAsc:
		return []string{"a.published_at ASC", "a.id ASC"}
	case domain.OrderAnimalNameAsc:
		return []string{"an.name ASC NULLS LAST", "a.published_at DESC", "a.id DESC"}
	case domain.OrderAnimalNameDesc:
		return []string{"an.name DESC NULLS LAST", "a.published_at DESC", "a.id DESC"}
	default:
		return []string{"a.published_at DESC", "a.id DESC"}
	}
}
