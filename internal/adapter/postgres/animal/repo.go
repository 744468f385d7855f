// Package animal implements the Animal repository using PostgreSQL.
package animal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Repo provides animal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new animal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type animalRow struct {
	ID        uuid.UUID  `db:"id"`
	Name      *string    `db:"name"`
	SpeciesID int64      `db:"species_id"`
	BreedID   *int64     `db:"breed_id"`
	ColorID   *int64     `db:"color_id"`
	Gender    string     `db:"gender"`
	BirthDate *time.Time `db:"birth_date"`
}

func (r animalRow) toDomain() domain.Animal {
	return domain.Animal{
		ID:        r.ID,
		Name:      r.Name,
		SpeciesID: r.SpeciesID,
		BreedID:   r.BreedID,
		ColorID:   r.ColorID,
		Gender:    domain.Gender(r.Gender),
		BirthDate: r.BirthDate,
	}
}

const (
	createSQL = `
INSERT INTO animals (id, name, species_id, breed_id, color_id, gender, birth_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	getByIDSQL = `
SELECT id, name, species_id, breed_id, color_id, gender, birth_date
FROM animals WHERE id = $1`

	updateSQL = `
UPDATE animals
SET name = $2, species_id = $3, breed_id = $4, color_id = $5, gender = $6, birth_date = $7
WHERE id = $1`
)

// Create inserts an animal. A zero ID is replaced with a new one.
func (r *Repo) Create(ctx context.Context, a *domain.Animal) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Gender == "" {
		a.Gender = domain.GenderUnknown
	}

	_, err := q.Exec(ctx, createSQL,
		a.ID, a.Name, a.SpeciesID, a.BreedID, a.ColorID, string(a.Gender), a.BirthDate)
	if err != nil {
		return postgres.MapError(err, "animal", a.ID)
	}
	return nil
}

// GetByID returns an animal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Animal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row animalRow
	if err := postgres.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "animal", id)
	}
	a := row.toDomain()
	return &a, nil
}

// Update overwrites every mutable column of the animal.
func (r *Repo) Update(ctx context.Context, a domain.Animal) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateSQL,
		a.ID, a.Name, a.SpeciesID, a.BreedID, a.ColorID, string(a.Gender), a.BirthDate)
	if err != nil {
		return postgres.MapError(err, "animal", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "animal", a.ID)
	}
	return nil
}
