package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user without role or region.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Username:  "user-" + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Username, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedUserInRegion creates a user attached to a fresh region.
func SeedUserInRegion(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.Region) {
	t.Helper()

	user := SeedUser(t, pool)
	region := SeedRegion(t, pool)
	if _, err := pool.Exec(context.Background(),
		`UPDATE users SET region_id = $2 WHERE id = $1`, user.ID, region.ID); err != nil {
		t.Fatalf("testhelper: SeedUserInRegion: %v", err)
	}
	user.RegionID = &region.ID
	return user, region
}

// SeedRegion creates a region with a unique name.
func SeedRegion(t *testing.T, pool *pgxpool.Pool) domain.Region {
	t.Helper()

	r := domain.Region{Name: "region-" + uniqueSuffix()}
	if err := pool.QueryRow(context.Background(),
		`INSERT INTO regions (name) VALUES ($1) RETURNING id`, r.Name).Scan(&r.ID); err != nil {
		t.Fatalf("testhelper: SeedRegion: %v", err)
	}
	return r
}

// SeedStatus returns the status with the given name, creating it when missing.
// Tests share the database, so statuses are upserted rather than made unique.
func SeedStatus(t *testing.T, pool *pgxpool.Pool, name string) domain.AdStatus {
	t.Helper()

	s := domain.AdStatus{Name: name}
	if err := pool.QueryRow(context.Background(), `
INSERT INTO ad_statuses (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, name).Scan(&s.ID); err != nil {
		t.Fatalf("testhelper: SeedStatus: %v", err)
	}
	return s
}

// SeedSpecies creates a species with a unique name.
func SeedSpecies(t *testing.T, pool *pgxpool.Pool) domain.Species {
	t.Helper()

	s := domain.Species{Name: "species-" + uniqueSuffix()}
	if err := pool.QueryRow(context.Background(),
		`INSERT INTO species (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID); err != nil {
		t.Fatalf("testhelper: SeedSpecies: %v", err)
	}
	return s
}

// AdOptions tweaks SeedAdvertisement.
type AdOptions struct {
	Description string
	AnimalName  *string
	BirthDate   *time.Time
	PublishedAt time.Time
	Location    *domain.GeoPoint
}

// SeedAdvertisement creates an animal and an advertisement for owner in the given status.
func SeedAdvertisement(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, status domain.AdStatus, species domain.Species, opts AdOptions) domain.Advertisement {
	t.Helper()
	ctx := context.Background()

	animalID := uuid.New()
	if _, err := pool.Exec(ctx,
		`INSERT INTO animals (id, name, species_id, birth_date) VALUES ($1, $2, $3, $4)`,
		animalID, opts.AnimalName, species.ID, opts.BirthDate,
	); err != nil {
		t.Fatalf("testhelper: SeedAdvertisement animal: %v", err)
	}

	if opts.Description == "" {
		opts.Description = "description " + uniqueSuffix()
	}
	if opts.PublishedAt.IsZero() {
		opts.PublishedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	var lat, lon *float64
	if opts.Location != nil {
		lat, lon = &opts.Location.Latitude, &opts.Location.Longitude
	}

	ad := domain.Advertisement{
		ID:          uuid.New(),
		UserID:      owner,
		AnimalID:    animalID,
		StatusID:    status.ID,
		Title:       domain.DefaultAdvertisementTitle,
		Description: opts.Description,
		Location:    opts.Location,
		PublishedAt: opts.PublishedAt,
		UpdatedAt:   opts.PublishedAt,
	}
	if _, err := pool.Exec(ctx, `
INSERT INTO advertisements (id, user_id, animal_id, status_id, title, description, latitude, longitude, published_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		ad.ID, ad.UserID, ad.AnimalID, ad.StatusID, ad.Title, ad.Description, lat, lon, ad.PublishedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedAdvertisement: %v", err)
	}
	return ad
}
