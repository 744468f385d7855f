// Package catalog implements persistence of reference data: roles, statuses,
// regions, species, breeds, colors and article categories.
package catalog

import (
	"context"
	"fmt"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Repo provides reference data persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// The no-op DO UPDATE makes RETURNING yield the existing row on conflict,
// so seeding never overwrites data edited by administrators.
const (
	ensureRoleSQL = `
INSERT INTO roles (name, capabilities) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, capabilities`

	ensureBreedSQL = `
INSERT INTO breeds (species_id, name) VALUES ($1, $2)
ON CONFLICT (species_id, name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, species_id, name`

	ensureArticleCategorySQL = `
INSERT INTO article_categories (name, slug) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, slug`
)

// namedTable is a reference table with (id, name) rows. Values are fixed table names.
type namedTable string

const (
	tableStatuses namedTable = "ad_statuses"
	tableRegions  namedTable = "regions"
	tableSpecies  namedTable = "species"
	tableColors   namedTable = "colors"
)

type namedRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r *Repo) ensureNamed(ctx context.Context, table namedTable, name string) (namedRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name`, table)

	var row namedRow
	if err := postgres.Get(ctx, q, &row, sql, name); err != nil {
		return namedRow{}, postgres.MapError(err, string(table), name)
	}
	return row, nil
}

func (r *Repo) listNamed(ctx context.Context, table namedTable) ([]namedRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows := []namedRow{}
	sql := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, table)
	if err := postgres.Select(ctx, q, &rows, sql); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

type roleRow struct {
	ID           int64    `db:"id"`
	Name         string   `db:"name"`
	Capabilities []string `db:"capabilities"`
}

func (r roleRow) toDomain() (domain.Role, error) {
	caps, err := domain.ParseCapabilitySet(r.Capabilities)
	if err != nil {
		return domain.Role{}, fmt.Errorf("role %q: %w", r.Name, err)
	}
	return domain.Role{ID: r.ID, Name: r.Name, Capabilities: caps}, nil
}

// EnsureRole creates the role with caps unless a role with that name exists.
func (r *Repo) EnsureRole(ctx context.Context, name string, caps domain.CapabilitySet) (domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row roleRow
	if err := postgres.Get(ctx, q, &row, ensureRoleSQL, name, caps.Names()); err != nil {
		return domain.Role{}, postgres.MapError(err, "role", name)
	}
	return row.toDomain()
}

// RoleByName returns a role by its unique name.
func (r *Repo) RoleByName(ctx context.Context, name string) (*domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row roleRow
	err := postgres.Get(ctx, q, &row, `SELECT id, name, capabilities FROM roles WHERE name = $1`, name)
	if err != nil {
		return nil, postgres.MapError(err, "role", name)
	}
	role, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ---------------------------------------------------------------------------
// Statuses
// ---------------------------------------------------------------------------

// EnsureStatus creates the status if missing.
func (r *Repo) EnsureStatus(ctx context.Context, name string) (domain.AdStatus, error) {
	row, err := r.ensureNamed(ctx, tableStatuses, name)
	return domain.AdStatus{ID: row.ID, Name: row.Name}, err
}

// StatusByName returns a status by its unique name.
func (r *Repo) StatusByName(ctx context.Context, name string) (*domain.AdStatus, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row namedRow
	if err := postgres.Get(ctx, q, &row, `SELECT id, name FROM ad_statuses WHERE name = $1`, name); err != nil {
		return nil, postgres.MapError(err, "ad_status", name)
	}
	return &domain.AdStatus{ID: row.ID, Name: row.Name}, nil
}

// StatusByID returns a status by primary key.
func (r *Repo) StatusByID(ctx context.Context, id int64) (*domain.AdStatus, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row namedRow
	if err := postgres.Get(ctx, q, &row, `SELECT id, name FROM ad_statuses WHERE id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "ad_status", id)
	}
	return &domain.AdStatus{ID: row.ID, Name: row.Name}, nil
}

// ListStatuses returns every status ordered by name.
func (r *Repo) ListStatuses(ctx context.Context) ([]domain.AdStatus, error) {
	rows, err := r.listNamed(ctx, tableStatuses)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AdStatus, len(rows))
	for i, row := range rows {
		out[i] = domain.AdStatus{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Regions, species, colors
// ---------------------------------------------------------------------------

// EnsureRegion creates the region if missing.
func (r *Repo) EnsureRegion(ctx context.Context, name string) (domain.Region, error) {
	row, err := r.ensureNamed(ctx, tableRegions, name)
	return domain.Region{ID: row.ID, Name: row.Name}, err
}

// ListRegions returns every region ordered by name.
func (r *Repo) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.listNamed(ctx, tableRegions)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Region, len(rows))
	for i, row := range rows {
		out[i] = domain.Region{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// EnsureSpecies creates the species if missing.
func (r *Repo) EnsureSpecies(ctx context.Context, name string) (domain.Species, error) {
	row, err := r.ensureNamed(ctx, tableSpecies, name)
	return domain.Species{ID: row.ID, Name: row.Name}, err
}

// ListSpecies returns every species ordered by name.
func (r *Repo) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	rows, err := r.listNamed(ctx, tableSpecies)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Species, len(rows))
	for i, row := range rows {
		out[i] = domain.Species{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// EnsureColor creates the color if missing.
func (r *Repo) EnsureColor(ctx context.Context, name string) (domain.Color, error) {
	row, err := r.ensureNamed(ctx, tableColors, name)
	return domain.Color{ID: row.ID, Name: row.Name}, err
}

// ListColors returns every color ordered by name.
func (r *Repo) ListColors(ctx context.Context) ([]domain.Color, error) {
	rows, err := r.listNamed(ctx, tableColors)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Color, len(rows))
	for i, row := range rows {
		out[i] = domain.Color{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Breeds
// ---------------------------------------------------------------------------

type breedRow struct {
	ID        int64  `db:"id"`
	SpeciesID int64  `db:"species_id"`
	Name      string `db:"name"`
}

func (b breedRow) toDomain() domain.Breed {
	return domain.Breed{ID: b.ID, SpeciesID: b.SpeciesID, Name: b.Name}
}

// EnsureBreed creates the breed of a species if missing.
func (r *Repo) EnsureBreed(ctx context.Context, speciesID int64, name string) (domain.Breed, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row breedRow
	if err := postgres.Get(ctx, q, &row, ensureBreedSQL, speciesID, name); err != nil {
		return domain.Breed{}, postgres.MapError(err, "breed", name)
	}
	return row.toDomain(), nil
}

// BreedByID returns a breed by primary key.
func (r *Repo) BreedByID(ctx context.Context, id int64) (*domain.Breed, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row breedRow
	if err := postgres.Get(ctx, q, &row, `SELECT id, species_id, name FROM breeds WHERE id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "breed", id)
	}
	b := row.toDomain()
	return &b, nil
}

// ListBreeds returns breeds ordered by name, optionally restricted to one species.
func (r *Repo) ListBreeds(ctx context.Context, speciesID *int64) ([]domain.Breed, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select("id", "species_id", "name").From("breeds").OrderBy("name")
	if speciesID != nil {
		b = b.Where("species_id = ?", *speciesID)
	}

	rows := []breedRow{}
	if err := postgres.SelectBuilt(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	out := make([]domain.Breed, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Article categories
// ---------------------------------------------------------------------------

type articleCategoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

// EnsureArticleCategory creates the category if missing. An existing category
// keeps its slug.
func (r *Repo) EnsureArticleCategory(ctx context.Context, name, slug string) (domain.ArticleCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row articleCategoryRow
	if err := postgres.Get(ctx, q, &row, ensureArticleCategorySQL, name, slug); err != nil {
		return domain.ArticleCategory{}, postgres.MapError(err, "article category", name)
	}
	return domain.ArticleCategory(row), nil
}

// ListArticleCategories returns every article category ordered by name.
func (r *Repo) ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows := []articleCategoryRow{}
	if err := postgres.Select(ctx, q, &rows, `SELECT id, name, slug FROM article_categories ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list article categories: %w", err)
	}
	out := make([]domain.ArticleCategory, len(rows))
	for i, row := range rows {
		out[i] = domain.ArticleCategory(row)
	}
	return out, nil
}
