package catalog

import (
	"context"
	"log/slog"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/lifecycle"
)

const filterOptionsKey = "filter-options"

type catalogRepo interface {
	EnsureRole(ctx context.Context, name string, caps domain.CapabilitySet) (domain.Role, error)
	EnsureStatus(ctx context.Context, name string) (domain.AdStatus, error)
	StatusByName(ctx context.Context, name string) (*domain.AdStatus, error)
	StatusByID(ctx context.Context, id int64) (*domain.AdStatus, error)
	ListStatuses(ctx context.Context) ([]domain.AdStatus, error)
	EnsureRegion(ctx context.Context, name string) (domain.Region, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
	EnsureSpecies(ctx context.Context, name string) (domain.Species, error)
	ListSpecies(ctx context.Context) ([]domain.Species, error)
	EnsureBreed(ctx context.Context, speciesID int64, name string) (domain.Breed, error)
	BreedByID(ctx context.Context, id int64) (*domain.Breed, error)
	ListBreeds(ctx context.Context, speciesID *int64) ([]domain.Breed, error)
	EnsureColor(ctx context.Context, name string) (domain.Color, error)
	ListColors(ctx context.Context) ([]domain.Color, error)
	EnsureArticleCategory(ctx context.Context, name, slug string) (domain.ArticleCategory, error)
	ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error)
}

type userRepo interface {
	AssignRoleWhereMissing(ctx context.Context, roleID int64) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type optionsCache interface {
	Get(ctx context.Context, name string, dst any) (bool, error)
	Set(ctx context.Context, name string, v any) error
	Delete(ctx context.Context, names ...string) error
}

// Service owns reference data: explicit seeding, status lookups and filter options.
type Service struct {
	log         *slog.Logger
	catalog     catalogRepo
	users       userRepo
	tx          txManager
	cache       optionsCache
	policy      *lifecycle.Policy
	defaultRole string
}

// NewService creates a new catalog service. cache may be a nil *cache.JSONCache.
func NewService(
	log *slog.Logger,
	catalog catalogRepo,
	users userRepo,
	tx txManager,
	cache optionsCache,
	policy *lifecycle.Policy,
	defaultRole string,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if defaultRole == "" {
		defaultRole = domain.DefaultRoleName
	}
	return &Service{
		log:         log.With("service", "catalog"),
		catalog:     catalog,
		users:       users,
		tx:          tx,
		cache:       cache,
		policy:      policy,
		defaultRole: defaultRole,
	}
}

type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, any) error         { return nil }
func (noCache) Delete(context.Context, ...string) error        { return nil }
