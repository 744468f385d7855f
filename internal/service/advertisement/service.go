package advertisement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/lifecycle"
)

type adRepo interface {
	Create(ctx context.Context, ad *domain.Advertisement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)
	GetListing(ctx context.Context, id uuid.UUID) (*domain.AdListing, error)
	List(ctx context.Context, f domain.AdFilter) ([]domain.AdListing, int, error)
	Update(ctx context.Context, id uuid.UUID, p domain.AdvertisementUpdateParams) (*domain.Advertisement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindDuplicate(ctx context.Context, q domain.DuplicateQuery) (uuid.UUID, bool, error)
}

type animalRepo interface {
	Create(ctx context.Context, a *domain.Animal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Animal, error)
	Update(ctx context.Context, a domain.Animal) error
}

type ratingRepo interface {
	Create(ctx context.Context, r *domain.Rating) error
}

// catalogService resolves reference rows; implemented by service/catalog.
type catalogService interface {
	StatusByName(ctx context.Context, name string) (*domain.AdStatus, error)
	StatusByID(ctx context.Context, id int64) (*domain.AdStatus, error)
	Breed(ctx context.Context, id int64) (*domain.Breed, error)
}

type statsSource interface {
	Stats(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AdStats, error)
	One(ctx context.Context, id uuid.UUID) (domain.AdStats, error)
	Forget(ctx context.Context, id uuid.UUID)
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	Lock(ctx context.Context, key string) error
}

// Service implements the advertisement lifecycle: creation through moderation,
// owner status transitions, listing and rating.
type Service struct {
	log     *slog.Logger
	ads     adRepo
	animals animalRepo
	ratings ratingRepo
	catalog catalogService
	stats   statsSource
	events  eventPublisher
	tx      txManager
	policy  *lifecycle.Policy
	paging  Paging
	now     func() time.Time
}

// Paging bounds list page sizes.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// NewService creates a new advertisement service.
func NewService(
	log *slog.Logger,
	ads adRepo,
	animals animalRepo,
	ratings ratingRepo,
	catalog catalogService,
	stats statsSource,
	events eventPublisher,
	tx txManager,
	policy *lifecycle.Policy,
	paging Paging,
) *Service {
	if paging.DefaultSize <= 0 {
		paging.DefaultSize = domain.DefaultPageSize
	}
	if paging.MaxSize <= 0 {
		paging.MaxSize = domain.MaxPageSize
	}
	return &Service{
		log:     log.With("service", "advertisement"),
		ads:     ads,
		animals: animals,
		ratings: ratings,
		catalog: catalog,
		stats:   stats,
		events:  events,
		tx:      tx,
		policy:  policy,
		paging:  paging,
		now:     time.Now,
	}
}

// publish sends a lifecycle event. Delivery failures are logged, never returned:
// the change is already committed.
func (s *Service) publish(ctx context.Context, ev domain.AdvertisementEvent) {
	ev.OccurredAt = s.now().UTC()
	if err := s.events.Publish(ctx, ev.Type, ev); err != nil {
		s.log.WarnContext(ctx, "publish event",
			slog.String("event", ev.Type),
			slog.String("error", err.Error()),
		)
	}
}
