package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/broker"
	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/cache"
	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/mail"
	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	adrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/advertisement"
	animalrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/animal"
	articlerepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/article"
	catalogrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/catalog"
	commentrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/comment"
	ratingrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/rating"
	userrepo "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres/user"
	"github.com/Berlkot/django-proj-kek-2025/internal/aggregate"
	"github.com/Berlkot/django-proj-kek-2025/internal/config"
	"github.com/Berlkot/django-proj-kek-2025/internal/lifecycle"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/advertisement"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/article"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/catalog"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/comment"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/maintenance"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/user"
)

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

type mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// repos are the postgres adapters shared by every service.
type repos struct {
	ads             *adrepo.Repo
	animals         *animalrepo.Repo
	articles        *articlerepo.Repo
	articleComments *articlerepo.CommentRepo
	catalog         *catalogrepo.Repo
	comments        *commentrepo.Repo
	ratings         *ratingrepo.Repo
	users           *userrepo.Repo
}

// Infra owns the external connections of one process. Close releases them.
type Infra struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool

	tx     *postgres.TxManager
	policy *lifecycle.Policy
	redis  *redis.Client
	events eventPublisher
	mailer mailer
	repos  repos

	closers []func()
}

// NewInfra wires repositories around an open pool. Events are dropped and mail
// is logged until Connect attaches the optional backends. Close does not close pool.
func NewInfra(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Infra {
	return &Infra{
		Config: cfg,
		Log:    logger,
		Pool:   pool,
		tx:     postgres.NewTxManager(pool),
		policy: lifecycle.NewPolicy(cfg.Lifecycle),
		events: broker.Noop{},
		mailer: mail.NewLogMailer(logger),
		repos: repos{
			ads:             adrepo.New(pool),
			animals:         animalrepo.New(pool),
			articles:        articlerepo.New(pool),
			articleComments: articlerepo.NewCommentRepo(pool),
			catalog:         catalogrepo.New(pool),
			comments:        commentrepo.New(pool),
			ratings:         ratingrepo.New(pool),
			users:           userrepo.New(pool),
		},
	}
}

// Connect opens the database pool and the optional redis and broker connections.
// Redis and the broker degrade to no-ops when unconfigured or unreachable.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	in := NewInfra(cfg, logger, pool)
	in.closers = append(in.closers, pool.Close)

	if rdb := cache.NewClient(ctx, cfg.Redis, logger); rdb != nil {
		in.redis = rdb
		in.closers = append(in.closers, func() { _ = rdb.Close() })
	}

	if cfg.Broker.URL != "" {
		pub, err := broker.Dial(cfg.Broker.URL, cfg.Broker.QueuePrefix, logger)
		if err != nil {
			logger.Warn("broker unavailable, events disabled", slog.String("error", err.Error()))
		} else {
			in.events = pub
			in.closers = append(in.closers, func() { _ = pub.Close() })
		}
	}

	if cfg.Digest.ResendAPIKey != "" {
		in.mailer = mail.NewResendMailer(cfg.Digest.ResendAPIKey, cfg.Digest.From)
	}

	return in, nil
}

// Close releases connections in reverse order of acquisition.
func (in *Infra) Close() {
	for i := len(in.closers) - 1; i >= 0; i-- {
		in.closers[i]()
	}
}

// Services are the application services wired against Infra.
type Services struct {
	Catalog        *catalog.Service
	Advertisements *advertisement.Service
	Comments       *comment.Service
	Articles       *article.Service
	Maintenance    *maintenance.Service
	Users          *user.Service
}

// Services builds every application service.
func (in *Infra) Services() *Services {
	stats := aggregate.NewSource(in.repos.ratings)
	optionsCache := cache.NewJSONCache(in.redis, in.Config.Redis.Prefix, in.Config.Redis.TTL)

	catalogSvc := catalog.NewService(
		in.Log, in.repos.catalog, in.repos.users, in.tx, optionsCache,
		in.policy, in.Config.Lifecycle.DefaultRole,
	)

	return &Services{
		Catalog: catalogSvc,
		Advertisements: advertisement.NewService(
			in.Log, in.repos.ads, in.repos.animals, in.repos.ratings, catalogSvc,
			stats, in.events, in.tx, in.policy,
			advertisement.Paging{
				DefaultSize: in.Config.Listing.DefaultPageSize,
				MaxSize:     in.Config.Listing.MaxPageSize,
			},
		),
		Comments: comment.NewService(in.Log, in.repos.comments, in.repos.ads, in.policy, stats),
		Articles: article.NewService(in.Log, in.repos.articles, in.repos.articleComments, in.tx),
		Maintenance: maintenance.NewService(
			in.Log, in.repos.ads, in.repos.users, catalogSvc, in.mailer,
			in.events, in.policy, in.Config.Digest.Subject,
		),
		Users: user.NewService(in.Log, in.repos.users),
	}
}

// pingRedis reports the cache as healthy when it is disabled.
func (in *Infra) pingRedis(ctx context.Context) error {
	if in.redis == nil {
		return nil
	}
	return in.redis.Ping(ctx).Err()
}

// statsMiddleware installs the per-request aggregate loader.
func (in *Infra) statsMiddleware() func(http.Handler) http.Handler {
	return aggregate.Middleware(in.repos.ratings)
}
