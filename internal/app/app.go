package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Berlkot/django-proj-kek-2025/internal/auth"
	"github.com/Berlkot/django-proj-kek-2025/internal/config"
	"github.com/Berlkot/django-proj-kek-2025/internal/locale"
	"github.com/Berlkot/django-proj-kek-2025/internal/transport/middleware"
	"github.com/Berlkot/django-proj-kek-2025/internal/transport/rest"
)

// Run starts the HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	infra, err := Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	svcs := infra.Services()

	if cfg.Server.SeedOnStartup {
		res, err := svcs.Catalog.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed reference data: %w", err)
		}
		logger.Info("reference data seeded",
			slog.Int("statuses", res.Statuses),
			slog.Int("species", res.Species),
			slog.Int64("users_assigned", res.UsersAssigned),
		)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(infra, svcs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewHandler assembles the middleware stack and routes. limiter may be nil.
func NewHandler(infra *Infra, svcs *Services, limiter *middleware.RateLimiter) http.Handler {
	cfg, logger := infra.Config, infra.Log
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	global := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	api := []func(http.Handler) http.Handler{
		middleware.Identity(jwt, infra.repos.users, logger),
		middleware.Locale(locale.NewRegistry()),
	}
	if limiter != nil {
		api = append(api, limiter.LimitMutations(cfg.RateLimit.MutationsPerMin))
	}
	api = append(api, infra.statsMiddleware())

	return rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: infra.Pool.Ping, Critical: true},
			rest.Check{Name: "cache", Ping: infra.pingRedis},
		),
		Advertisements: rest.NewAdvertisementHandler(svcs.Advertisements, logger),
		Comments:       rest.NewCommentHandler(svcs.Comments, logger),
		Articles:       rest.NewArticleHandler(svcs.Articles, logger),
		Catalog:        rest.NewCatalogHandler(svcs.Catalog, logger),
		Users:          rest.NewUserHandler(svcs.Users, logger),
	}, global, api)
}

// jobTimeout bounds one-shot commands.
const jobTimeout = 5 * time.Minute

// Bootstrap loads config, builds the logger and connects for one-shot commands.
// The returned context is bounded and must be released with the cancel func.
func Bootstrap(parent context.Context) (context.Context, context.CancelFunc, *Infra, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(parent, jobTimeout)
	infra, err := Connect(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return ctx, cancel, infra, nil
}
