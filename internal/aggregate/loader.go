// Package aggregate computes per-advertisement read-time aggregates (comment
// count, rating count and average) through a per-request batched loader, so a
// list page costs one query no matter how many advertisements it shows.
package aggregate

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type statsRepo interface {
	StatsByAdvertisementIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AdStats, error)
}

// Loader batches stats lookups keyed by advertisement ID.
type Loader = dataloader.Loader[uuid.UUID, domain.AdStats]

// NewLoader creates a loader backed by repo. Create one per request: loaders cache results.
func NewLoader(repo statsRepo) *Loader {
	return dataloader.NewBatchedLoader(
		newStatsBatchFn(repo),
		dataloader.WithWait[uuid.UUID, domain.AdStats](wait),
		dataloader.WithBatchCapacity[uuid.UUID, domain.AdStats](maxBatch),
	)
}

func newStatsBatchFn(repo statsRepo) dataloader.BatchFunc[uuid.UUID, domain.AdStats] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.AdStats] {
		stats, err := repo.StatsByAdvertisementIDs(ctx, keys)
		if err != nil {
			return errorResults(len(keys), err)
		}

		results := make([]*dataloader.Result[domain.AdStats], len(keys))
		for i, key := range keys {
			// Missing keys have no comments and no ratings.
			results[i] = &dataloader.Result[domain.AdStats]{Data: stats[key]}
		}
		return results
	}
}

func errorResults(n int, err error) []*dataloader.Result[domain.AdStats] {
	results := make([]*dataloader.Result[domain.AdStats], n)
	for i := range results {
		results[i] = &dataloader.Result[domain.AdStats]{Error: err}
	}
	return results
}

type contextKey string

const loaderKey contextKey = "stats_loader"

// WithLoader stores l in the context.
func WithLoader(ctx context.Context, l *Loader) context.Context {
	return context.WithValue(ctx, loaderKey, l)
}

// FromContext returns the request loader, or nil when the middleware is not installed.
func FromContext(ctx context.Context) *Loader {
	l, _ := ctx.Value(loaderKey).(*Loader)
	return l
}

// Middleware creates an HTTP middleware that installs a per-request loader.
func Middleware(repo statsRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoader(r.Context(), NewLoader(repo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Source resolves stats for services. It uses the request loader when one is
// installed and a fresh loader otherwise, so single and batch reads share the
// same batch function.
type Source struct {
	repo statsRepo
}

// NewSource creates a Source.
func NewSource(repo statsRepo) *Source {
	return &Source{repo: repo}
}

// Stats returns stats for every id. IDs without comments or ratings map to zero stats.
func (s *Source) Stats(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AdStats, error) {
	out := make(map[uuid.UUID]domain.AdStats, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	l := FromContext(ctx)
	if l == nil {
		l = NewLoader(s.repo)
	}

	values, errs := l.LoadMany(ctx, ids)()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load stats for %s: %w", ids[i], err)
		}
	}
	for i, id := range ids {
		out[id] = values[i]
	}
	return out, nil
}

// One returns stats for a single advertisement.
func (s *Source) One(ctx context.Context, id uuid.UUID) (domain.AdStats, error) {
	stats, err := s.Stats(ctx, []uuid.UUID{id})
	if err != nil {
		return domain.AdStats{}, err
	}
	return stats[id], nil
}

// Forget drops a cached entry from the request loader so the next read sees new
// comments or ratings.
func (s *Source) Forget(ctx context.Context, id uuid.UUID) {
	if l := FromContext(ctx); l != nil {
		l.Clear(ctx, id)
	}
}
