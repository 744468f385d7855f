// Command seed upserts reference data: roles, statuses, regions, species,
// breeds and colors. Running it twice is harmless.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Berlkot/django-proj-kek-2025/internal/app"
)

func main() {
	ctx, cancel, infra, err := app.Bootstrap(context.Background())
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	defer cancel()
	defer infra.Close()

	res, err := infra.Services().Catalog.Seed(ctx)
	if err != nil {
		infra.Log.Error("seed failed", slog.String("error", err.Error()))
		infra.Close()
		os.Exit(1)
	}

	infra.Log.Info("seed completed",
		slog.Int("roles", res.Roles),
		slog.Int("statuses", res.Statuses),
		slog.Int("regions", res.Regions),
		slog.Int("species", res.Species),
		slog.Int("breeds", res.Breeds),
		slog.Int("colors", res.Colors),
		slog.Int("article_categories", res.ArticleCategories),
		slog.Int64("users_assigned", res.UsersAssigned),
	)
}
