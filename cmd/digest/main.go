// Command digest emails the weekly activity digest to staff users. It is meant
// for an external cron job; delivery problems are logged, not returned.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/Berlkot/django-proj-kek-2025/internal/app"
)

func main() {
	ctx, cancel, infra, err := app.Bootstrap(context.Background())
	if err != nil {
		log.Fatalf("digest: %v", err)
	}
	defer cancel()
	defer infra.Close()

	summary := infra.Services().Maintenance.WeeklyDigest(ctx)
	infra.Log.Info("weekly digest finished", slog.String("summary", summary))
}
