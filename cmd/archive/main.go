// Command archive moves completed advertisements older than the retention
// period to the archived status. It is meant for an external cron job.
//
// The sweep never fails the process: problems are logged and reported in the
// summary line. Exit code 1 means the command could not start at all.
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
		log.Fatalf("archive: %v", err)
	}
	defer cancel()
	defer infra.Close()

	summary := infra.Services().Maintenance.ArchiveOld(ctx)
	infra.Log.Info("archive sweep finished", slog.String("summary", summary))
}
