package maintenance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// ArchiveOld moves completed advertisements older than the retention window to
// the archived status. Running it twice in a row archives nothing the second time.
func (s *Service) ArchiveOld(ctx context.Context) (summary string) {
	defer s.recoverSweep(ctx, &summary, s.archiveFailed)

	archived, err := s.catalog.StatusByName(ctx, s.policy.ArchivedStatus())
	if err != nil {
		return s.archiveFailed(ctx, err)
	}

	cutoff := s.policy.RetentionCutoff(s.now())
	n, err := s.ads.ArchiveBefore(ctx, s.policy.ArchiveSources(), archived.ID, cutoff)
	if err != nil {
		return s.archiveFailed(ctx, err)
	}

	if n == 0 {
		s.log.InfoContext(ctx, "archive sweep: nothing to archive")
		return "No old advertisements to archive."
	}

	s.log.InfoContext(ctx, "archive sweep done",
		slog.Int64("archived", n),
		slog.Time("cutoff", cutoff),
	)
	if err := s.events.Publish(ctx, domain.EventAdvertisementArchived, domain.AdvertisementEvent{
		Type:       domain.EventAdvertisementArchived,
		Status:     archived.Name,
		Count:      n,
		OccurredAt: s.now().UTC(),
	}); err != nil {
		s.log.WarnContext(ctx, "publish event",
			slog.String("event", domain.EventAdvertisementArchived),
			slog.String("error", err.Error()),
		)
	}
	return fmt.Sprintf("Successfully archived %d old advertisements.", n)
}

func (s *Service) archiveFailed(ctx context.Context, err error) string {
	s.log.ErrorContext(ctx, "archive sweep failed", slog.String("error", err.Error()))
	if errors.Is(err, domain.ErrConfiguration) {
		return "Error: Could not find required AdStatus objects."
	}
	return fmt.Sprintf("Error: an unexpected error occurred: %v", err)
}
