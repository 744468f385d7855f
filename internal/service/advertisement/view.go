package advertisement

import (
	"context"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/locale"
)

// View is an advertisement as shown to clients: the joined listing plus
// aggregates and the rendered age.
type View struct {
	domain.AdListing

	Stats         domain.AdStats
	AverageRating *float64
	AgeText       string
	AgeBucket     domain.AgeBucket
}

// ListResult is one page of advertisements.
type ListResult struct {
	Items []View
	Total int
	Page  int
	Size  int
}

func (s *Service) buildView(ctx context.Context, l domain.AdListing, stats domain.AdStats) View {
	today := s.now()
	return View{
		AdListing:     l,
		Stats:         stats,
		AverageRating: stats.AverageRating(),
		AgeText:       locale.FromContext(ctx).FormatAge(l.Animal.BirthDate, today),
		AgeBucket:     domain.ClassifyAge(l.Animal.BirthDate, today),
	}
}
