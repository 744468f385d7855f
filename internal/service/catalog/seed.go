package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// SeedResult summarizes one Seed run.
type SeedResult struct {
	Roles             int
	Statuses          int
	Regions           int
	Species           int
	Breeds            int
	Colors            int
	ArticleCategories int
	UsersAssigned     int64
}

// Seed upserts the default roles, every configured status and the default
// regions, species, breeds, colors and article categories, then gives the default role to users
// without one. Running it twice changes nothing.
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var defaultRoleID int64
		for _, r := range defaultRoles(s.defaultRole) {
			role, err := s.catalog.EnsureRole(ctx, r.name, r.caps)
			if err != nil {
				return fmt.Errorf("ensure role %q: %w", r.name, err)
			}
			if r.name == s.defaultRole {
				defaultRoleID = role.ID
			}
			res.Roles++
		}

		for _, name := range s.policy.Statuses() {
			if _, err := s.catalog.EnsureStatus(ctx, name); err != nil {
				return fmt.Errorf("ensure status %q: %w", name, err)
			}
			res.Statuses++
		}

		for _, name := range defaultRegions {
			if _, err := s.catalog.EnsureRegion(ctx, name); err != nil {
				return fmt.Errorf("ensure region %q: %w", name, err)
			}
			res.Regions++
		}

		for _, sp := range defaultSpecies {
			species, err := s.catalog.EnsureSpecies(ctx, sp.name)
			if err != nil {
				return fmt.Errorf("ensure species %q: %w", sp.name, err)
			}
			res.Species++
			for _, b := range sp.breeds {
				if _, err := s.catalog.EnsureBreed(ctx, species.ID, b); err != nil {
					return fmt.Errorf("ensure breed %q: %w", b, err)
				}
				res.Breeds++
			}
		}

		for _, name := range defaultColors {
			if _, err := s.catalog.EnsureColor(ctx, name); err != nil {
				return fmt.Errorf("ensure color %q: %w", name, err)
			}
			res.Colors++
		}

		for _, c := range defaultArticleCategories {
			if _, err := s.catalog.EnsureArticleCategory(ctx, c.name, c.slug); err != nil {
				return fmt.Errorf("ensure article category %q: %w", c.name, err)
			}
			res.ArticleCategories++
		}

		n, err := s.users.AssignRoleWhereMissing(ctx, defaultRoleID)
		if err != nil {
			return fmt.Errorf("assign default role: %w", err)
		}
		res.UsersAssigned = n
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	if err := s.cache.Delete(ctx, filterOptionsKey); err != nil {
		s.log.WarnContext(ctx, "invalidate filter options", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "reference data seeded",
		slog.Int("roles", res.Roles),
		slog.Int("statuses", res.Statuses),
		slog.Int("species", res.Species),
		slog.Int("breeds", res.Breeds),
		slog.Int("article_categories", res.ArticleCategories),
		slog.Int64("users_assigned", res.UsersAssigned),
	)
	return res, nil
}
