package advertisement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Update applies a partial update to an advertisement and its animal. Status
// changes go through the lifecycle policy; privileged actors bypass the owner table.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*View, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrAuthenticationRequired
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	ad, err := s.ads.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	if err := authz.Check(actor, domain.ActionUpdate, authz.Resource{Kind: domain.ResourceAdvertisement, OwnerID: ad.UserID}); err != nil {
		return nil, err
	}

	params := domain.AdvertisementUpdateParams{
		Description:   trimOrNil(input.Description),
		Location:      input.Location,
		ClearLocation: input.ClearLocation,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			title = domain.DefaultAdvertisementTitle
		}
		params.Title = &title
	}

	from, to, err := s.resolveStatusChange(ctx, actor, ad, input.Status, &params)
	if err != nil {
		return nil, err
	}

	animalPatch, err := toAnimalParams(input.Animal)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if !animalPatch.IsEmpty() {
			current, err := s.animals.GetByID(ctx, ad.AnimalID)
			if err != nil {
				return fmt.Errorf("get animal: %w", err)
			}
			next := animalPatch.Apply(*current)
			if err := s.checkBreed(ctx, next); err != nil {
				return err
			}
			if err := s.animals.Update(ctx, next); err != nil {
				return fmt.Errorf("update animal: %w", err)
			}
		}
		if _, err := s.ads.Update(ctx, ad.ID, params); err != nil {
			return fmt.Errorf("update advertisement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "advertisement updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("advertisement_id", ad.ID.String()),
	)

	if to != "" {
		s.publish(ctx, domain.AdvertisementEvent{
			Type:            domain.EventAdvertisementStatusChanged,
			AdvertisementID: &ad.ID,
			UserID:          &ad.UserID,
			Status:          to,
			PreviousStatus:  from,
		})
	}

	return s.view(ctx, ad.ID)
}

// resolveStatusChange validates a requested status and fills params. It returns
// the old and new status names, with to empty when the status does not change.
func (s *Service) resolveStatusChange(
	ctx context.Context,
	actor domain.Actor,
	ad *domain.Advertisement,
	requested *string,
	params *domain.AdvertisementUpdateParams,
) (from, to string, err error) {
	if requested == nil {
		return "", "", nil
	}

	current, err := s.catalog.StatusByID(ctx, ad.StatusID)
	if err != nil {
		return "", "", err
	}
	target := strings.TrimSpace(*requested)
	if err := s.policy.CheckTransition(actor, current.Name, target); err != nil {
		return "", "", err
	}
	if target == current.Name {
		return "", "", nil
	}

	next, err := s.catalog.StatusByName(ctx, target)
	if err != nil {
		return "", "", err
	}
	params.StatusID = &next.ID
	if s.policy.IsModeration(current.Name) {
		params.ClearRequestedStatus = true
	}
	return current.Name, target, nil
}

func toAnimalParams(p AnimalPatch) (domain.AnimalUpdateParams, error) {
	out := domain.AnimalUpdateParams{
		Name:       trimOrNil(p.Name),
		SpeciesID:  p.SpeciesID,
		BreedID:    p.BreedID,
		ColorID:    p.ColorID,
		BirthDate:  p.BirthDate,
		ClearBreed: p.ClearBreed,
		ClearColor: p.ClearColor,
	}
	if p.Gender != nil {
		g, err := domain.ParseGender(*p.Gender)
		if err != nil {
			return domain.AnimalUpdateParams{}, err
		}
		out.Gender = &g
	}
	return out, nil
}
