package advertisement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Create publishes a new advertisement together with its animal. Non-privileged
// authors always start in moderation; the status they asked for is kept for approval.
func (s *Service) Create(ctx context.Context, input CreateInput) (*View, error) {
	actor := authz.ActorFromCtx(ctx)
	if err := authz.Check(actor, domain.ActionCreate, authz.Resource{Kind: domain.ResourceAdvertisement}); err != nil {
		return nil, err
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	initial, err := s.policy.InitialStatus(actor, strings.TrimSpace(input.Status))
	if err != nil {
		return nil, err
	}

	gender, _ := domain.ParseGender(input.Animal.Gender)
	animal := domain.Animal{
		Name:      trimOrNil(input.Animal.Name),
		SpeciesID: input.Animal.SpeciesID,
		BreedID:   input.Animal.BreedID,
		ColorID:   input.Animal.ColorID,
		Gender:    gender,
	}
	if input.Animal.BirthDate != nil {
		d := domain.DateOnly(*input.Animal.BirthDate)
		animal.BirthDate = &d
	}
	if err := s.checkBreed(ctx, animal); err != nil {
		return nil, err
	}

	status, err := s.catalog.StatusByName(ctx, initial.Status)
	if err != nil {
		return nil, err
	}
	var requestedID *int64
	if initial.Requested != "" {
		requested, err := s.catalog.StatusByName(ctx, initial.Requested)
		if err != nil {
			return nil, err
		}
		requestedID = &requested.ID
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = domain.DefaultAdvertisementTitle
	}
	description := strings.TrimSpace(input.Description)

	ad := &domain.Advertisement{
		UserID:            actor.UserID,
		StatusID:          status.ID,
		RequestedStatusID: requestedID,
		Title:             title,
		Description:       description,
		Location:          input.Location,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Concurrent submissions by one user must see each other in the duplicate check.
		if err := s.tx.Lock(ctx, "advertisement-submit:"+actor.UserID.String()); err != nil {
			return err
		}
		dupID, found, err := s.ads.FindDuplicate(ctx, domain.DuplicateQuery{
			UserID:      actor.UserID,
			Description: description,
			StatusNames: s.policy.ActiveLike(),
			Location:    input.Location,
		})
		if err != nil {
			return err
		}
		if found {
			return &domain.DuplicateSubmissionError{ExistingID: dupID.String()}
		}

		if err := s.animals.Create(ctx, &animal); err != nil {
			return fmt.Errorf("create animal: %w", err)
		}
		ad.AnimalID = animal.ID
		if err := s.ads.Create(ctx, ad); err != nil {
			return fmt.Errorf("create advertisement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "advertisement created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("advertisement_id", ad.ID.String()),
		slog.String("status", initial.Status),
		slog.String("requested_status", initial.Requested),
	)

	s.publish(ctx, domain.AdvertisementEvent{
		Type:            domain.EventAdvertisementCreated,
		AdvertisementID: &ad.ID,
		UserID:          &actor.UserID,
		Status:          initial.Status,
	})

	return s.view(ctx, ad.ID)
}

// checkBreed enforces that the breed, when set, belongs to the animal's species.
func (s *Service) checkBreed(ctx context.Context, a domain.Animal) error {
	if a.BreedID == nil {
		return nil
	}
	breed, err := s.catalog.Breed(ctx, *a.BreedID)
	if err != nil {
		return err
	}
	return domain.CheckBreed(a.SpeciesID, breed)
}
