package domain

import (
	"time"

	"github.com/google/uuid"
)

// Animal is the subject of an advertisement.
type Animal struct {
	ID        uuid.UUID
	Name      *string
	SpeciesID int64
	BreedID   *int64
	ColorID   *int64
	Gender    Gender
	BirthDate *time.Time
}

// AnimalUpdateParams holds a partial animal update. nil means "keep".
type AnimalUpdateParams struct {
	Name      *string
	SpeciesID *int64
	BreedID   *int64
	ColorID   *int64
	Gender    *Gender
	BirthDate *time.Time

	// ClearBreed and ClearColor unset the reference; they win over BreedID and ColorID.
	ClearBreed bool
	ClearColor bool
}

// IsEmpty reports whether the update changes nothing.
func (p AnimalUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.SpeciesID == nil && p.BreedID == nil &&
		p.ColorID == nil && p.Gender == nil && p.BirthDate == nil &&
		!p.ClearBreed && !p.ClearColor
}

// Apply returns a copy of a with the update applied.
func (p AnimalUpdateParams) Apply(a Animal) Animal {
	if p.Name != nil {
		a.Name = p.Name
	}
	if p.SpeciesID != nil {
		a.SpeciesID = *p.SpeciesID
	}
	switch {
	case p.ClearBreed:
		a.BreedID = nil
	case p.BreedID != nil:
		a.BreedID = p.BreedID
	}
	switch {
	case p.ClearColor:
		a.ColorID = nil
	case p.ColorID != nil:
		a.ColorID = p.ColorID
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.BirthDate != nil {
		d := DateOnly(*p.BirthDate)
		a.BirthDate = &d
	}
	return a
}

// CheckBreed enforces that the breed belongs to the animal's species.
func CheckBreed(speciesID int64, breed *Breed) error {
	if breed == nil {
		return nil
	}
	if breed.SpeciesID != speciesID {
		return NewValidationError("animal.breed", "breed does not belong to the selected species")
	}
	return nil
}
