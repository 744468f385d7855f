package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAdvertisementTitle is used when the author leaves the title empty.
const DefaultAdvertisementTitle = "Потеряно/Найдено животное"

// GeoPoint is a WGS84 coordinate with six decimal places of precision.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Advertisement is a lost/found/adoption listing. PublishedAt never changes after creation.
type Advertisement struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	AnimalID          uuid.UUID
	StatusID          int64
	RequestedStatusID *int64
	Title             string
	Description       string
	Location          *GeoPoint
	PublishedAt       time.Time
	UpdatedAt         time.Time
}

// AdvertisementUpdateParams holds a partial advertisement update.
type AdvertisementUpdateParams struct {
	Title       *string
	Description *string
	StatusID    *int64
	Location    *GeoPoint
	// ClearLocation removes the coordinates; it wins over Location.
	ClearLocation bool
	// ClearRequestedStatus forgets the status requested at creation.
	ClearRequestedStatus bool
}

// IsEmpty reports whether the update changes nothing.
func (p AdvertisementUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.StatusID == nil &&
		p.Location == nil && !p.ClearLocation && !p.ClearRequestedStatus
}

// AdListing is the joined read model used by list and detail views.
type AdListing struct {
	Advertisement

	StatusName    string
	OwnerUsername string
	RegionID      *int64
	RegionName    *string

	Animal      Animal
	SpeciesName string
	BreedName   *string
	ColorName   *string
}

// DuplicateQuery describes the create-time near-duplicate lookup.
type DuplicateQuery struct {
	UserID      uuid.UUID
	Description string
	StatusNames []string
	Location    *GeoPoint
}
