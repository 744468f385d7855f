package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a response left on an advertisement.
type Comment struct {
	ID              uuid.UUID
	AdvertisementID uuid.UUID
	UserID          uuid.UUID
	Username        string
	Message         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
