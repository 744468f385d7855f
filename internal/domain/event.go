package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys of advertisement lifecycle events.
const (
	EventAdvertisementCreated       = "advertisement.created"
	EventAdvertisementStatusChanged = "advertisement.status_changed"
	EventAdvertisementArchived      = "advertisement.archived"
)

// AdvertisementEvent is published after a lifecycle change commits.
type AdvertisementEvent struct {
	Type            string     `json:"type"`
	AdvertisementID *uuid.UUID `json:"advertisement_id,omitempty"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Status          string     `json:"status,omitempty"`
	PreviousStatus  string     `json:"previous_status,omitempty"`
	// Count is set on batch events such as the archive sweep.
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
