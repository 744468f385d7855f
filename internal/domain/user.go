package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered platform user.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	RegionID  *int64
	RoleID    *int64
	IsStaff   bool
	CreatedAt time.Time
}

// Actor is the identity a request acts as. The zero value is anonymous.
type Actor struct {
	UserID  uuid.UUID
	Role    *Role
	IsStaff bool
}

// Anonymous returns an unauthenticated actor.
func Anonymous() Actor { return Actor{} }

// IsAuthenticated reports whether the actor carries a user identity.
func (a Actor) IsAuthenticated() bool { return a.UserID != uuid.Nil }

// Owns reports whether the actor is the given owner.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.IsAuthenticated() && a.UserID == ownerID
}

// Can is shorthand for HasCapability on the actor's role.
func (a Actor) Can(c Capability) bool { return HasCapability(a.Role, c) }
