package user

import (
	"context"
	"fmt"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Profile is the user record together with the effective role of the request.
type Profile struct {
	User domain.User
	Role *domain.Role
}

// Capabilities lists the granted capability names; staff gets every capability.
func (p Profile) Capabilities() []string {
	if p.User.IsStaff {
		return domain.AllCapabilities().Names()
	}
	if p.Role == nil {
		return []string{}
	}
	return p.Role.Capabilities.Names()
}

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized for anonymous requests.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	actor := authz.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return &Profile{User: *u, Role: actor.Role}, nil
}
