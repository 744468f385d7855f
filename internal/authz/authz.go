// Package authz decides whether an actor may perform an action on a resource.
// Evaluation is a pure function of the actor's role, staff flag and ownership.
package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Resource is the target of an authorization request. OwnerID is ignored for
// list and create actions.
type Resource struct {
	Kind    domain.ResourceKind
	OwnerID uuid.UUID
}

// Decision is the evaluator's verdict. Err is a *domain.DeniedError when denied.
type Decision struct {
	Allowed bool
	Err     error
}

func allow() Decision { return Decision{Allowed: true} }

func deny(kind error, reason string) Decision {
	return Decision{Err: &domain.DeniedError{Kind: kind, Reason: reason}}
}

// kindRules lists the capabilities gating mutations of one resource kind.
// A zero capability means the action has no capability of its own.
type kindRules struct {
	create    domain.Capability
	editOwn   domain.Capability
	editAny   domain.Capability
	deleteOwn domain.Capability
	deleteAny domain.Capability
}

var rules = map[domain.ResourceKind]kindRules{
	domain.ResourceAdvertisement: {
		create:    domain.CapAdvertisementCreate,
		editOwn:   domain.CapAdvertisementEditOwn,
		editAny:   domain.CapAdvertisementManageAny,
		deleteOwn: domain.CapAdvertisementDeleteOwn,
		deleteAny: domain.CapAdvertisementManageAny,
	},
	domain.ResourceArticle: {
		create:    domain.CapArticleCreate,
		editOwn:   domain.CapArticleEditOwn,
		editAny:   domain.CapArticleEditAny,
		deleteOwn: domain.CapArticleDeleteOwn,
		deleteAny: domain.CapArticleDeleteAny,
	},
	// Responses need only authentication to create and have no edit-any.
	domain.ResourceComment: {
		editOwn:   domain.CapCommentEditOwn,
		deleteOwn: domain.CapCommentDeleteOwn,
		deleteAny: domain.CapCommentDeleteAny,
	},
}

// Authorize evaluates the rules in order: reads are public, mutations need an
// authenticated actor, staff may do anything, creation needs the kind's create
// capability, and edits/deletes need ownership with the "own" capability or the
// kind's "any" capability.
func Authorize(actor domain.Actor, action domain.Action, res Resource) Decision {
	if action.IsRead() {
		return allow()
	}
	if !actor.IsAuthenticated() {
		return deny(domain.ErrAuthenticationRequired, "authentication required")
	}
	if actor.IsStaff {
		return allow()
	}

	r, ok := rules[res.Kind]
	if !ok {
		return deny(domain.ErrPermissionDenied, fmt.Sprintf("unknown resource kind %q", res.Kind))
	}

	switch action {
	case domain.ActionCreate:
		if r.create == 0 || actor.Can(r.create) {
			return allow()
		}
		return deny(domain.ErrPermissionDenied, fmt.Sprintf("you are not allowed to create %ss", res.Kind))
	case domain.ActionUpdate:
		return mutate(actor, res, r.editOwn, r.editAny, "edit")
	case domain.ActionDelete:
		return mutate(actor, res, r.deleteOwn, r.deleteAny, "delete")
	}
	return deny(domain.ErrPermissionDenied, fmt.Sprintf("unsupported action %q", action))
}

func mutate(actor domain.Actor, res Resource, own, anyCap domain.Capability, verb string) Decision {
	if own != 0 && actor.Owns(res.OwnerID) && actor.Can(own) {
		return allow()
	}
	if anyCap != 0 && actor.Can(anyCap) {
		return allow()
	}
	return deny(domain.ErrPermissionDenied, fmt.Sprintf("you are not allowed to %s this %s", verb, res.Kind))
}

// Check is Authorize returning only the error.
func Check(actor domain.Actor, action domain.Action, res Resource) error {
	return Authorize(actor, action, res).Err
}

// CanManageAnyAdvertisement reports whether the actor bypasses the owner
// transition table and moderation.
func CanManageAnyAdvertisement(actor domain.Actor) bool {
	if !actor.IsAuthenticated() {
		return false
	}
	return actor.IsStaff || actor.Can(domain.CapAdvertisementManageAny)
}

// CanSeeAdvertisement reports whether the actor may see an advertisement.
// Advertisements awaiting moderation are visible only to their owner and to
// actors who manage any advertisement.
func CanSeeAdvertisement(actor domain.Actor, ownerID uuid.UUID, inModeration bool) bool {
	return !inModeration || actor.Owns(ownerID) || CanManageAnyAdvertisement(actor)
}
