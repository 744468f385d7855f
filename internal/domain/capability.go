package domain

import (
	"fmt"
	"math/bits"
	"sort"
)

// Capability is a single permission bit. "own" and "any" variants are independent bits.
type Capability uint16

const (
	CapAdvertisementCreate Capability = 1 << iota
	CapAdvertisementEditOwn
	CapAdvertisementDeleteOwn
	CapAdvertisementManageAny

	CapArticleCreate
	CapArticleEditOwn
	CapArticleEditAny
	CapArticleDeleteOwn
	CapArticleDeleteAny

	CapCommentEditOwn
	CapCommentDeleteOwn
	CapCommentDeleteAny
)

var capabilityNames = map[Capability]string{
	CapAdvertisementCreate:    "advertisement.create",
	CapAdvertisementEditOwn:   "advertisement.edit_own",
	CapAdvertisementDeleteOwn: "advertisement.delete_own",
	CapAdvertisementManageAny: "advertisement.manage_any",
	CapArticleCreate:          "article.create",
	CapArticleEditOwn:         "article.edit_own",
	CapArticleEditAny:         "article.edit_any",
	CapArticleDeleteOwn:       "article.delete_own",
	CapArticleDeleteAny:       "article.delete_any",
	CapCommentEditOwn:         "comment.edit_own",
	CapCommentDeleteOwn:       "comment.delete_own",
	CapCommentDeleteAny:       "comment.delete_any",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("capability(%d)", uint16(c))
}

// ParseCapability resolves a stored capability name.
func ParseCapability(name string) (Capability, error) {
	for c, n := range capabilityNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// CapabilitySet is a bitset of capabilities. The zero value grants nothing.
type CapabilitySet uint16

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s |= CapabilitySet(c)
	}
	return s
}

// ParseCapabilitySet converts stored names into a set. Unknown names are an error.
func ParseCapabilitySet(names []string) (CapabilitySet, error) {
	var s CapabilitySet
	for _, n := range names {
		c, err := ParseCapability(n)
		if err != nil {
			return 0, err
		}
		s |= CapabilitySet(c)
	}
	return s, nil
}

func (s CapabilitySet) Has(c Capability) bool { return c != 0 && s&CapabilitySet(c) == CapabilitySet(c) }

func (s CapabilitySet) With(caps ...Capability) CapabilitySet {
	return s | NewCapabilitySet(caps...)
}

func (s CapabilitySet) Without(caps ...Capability) CapabilitySet {
	return s &^ NewCapabilitySet(caps...)
}

func (s CapabilitySet) Len() int { return bits.OnesCount16(uint16(s)) }

// Names returns the sorted capability names, the form used for storage.
func (s CapabilitySet) Names() []string {
	names := make([]string, 0, s.Len())
	for c, n := range capabilityNames {
		if s.Has(c) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Role is a named bundle of capabilities.
type Role struct {
	ID           int64
	Name         string
	Capabilities CapabilitySet
}

// HasCapability reports whether role grants c. A nil role grants nothing.
func HasCapability(role *Role, c Capability) bool {
	if role == nil {
		return false
	}
	return role.Capabilities.Has(c)
}

// AllCapabilities is every known capability.
func AllCapabilities() CapabilitySet {
	var s CapabilitySet
	for c := range capabilityNames {
		s |= CapabilitySet(c)
	}
	return s
}

// DefaultRoleName is the role assigned to newly registered users.
const DefaultRoleName = "Пользователь"

// DefaultUserCapabilities is the bundle granted by the default role.
func DefaultUserCapabilities() CapabilitySet {
	return NewCapabilitySet(
		CapAdvertisementCreate,
		CapAdvertisementEditOwn,
		CapAdvertisementDeleteOwn,
		CapCommentEditOwn,
		CapCommentDeleteOwn,
	)
}
