package domain

// ResourceKind identifies what an authorization request targets.
type ResourceKind string

const (
	ResourceAdvertisement ResourceKind = "advertisement"
	ResourceArticle       ResourceKind = "article"
	ResourceComment       ResourceKind = "comment"
)

func (k ResourceKind) String() string { return string(k) }

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceAdvertisement, ResourceArticle, ResourceComment:
		return true
	}
	return false
}

// Action is the operation an actor requests on a resource.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

func (a Action) String() string { return string(a) }

// IsRead reports whether the action never mutates state.
func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

// Partition groups status names by lifecycle meaning.
type Partition string

const (
	PartitionModeration Partition = "moderation"
	PartitionActive     Partition = "active"
	PartitionCompleted  Partition = "completed"
	PartitionArchived   Partition = "archived"
)

func (p Partition) String() string { return string(p) }

func (p Partition) IsValid() bool {
	switch p {
	case PartitionModeration, PartitionActive, PartitionCompleted, PartitionArchived:
		return true
	}
	return false
}

// Gender of an animal, stored as a single letter.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = "U"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Label returns the display label used by the filter options.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Мужской"
	case GenderFemale:
		return "Женский"
	default:
		return "Неизвестно"
	}
}

// ParseGender maps an empty value to GenderUnknown and rejects anything else unknown.
func ParseGender(s string) (Gender, error) {
	if s == "" {
		return GenderUnknown, nil
	}
	g := Gender(s)
	if !g.IsValid() {
		return "", NewValidationError("animal.gender", "must be one of M, F, U")
	}
	return g, nil
}
