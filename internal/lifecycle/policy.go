// Package lifecycle holds the advertisement status state machine: partitions,
// the owner transition table, the initial status of new advertisements and the
// retention window of the archive sweep.
package lifecycle

import (
	"slices"
	"strings"
	"time"

	"github.com/Berlkot/django-proj-kek-2025/internal/authz"
	"github.com/Berlkot/django-proj-kek-2025/internal/config"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Policy is immutable after construction and safe for concurrent use.
type Policy struct {
	partitions  map[string]domain.Partition
	byPartition map[domain.Partition][]string
	transitions map[string][]string
	creatable   []string
	moderation  string
	archived    string
	retention   time.Duration
	digest      time.Duration
}

// NewPolicy builds a Policy from a validated lifecycle configuration.
func NewPolicy(cfg config.LifecycleConfig) *Policy {
	p := &Policy{
		partitions:  make(map[string]domain.Partition),
		byPartition: make(map[domain.Partition][]string),
		transitions: make(map[string][]string, len(cfg.OwnerTransitions)),
		creatable:   slices.Clone(cfg.Creatable),
		moderation:  cfg.ModerationStatus,
		archived:    cfg.ArchivedStatus,
		retention:   time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		digest:      cfg.DigestWindow,
	}

	add := func(part domain.Partition, names []string) {
		for _, n := range names {
			p.partitions[n] = part
			p.byPartition[part] = append(p.byPartition[part], n)
		}
	}
	add(domain.PartitionModeration, cfg.Moderation)
	add(domain.PartitionActive, cfg.Active)
	add(domain.PartitionCompleted, cfg.Completed)
	add(domain.PartitionArchived, cfg.Archived)

	for from, to := range cfg.OwnerTransitions {
		p.transitions[from] = slices.Clone(to)
	}
	return p
}

// PartitionOf returns the partition of a status name.
func (p *Policy) PartitionOf(name string) (domain.Partition, bool) {
	part, ok := p.partitions[name]
	return part, ok
}

// StatusesIn lists status names belonging to any of the partitions, in configuration order.
func (p *Policy) StatusesIn(parts ...domain.Partition) []string {
	out := make([]string, 0)
	for _, part := range parts {
		out = append(out, p.byPartition[part]...)
	}
	return out
}

// Statuses lists every configured status name.
func (p *Policy) Statuses() []string {
	return p.StatusesIn(domain.PartitionModeration, domain.PartitionActive,
		domain.PartitionCompleted, domain.PartitionArchived)
}

// ActiveLike is the status set checked by the duplicate guard.
func (p *Policy) ActiveLike() []string {
	return p.StatusesIn(domain.PartitionModeration, domain.PartitionActive)
}

// IsModeration reports whether name is in the moderation partition.
func (p *Policy) IsModeration(name string) bool {
	part, ok := p.partitions[name]
	return ok && part == domain.PartitionModeration
}

func (p *Policy) ModerationStatus() string { return p.moderation }

func (p *Policy) ArchivedStatus() string { return p.archived }

// ArchiveSources are the statuses swept into the archived status once retention expires.
func (p *Policy) ArchiveSources() []string {
	return p.StatusesIn(domain.PartitionCompleted)
}

// RetentionCutoff is the creation timestamp before which completed advertisements are archived.
func (p *Policy) RetentionCutoff(now time.Time) time.Time {
	return now.Add(-p.retention)
}

// DigestSince is the start of the weekly digest window.
func (p *Policy) DigestSince(now time.Time) time.Time {
	return now.Add(-p.digest)
}

// AllowedTargets returns the owner-reachable targets of from. ok is false when
// from is not in the table, which locks the status for owners.
func (p *Policy) AllowedTargets(from string) (targets []string, ok bool) {
	t, ok := p.transitions[from]
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}

// ValidateOwnerTransition checks from -> to against the owner table.
func (p *Policy) ValidateOwnerTransition(from, to string) error {
	targets, ok := p.transitions[from]
	if !ok {
		return &domain.TransitionError{From: from, To: to}
	}
	if !slices.Contains(targets, to) {
		return &domain.TransitionError{From: from, To: to, Allowed: slices.Clone(targets)}
	}
	return nil
}

// CheckTransition validates a status change requested by actor. Keeping the
// current status is always allowed; privileged actors bypass the owner table.
func (p *Policy) CheckTransition(actor domain.Actor, from, to string) error {
	if from == to {
		return nil
	}
	if authz.CanManageAnyAdvertisement(actor) {
		if _, known := p.partitions[to]; !known {
			return domain.NewValidationError("status", "unknown status "+to)
		}
		return nil
	}
	return p.ValidateOwnerTransition(from, to)
}

// Initial is the outcome of InitialStatus.
type Initial struct {
	// Status is persisted on the new advertisement.
	Status string
	// Requested is remembered for moderation approval. Empty for privileged actors.
	Requested string
}

// InitialStatus decides the status of a new advertisement. Privileged actors get
// the requested status (moderation when empty). Everyone else may only request a
// creatable status and always starts in moderation.
func (p *Policy) InitialStatus(actor domain.Actor, requested string) (Initial, error) {
	if authz.CanManageAnyAdvertisement(actor) {
		if requested == "" {
			return Initial{Status: p.moderation}, nil
		}
		if _, known := p.partitions[requested]; !known {
			return Initial{}, domain.NewValidationError("status", "unknown status "+requested)
		}
		return Initial{Status: requested}, nil
	}

	if requested != "" && !slices.Contains(p.creatable, requested) {
		return Initial{}, domain.NewValidationError("status",
			"you may only create advertisements with one of the statuses: "+strings.Join(p.creatable, ", "))
	}
	return Initial{Status: p.moderation, Requested: requested}, nil
}

// ApprovalTarget is the status an approved advertisement moves to: the status
// requested at creation, or the first active status.
func (p *Policy) ApprovalTarget(requested string) string {
	if requested != "" {
		if part, ok := p.partitions[requested]; ok && part != domain.PartitionModeration {
			return requested
		}
	}
	if active := p.byPartition[domain.PartitionActive]; len(active) > 0 {
		return active[0]
	}
	return ""
}
