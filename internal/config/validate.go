package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Lifecycle.validate(); err != nil {
		return fmt.Errorf("lifecycle: %w", err)
	}

	if c.Listing.DefaultPageSize <= 0 || c.Listing.MaxPageSize < c.Listing.DefaultPageSize {
		return fmt.Errorf("listing: page sizes must satisfy 0 < default_page_size <= max_page_size (got %d, %d)",
			c.Listing.DefaultPageSize, c.Listing.MaxPageSize)
	}

	if c.RateLimit.Enabled && c.RateLimit.MutationsPerMin <= 0 {
		return fmt.Errorf("rate_limit.mutations_per_min must be > 0 (got %d)", c.RateLimit.MutationsPerMin)
	}

	return nil
}

func (l *LifecycleConfig) validate() error {
	l.Moderation = ParseList(l.ModerationRaw)
	l.Active = ParseList(l.ActiveRaw)
	l.Completed = ParseList(l.CompletedRaw)
	l.Archived = ParseList(l.ArchivedRaw)
	l.Creatable = ParseList(l.CreatableRaw)

	transitions, err := ParseTransitions(l.TransitionsRaw)
	if err != nil {
		return fmt.Errorf("owner_transitions: %w", err)
	}
	l.OwnerTransitions = transitions

	if l.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", l.RetentionDays)
	}
	if l.DigestWindow <= 0 {
		return fmt.Errorf("digest_window must be > 0 (got %v)", l.DigestWindow)
	}

	seen := make(map[string]string)
	for name, list := range map[string][]string{
		"moderation": l.Moderation,
		"active":     l.Active,
		"completed":  l.Completed,
		"archived":   l.Archived,
	} {
		for _, status := range list {
			if prev, dup := seen[status]; dup {
				return fmt.Errorf("status %q is in both %s and %s", status, prev, name)
			}
			seen[status] = name
		}
	}

	if !slices.Contains(l.Moderation, l.ModerationStatus) {
		return fmt.Errorf("moderation_status %q is not in the moderation partition", l.ModerationStatus)
	}
	if !slices.Contains(l.Archived, l.ArchivedStatus) {
		return fmt.Errorf("archived_status %q is not in the archived partition", l.ArchivedStatus)
	}
	for _, status := range l.Creatable {
		if _, ok := seen[status]; !ok {
			return fmt.Errorf("creatable status %q is not in any partition", status)
		}
	}
	for from, targets := range transitions {
		if _, ok := seen[from]; !ok {
			return fmt.Errorf("transition source %q is not in any partition", from)
		}
		for _, to := range targets {
			if _, ok := seen[to]; !ok {
				return fmt.Errorf("transition target %q is not in any partition", to)
			}
		}
	}

	return nil
}

// Statuses returns every configured status name, partition by partition.
func (l LifecycleConfig) Statuses() []string {
	out := make([]string, 0, len(l.Moderation)+len(l.Active)+len(l.Completed)+len(l.Archived))
	out = append(out, l.Moderation...)
	out = append(out, l.Active...)
	out = append(out, l.Completed...)
	out = append(out, l.Archived...)
	return out
}

// ParseList splits a comma-separated list, trimming blanks. An empty string returns nil.
func ParseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseTransitions parses "source:target|target;source:target" into a map.
func ParseTransitions(raw string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, rule := range strings.Split(raw, ";") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		from, targets, ok := strings.Cut(rule, ":")
		from = strings.TrimSpace(from)
		if !ok || from == "" {
			return nil, fmt.Errorf("invalid rule %q", rule)
		}
		if _, dup := out[from]; dup {
			return nil, fmt.Errorf("duplicate source %q", from)
		}
		list := make([]string, 0)
		for _, to := range strings.Split(targets, "|") {
			if to = strings.TrimSpace(to); to != "" {
				list = append(list, to)
			}
		}
		out[from] = list
	}
	return out, nil
}
