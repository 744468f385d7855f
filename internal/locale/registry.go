package locale

import (
	"golang.org/x/text/language"
)

// Registry picks a Formatter from an Accept-Language header. The first
// registered tag is the fallback.
type Registry struct {
	tags       []language.Tag
	formatters []Formatter
	matcher    language.Matcher
}

// NewRegistry returns a registry with Russian as the default and English as an alternative.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(language.Russian, Russian)
	r.Register(language.English, English)
	return r
}

// Register adds a formatter for tag.
func (r *Registry) Register(tag language.Tag, f Formatter) {
	r.tags = append(r.tags, tag)
	r.formatters = append(r.formatters, f)
	r.matcher = language.NewMatcher(r.tags)
}

// Default returns the fallback formatter.
func (r *Registry) Default() Formatter {
	return r.formatters[0]
}

// Match returns the best formatter for an Accept-Language header value.
func (r *Registry) Match(acceptLanguage string) Formatter {
	if acceptLanguage == "" {
		return r.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.Default()
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.Default()
	}
	return r.formatters[idx]
}
