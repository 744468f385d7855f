package locale

import "context"

type formatterKey struct{}

// WithFormatter stores the request formatter in the context.
func WithFormatter(ctx context.Context, f Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// FromContext returns the request formatter, Russian when none is set.
func FromContext(ctx context.Context) Formatter {
	if f, ok := ctx.Value(formatterKey{}).(Formatter); ok && f != nil {
		return f
	}
	return Russian
}
