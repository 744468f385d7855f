package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Get scans a single row into dst. An empty result is reported as pgx.ErrNoRows
// so MapError turns it into domain.ErrNotFound.
func Get(ctx context.Context, q Querier, dst any, sql string, args ...any) error {
	err := pgxscan.Get(ctx, q, dst, sql, args...)
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}

// Select scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, sql string, args ...any) error {
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// GetBuilt renders a squirrel builder and scans a single row into dst.
func GetBuilt(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return Get(ctx, q, dst, sql, args...)
}

// SelectBuilt renders a squirrel builder and scans all rows into dst.
func SelectBuilt(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return Select(ctx, q, dst, sql, args...)
}
